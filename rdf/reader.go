// Copyright 2017 The RDFBridge Authors. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package rdf

import "io"

// TripleReader is a minimal interface for triple streams.
//
// ReadTriple returns the next triple. It returns io.EOF when no
// triples are left.
type TripleReader interface {
	ReadTriple() (Triple, error)
}

// QuadReader is a minimal interface for quad streams.
//
// ReadQuad returns the next quad. It returns io.EOF when no quads are
// left.
type QuadReader interface {
	ReadQuad() (Quad, error)
}

// Triples is a slice-backed TripleReader.
type Triples struct {
	s []Triple
}

// NewReader creates a triple reader from a triple slice.
func NewReader(triples []Triple) *Triples {
	return &Triples{s: triples}
}

func (r *Triples) ReadTriple() (Triple, error) {
	if r == nil || len(r.s) == 0 {
		return nil, io.EOF
	}
	t := r.s[0]
	r.s = r.s[1:]
	if len(r.s) == 0 {
		r.s = nil
	}
	return t, nil
}

// EachTriple calls fn for every triple of src, stopping at the first
// error. A failure on one triple aborts the whole pass.
func EachTriple(src TripleReader, fn func(Triple) error) error {
	for {
		t, err := src.ReadTriple()
		if err == io.EOF {
			return nil
		} else if err != nil {
			return err
		}
		if err := fn(t); err != nil {
			return err
		}
	}
}

// CopyTriples copies all triples from src into dst. It returns the
// number of triples copied and the first error, if any.
func CopyTriples(dst Graph, src TripleReader) (n int, err error) {
	err = EachTriple(src, func(t Triple) error {
		if err := dst.Add(t); err != nil {
			return err
		}
		n++
		return nil
	})
	return
}

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

package rdfbridge

import (
	"io"

	"github.com/ontoworks/rdfbridge/clog"
	"github.com/ontoworks/rdfbridge/graph"
	"github.com/ontoworks/rdfbridge/rdf"
)

// GraphBacked is implemented by graphs produced by this layer that
// wrap a native graph. ToGraph returns the wrapped handle unchanged
// for such graphs instead of copying.
type GraphBacked interface {
	AsGraph() *graph.Graph
}

// graphWrapper is an O(1) view over a native graph: reads adapt the
// native match-all traversal lazily, writes and removals forward to
// the native graph. It shares the native graph's state and inherits
// its concurrency guarantees.
type graphWrapper struct {
	g    *graph.Graph
	salt Salt
}

func (w *graphWrapper) AsGraph() *graph.Graph { return w.g }

func (w *graphWrapper) Add(t rdf.Triple) error {
	nt, err := ToTriple(t)
	if err != nil {
		return err
	}
	w.g.Add(nt)
	return nil
}

func (w *graphWrapper) Remove(t rdf.Triple) error {
	nt, err := ToTriple(t)
	if err != nil {
		return err
	}
	w.g.Remove(nt)
	return nil
}

func (w *graphWrapper) Contains(t rdf.Triple) bool {
	nt, err := ToTriple(t)
	if err != nil {
		return false
	}
	return w.g.Has(nt)
}

func (w *graphWrapper) Size() int64 {
	return int64(w.g.Size())
}

func (w *graphWrapper) Triples() rdf.TripleReader {
	return &wrapReader{it: w.g.Find(graph.Any, graph.Any, graph.Any), salt: w.salt}
}

// wrapReader lazily adapts a native traversal, one triple per read.
type wrapReader struct {
	it   *graph.Iterator
	salt Salt
}

func (r *wrapReader) ReadTriple() (rdf.Triple, error) {
	if !r.it.Next() {
		return nil, io.EOF
	}
	return fromTriple(r.it.Result(), r.salt)
}

// FromGraph wraps a native graph as a term-level Graph in O(1). No
// copy is taken: changes on either side are visible on the other.
//
// Each FromGraph call generates a new, independent salt, so two wraps
// of the same native graph are two separate blank node identity
// sessions. Use FromGraphWithSalt to pin the session.
func FromGraph(g *graph.Graph) rdf.Graph {
	return FromGraphWithSalt(g, NewSalt())
}

// FromGraphWithSalt wraps a native graph using the supplied salt for
// blank node identity.
func FromGraphWithSalt(g *graph.Graph, salt Salt) rdf.Graph {
	return &graphWrapper{g: g, salt: salt}
}

// ConvertGraph copies a native graph into a graph created by an
// arbitrary term factory, converting every triple. The copy is O(n)
// and independent: later mutation of either side does not affect the
// other. A conversion failure on any triple aborts the whole copy.
//
// The rdfbridge Factory short-circuits to an O(1) wrap (with a fresh
// salt) instead of copying.
func ConvertGraph(f rdf.TermFactory, g *graph.Graph) (rdf.Graph, error) {
	if _, ok := f.(*Factory); ok {
		return FromGraph(g), nil
	}
	out := f.NewGraph()
	n := 0
	it := g.Find(graph.Any, graph.Any, graph.Any)
	for it.Next() {
		t, err := ConvertTriple(f, it.Result())
		if err != nil {
			return nil, err
		}
		if err := out.Add(t); err != nil {
			return nil, err
		}
		n++
	}
	if clog.V(2) {
		clog.Infof("converted %d triples into foreign graph", n)
	}
	return out, nil
}

// ToGraph converts a term-level graph to a native graph. A graph that
// already wraps a native graph returns the original handle unchanged;
// any other graph is copied triple by triple into a fresh native
// graph, fail-fast on the first conversion error.
func ToGraph(g rdf.Graph) (*graph.Graph, error) {
	if gb, ok := g.(GraphBacked); ok {
		return gb.AsGraph(), nil
	}
	out := graph.New()
	err := rdf.EachTriple(g.Triples(), func(t rdf.Triple) error {
		nt, err := ToTriple(t)
		if err != nil {
			return err
		}
		out.Add(nt)
		return nil
	})
	if err != nil {
		return nil, err
	}
	if clog.V(2) {
		clog.Infof("copied %d triples into native graph", out.Size())
	}
	return out, nil
}

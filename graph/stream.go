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

package graph

// Handler receives push events from a native stream producer, once per
// statement as the stream is consumed. A non-nil error stops the
// producer.
type Handler interface {
	Triple(t Triple) error
	Quad(q Quad) error
}

// BaseHandler is a Handler that ignores every event. Embed it to
// implement only the events of interest.
type BaseHandler struct{}

func (BaseHandler) Triple(t Triple) error { return nil }
func (BaseHandler) Quad(q Quad) error     { return nil }

// SendQuads pushes each quad to h in order, stopping at the first
// error.
func SendQuads(h Handler, quads []Quad) error {
	for _, q := range quads {
		if err := h.Quad(q); err != nil {
			return err
		}
	}
	return nil
}

// SendTriples pushes each triple to h in order, stopping at the first
// error.
func SendTriples(h Handler, triples []Triple) error {
	for _, t := range triples {
		if err := h.Triple(t); err != nil {
			return err
		}
	}
	return nil
}

// SendGraph pushes every triple of g to h.
func SendGraph(h Handler, g *Graph) error {
	it := g.Find(Any, Any, Any)
	for it.Next() {
		if err := h.Triple(it.Result()); err != nil {
			return err
		}
	}
	return nil
}

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

import "fmt"

// Triple is a native subject-predicate-object statement. Positions are
// not kind-constrained at this level; generalized statements may hold
// any Node in any position.
type Triple struct {
	Subject   Node
	Predicate Node
	Object    Node
}

// MakeTriple creates a triple from the given nodes.
func MakeTriple(s, p, o Node) Triple {
	return Triple{Subject: s, Predicate: p, Object: o}
}

func (t Triple) String() string {
	return fmt.Sprintf("%v %v %v .", t.Subject, t.Predicate, t.Object)
}

// IsValid reports whether all triple positions are set.
func (t Triple) IsValid() bool {
	return t.Subject != nil && t.Predicate != nil && t.Object != nil
}

// Concrete reports whether every position holds a concrete node.
func (t Triple) Concrete() bool {
	return t.IsValid() && Concrete(t.Subject) && Concrete(t.Predicate) && Concrete(t.Object)
}

// Quad is a native statement with a graph name. A nil Graph position
// addresses the default graph.
type Quad struct {
	Graph     Node
	Subject   Node
	Predicate Node
	Object    Node
}

// MakeQuad creates a quad from the given nodes. Pass a nil graph node
// for the default graph.
func MakeQuad(g, s, p, o Node) Quad {
	return Quad{Graph: g, Subject: s, Predicate: p, Object: o}
}

func (q Quad) String() string {
	if q.Graph == nil {
		return fmt.Sprintf("%v %v %v .", q.Subject, q.Predicate, q.Object)
	}
	return fmt.Sprintf("%v %v %v %v .", q.Subject, q.Predicate, q.Object, q.Graph)
}

// AsTriple strips the graph name.
func (q Quad) AsTriple() Triple {
	return Triple{Subject: q.Subject, Predicate: q.Predicate, Object: q.Object}
}

// Concrete reports whether all of subject, predicate and object hold
// concrete nodes. The graph position may be nil (default graph).
func (q Quad) Concrete() bool {
	if q.Graph != nil && !Concrete(q.Graph) {
		return false
	}
	return q.AsTriple().Concrete()
}

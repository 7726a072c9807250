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

// Package graph implements the native node, triple, quad and graph
// primitives that the adaptation layer converts from and to.
//
// Nodes form a small tagged union: the concrete kinds IRI, Literal and
// Blank, and the non-concrete kinds Var and Any that only occur in
// patterns and generalized statements.
package graph

// Node is a value occupying one position of a triple or quad.
//
// All implementations are comparable values, so nodes can be used as
// map keys and triples compared with ==.
type Node interface {
	String() string
}

// IRI is an Internationalized Resource Identifier node (ex: <name>).
type IRI string

func (s IRI) String() string { return `<` + string(s) + `>` }

// Literal is a literal node with a lexical form, an optional datatype
// IRI and an optional language tag. A literal with a language tag has
// no explicit datatype; a literal with neither is a plain string.
type Literal struct {
	Value string
	Type  IRI
	Lang  string
}

func (s Literal) String() string {
	if s.Lang != "" {
		return `"` + s.Value + `"@` + s.Lang
	}
	if s.Type != "" {
		return `"` + s.Value + `"^^` + s.Type.String()
	}
	return `"` + s.Value + `"`
}

// Blank is a blank node (ex: _:name). The label is an opaque handle
// local to the graph that minted it.
type Blank string

func (s Blank) String() string { return `_:` + string(s) }

// Label returns the node's native label.
func (s Blank) Label() string { return string(s) }

// Var is a named pattern variable (ex: ?name). It is not concrete.
type Var string

func (s Var) String() string { return `?` + string(s) }

type anyNode struct{}

func (anyNode) String() string { return `*` }

// Any is the wildcard node. In Find calls it matches every node; as a
// statement position it marks a generalized pattern statement.
var Any Node = anyNode{}

// Concrete reports whether n represents an actual IRI, literal or
// blank node, as opposed to a pattern placeholder.
func Concrete(n Node) bool {
	switch n.(type) {
	case IRI, Literal, Blank:
		return true
	}
	return false
}

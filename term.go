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
	"github.com/ontoworks/rdfbridge/graph"
	"github.com/ontoworks/rdfbridge/rdf"
	rdfvoc "github.com/ontoworks/rdfbridge/voc/rdf"
	"github.com/ontoworks/rdfbridge/voc/xsd"
)

// NodeBacked is implemented by terms produced by this layer that
// retain their native node handle. ToNode returns the handle
// unchanged for such terms instead of rebuilding an equivalent node.
type NodeBacked interface {
	AsNode() graph.Node
}

type iriTerm struct {
	node graph.IRI
}

func (t iriTerm) String() string     { return t.node.String() }
func (t iriTerm) IRIString() string  { return string(t.node) }
func (t iriTerm) AsNode() graph.Node { return t.node }

type literalTerm struct {
	node graph.Literal
}

func (t literalTerm) String() string {
	// Plain string literals carry no explicit datatype marker.
	if t.node.Lang == "" && t.node.Type == xsd.String {
		return graph.Literal{Value: t.node.Value}.String()
	}
	return t.node.String()
}

func (t literalTerm) LexicalForm() string { return t.node.Value }
func (t literalTerm) Language() string    { return t.node.Lang }
func (t literalTerm) AsNode() graph.Node  { return t.node }

func (t literalTerm) Datatype() rdf.IRI {
	if t.node.Lang != "" {
		return iriTerm{node: graph.IRI(rdfvoc.LangString)}
	}
	if t.node.Type == "" {
		return iriTerm{node: graph.IRI(xsd.String)}
	}
	return iriTerm{node: t.node.Type}
}

type blankTerm struct {
	node graph.Blank
	ref  string
}

func (t blankTerm) String() string          { return t.node.String() }
func (t blankTerm) UniqueReference() string { return t.ref }
func (t blankTerm) AsNode() graph.Node      { return t.node }

// varTerm is a non-concrete pattern variable. It only appears on
// generalized views and implements no term kind beyond rdf.Term.
type varTerm struct {
	node graph.Var
}

func (t varTerm) String() string     { return t.node.String() }
func (t varTerm) AsNode() graph.Node { return t.node }

// anyTerm is the non-concrete wildcard.
type anyTerm struct{}

func (anyTerm) String() string     { return graph.Any.String() }
func (anyTerm) AsNode() graph.Node { return graph.Any }

// fromNode adapts a native node to a term using the given salt. In
// strict mode only concrete nodes convert; in generalized mode the
// Var and Any kinds adapt to opaque non-concrete terms.
func fromNode(n graph.Node, salt Salt, generalized bool) (rdf.Term, error) {
	switch n := n.(type) {
	case graph.IRI:
		return iriTerm{node: n}, nil
	case graph.Literal:
		return literalTerm{node: n}, nil
	case graph.Blank:
		return blankTerm{node: n, ref: combine(n.Label(), salt)}, nil
	case nil:
		return nil, conversionErrorf("cannot convert nil node")
	}
	if !generalized {
		return nil, conversionErrorf("node is not a concrete RDF term: %v", n)
	}
	switch n := n.(type) {
	case graph.Var:
		return varTerm{node: n}, nil
	}
	if n == graph.Any {
		return anyTerm{}, nil
	}
	return nil, conversionErrorf("unsupported node kind: %v", n)
}

// FromNodeWithSalt adapts a native concrete node to a term, deriving
// blank node identity from the supplied salt.
func FromNodeWithSalt(n graph.Node, salt Salt) (rdf.Term, error) {
	return fromNode(n, salt, false)
}

// ToNode converts a term to a native node. Terms produced by this
// layer return their original handle unchanged; foreign terms are
// rebuilt, with blank nodes keyed by their unique reference.
func ToNode(t rdf.Term) (graph.Node, error) {
	if t == nil {
		return nil, conversionErrorf("cannot convert nil term")
	}
	if nb, ok := t.(NodeBacked); ok {
		return nb.AsNode(), nil
	}
	switch t := t.(type) {
	case rdf.IRI:
		return graph.IRI(t.IRIString()), nil
	case rdf.Literal:
		if lang := t.Language(); lang != "" {
			return graph.Literal{Value: t.LexicalForm(), Lang: lang}, nil
		}
		if dt := t.Datatype(); dt != nil && dt.IRIString() != xsd.String {
			return graph.Literal{Value: t.LexicalForm(), Type: graph.IRI(dt.IRIString())}, nil
		}
		return graph.Literal{Value: t.LexicalForm()}, nil
	case rdf.BlankNode:
		return graph.Blank(t.UniqueReference()), nil
	}
	return nil, conversionErrorf("not a concrete RDF term: %v", t)
}

// ConvertNode converts a native node through an arbitrary term
// factory. Blank nodes go through f.NewBlankNodeNamed, so reusing one
// factory across unrelated conversion sessions merges blank node
// identities; use separate factories per session. The rdfbridge
// Factory short-circuits to its own adapter.
func ConvertNode(f rdf.TermFactory, n graph.Node) (rdf.Term, error) {
	if bf, ok := f.(*Factory); ok {
		return bf.FromNode(n)
	}
	switch n := n.(type) {
	case graph.IRI:
		return f.NewIRI(string(n))
	case graph.Literal:
		if n.Lang != "" {
			return f.NewLangLiteral(n.Value, n.Lang)
		}
		if n.Type == "" || n.Type == xsd.String {
			return f.NewLiteral(n.Value), nil
		}
		dt, err := f.NewIRI(string(n.Type))
		if err != nil {
			return nil, err
		}
		return f.NewTypedLiteral(n.Value, dt), nil
	case graph.Blank:
		return f.NewBlankNodeNamed(n.Label()), nil
	}
	return nil, conversionErrorf("node is not a concrete RDF term: %v", n)
}

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

// Package rdfbridge adapts between the native graph package and the
// abstract rdf term model.
//
// A Factory owns one salt for its whole lifetime: every blank node it
// creates or adapts shares that identity session. Constructing a new
// Factory (or passing an explicit salt) starts a new session.
//
// Graph conversion is explicit about sharing: FromGraph wraps a
// native graph in O(1) and shares its state, ConvertGraph and ToGraph
// copy in O(n) and produce independent snapshots.
package rdfbridge

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/ontoworks/rdfbridge/graph"
	"github.com/ontoworks/rdfbridge/rdf"
	"github.com/ontoworks/rdfbridge/voc/xsd"
)

// Factory creates native-backed terms, statements and graphs, and
// adapts existing native objects. It implements rdf.TermFactory.
//
// The salt is fixed at construction and never mutated, so a Factory
// is safe for concurrent use.
type Factory struct {
	salt Salt
}

var _ rdf.TermFactory = (*Factory)(nil)

// New creates a Factory with a fresh random salt.
func New() *Factory {
	return &Factory{salt: NewSalt()}
}

// NewWithSalt creates a Factory that continues an existing identity
// session.
func NewWithSalt(salt Salt) *Factory {
	return &Factory{salt: salt}
}

// Salt returns the factory's identity session salt.
func (f *Factory) Salt() Salt { return f.salt }

// NewIRI creates an IRI term. IRI strings containing a space or angle
// bracket are rejected with ErrInvalidIRI; anything else is assumed
// valid, full RFC 3987 checking is out of scope.
func (f *Factory) NewIRI(iri string) (rdf.IRI, error) {
	if strings.ContainsAny(iri, " <>") {
		return nil, fmt.Errorf("%w: %q", ErrInvalidIRI, iri)
	}
	return iriTerm{node: graph.IRI(iri)}, nil
}

// NewLiteral creates a plain string literal. Its datatype is the
// implicit xsd:string and is not surfaced in the printed form.
func (f *Factory) NewLiteral(lexical string) rdf.Literal {
	return literalTerm{node: graph.Literal{Value: lexical}}
}

// NewTypedLiteral creates a literal with an explicit datatype. An
// xsd:string (or nil) datatype yields a plain literal.
func (f *Factory) NewTypedLiteral(lexical string, datatype rdf.IRI) rdf.Literal {
	if datatype == nil || datatype.IRIString() == xsd.String {
		return f.NewLiteral(lexical)
	}
	return literalTerm{node: graph.Literal{Value: lexical, Type: graph.IRI(datatype.IRIString())}}
}

// NewLangLiteral creates a language-tagged literal. A tag containing
// a space is rejected with ErrInvalidLanguageTag; this is a cheap
// guard, not BCP 47 validation. An empty tag yields a plain literal.
func (f *Factory) NewLangLiteral(lexical, language string) (rdf.Literal, error) {
	if strings.Contains(language, " ") {
		return nil, fmt.Errorf("%w: %q", ErrInvalidLanguageTag, language)
	}
	return literalTerm{node: graph.Literal{Value: lexical, Lang: language}}, nil
}

// NewBlankNode creates a blank node with a fresh native label. Its
// unique reference is scoped to this factory's session.
func (f *Factory) NewBlankNode() rdf.BlankNode {
	return f.NewBlankNodeNamed(uuid.New().String())
}

// NewBlankNodeNamed creates a blank node keyed by a native label. The
// same label on the same factory always yields the same unique
// reference.
func (f *Factory) NewBlankNodeNamed(label string) rdf.BlankNode {
	return blankTerm{node: graph.Blank(label), ref: combine(label, f.salt)}
}

// NewTriple creates a strict, native-backed triple. The subject must
// be a blank node or IRI; all terms must be concrete.
func (f *Factory) NewTriple(s rdf.BlankNodeOrIRI, p rdf.IRI, o rdf.Term) (rdf.Triple, error) {
	if _, ok := asBlankNodeOrIRI(s); !ok {
		return nil, conversionErrorf("subject is not a blank node or IRI: %v", s)
	}
	sn, err := ToNode(s)
	if err != nil {
		return nil, err
	}
	pn, err := ToNode(p)
	if err != nil {
		return nil, err
	}
	on, err := ToNode(o)
	if err != nil {
		return nil, err
	}
	return triple{nt: graph.MakeTriple(sn, pn, on), s: s, p: p, o: o}, nil
}

// NewQuad creates a strict, native-backed quad. A nil graph name
// addresses the default graph.
func (f *Factory) NewQuad(g rdf.BlankNodeOrIRI, s rdf.BlankNodeOrIRI, p rdf.IRI, o rdf.Term) (rdf.Quad, error) {
	var gn graph.Node
	if g != nil {
		if _, ok := asBlankNodeOrIRI(g); !ok {
			return nil, conversionErrorf("graph name is not a blank node or IRI: %v", g)
		}
		var err error
		if gn, err = ToNode(g); err != nil {
			return nil, err
		}
	}
	t, err := f.NewTriple(s, p, o)
	if err != nil {
		return nil, err
	}
	nt := t.(TripleBacked).AsTriple()
	nq := graph.MakeQuad(gn, nt.Subject, nt.Predicate, nt.Object)
	return quad{nq: nq, g: g, s: s, p: p, o: o}, nil
}

// NewGeneralizedTriple creates a triple view whose positions may hold
// any term kind, including non-concrete ones produced by generalized
// adaptation. The result carries no equality contract.
func (f *Factory) NewGeneralizedTriple(s, p, o rdf.Term) (rdf.TripleLike, error) {
	sn, err := ToNode(s)
	if err != nil {
		return nil, err
	}
	pn, err := ToNode(p)
	if err != nil {
		return nil, err
	}
	on, err := ToNode(o)
	if err != nil {
		return nil, err
	}
	return tripleLike{nt: graph.MakeTriple(sn, pn, on), s: s, p: p, o: o}, nil
}

// NewGraph creates an empty graph backed by a fresh native graph,
// using this factory's salt for blank node identity.
func (f *Factory) NewGraph() rdf.Graph {
	return FromGraphWithSalt(graph.New(), f.salt)
}

// FromNode adapts a native concrete node to a term using the
// factory's salt. Non-concrete nodes fail with a ConversionError.
func (f *Factory) FromNode(n graph.Node) (rdf.Term, error) {
	return fromNode(n, f.salt, false)
}

// FromTriple adapts a native triple strictly using the factory's
// salt. See FromTripleWithSalt.
func (f *Factory) FromTriple(t graph.Triple) (rdf.Triple, error) {
	return fromTriple(t, f.salt)
}

// FromQuad adapts a native quad strictly using the factory's salt.
func (f *Factory) FromQuad(q graph.Quad) (rdf.Quad, error) {
	return fromQuad(q, f.salt)
}

// FromTripleGeneralized adapts a native triple without kind narrowing
// using the factory's salt. See FromTripleGeneralizedWithSalt.
func (f *Factory) FromTripleGeneralized(t graph.Triple) (rdf.TripleLike, error) {
	return FromTripleGeneralizedWithSalt(t, f.salt)
}

// FromQuadGeneralized adapts a native quad without kind narrowing
// using the factory's salt.
func (f *Factory) FromQuadGeneralized(q graph.Quad) (rdf.QuadLike, error) {
	return FromQuadGeneralizedWithSalt(q, f.salt)
}

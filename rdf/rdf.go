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

// Package rdf defines the abstract, immutable term model: IRIs,
// literals, blank nodes, triples, quads and graphs.
//
// The package contains interfaces only; implementations live in term
// model providers such as the rdfbridge root package. Term equality is
// by value (IRI string, literal lexical form/datatype/language, blank
// node unique reference), never by handle identity; use SameTerm to
// compare terms across implementations.
package rdf

// Term is a single RDF term: an IRI, a literal or a blank node.
// Implementations must be immutable. String returns the term in
// N-Triples-like syntax.
type Term interface {
	String() string
}

// BlankNodeOrIRI is a Term allowed in the subject and graph name
// positions of a strict statement. Go has no union types, so any Term
// satisfies this interface statically; operations that construct
// strict statements verify the kind at run time.
type BlankNodeOrIRI interface {
	Term
}

// IRI is an Internationalized Resource Identifier term.
type IRI interface {
	Term
	// IRIString returns the IRI string without surrounding brackets.
	IRIString() string
}

// Literal is a term with a lexical form, a datatype IRI and an
// optional language tag.
type Literal interface {
	Term
	LexicalForm() string
	// Datatype returns the literal's datatype IRI. Plain literals
	// report xsd:string, language-tagged literals rdf:langString.
	Datatype() IRI
	// Language returns the language tag, or "" if the literal is not
	// language-tagged.
	Language() string
}

// BlankNode is an anonymous term. Its unique reference identifies it
// within one identity session only, not globally.
type BlankNode interface {
	Term
	UniqueReference() string
}

// Triple is a strict statement: the subject is a blank node or IRI
// and the predicate is an IRI. Triples are value-comparable.
type Triple interface {
	Subject() BlankNodeOrIRI
	Predicate() IRI
	Object() Term
	String() string
}

// Quad is a strict statement with a graph name. A nil graph name
// addresses the default graph.
type Quad interface {
	GraphName() BlankNodeOrIRI
	Subject() BlankNodeOrIRI
	Predicate() IRI
	Object() Term
	String() string
}

// TripleLike is a generalized triple: every position may hold any
// term kind, including non-concrete pattern placeholders.
//
// Generalized statements are transient, single-use views. They carry
// no value-equality or hash contract: do not compare them or use them
// as map keys.
type TripleLike interface {
	Subject() Term
	Predicate() Term
	Object() Term
}

// QuadLike is a generalized quad. See TripleLike for the usage
// contract.
type QuadLike interface {
	GraphName() Term
	Subject() Term
	Predicate() Term
	Object() Term
}

// Graph is a mutable set of strict triples.
type Graph interface {
	Add(t Triple) error
	Remove(t Triple) error
	Contains(t Triple) bool
	Size() int64
	// Triples returns a reader over the graph's triples, terminated
	// by io.EOF.
	Triples() TripleReader
}

// TermFactory creates terms, statements and graphs of one term model
// implementation. Conversion routines use it to copy native data into
// foreign models.
type TermFactory interface {
	NewIRI(iri string) (IRI, error)
	NewLiteral(lexical string) Literal
	NewTypedLiteral(lexical string, datatype IRI) Literal
	NewLangLiteral(lexical, language string) (Literal, error)
	NewBlankNode() BlankNode
	NewBlankNodeNamed(label string) BlankNode
	NewTriple(s BlankNodeOrIRI, p IRI, o Term) (Triple, error)
	NewQuad(g BlankNodeOrIRI, s BlankNodeOrIRI, p IRI, o Term) (Quad, error)
	NewGraph() Graph
}

// SameTerm reports whether two terms are equal by value: same kind
// and same IRI string, literal components or unique reference. It
// works across term model implementations.
func SameTerm(a, b Term) bool {
	if a == nil || b == nil {
		return a == b
	}
	switch a := a.(type) {
	case IRI:
		b, ok := b.(IRI)
		return ok && a.IRIString() == b.IRIString()
	case Literal:
		b, ok := b.(Literal)
		if !ok || a.LexicalForm() != b.LexicalForm() || a.Language() != b.Language() {
			return false
		}
		return a.Datatype().IRIString() == b.Datatype().IRIString()
	case BlankNode:
		b, ok := b.(BlankNode)
		return ok && a.UniqueReference() == b.UniqueReference()
	}
	return false
}

// SameTriple reports whether two strict triples are equal by value.
func SameTriple(a, b Triple) bool {
	if a == nil || b == nil {
		return a == b
	}
	return SameTerm(a.Subject(), b.Subject()) &&
		SameTerm(a.Predicate(), b.Predicate()) &&
		SameTerm(a.Object(), b.Object())
}

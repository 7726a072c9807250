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
)

// TripleBacked is implemented by triples produced by this layer that
// retain their native handle.
type TripleBacked interface {
	AsTriple() graph.Triple
}

// QuadBacked is implemented by quads produced by this layer that
// retain their native handle.
type QuadBacked interface {
	AsQuad() graph.Quad
}

type triple struct {
	nt graph.Triple
	s  rdf.BlankNodeOrIRI
	p  rdf.IRI
	o  rdf.Term
}

func (t triple) Subject() rdf.BlankNodeOrIRI { return t.s }
func (t triple) Predicate() rdf.IRI          { return t.p }
func (t triple) Object() rdf.Term            { return t.o }
func (t triple) String() string              { return t.nt.String() }
func (t triple) AsTriple() graph.Triple      { return t.nt }

type quad struct {
	nq graph.Quad
	g  rdf.BlankNodeOrIRI // nil for the default graph
	s  rdf.BlankNodeOrIRI
	p  rdf.IRI
	o  rdf.Term
}

func (q quad) GraphName() rdf.BlankNodeOrIRI { return q.g }
func (q quad) Subject() rdf.BlankNodeOrIRI   { return q.s }
func (q quad) Predicate() rdf.IRI            { return q.p }
func (q quad) Object() rdf.Term              { return q.o }
func (q quad) String() string                { return q.nq.String() }
func (q quad) AsQuad() graph.Quad            { return q.nq }

// noCompare makes the generalized view types non-comparable, so they
// cannot be used with == or as map keys. Generalized statements carry
// no equality contract.
type noCompare [0]func()

type tripleLike struct {
	_  noCompare
	nt graph.Triple
	s  rdf.Term
	p  rdf.Term
	o  rdf.Term
}

func (t tripleLike) Subject() rdf.Term      { return t.s }
func (t tripleLike) Predicate() rdf.Term    { return t.p }
func (t tripleLike) Object() rdf.Term       { return t.o }
func (t tripleLike) String() string         { return t.nt.String() }
func (t tripleLike) AsTriple() graph.Triple { return t.nt }

type quadLike struct {
	_  noCompare
	nq graph.Quad
	g  rdf.Term
	s  rdf.Term
	p  rdf.Term
	o  rdf.Term
}

func (q quadLike) GraphName() rdf.Term { return q.g }
func (q quadLike) Subject() rdf.Term   { return q.s }
func (q quadLike) Predicate() rdf.Term { return q.p }
func (q quadLike) Object() rdf.Term    { return q.o }
func (q quadLike) String() string      { return q.nq.String() }
func (q quadLike) AsQuad() graph.Quad  { return q.nq }

func asBlankNodeOrIRI(t rdf.Term) (rdf.BlankNodeOrIRI, bool) {
	switch t.(type) {
	case rdf.IRI, rdf.BlankNode:
		return t, true
	}
	return nil, false
}

func fromTriple(t graph.Triple, salt Salt) (rdf.Triple, error) {
	st, err := fromNode(t.Subject, salt, false)
	if err != nil {
		return nil, err
	}
	s, ok := asBlankNodeOrIRI(st)
	if !ok {
		return nil, conversionErrorf("can't convert generalized triple: %v", t)
	}
	pt, err := fromNode(t.Predicate, salt, false)
	if err != nil {
		return nil, err
	}
	p, ok := pt.(rdf.IRI)
	if !ok {
		return nil, conversionErrorf("can't convert generalized triple: %v", t)
	}
	o, err := fromNode(t.Object, salt, false)
	if err != nil {
		return nil, err
	}
	return triple{nt: t, s: s, p: p, o: o}, nil
}

func fromQuad(q graph.Quad, salt Salt) (rdf.Quad, error) {
	var g rdf.BlankNodeOrIRI
	if q.Graph != nil {
		gt, err := fromNode(q.Graph, salt, false)
		if err != nil {
			return nil, err
		}
		var ok bool
		if g, ok = asBlankNodeOrIRI(gt); !ok {
			return nil, conversionErrorf("can't convert generalized quad: %v", q)
		}
	}
	t, err := fromTriple(q.AsTriple(), salt)
	if err != nil {
		if IsConversionError(err) {
			return nil, conversionErrorf("can't convert generalized quad: %v", q)
		}
		return nil, err
	}
	return quad{nq: q, g: g, s: t.Subject(), p: t.Predicate(), o: t.Object()}, nil
}

// FromTripleWithSalt adapts a native triple strictly: the subject must
// convert to a blank node or IRI and the predicate to an IRI, else a
// ConversionError identifying the triple is returned.
func FromTripleWithSalt(t graph.Triple, salt Salt) (rdf.Triple, error) {
	return fromTriple(t, salt)
}

// FromQuadWithSalt adapts a native quad strictly. See
// FromTripleWithSalt.
func FromQuadWithSalt(q graph.Quad, salt Salt) (rdf.Quad, error) {
	return fromQuad(q, salt)
}

// FromTripleGeneralizedWithSalt adapts a native triple without kind
// narrowing: every position may hold any node kind, including the
// non-concrete Var and Any.
//
// The result is a single-use view over the native statement. It has
// no value-equality contract and must not be used as a map key.
func FromTripleGeneralizedWithSalt(t graph.Triple, salt Salt) (rdf.TripleLike, error) {
	s, err := fromNode(t.Subject, salt, true)
	if err != nil {
		return nil, err
	}
	p, err := fromNode(t.Predicate, salt, true)
	if err != nil {
		return nil, err
	}
	o, err := fromNode(t.Object, salt, true)
	if err != nil {
		return nil, err
	}
	return tripleLike{nt: t, s: s, p: p, o: o}, nil
}

// FromQuadGeneralizedWithSalt adapts a native quad without kind
// narrowing. See FromTripleGeneralizedWithSalt for the usage contract.
func FromQuadGeneralizedWithSalt(q graph.Quad, salt Salt) (rdf.QuadLike, error) {
	var g rdf.Term
	if q.Graph != nil {
		var err error
		if g, err = fromNode(q.Graph, salt, true); err != nil {
			return nil, err
		}
	}
	s, err := fromNode(q.Subject, salt, true)
	if err != nil {
		return nil, err
	}
	p, err := fromNode(q.Predicate, salt, true)
	if err != nil {
		return nil, err
	}
	o, err := fromNode(q.Object, salt, true)
	if err != nil {
		return nil, err
	}
	return quadLike{nq: q, g: g, s: s, p: p, o: o}, nil
}

// ToTriple converts a strict triple to a native triple. Triples
// produced by this layer return their original handle unchanged.
func ToTriple(t rdf.Triple) (graph.Triple, error) {
	if tb, ok := t.(TripleBacked); ok {
		return tb.AsTriple(), nil
	}
	s, err := ToNode(t.Subject())
	if err != nil {
		return graph.Triple{}, err
	}
	p, err := ToNode(t.Predicate())
	if err != nil {
		return graph.Triple{}, err
	}
	o, err := ToNode(t.Object())
	if err != nil {
		return graph.Triple{}, err
	}
	return graph.MakeTriple(s, p, o), nil
}

// ToQuad converts a strict quad to a native quad. Quads produced by
// this layer return their original handle unchanged.
func ToQuad(q rdf.Quad) (graph.Quad, error) {
	if qb, ok := q.(QuadBacked); ok {
		return qb.AsQuad(), nil
	}
	var g graph.Node
	if gn := q.GraphName(); gn != nil {
		var err error
		if g, err = ToNode(gn); err != nil {
			return graph.Quad{}, err
		}
	}
	s, err := ToNode(q.Subject())
	if err != nil {
		return graph.Quad{}, err
	}
	p, err := ToNode(q.Predicate())
	if err != nil {
		return graph.Quad{}, err
	}
	o, err := ToNode(q.Object())
	if err != nil {
		return graph.Quad{}, err
	}
	return graph.MakeQuad(g, s, p, o), nil
}

// ConvertTriple converts a native triple through an arbitrary term
// factory, with the same strictness rules as FromTripleWithSalt. The
// rdfbridge Factory short-circuits to its own adapter.
func ConvertTriple(f rdf.TermFactory, t graph.Triple) (rdf.Triple, error) {
	if bf, ok := f.(*Factory); ok {
		return bf.FromTriple(t)
	}
	st, err := ConvertNode(f, t.Subject)
	if err != nil {
		return nil, err
	}
	s, ok := asBlankNodeOrIRI(st)
	if !ok {
		return nil, conversionErrorf("can't convert generalized triple: %v", t)
	}
	pt, err := ConvertNode(f, t.Predicate)
	if err != nil {
		return nil, err
	}
	p, ok := pt.(rdf.IRI)
	if !ok {
		return nil, conversionErrorf("can't convert generalized triple: %v", t)
	}
	o, err := ConvertNode(f, t.Object)
	if err != nil {
		return nil, err
	}
	return f.NewTriple(s, p, o)
}

// ConvertQuad converts a native quad through an arbitrary term
// factory, with the same strictness rules as FromQuadWithSalt.
func ConvertQuad(f rdf.TermFactory, q graph.Quad) (rdf.Quad, error) {
	if bf, ok := f.(*Factory); ok {
		return bf.FromQuad(q)
	}
	var g rdf.BlankNodeOrIRI
	if q.Graph != nil {
		gt, err := ConvertNode(f, q.Graph)
		if err != nil {
			return nil, err
		}
		var ok bool
		if g, ok = asBlankNodeOrIRI(gt); !ok {
			return nil, conversionErrorf("can't convert generalized quad: %v", q)
		}
	}
	st, err := ConvertNode(f, q.Subject)
	if err != nil {
		return nil, err
	}
	s, ok := asBlankNodeOrIRI(st)
	if !ok {
		return nil, conversionErrorf("can't convert generalized quad: %v", q)
	}
	pt, err := ConvertNode(f, q.Predicate)
	if err != nil {
		return nil, err
	}
	p, ok := pt.(rdf.IRI)
	if !ok {
		return nil, conversionErrorf("can't convert generalized quad: %v", q)
	}
	o, err := ConvertNode(f, q.Object)
	if err != nil {
		return nil, err
	}
	return f.NewQuad(g, s, p, o)
}

package rdfbridge

import (
	"fmt"
	"strconv"

	"github.com/ontoworks/rdfbridge/rdf"
	"github.com/ontoworks/rdfbridge/voc/xsd"
)

// A minimal foreign term model used to exercise the Convert* paths.
// It shares no state with the native graph package.

type simpleIRI string

func (s simpleIRI) String() string    { return "<" + string(s) + ">" }
func (s simpleIRI) IRIString() string { return string(s) }

type simpleLiteral struct {
	lex  string
	dt   string
	lang string
}

func (l simpleLiteral) String() string      { return strconv.Quote(l.lex) }
func (l simpleLiteral) LexicalForm() string { return l.lex }
func (l simpleLiteral) Language() string    { return l.lang }
func (l simpleLiteral) Datatype() rdf.IRI   { return simpleIRI(l.dt) }

type simpleBNode string

func (b simpleBNode) String() string          { return "_:" + string(b) }
func (b simpleBNode) UniqueReference() string { return string(b) }

type simpleTriple struct {
	s rdf.BlankNodeOrIRI
	p rdf.IRI
	o rdf.Term
}

func (t simpleTriple) Subject() rdf.BlankNodeOrIRI { return t.s }
func (t simpleTriple) Predicate() rdf.IRI          { return t.p }
func (t simpleTriple) Object() rdf.Term            { return t.o }
func (t simpleTriple) String() string {
	return fmt.Sprintf("%v %v %v .", t.s, t.p, t.o)
}

type simpleQuad struct {
	simpleTriple
	g rdf.BlankNodeOrIRI
}

func (q simpleQuad) GraphName() rdf.BlankNodeOrIRI { return q.g }

type simpleGraph struct {
	triples []rdf.Triple
}

func (g *simpleGraph) Add(t rdf.Triple) error { g.triples = append(g.triples, t); return nil }
func (g *simpleGraph) Remove(t rdf.Triple) error {
	for i, have := range g.triples {
		if rdf.SameTriple(have, t) {
			g.triples = append(g.triples[:i], g.triples[i+1:]...)
			return nil
		}
	}
	return nil
}
func (g *simpleGraph) Contains(t rdf.Triple) bool {
	for _, have := range g.triples {
		if rdf.SameTriple(have, t) {
			return true
		}
	}
	return false
}
func (g *simpleGraph) Size() int64               { return int64(len(g.triples)) }
func (g *simpleGraph) Triples() rdf.TripleReader { return rdf.NewReader(g.triples) }

type simpleFactory struct {
	blanks int
}

var _ rdf.TermFactory = (*simpleFactory)(nil)

func (f *simpleFactory) NewIRI(iri string) (rdf.IRI, error) { return simpleIRI(iri), nil }
func (f *simpleFactory) NewLiteral(lex string) rdf.Literal {
	return simpleLiteral{lex: lex, dt: xsd.String}
}
func (f *simpleFactory) NewTypedLiteral(lex string, dt rdf.IRI) rdf.Literal {
	return simpleLiteral{lex: lex, dt: dt.IRIString()}
}
func (f *simpleFactory) NewLangLiteral(lex, lang string) (rdf.Literal, error) {
	return simpleLiteral{lex: lex, lang: lang}, nil
}
func (f *simpleFactory) NewBlankNode() rdf.BlankNode {
	f.blanks++
	return simpleBNode("gen" + strconv.Itoa(f.blanks))
}
func (f *simpleFactory) NewBlankNodeNamed(label string) rdf.BlankNode {
	return simpleBNode(label)
}
func (f *simpleFactory) NewTriple(s rdf.BlankNodeOrIRI, p rdf.IRI, o rdf.Term) (rdf.Triple, error) {
	return simpleTriple{s: s, p: p, o: o}, nil
}
func (f *simpleFactory) NewQuad(g rdf.BlankNodeOrIRI, s rdf.BlankNodeOrIRI, p rdf.IRI, o rdf.Term) (rdf.Quad, error) {
	return simpleQuad{simpleTriple: simpleTriple{s: s, p: p, o: o}, g: g}, nil
}
func (f *simpleFactory) NewGraph() rdf.Graph { return &simpleGraph{} }

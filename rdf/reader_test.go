package rdf

import (
	"errors"
	"testing"
)

type testIRI string

func (s testIRI) String() string    { return "<" + string(s) + ">" }
func (s testIRI) IRIString() string { return string(s) }

type testTriple struct {
	s, p, o Term
}

func (t testTriple) Subject() BlankNodeOrIRI { return t.s }
func (t testTriple) Predicate() IRI          { return t.p.(IRI) }
func (t testTriple) Object() Term            { return t.o }
func (t testTriple) String() string          { return t.s.String() + " " + t.p.String() + " " + t.o.String() + " ." }

func triples(n int) []Triple {
	out := make([]Triple, n)
	for i := range out {
		out[i] = testTriple{s: testIRI("s"), p: testIRI("p"), o: testIRI("o")}
	}
	return out
}

func TestReaderDrains(t *testing.T) {
	n := 0
	err := EachTriple(NewReader(triples(3)), func(Triple) error {
		n++
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if n != 3 {
		t.Fatal("unexpected triple count:", n)
	}
}

func TestEachTripleStopsOnError(t *testing.T) {
	errStop := errors.New("stop")
	n := 0
	err := EachTriple(NewReader(triples(3)), func(Triple) error {
		n++
		return errStop
	})
	if !errors.Is(err, errStop) {
		t.Fatal("expected callback error, got:", err)
	}
	if n != 1 {
		t.Fatal("pass should abort at the first error, saw:", n)
	}
}

func TestSameTerm(t *testing.T) {
	if !SameTerm(testIRI("a"), testIRI("a")) {
		t.Fatal("equal IRIs should be the same term")
	}
	if SameTerm(testIRI("a"), testIRI("b")) {
		t.Fatal("different IRIs should not be the same term")
	}
	if SameTerm(testIRI("a"), nil) {
		t.Fatal("nil is not the same term as an IRI")
	}
}

package graph

import (
	"errors"
	"testing"
)

type collectHandler struct {
	BaseHandler
	triples []Triple
	quads   []Quad
}

func (h *collectHandler) Triple(t Triple) error {
	h.triples = append(h.triples, t)
	return nil
}

func (h *collectHandler) Quad(q Quad) error {
	h.quads = append(h.quads, q)
	return nil
}

func TestSendGraph(t *testing.T) {
	g := makeGraph()
	var h collectHandler
	if err := SendGraph(&h, g); err != nil {
		t.Fatal(err)
	}
	if len(h.triples) != g.Size() {
		t.Fatal("unexpected number of events:", len(h.triples))
	}
}

func TestSendStopsOnError(t *testing.T) {
	errStop := errors.New("stop")
	n := 0
	h := stopHandler{err: errStop, n: &n}
	quads := []Quad{
		MakeQuad(nil, IRI("a"), IRI("b"), IRI("c")),
		MakeQuad(nil, IRI("d"), IRI("e"), IRI("f")),
	}
	if err := SendQuads(h, quads); !errors.Is(err, errStop) {
		t.Fatal("expected the handler error, got:", err)
	}
	if n != 1 {
		t.Fatal("producer should stop at the first error, sent:", n)
	}
}

type stopHandler struct {
	BaseHandler
	err error
	n   *int
}

func (h stopHandler) Quad(q Quad) error {
	*h.n++
	return h.err
}

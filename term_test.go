package rdfbridge

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ontoworks/rdfbridge/graph"
	"github.com/ontoworks/rdfbridge/rdf"
	rdfvoc "github.com/ontoworks/rdfbridge/voc/rdf"
	"github.com/ontoworks/rdfbridge/voc/xsd"
)

func TestFromNodeIRI(t *testing.T) {
	f := New()
	term, err := f.FromNode(graph.IRI("http://example.com/a"))
	require.NoError(t, err)
	iri, ok := term.(rdf.IRI)
	require.True(t, ok)
	require.Equal(t, "http://example.com/a", iri.IRIString())
}

func TestFromNodeLangLiteral(t *testing.T) {
	f := New()
	term, err := f.FromNode(graph.Literal{Value: "hello", Lang: "en"})
	require.NoError(t, err)
	lit, ok := term.(rdf.Literal)
	require.True(t, ok)
	require.Equal(t, "hello", lit.LexicalForm())
	require.Equal(t, "en", lit.Language())
	require.Equal(t, rdfvoc.LangString, lit.Datatype().IRIString())
}

func TestFromNodePlainStringLiteral(t *testing.T) {
	f := New()
	// A datatype of exactly xsd:string stays implicit at the surface.
	for _, n := range []graph.Literal{
		{Value: "hello"},
		{Value: "hello", Type: graph.IRI(xsd.String)},
	} {
		term, err := f.FromNode(n)
		require.NoError(t, err)
		lit := term.(rdf.Literal)
		require.Equal(t, `"hello"`, lit.String())
		require.Equal(t, xsd.String, lit.Datatype().IRIString())
		require.Equal(t, "", lit.Language())
	}
}

func TestFromNodeTypedLiteral(t *testing.T) {
	f := New()
	term, err := f.FromNode(graph.Literal{Value: "1", Type: graph.IRI(xsd.Integer)})
	require.NoError(t, err)
	lit := term.(rdf.Literal)
	require.Equal(t, xsd.Integer, lit.Datatype().IRIString())
	require.Equal(t, `"1"^^<`+xsd.Integer+`>`, lit.String())
}

func TestFromNodeBlank(t *testing.T) {
	f := New()
	term, err := f.FromNode(graph.Blank("b1"))
	require.NoError(t, err)
	bn := term.(rdf.BlankNode)
	require.Equal(t, combine("b1", f.Salt()), bn.UniqueReference())

	// Same label, same factory: same identity.
	again, err := f.FromNode(graph.Blank("b1"))
	require.NoError(t, err)
	require.Equal(t, bn.UniqueReference(), again.(rdf.BlankNode).UniqueReference())

	// Same label, new factory: different identity.
	other, err := New().FromNode(graph.Blank("b1"))
	require.NoError(t, err)
	require.NotEqual(t, bn.UniqueReference(), other.(rdf.BlankNode).UniqueReference())
}

func TestFromNodeNotConcrete(t *testing.T) {
	f := New()
	for _, n := range []graph.Node{graph.Var("x"), graph.Any} {
		_, err := f.FromNode(n)
		require.Error(t, err)
		require.True(t, IsConversionError(err))
	}
}

func TestToNodeRoundTripsHandle(t *testing.T) {
	f := New()
	src := graph.Literal{Value: "hello", Lang: "en"}
	term, err := f.FromNode(src)
	require.NoError(t, err)
	n, err := ToNode(term)
	require.NoError(t, err)
	// The adapter keeps the original handle, no re-derivation.
	require.Equal(t, graph.Node(src), n)
}

func TestToNodeForeignTerms(t *testing.T) {
	cases := []struct {
		term rdf.Term
		node graph.Node
	}{
		{simpleIRI("http://example.com/a"), graph.IRI("http://example.com/a")},
		{simpleLiteral{lex: "hi", dt: xsd.String}, graph.Literal{Value: "hi"}},
		{simpleLiteral{lex: "hi", lang: "en"}, graph.Literal{Value: "hi", Lang: "en"}},
		{simpleLiteral{lex: "1", dt: xsd.Integer}, graph.Literal{Value: "1", Type: graph.IRI(xsd.Integer)}},
		{simpleBNode("ref1"), graph.Blank("ref1")},
	}
	for _, c := range cases {
		n, err := ToNode(c.term)
		require.NoError(t, err)
		require.Equal(t, c.node, n)
	}
}

func TestToNodeRejectsUnknownKind(t *testing.T) {
	_, err := ToNode(unknownTerm{})
	require.True(t, IsConversionError(err))
}

type unknownTerm struct{}

func (unknownTerm) String() string { return "?!" }

func TestConvertNodeForeignFactory(t *testing.T) {
	f := &simpleFactory{}
	term, err := ConvertNode(f, graph.Literal{Value: "hello", Lang: "en"})
	require.NoError(t, err)
	lit := term.(rdf.Literal)
	require.Equal(t, "en", lit.Language())

	term, err = ConvertNode(f, graph.Blank("b1"))
	require.NoError(t, err)
	require.Equal(t, "b1", term.(rdf.BlankNode).UniqueReference())

	_, err = ConvertNode(f, graph.Var("x"))
	require.True(t, IsConversionError(err))
}

func TestSameTermAcrossModels(t *testing.T) {
	f := New()
	iri, err := f.NewIRI("http://example.com/a")
	require.NoError(t, err)
	require.True(t, rdf.SameTerm(iri, simpleIRI("http://example.com/a")))
	require.False(t, rdf.SameTerm(iri, simpleIRI("http://example.com/b")))
	require.True(t, rdf.SameTerm(f.NewLiteral("hi"), simpleLiteral{lex: "hi", dt: xsd.String}))
}

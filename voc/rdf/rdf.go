// Package rdf contains constants of the RDF Concepts vocabulary.
package rdf

import "github.com/ontoworks/rdfbridge/voc"

func init() {
	voc.RegisterPrefix(Prefix, NS)
}

const (
	NS     = `http://www.w3.org/1999/02/22-rdf-syntax-ns#`
	Prefix = `rdf:`
)

const (
	// The datatype of language-tagged string values.
	LangString = NS + `langString`
	// The datatype of RDF literals storing fragments of HTML content.
	HTML = NS + `HTML`
	// The datatype of XML literal values.
	XMLLiteral = NS + `XMLLiteral`
)

const (
	// The subject is an instance of a class.
	Type = NS + `type`
	// Idiomatic property used for structured values.
	Value = NS + `value`
	// The subject of the subject RDF statement.
	Subject = NS + `subject`
	// The predicate of the subject RDF statement.
	Predicate = NS + `predicate`
	// The object of the subject RDF statement.
	Object = NS + `object`
	// The first item in the subject RDF list.
	First = NS + `first`
	// The rest of the subject RDF list after the first item.
	Rest = NS + `rest`
	// The empty list.
	Nil = NS + `nil`
)

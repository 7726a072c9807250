// Package xsd contains constants of the XML Schema datatypes vocabulary.
package xsd

import "github.com/ontoworks/rdfbridge/voc"

func init() {
	voc.RegisterPrefix(Prefix, NS)
}

const (
	NS     = `http://www.w3.org/2001/XMLSchema#`
	Prefix = `xsd:`
)

const (
	// String is the default datatype of plain literals.
	String  = NS + `string`
	Boolean = NS + `boolean`

	Integer = NS + `integer`
	Long    = NS + `long`
	Int     = NS + `int`
	Short   = NS + `short`
	Byte    = NS + `byte`

	Float   = NS + `float`
	Double  = NS + `double`
	Decimal = NS + `decimal`

	DateTime = NS + `dateTime`
	Date     = NS + `date`
	Time     = NS + `time`

	AnyURI = NS + `anyURI`
)

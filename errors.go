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
	"errors"
	"fmt"
)

var (
	// ErrInvalidIRI is returned by NewIRI for IRI strings containing
	// a space or angle bracket. This is a cheap syntactic guard, not
	// full IRI grammar validation.
	ErrInvalidIRI = errors.New("invalid IRI")

	// ErrInvalidLanguageTag is returned by NewLangLiteral for tags
	// containing a space.
	ErrInvalidLanguageTag = errors.New("invalid language tag")
)

// ConversionError reports that a native node, triple or quad cannot be
// represented as a concrete term, or that a strict conversion was
// attempted on generalized data.
type ConversionError struct {
	Msg   string
	Cause error
}

func (e *ConversionError) Error() string {
	if e.Cause != nil {
		return e.Msg + ": " + e.Cause.Error()
	}
	return e.Msg
}

func (e *ConversionError) Unwrap() error { return e.Cause }

func conversionErrorf(format string, args ...interface{}) *ConversionError {
	return &ConversionError{Msg: fmt.Sprintf(format, args...)}
}

// IsConversionError reports whether any error in err's chain is a
// ConversionError.
func IsConversionError(err error) bool {
	var ce *ConversionError
	return errors.As(err, &ce)
}

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
	"github.com/ontoworks/rdfbridge/clog"
	"github.com/ontoworks/rdfbridge/graph"
	"github.com/ontoworks/rdfbridge/rdf"
)

// quadBridge converts each native stream event strictly and forwards
// the result. Triple events are promoted to default-graph quads.
type quadBridge struct {
	graph.BaseHandler
	f    *Factory
	sink func(rdf.Quad) error
}

func (b *quadBridge) Triple(t graph.Triple) error {
	return b.Quad(graph.Quad{Subject: t.Subject, Predicate: t.Predicate, Object: t.Object})
}

func (b *quadBridge) Quad(q graph.Quad) error {
	cq, err := b.f.FromQuad(q)
	if err != nil {
		if clog.V(2) {
			clog.Warningf("dropping stream session on conversion failure: %v", err)
		}
		return err
	}
	return b.sink(cq)
}

// NewStreamBridge returns a native stream handler that converts each
// event strictly using the factory's salt and forwards it to sink.
// All events pushed through one bridge share the factory's identity
// session; blank nodes repeated within the stream resolve to the same
// unique reference.
func NewStreamBridge(f *Factory, sink func(rdf.Quad) error) graph.Handler {
	return &quadBridge{f: f, sink: sink}
}

// generalizedTripleBridge forwards triple events as generalized
// views; quad events are ignored.
type generalizedTripleBridge struct {
	graph.BaseHandler
	salt Salt
	sink func(rdf.TripleLike) error
}

func (b *generalizedTripleBridge) Triple(t graph.Triple) error {
	ct, err := FromTripleGeneralizedWithSalt(t, b.salt)
	if err != nil {
		return err
	}
	return b.sink(ct)
}

// NewGeneralizedTripleBridge returns a native stream handler that
// converts each triple event without kind narrowing, using one salt
// fixed for the whole session. A new session needs a new salt unless
// identity continuity across sessions is wanted.
func NewGeneralizedTripleBridge(salt Salt, sink func(rdf.TripleLike) error) graph.Handler {
	return &generalizedTripleBridge{salt: salt, sink: sink}
}

// generalizedQuadBridge forwards quad events as generalized views;
// triple events are ignored.
type generalizedQuadBridge struct {
	graph.BaseHandler
	salt Salt
	sink func(rdf.QuadLike) error
}

func (b *generalizedQuadBridge) Quad(q graph.Quad) error {
	cq, err := FromQuadGeneralizedWithSalt(q, b.salt)
	if err != nil {
		return err
	}
	return b.sink(cq)
}

// NewGeneralizedQuadBridge returns a native stream handler that
// converts each quad event without kind narrowing, using one salt
// fixed for the whole session.
func NewGeneralizedQuadBridge(salt Salt, sink func(rdf.QuadLike) error) graph.Handler {
	return &generalizedQuadBridge{salt: salt, sink: sink}
}

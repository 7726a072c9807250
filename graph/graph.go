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

package graph

// Graph is a mutable in-memory set of triples.
//
// It is not safe for concurrent mutation; callers that share a graph
// across goroutines must synchronize, exactly as with any other native
// store.
type Graph struct {
	set map[Triple]struct{}
}

// New creates an empty graph.
func New() *Graph {
	return &Graph{set: make(map[Triple]struct{})}
}

// Add inserts t and reports whether the graph changed.
func (g *Graph) Add(t Triple) bool {
	if _, ok := g.set[t]; ok {
		return false
	}
	g.set[t] = struct{}{}
	return true
}

// Remove deletes t and reports whether the graph changed.
func (g *Graph) Remove(t Triple) bool {
	if _, ok := g.set[t]; !ok {
		return false
	}
	delete(g.set, t)
	return true
}

// Has reports whether the graph contains t.
func (g *Graph) Has(t Triple) bool {
	_, ok := g.set[t]
	return ok
}

// Size returns the number of triples currently stored.
func (g *Graph) Size() int {
	return len(g.set)
}

// Find returns an iterator over all triples matching the given
// pattern. Any (or nil) in a position matches every node.
//
// The iterator holds a snapshot of the matches taken at call time;
// mutating the graph while iterating is safe and does not affect an
// already created iterator.
func (g *Graph) Find(s, p, o Node) *Iterator {
	var out []Triple
	for t := range g.set {
		if matchNode(s, t.Subject) && matchNode(p, t.Predicate) && matchNode(o, t.Object) {
			out = append(out, t)
		}
	}
	return &Iterator{triples: out}
}

func matchNode(pattern, n Node) bool {
	if pattern == nil || pattern == Any {
		return true
	}
	return pattern == n
}

// Iterator enumerates the results of a Find call.
type Iterator struct {
	triples []Triple
	cur     Triple
	i       int
}

// Next advances the iterator and reports whether a result is
// available.
func (it *Iterator) Next() bool {
	if it.i >= len(it.triples) {
		return false
	}
	it.cur = it.triples[it.i]
	it.i++
	return true
}

// Result returns the triple the iterator is positioned at.
func (it *Iterator) Result() Triple {
	return it.cur
}

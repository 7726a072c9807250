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
	"crypto/sha1"
	"encoding/hex"
	"hash"
	"sync"

	"github.com/google/uuid"
)

// Salt is a random 128-bit identifier scoping blank node identity to
// one adaptation session. Blank nodes adapted with the same salt from
// the same native label resolve to the same unique reference;
// different salts keep blank nodes from unrelated sessions apart even
// when the native labels collide.
//
// A Salt is immutable once created.
type Salt uuid.UUID

// NewSalt generates a fresh random salt.
func NewSalt() Salt {
	return Salt(uuid.New())
}

func (s Salt) String() string { return uuid.UUID(s).String() }

var hashPool = sync.Pool{
	New: func() interface{} { return sha1.New() },
}

// combine derives the unique reference for a blank node from its
// native label and a session salt. It is a pure function: same
// (label, salt) pairs always produce the same reference, and distinct
// pairs essentially never collide. The label prefix keeps references
// readable in logs and error messages.
func combine(label string, salt Salt) string {
	h := hashPool.Get().(hash.Hash)
	h.Reset()
	defer hashPool.Put(h)
	h.Write(salt[:])
	h.Write([]byte(label))
	return label + "-" + hex.EncodeToString(h.Sum(nil))
}

/*
Copyright 2025 Passbook Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package passbook

import (
	"sync"

	"github.com/dev-ashishk/passbook/ledger"
)

// Passbook represents the main struct for the passbook application. It owns
// a handle to the ledger store and serializes every operation: the store's
// read-modify-write sequences offer no versioning, so two concurrent
// deposits without this lock would race on the balance.
type Passbook struct {
	mu    sync.Mutex
	store ledger.Store
}

// NewPassbook initializes a new instance of Passbook over the provided
// store. The backing file is loaded immediately; a missing or corrupt file
// leaves the ledger empty rather than failing, since a portal with zero
// accounts is a valid starting state.
func NewPassbook(store ledger.Store) (*Passbook, error) {
	if err := store.Load(); err != nil {
		return nil, err
	}
	return &Passbook{store: store}, nil
}

// Reload re-reads the backing file, discarding the in-memory ledger. Useful
// after the document has been edited externally.
func (p *Passbook) Reload() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.store.Load()
}

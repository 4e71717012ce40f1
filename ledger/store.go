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

package ledger

import "github.com/dev-ashishk/passbook/model"

// Store is the authoritative home of the account records and the on-disk
// document mirroring them. Mutating operations persist before they return;
// a failed persist leaves the in-memory sequence as it was.
type Store interface {
	// Load replaces the in-memory ledger with the contents of the backing
	// file. A missing, unreadable or corrupt file leaves the ledger empty
	// and is not an error; the store stays usable.
	Load() error

	// Persist overwrites the backing file with the full in-memory ledger.
	Persist() error

	// FindByCredentials returns a copy of the first record matching both
	// account number and pin. Unknown numbers and wrong pins produce the
	// same INVALID_CREDENTIALS error.
	FindByCredentials(number string, pin int64) (*model.Account, error)

	// FindByAccountNumber returns a copy of the record with the given
	// account number, ignoring the pin.
	FindByAccountNumber(number string) (*model.Account, error)

	// Append adds a new record and persists. The account number must not
	// already exist in the ledger.
	Append(account model.Account) error

	// Update replaces the record whose account number matches, keeping its
	// position in the sequence, and persists.
	Update(account model.Account) error

	// Remove deletes the record with the given account number and persists.
	Remove(number string) error

	// All returns a copy of every record in insertion order.
	All() []model.Account

	// Count returns the number of records currently in the ledger.
	Count() int
}

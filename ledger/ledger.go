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

import (
	"encoding/json"
	"os"
	"slices"
	"sync"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/dev-ashishk/passbook/config"
	"github.com/dev-ashishk/passbook/internal/apierror"
	"github.com/dev-ashishk/passbook/model"
)

// FileStore keeps the account records in memory and mirrors them into a
// single JSON document. Every method takes the store mutex, so individual
// operations are safe to call concurrently; read-modify-write sequences are
// serialized one level up, by the service.
type FileStore struct {
	mu       sync.Mutex
	path     string
	pretty   bool
	accounts []model.Account
}

// NewFileStore builds a store over the data file named in the configuration.
// The ledger starts empty; call Load to pull in existing records.
func NewFileStore(conf *config.Configuration) *FileStore {
	pretty := true
	if conf.DataSource.Pretty != nil {
		pretty = *conf.DataSource.Pretty
	}
	return &FileStore{
		path:   conf.DataSource.File,
		pretty: pretty,
	}
}

func (s *FileStore) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.accounts = nil
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			logrus.WithError(err).Warnf("could not read ledger file %s, starting with an empty ledger", s.path)
		}
		return nil
	}

	var accounts []model.Account
	if err := json.Unmarshal(data, &accounts); err != nil {
		logrus.WithError(err).Warnf("ledger file %s is not valid JSON, starting with an empty ledger", s.path)
		return nil
	}
	s.accounts = accounts
	return nil
}

func (s *FileStore) Persist() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.persist()
}

// persist overwrites the backing file with the full ledger. Callers hold the
// mutex. The document is written to a temp file first and renamed into place
// so readers never observe a partial write.
func (s *FileStore) persist() error {
	out := s.accounts
	if out == nil {
		out = []model.Account{}
	}

	var data []byte
	var err error
	if s.pretty {
		data, err = json.MarshalIndent(out, "", "  ")
	} else {
		data, err = json.Marshal(out)
	}
	if err != nil {
		return apierror.NewAPIError(apierror.ErrInternalServer, "Failed to serialize ledger", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return apierror.NewAPIError(apierror.ErrStorage, "Failed to write ledger file", errors.Wrap(err, "write ledger snapshot"))
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return apierror.NewAPIError(apierror.ErrStorage, "Failed to replace ledger file", errors.Wrap(err, "replace ledger snapshot"))
	}
	return nil
}

func (s *FileStore) FindByCredentials(number string, pin int64) (*model.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.accounts {
		if s.accounts[i].Number == number && s.accounts[i].Pin == pin {
			account := s.accounts[i]
			return &account, nil
		}
	}
	// One error for both unknown number and wrong pin, so a caller cannot
	// probe which accounts exist.
	return nil, apierror.NewAPIError(apierror.ErrInvalidCredentials, "Invalid account number or pin", nil)
}

func (s *FileStore) FindByAccountNumber(number string) (*model.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.accounts {
		if s.accounts[i].Number == number {
			account := s.accounts[i]
			return &account, nil
		}
	}
	return nil, apierror.NewAPIError(apierror.ErrNotFound, "Account not found", nil)
}

func (s *FileStore) Append(account model.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.accounts {
		if s.accounts[i].Number == account.Number {
			return apierror.NewAPIError(apierror.ErrConflict, "Account number already exists", nil)
		}
	}

	s.accounts = append(s.accounts, account)
	if err := s.persist(); err != nil {
		s.accounts = s.accounts[:len(s.accounts)-1]
		return err
	}
	return nil
}

func (s *FileStore) Update(account model.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.accounts {
		if s.accounts[i].Number == account.Number {
			previous := s.accounts[i]
			s.accounts[i] = account
			if err := s.persist(); err != nil {
				s.accounts[i] = previous
				return err
			}
			return nil
		}
	}
	return apierror.NewAPIError(apierror.ErrNotFound, "Account not found", nil)
}

func (s *FileStore) Remove(number string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.accounts {
		if s.accounts[i].Number == number {
			previous := slices.Clone(s.accounts)
			s.accounts = slices.Delete(s.accounts, i, i+1)
			if err := s.persist(); err != nil {
				s.accounts = previous
				return err
			}
			return nil
		}
	}
	return apierror.NewAPIError(apierror.ErrNotFound, "Account not found", nil)
}

func (s *FileStore) All() []model.Account {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.accounts)
}

func (s *FileStore) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.accounts)
}

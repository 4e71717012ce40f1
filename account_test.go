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
	"path/filepath"
	"testing"
	"unicode"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dev-ashishk/passbook/config"
	"github.com/dev-ashishk/passbook/internal/apierror"
	"github.com/dev-ashishk/passbook/ledger"
	"github.com/dev-ashishk/passbook/model"
)

func newTestPassbook(t *testing.T) (*Passbook, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data.json")
	store := ledger.NewFileStore(&config.Configuration{
		DataSource: config.DataSourceConfig{File: path},
	})
	p, err := NewPassbook(store)
	require.NoError(t, err)
	return p, path
}

func newCreateRequest() model.CreateAccount {
	return model.CreateAccount{
		Name:  gofakeit.Name(),
		Email: gofakeit.Email(),
		Age:   gofakeit.Number(18, 90),
		Phone: "5551234567",
		Pin:   "1234",
	}
}

func TestCreateAccount(t *testing.T) {
	p, _ := newTestPassbook(t)

	req := newCreateRequest()
	account, err := p.CreateAccount(req)
	require.NoError(t, err)

	assert.Equal(t, req.Name, account.Name)
	assert.Equal(t, req.Email, account.Email)
	assert.Equal(t, req.Age, account.Age)
	assert.Equal(t, int64(5551234567), account.Phone)
	assert.Equal(t, int64(1234), account.Pin)
	assert.Equal(t, int64(0), account.Balance)

	assert.Len(t, account.Number, model.AccountNumberLength)
	letters, digits := 0, 0
	for _, r := range account.Number {
		if unicode.IsLetter(r) {
			letters++
		} else if unicode.IsDigit(r) {
			digits++
		}
	}
	assert.Equal(t, 4, letters)
	assert.Equal(t, 8, digits)
}

func TestCreateAccountNumbersAreUnique(t *testing.T) {
	p, _ := newTestPassbook(t)

	seen := make(map[string]bool)
	for i := 0; i < 25; i++ {
		account, err := p.CreateAccount(newCreateRequest())
		require.NoError(t, err)
		assert.False(t, seen[account.Number], "duplicate account number %q", account.Number)
		seen[account.Number] = true
	}
}

func TestCreateAccountValidation(t *testing.T) {
	p, _ := newTestPassbook(t)

	underage := newCreateRequest()
	underage.Age = 17
	_, err := p.CreateAccount(underage)
	assert.True(t, apierror.IsCode(err, apierror.ErrInvalidInput))

	adult := newCreateRequest()
	adult.Age = 18
	_, err = p.CreateAccount(adult)
	assert.NoError(t, err)

	badPhone := newCreateRequest()
	badPhone.Phone = "12345"
	_, err = p.CreateAccount(badPhone)
	assert.True(t, apierror.IsCode(err, apierror.ErrInvalidInput))

	badPin := newCreateRequest()
	badPin.Pin = "12"
	_, err = p.CreateAccount(badPin)
	assert.True(t, apierror.IsCode(err, apierror.ErrInvalidInput))
}

func TestAuthenticateUniformError(t *testing.T) {
	p, _ := newTestPassbook(t)
	account, err := p.CreateAccount(newCreateRequest())
	require.NoError(t, err)

	_, err = p.Authenticate(account.Number, "1234")
	assert.NoError(t, err)

	_, wrongPin := p.Authenticate(account.Number, "9999")
	_, unknown := p.Authenticate("nosuchnumber", "1234")
	_, garbled := p.Authenticate(account.Number, "not-a-pin")

	assert.Equal(t, apierror.ErrInvalidCredentials, apierror.CodeOf(wrongPin))
	assert.Equal(t, wrongPin.Error(), unknown.Error())
	assert.Equal(t, wrongPin.Error(), garbled.Error())
}

func TestDepositLimits(t *testing.T) {
	p, _ := newTestPassbook(t)
	account, err := p.CreateAccount(newCreateRequest())
	require.NoError(t, err)

	_, err = p.Deposit(account.Number, "1234", 10_001)
	assert.True(t, apierror.IsCode(err, apierror.ErrInvalidInput))

	_, err = p.Deposit(account.Number, "1234", 0)
	assert.True(t, apierror.IsCode(err, apierror.ErrInvalidInput))

	_, err = p.Deposit(account.Number, "1234", -5)
	assert.True(t, apierror.IsCode(err, apierror.ErrInvalidInput))

	updated, err := p.Deposit(account.Number, "1234", 10_000)
	require.NoError(t, err)
	assert.Equal(t, int64(10_000), updated.Balance)
}

func TestWithdraw(t *testing.T) {
	p, _ := newTestPassbook(t)
	account, err := p.CreateAccount(newCreateRequest())
	require.NoError(t, err)

	_, err = p.Deposit(account.Number, "1234", 500)
	require.NoError(t, err)

	_, err = p.Withdraw(account.Number, "1234", 600)
	assert.True(t, apierror.IsCode(err, apierror.ErrInsufficientBalance))

	// The failed withdrawal left the balance untouched.
	view, err := p.ViewAccount(account.Number, "1234")
	require.NoError(t, err)
	assert.Equal(t, int64(500), view.Balance)

	updated, err := p.Withdraw(account.Number, "1234", 500)
	require.NoError(t, err)
	assert.Equal(t, int64(0), updated.Balance)
}

func TestUpdateAccountPartial(t *testing.T) {
	p, _ := newTestPassbook(t)
	account, err := p.CreateAccount(newCreateRequest())
	require.NoError(t, err)
	_, err = p.Deposit(account.Number, "1234", 500)
	require.NoError(t, err)

	phone := "5559876543"
	updated, err := p.UpdateAccount(account.Number, "1234", model.UpdateAccount{Phone: &phone})
	require.NoError(t, err)

	assert.Equal(t, int64(5559876543), updated.Phone)
	assert.Equal(t, account.Name, updated.Name)
	assert.Equal(t, account.Email, updated.Email)
	assert.Equal(t, account.Number, updated.Number)
	assert.Equal(t, int64(500), updated.Balance)

	age := 17
	_, err = p.UpdateAccount(account.Number, "1234", model.UpdateAccount{Age: &age})
	assert.True(t, apierror.IsCode(err, apierror.ErrInvalidInput))

	// A pin change takes effect immediately.
	pin := "4321"
	_, err = p.UpdateAccount(account.Number, "1234", model.UpdateAccount{Pin: &pin})
	require.NoError(t, err)
	_, err = p.Authenticate(account.Number, "1234")
	assert.True(t, apierror.IsCode(err, apierror.ErrInvalidCredentials))
	_, err = p.Authenticate(account.Number, "4321")
	assert.NoError(t, err)
}

func TestDeleteAccount(t *testing.T) {
	p, _ := newTestPassbook(t)
	account, err := p.CreateAccount(newCreateRequest())
	require.NoError(t, err)

	require.NoError(t, p.DeleteAccount(account.Number, "1234"))

	_, err = p.Authenticate(account.Number, "1234")
	assert.True(t, apierror.IsCode(err, apierror.ErrInvalidCredentials))

	err = p.DeleteAccount(account.Number, "1234")
	assert.True(t, apierror.IsCode(err, apierror.ErrInvalidCredentials))
}

// TestAccountLifecycle walks the full journey: open, deposit, bounce an
// over-balance withdrawal, change the phone, close, and fail to sign in.
func TestAccountLifecycle(t *testing.T) {
	p, _ := newTestPassbook(t)

	account, err := p.CreateAccount(model.CreateAccount{
		Name:  "Ana",
		Email: "a@x.com",
		Age:   30,
		Phone: "5551234567",
		Pin:   "1234",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(0), account.Balance)

	deposited, err := p.Deposit(account.Number, "1234", 500)
	require.NoError(t, err)
	assert.Equal(t, int64(500), deposited.Balance)

	_, err = p.Withdraw(account.Number, "1234", 600)
	assert.True(t, apierror.IsCode(err, apierror.ErrInsufficientBalance))
	view, err := p.ViewAccount(account.Number, "1234")
	require.NoError(t, err)
	assert.Equal(t, int64(500), view.Balance)

	phone := "5559876543"
	updated, err := p.UpdateAccount(account.Number, "1234", model.UpdateAccount{Phone: &phone})
	require.NoError(t, err)
	assert.Equal(t, int64(5559876543), updated.Phone)
	assert.Equal(t, account.Number, updated.Number)
	assert.Equal(t, int64(500), updated.Balance)

	require.NoError(t, p.DeleteAccount(account.Number, "1234"))
	_, err = p.Authenticate(account.Number, "1234")
	assert.True(t, apierror.IsCode(err, apierror.ErrInvalidCredentials))
}

func TestPersistLoadRoundTrip(t *testing.T) {
	p, path := newTestPassbook(t)

	first, err := p.CreateAccount(newCreateRequest())
	require.NoError(t, err)
	second, err := p.CreateAccount(newCreateRequest())
	require.NoError(t, err)
	_, err = p.Deposit(first.Number, "1234", 750)
	require.NoError(t, err)

	// A second service over the same file sees the identical ledger.
	store := ledger.NewFileStore(&config.Configuration{
		DataSource: config.DataSourceConfig{File: path},
	})
	reopened, err := NewPassbook(store)
	require.NoError(t, err)

	views := reopened.ListAccounts()
	require.Len(t, views, 2)
	assert.Equal(t, first.Number, views[0].Number)
	assert.Equal(t, int64(750), views[0].Balance)
	assert.Equal(t, second.Number, views[1].Number)
	assert.Equal(t, int64(0), views[1].Balance)

	restored, err := reopened.Authenticate(first.Number, "1234")
	require.NoError(t, err)
	assert.Equal(t, first.Name, restored.Name)
	assert.Equal(t, first.Email, restored.Email)
	assert.Equal(t, first.Phone, restored.Phone)
}

func TestViewAccountOmitsPin(t *testing.T) {
	p, _ := newTestPassbook(t)
	account, err := p.CreateAccount(newCreateRequest())
	require.NoError(t, err)

	view, err := p.ViewAccount(account.Number, "1234")
	require.NoError(t, err)
	assert.Equal(t, account.Name, view.Name)
	assert.Equal(t, account.Number, view.Number)
}

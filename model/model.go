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
package model

import (
	"math/rand"
	"regexp"
	"strconv"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// MaxTransactionAmount is the per-operation cap on deposits and withdrawals.
const MaxTransactionAmount = 10_000

const (
	accountNumberLetters = 4
	accountNumberDigits  = 8

	// AccountNumberLength is the total length of a generated account number.
	AccountNumberLength = accountNumberLetters + accountNumberDigits
)

const (
	letterChars = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"
	digitChars  = "0123456789"
)

// Phone numbers and pins travel as JSON numbers on the wire, so a leading
// zero would not survive a round trip; the patterns reject it up front.
var (
	phonePattern = regexp.MustCompile(`^[1-9][0-9]{9}$`)
	pinPattern   = regexp.MustCompile(`^[1-9][0-9]{3}$`)
)

// GenerateAccountNumber draws 4 random letters (mixed case) and 8 random
// digits, then shuffles the 12 characters. Uniqueness against the ledger is
// the caller's job; this only produces a candidate.
func GenerateAccountNumber() string {
	chars := make([]byte, 0, AccountNumberLength)
	for i := 0; i < accountNumberLetters; i++ {
		chars = append(chars, letterChars[rand.Intn(len(letterChars))])
	}
	for i := 0; i < accountNumberDigits; i++ {
		chars = append(chars, digitChars[rand.Intn(len(digitChars))])
	}
	rand.Shuffle(len(chars), func(i, j int) {
		chars[i], chars[j] = chars[j], chars[i]
	})
	return string(chars)
}

// ParseDigits converts a validated digit string to its integer value.
func ParseDigits(digits string) int64 {
	value, _ := strconv.ParseInt(digits, 10, 64)
	return value
}

// CreateAccount carries the inputs for opening a new account. Phone and pin
// arrive as digit strings so their length can be checked before the integer
// conversion the wire format requires.
type CreateAccount struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Age   int    `json:"age"`
	Phone string `json:"phone"`
	Pin   string `json:"pin"`
}

func (a *CreateAccount) ValidateCreateAccount() error {
	return validation.ValidateStruct(a,
		validation.Field(&a.Name, validation.Required),
		validation.Field(&a.Email, validation.Required),
		validation.Field(&a.Age, validation.Required, validation.Min(18).Error("account holders must be at least 18")),
		validation.Field(&a.Phone, validation.Required, validation.Match(phonePattern).Error("phone must be a 10 digit number")),
		validation.Field(&a.Pin, validation.Required, validation.Match(pinPattern).Error("pin must be a 4 digit number")),
	)
}

// UpdateAccount carries a partial update: a nil field (or an empty value)
// keeps the stored value, a present value replaces it. Account number and
// balance are not part of the structure on purpose.
type UpdateAccount struct {
	Name  *string `json:"name,omitempty"`
	Email *string `json:"email,omitempty"`
	Age   *int    `json:"age,omitempty"`
	Phone *string `json:"phone,omitempty"`
	Pin   *string `json:"pin,omitempty"`
}

// ValidateUpdateAccount applies the creation rules to the fields that are
// actually supplied; absent and empty fields are skipped.
func (u *UpdateAccount) ValidateUpdateAccount() error {
	return validation.ValidateStruct(u,
		validation.Field(&u.Age, validation.Min(18).Error("account holders must be at least 18")),
		validation.Field(&u.Phone, validation.Match(phonePattern).Error("phone must be a 10 digit number")),
		validation.Field(&u.Pin, validation.Match(pinPattern).Error("pin must be a 4 digit number")),
	)
}

// Apply merges the supplied fields into the account. Callers must validate
// the update first.
func (u *UpdateAccount) Apply(account *Account) {
	if u.Name != nil && *u.Name != "" {
		account.Name = *u.Name
	}
	if u.Email != nil && *u.Email != "" {
		account.Email = *u.Email
	}
	if u.Age != nil && *u.Age != 0 {
		account.Age = *u.Age
	}
	if u.Phone != nil && *u.Phone != "" {
		account.Phone = ParseDigits(*u.Phone)
	}
	if u.Pin != nil && *u.Pin != "" {
		account.Pin = ParseDigits(*u.Pin)
	}
}

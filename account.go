package passbook

import (
	"strconv"

	"github.com/dev-ashishk/passbook/internal/apierror"
	"github.com/dev-ashishk/passbook/model"
)

// CreateAccount validates the request, generates a unique account number and
// appends the new record with a zero balance. The returned record carries
// the account number; it is the only way the holder can reach the account
// later, so callers must surface it.
func (p *Passbook) CreateAccount(req model.CreateAccount) (model.Account, error) {
	if err := req.ValidateCreateAccount(); err != nil {
		return model.Account{}, apierror.NewAPIError(apierror.ErrInvalidInput, err.Error(), err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	// Collisions are astronomically unlikely, but uniqueness is a contract,
	// not an attempt: regenerate until the number is unused.
	number := model.GenerateAccountNumber()
	for {
		if _, err := p.store.FindByAccountNumber(number); err != nil {
			break
		}
		number = model.GenerateAccountNumber()
	}

	account := model.Account{
		Name:    req.Name,
		Email:   req.Email,
		Age:     req.Age,
		Phone:   model.ParseDigits(req.Phone),
		Pin:     model.ParseDigits(req.Pin),
		Number:  number,
		Balance: 0,
	}
	if err := p.store.Append(account); err != nil {
		return model.Account{}, err
	}
	return account, nil
}

// Authenticate resolves an account number and pin to the matching record.
// Unknown numbers and wrong pins fail identically.
func (p *Passbook) Authenticate(number, pin string) (*model.Account, error) {
	return p.authenticate(number, pin)
}

// Deposit credits the account after authenticating. Amounts must be
// positive and within the per-operation cap.
func (p *Passbook) Deposit(number, pin string, amount int64) (model.Account, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	account, err := p.authenticate(number, pin)
	if err != nil {
		return model.Account{}, err
	}
	if err := validateAmount(amount); err != nil {
		return model.Account{}, err
	}

	account.Balance += amount
	if err := p.store.Update(*account); err != nil {
		return model.Account{}, err
	}
	return *account, nil
}

// Withdraw debits the account after authenticating. The balance can never
// go negative; a failed withdrawal leaves it untouched.
func (p *Passbook) Withdraw(number, pin string, amount int64) (model.Account, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	account, err := p.authenticate(number, pin)
	if err != nil {
		return model.Account{}, err
	}
	if err := validateAmount(amount); err != nil {
		return model.Account{}, err
	}
	if amount > account.Balance {
		return model.Account{}, apierror.NewAPIError(apierror.ErrInsufficientBalance, "Insufficient balance", nil)
	}

	account.Balance -= amount
	if err := p.store.Update(*account); err != nil {
		return model.Account{}, err
	}
	return *account, nil
}

// ViewAccount returns a read-only snapshot of the account. The pin is never
// part of the snapshot.
func (p *Passbook) ViewAccount(number, pin string) (model.AccountView, error) {
	account, err := p.authenticate(number, pin)
	if err != nil {
		return model.AccountView{}, err
	}
	return account.View(), nil
}

// UpdateAccount merges the supplied fields into the account after
// authenticating. Absent and empty fields keep their stored values; the
// account number and balance cannot be changed through this operation.
func (p *Passbook) UpdateAccount(number, pin string, req model.UpdateAccount) (model.Account, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	account, err := p.authenticate(number, pin)
	if err != nil {
		return model.Account{}, err
	}
	if err := req.ValidateUpdateAccount(); err != nil {
		return model.Account{}, apierror.NewAPIError(apierror.ErrInvalidInput, err.Error(), err)
	}

	req.Apply(account)
	if err := p.store.Update(*account); err != nil {
		return model.Account{}, err
	}
	return *account, nil
}

// DeleteAccount removes the record from the ledger after authenticating.
// The number becomes available to future account generation again; records
// are removed physically, not tombstoned.
func (p *Passbook) DeleteAccount(number, pin string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	account, err := p.authenticate(number, pin)
	if err != nil {
		return err
	}
	return p.store.Remove(account.Number)
}

// ListAccounts returns caller-facing snapshots of every record, in
// insertion order.
func (p *Passbook) ListAccounts() []model.AccountView {
	accounts := p.store.All()
	views := make([]model.AccountView, 0, len(accounts))
	for i := range accounts {
		views = append(views, accounts[i].View())
	}
	return views
}

// authenticate parses the pin and delegates to the store's credential scan.
// A non-numeric pin gets the same uniform error as a wrong one.
func (p *Passbook) authenticate(number, pin string) (*model.Account, error) {
	value, err := strconv.ParseInt(pin, 10, 64)
	if err != nil {
		return nil, apierror.NewAPIError(apierror.ErrInvalidCredentials, "Invalid account number or pin", nil)
	}
	return p.store.FindByCredentials(number, value)
}

func validateAmount(amount int64) error {
	if amount <= 0 {
		return apierror.NewAPIError(apierror.ErrInvalidInput, "Amount must be greater than zero", nil)
	}
	if amount > model.MaxTransactionAmount {
		return apierror.NewAPIError(apierror.ErrInvalidInput, "Amount is greater than 10,000", nil)
	}
	return nil
}

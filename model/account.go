package model

// Account is the single entity the ledger manages. Phone and pin are kept as
// integers because the persisted document stores them as JSON numbers; the
// "AccountNo." key (trailing period included) is the wire-compatible name the
// existing stored data uses and must not change.
type Account struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Age     int    `json:"age"`
	Phone   int64  `json:"phone"`
	Pin     int64  `json:"pin"`
	Number  string `json:"AccountNo."`
	Balance int64  `json:"balance"`
}

// AccountView is the read-only snapshot returned to callers. The pin never
// leaves the ledger.
type AccountView struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Age     int    `json:"age"`
	Phone   int64  `json:"phone"`
	Number  string `json:"AccountNo."`
	Balance int64  `json:"balance"`
}

// View returns the caller-facing snapshot of an account.
func (a *Account) View() AccountView {
	return AccountView{
		Name:    a.Name,
		Email:   a.Email,
		Age:     a.Age,
		Phone:   a.Phone,
		Number:  a.Number,
		Balance: a.Balance,
	}
}

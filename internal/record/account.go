package record

import "fmt"

// BankAccount holds a balance that never goes negative.
type BankAccount struct {
	holder  string
	balance int64
}

type accountFields struct {
	Holder  string `json:"holder"`
	Balance int64  `json:"balance" validate:"gte=0"`
}

// NewBankAccount opens an account for holder with an opening balance.
// The holder may be empty (the encapsulation exercise only tracks a balance).
func NewBankAccount(holder string, balance int64) (*BankAccount, error) {
	return construct("bank account", accountFields{Holder: holder, Balance: balance},
		func(f accountFields) *BankAccount {
			return &BankAccount{holder: f.Holder, balance: f.Balance}
		})
}

// Deposit adds amount to the balance. Non-positive amounts are refused with
// ErrNonPositiveAmount, and amounts the balance cannot hold with ErrOverflow.
func (a *BankAccount) Deposit(amount int64) error {
	if amount <= 0 {
		return ErrNonPositiveAmount
	}
	if !fits(a.balance, amount) {
		return ErrOverflow
	}
	a.balance += amount
	return nil
}

// Withdraw takes amount out of the balance. It is refused with
// ErrInsufficientBalance when amount exceeds the balance and with
// ErrNonPositiveAmount when amount is not positive.
func (a *BankAccount) Withdraw(amount int64) error {
	if amount <= 0 {
		return ErrNonPositiveAmount
	}
	if amount > a.balance {
		return ErrInsufficientBalance
	}
	a.balance -= amount
	return nil
}

// Holder returns the account holder's name, which may be empty.
func (a *BankAccount) Holder() string { return a.holder }

// Balance returns the current balance.
func (a *BankAccount) Balance() int64 { return a.balance }

// String reports the balance the way a statement line would.
func (a *BankAccount) String() string {
	if a.holder == "" {
		return fmt.Sprintf("available balance is %d$", a.balance)
	}
	return fmt.Sprintf("%s: available balance is %d$", a.holder, a.balance)
}

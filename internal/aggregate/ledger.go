package aggregate

import (
	"sort"

	"github.com/holiman/uint256"

	"stakedrop/internal/model"
)

// Ledger accumulates stake per delegator address under a whale cap.
type Ledger struct {
	whaleCap *uint256.Int
	accounts map[string]*model.Account
}

func NewLedger(whaleCap *uint256.Int) *Ledger {
	return &Ledger{
		whaleCap: new(uint256.Int).Set(whaleCap),
		accounts: make(map[string]*model.Account),
	}
}

// Credit adds amount to the address's account and reports whether the cap was applied.
// A new account takes the amount unchanged; later credits clamp the sum to the cap.
func (l *Ledger) Credit(address string, amount *uint256.Int) bool {
	acc, ok := l.accounts[address]
	if !ok {
		l.accounts[address] = &model.Account{
			Address: address,
			Amount:  new(uint256.Int).Set(amount),
		}
		return false
	}

	if _, overflow := acc.Amount.AddOverflow(acc.Amount, amount); overflow || acc.Amount.Gt(l.whaleCap) {
		acc.Amount.Set(l.whaleCap)
		return true
	}
	return false
}

// Get returns a copy of the account for address.
func (l *Ledger) Get(address string) (model.Account, bool) {
	acc, ok := l.accounts[address]
	if !ok {
		return model.Account{}, false
	}
	return model.Account{Address: acc.Address, Amount: acc.Amount.Clone()}, true
}

func (l *Ledger) Len() int {
	return len(l.accounts)
}

// Accounts returns copies of all accounts sorted by address.
func (l *Ledger) Accounts() []model.Account {
	addresses := make([]string, 0, len(l.accounts))
	for address := range l.accounts {
		addresses = append(addresses, address)
	}
	sort.Strings(addresses)

	out := make([]model.Account, 0, len(addresses))
	for _, address := range addresses {
		acc := l.accounts[address]
		out = append(out, model.Account{Address: acc.Address, Amount: acc.Amount.Clone()})
	}
	return out
}

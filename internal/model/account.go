package model

import "github.com/holiman/uint256"

// Account is the running stake total for one delegator address.
type Account struct {
	Address string       `json:"address"`
	Amount  *uint256.Int `json:"amount"`
}

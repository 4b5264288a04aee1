package model

import "github.com/holiman/uint256"

// Allocation is one row of the drop report.
type Allocation struct {
	Address string
	Amount  *uint256.Int
}

// RunTotals summarizes the emitted allocations.
type RunTotals struct {
	Count  int
	Amount *uint256.Int
}

package report

import (
	"errors"
	"fmt"

	"github.com/holiman/uint256"
	"go.uber.org/zap"

	"stakedrop/internal/model"
	"stakedrop/internal/storage"
)

var errTotalOverflow = errors.New("total drop amount overflows 256 bits")

// Config controls eligibility.
type Config struct {
	MinStakedAmount *uint256.Int
}

// Reporter filters accounts by the minimum stake and writes the drop report.
type Reporter struct {
	cfg    Config
	store  storage.Storage
	logger *zap.Logger
}

func NewReporter(cfg Config, store storage.Storage, logger *zap.Logger) *Reporter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Reporter{
		cfg:    cfg,
		store:  store,
		logger: logger,
	}
}

// Run writes every eligible account to the store and returns the totals.
func (r *Reporter) Run(accounts []model.Account) (model.RunTotals, error) {
	if r.store == nil {
		return model.RunTotals{}, fmt.Errorf("store is nil")
	}
	if r.cfg.MinStakedAmount == nil {
		return model.RunTotals{}, fmt.Errorf("min staked amount is required")
	}

	rows, totals, err := Select(accounts, r.cfg.MinStakedAmount)
	if err != nil {
		return model.RunTotals{}, err
	}

	if err := r.store.PutAllocations(rows); err != nil {
		return model.RunTotals{}, fmt.Errorf("write report: %w", err)
	}

	r.logger.Info("report written",
		zap.Int("accounts", len(accounts)),
		zap.Int("eligible", totals.Count),
		zap.String("total_amount", totals.Amount.Dec()),
	)

	return totals, nil
}

// Select keeps accounts whose amount is strictly greater than minStaked.
// An account holding exactly minStaked is not eligible.
func Select(accounts []model.Account, minStaked *uint256.Int) ([]model.Allocation, model.RunTotals, error) {
	rows := make([]model.Allocation, 0, len(accounts))
	totals := model.RunTotals{Amount: new(uint256.Int)}

	for _, acc := range accounts {
		if acc.Amount == nil || !acc.Amount.Gt(minStaked) {
			continue
		}
		if _, overflow := totals.Amount.AddOverflow(totals.Amount, acc.Amount); overflow {
			return nil, model.RunTotals{}, errTotalOverflow
		}
		totals.Count++
		rows = append(rows, model.Allocation{Address: acc.Address, Amount: acc.Amount.Clone()})
	}

	return rows, totals, nil
}

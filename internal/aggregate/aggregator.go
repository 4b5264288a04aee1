package aggregate

import (
	"fmt"

	"github.com/holiman/uint256"
	"go.uber.org/zap"

	"stakedrop/internal/export"
	"stakedrop/internal/model"
)

// Config controls aggregation behavior.
type Config struct {
	WhaleCap *uint256.Int
}

// Aggregator sums delegated shares per delegator address.
type Aggregator struct {
	cfg    Config
	logger *zap.Logger
}

func NewAggregator(cfg Config, logger *zap.Logger) *Aggregator {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Aggregator{
		cfg:    cfg,
		logger: logger,
	}
}

// Run builds the ledger from the export's delegation list.
func (a *Aggregator) Run(doc *export.Document) (*Ledger, error) {
	if doc == nil {
		return nil, fmt.Errorf("document is nil")
	}
	if a.cfg.WhaleCap == nil {
		return nil, fmt.Errorf("whale cap is required")
	}

	delegations, err := ExtractDelegations(doc)
	if err != nil {
		return nil, err
	}

	ledger := NewLedger(a.cfg.WhaleCap)
	var clamped int
	for _, delegation := range delegations {
		amount, err := ParseShares(delegation.Shares)
		if err != nil {
			return nil, &model.SchemaError{
				Index:  delegation.Index,
				Field:  "shares",
				Reason: fmt.Sprintf("has invalid integer part in %q", delegation.Shares),
				Err:    err,
			}
		}

		if ledger.Credit(delegation.DelegatorAddress, amount) {
			clamped++
			a.logger.Debug("whale cap applied",
				zap.String("address", delegation.DelegatorAddress),
				zap.String("whale_cap", a.cfg.WhaleCap.Dec()),
			)
		}
	}

	a.logger.Info("aggregate complete",
		zap.Int("delegations", len(delegations)),
		zap.Int("accounts", ledger.Len()),
		zap.Int("clamped", clamped),
	)

	return ledger, nil
}

package aggregate

import (
	"strings"

	"github.com/holiman/uint256"

	"stakedrop/internal/export"
	"stakedrop/internal/model"
)

var delegationsPath = []string{"app_state", "staking", "delegations"}

// ExtractDelegations reads app_state.staking.delegations in document order.
func ExtractDelegations(doc *export.Document) ([]model.Delegation, error) {
	raw, ok := doc.Lookup(delegationsPath...)
	if !ok {
		return nil, &model.SchemaError{Index: -1, Field: "delegations", Reason: "missing or malformed delegations list"}
	}
	items, ok := raw.([]interface{})
	if !ok {
		return nil, &model.SchemaError{Index: -1, Field: "delegations", Reason: "missing or malformed delegations list"}
	}

	delegations := make([]model.Delegation, 0, len(items))
	for i, item := range items {
		obj, ok := item.(map[string]interface{})
		if !ok {
			return nil, &model.SchemaError{Index: i, Field: "record", Reason: "is not an object"}
		}
		address, err := stringField(obj, i, "delegator_address")
		if err != nil {
			return nil, err
		}
		shares, err := stringField(obj, i, "shares")
		if err != nil {
			return nil, err
		}
		delegations = append(delegations, model.Delegation{
			Index:            i,
			DelegatorAddress: address,
			Shares:           shares,
		})
	}
	return delegations, nil
}

func stringField(obj map[string]interface{}, index int, field string) (string, error) {
	val, ok := obj[field]
	if !ok {
		return "", &model.SchemaError{Index: index, Field: field, Reason: "is missing"}
	}
	str, ok := val.(string)
	if !ok {
		return "", &model.SchemaError{Index: index, Field: field, Reason: "is not a string"}
	}
	return str, nil
}

// ParseShares truncates a decimal shares string to its integer part.
// "12345.999" yields 12345; a value without a '.' is parsed whole.
func ParseShares(shares string) (*uint256.Int, error) {
	integer, _, _ := strings.Cut(shares, ".")
	return uint256.FromDecimal(integer)
}

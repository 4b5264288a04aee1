package aggregate

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stakedrop/internal/export"
	"stakedrop/internal/model"
)

func TestParseSharesTruncates(t *testing.T) {
	cases := []struct {
		shares string
		want   string
	}{
		{shares: "12345.999", want: "12345"},
		{shares: "500", want: "500"},
		{shares: "3000000.500000000000000000", want: "3000000"},
		{shares: "0.999999", want: "0"},
		{shares: "1.2.3", want: "1"},
		{shares: "340282366920938463463374607431768211456.0", want: "340282366920938463463374607431768211456"},
	}

	for _, tc := range cases {
		got, err := ParseShares(tc.shares)
		require.NoError(t, err, tc.shares)
		assert.Equal(t, tc.want, got.Dec(), tc.shares)
	}
}

func TestParseSharesInvalid(t *testing.T) {
	for _, shares := range []string{"", ".5", "-5.0", "abc", "1e6", " 12"} {
		_, err := ParseShares(shares)
		assert.Error(t, err, "shares %q", shares)
	}
}

func TestExtractDelegations(t *testing.T) {
	doc := mustParse(t, `{"app_state": {"staking": {"delegations": [
		{"delegator_address": "juno1a", "validator_address": "junovaloper1x", "shares": "10.5"},
		{"delegator_address": "juno1b", "validator_address": "junovaloper1y", "shares": "7"}
	]}}}`)

	got, err := ExtractDelegations(doc)
	require.NoError(t, err)

	want := []model.Delegation{
		{Index: 0, DelegatorAddress: "juno1a", Shares: "10.5"},
		{Index: 1, DelegatorAddress: "juno1b", Shares: "7"},
	}
	assert.Equal(t, want, got)
}

func TestExtractDelegationsMissingList(t *testing.T) {
	inputs := map[string]string{
		"no staking":    `{"app_state": {"bank": {}}}`,
		"not an array":  `{"app_state": {"staking": {"delegations": {"juno1a": "1"}}}}`,
		"null list":     `{"app_state": {"staking": {"delegations": null}}}`,
		"root is array": `[]`,
	}

	for name, input := range inputs {
		t.Run(name, func(t *testing.T) {
			_, err := ExtractDelegations(mustParse(t, input))

			var schemaErr *model.SchemaError
			require.True(t, errors.As(err, &schemaErr))
			assert.Equal(t, -1, schemaErr.Index)
			assert.Contains(t, schemaErr.Error(), "missing or malformed delegations list")
		})
	}
}

func TestExtractDelegationsBadRecord(t *testing.T) {
	cases := []struct {
		name  string
		input string
		index int
		field string
	}{
		{
			name:  "missing delegator_address",
			input: `{"app_state": {"staking": {"delegations": [{"delegator_address": "juno1a", "shares": "1"}, {"shares": "1"}]}}}`,
			index: 1,
			field: "delegator_address",
		},
		{
			name:  "numeric shares",
			input: `{"app_state": {"staking": {"delegations": [{"delegator_address": "juno1a", "shares": 1}]}}}`,
			index: 0,
			field: "shares",
		},
		{
			name:  "record is a string",
			input: `{"app_state": {"staking": {"delegations": ["juno1a"]}}}`,
			index: 0,
			field: "record",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ExtractDelegations(mustParse(t, tc.input))

			var schemaErr *model.SchemaError
			require.True(t, errors.As(err, &schemaErr))
			assert.Equal(t, tc.index, schemaErr.Index)
			assert.Equal(t, tc.field, schemaErr.Field)
		})
	}
}

func mustParse(t *testing.T, input string) *export.Document {
	t.Helper()
	doc, err := export.Parse(input)
	require.NoError(t, err)
	return doc
}

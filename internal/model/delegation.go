package model

// Delegation is a single entry of app_state.staking.delegations.
type Delegation struct {
	Index            int    `json:"-"`
	DelegatorAddress string `json:"delegator_address"`
	Shares           string `json:"shares"`
}

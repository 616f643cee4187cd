package thor

// Account is the state of an account at some revision.
// Balance and Energy are hex encoded big integers as served by thor nodes.
type Account struct {
	Balance string `json:"balance"`
	Energy  string `json:"energy"`
	HasCode bool   `json:"hasCode"`
}

// Code is the deployed byte code of a contract account.
type Code struct {
	Code string `json:"code"`
}

// Storage is the value stored in one slot of an account.
type Storage struct {
	Value string `json:"value"`
}

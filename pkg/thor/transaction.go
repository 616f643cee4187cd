package thor

import "encoding/json"

// Clause is one value-transfer or contract-call unit in wire form.
// To is nil for contract creation, Value is a canonical decimal string.
type Clause struct {
	To    *string `json:"to"`
	Value string  `json:"value"`
	Data  string  `json:"data"`
}

// TxClause is a clause submitted for signing.
type TxClause struct {
	Clause
	Comment string          `json:"comment,omitempty"`
	ABI     json.RawMessage `json:"abi,omitempty"`
}

// TxMessage is the ordered, non-empty clause list of a signing request.
type TxMessage []TxClause

// TxMeta locates a transaction in the chain.
type TxMeta struct {
	BlockID        string `json:"blockID"`
	BlockNumber    uint32 `json:"blockNumber"`
	BlockTimestamp uint64 `json:"blockTimestamp"`
}

// Transaction is a transaction as returned by a node.
type Transaction struct {
	ID           string   `json:"id"`
	ChainTag     uint8    `json:"chainTag"`
	BlockRef     string   `json:"blockRef"`
	Expiration   uint32   `json:"expiration"`
	Clauses      []Clause `json:"clauses"`
	GasPriceCoef uint8    `json:"gasPriceCoef"`
	Gas          uint64   `json:"gas"`
	Origin       string   `json:"origin"`
	Delegator    *string  `json:"delegator"`
	Nonce        string   `json:"nonce"`
	DependsOn    *string  `json:"dependsOn"`
	Size         uint32   `json:"size"`
	Meta         *TxMeta  `json:"meta"`
}

// ReceiptMeta extends TxMeta with origin data.
type ReceiptMeta struct {
	TxMeta
	TxID     string `json:"txID"`
	TxOrigin string `json:"txOrigin"`
}

// ReceiptOutput carries the effects of one clause.
type ReceiptOutput struct {
	ContractAddress *string    `json:"contractAddress"`
	Events          []VMEvent  `json:"events"`
	Transfers       []Transfer `json:"transfers"`
}

// Receipt is the execution receipt of a transaction.
type Receipt struct {
	GasUsed  uint64          `json:"gasUsed"`
	GasPayer string          `json:"gasPayer"`
	Paid     string          `json:"paid"`
	Reward   string          `json:"reward"`
	Reverted bool            `json:"reverted"`
	Outputs  []ReceiptOutput `json:"outputs"`
	Meta     ReceiptMeta     `json:"meta"`
}

// VMEvent is an event emitted by a contract.
type VMEvent struct {
	Address string   `json:"address"`
	Topics  []string `json:"topics"`
	Data    string   `json:"data"`
}

// Transfer is a VET transfer.
type Transfer struct {
	Sender    string `json:"sender"`
	Recipient string `json:"recipient"`
	Amount    string `json:"amount"`
}

// VMOutput is the simulated outcome of one clause.
type VMOutput struct {
	ContractAddress *string    `json:"contractAddress"`
	Data            string     `json:"data"`
	Events          []VMEvent  `json:"events"`
	Transfers       []Transfer `json:"transfers"`
	GasUsed         uint64     `json:"gasUsed"`
	Reverted        bool       `json:"reverted"`
	VMError         string     `json:"vmError"`
	RevertReason    string     `json:"revertReason,omitempty"`
}

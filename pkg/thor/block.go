// Package thor defines the chain data shapes exchanged between the framework and drivers.
package thor

import "strconv"

// Head is the most recently known top block of the chain.
type Head struct {
	ID          string `json:"id"`
	Number      uint32 `json:"number"`
	Timestamp   uint64 `json:"timestamp"`
	ParentID    string `json:"parentID"`
	TxsFeatures uint32 `json:"txsFeatures,omitempty"`
	GasLimit    uint64 `json:"gasLimit"`
}

// Status is the head plus an estimate of sync completeness in [0,1].
type Status struct {
	Head     Head    `json:"head"`
	Progress float64 `json:"progress"`
}

// Block is a block summary as returned by a node.
type Block struct {
	ID           string   `json:"id"`
	Number       uint32   `json:"number"`
	Size         uint32   `json:"size"`
	ParentID     string   `json:"parentID"`
	Timestamp    uint64   `json:"timestamp"`
	GasLimit     uint64   `json:"gasLimit"`
	Beneficiary  string   `json:"beneficiary"`
	GasUsed      uint64   `json:"gasUsed"`
	TotalScore   uint64   `json:"totalScore"`
	TxsRoot      string   `json:"txsRoot"`
	TxsFeatures  uint32   `json:"txsFeatures"`
	StateRoot    string   `json:"stateRoot"`
	ReceiptsRoot string   `json:"receiptsRoot"`
	Signer       string   `json:"signer"`
	IsTrunk      bool     `json:"isTrunk"`
	Transactions []string `json:"transactions"`
}

// Head returns the head view of the block.
func (b Block) Head() Head {
	return Head{
		ID:          b.ID,
		Number:      b.Number,
		Timestamp:   b.Timestamp,
		ParentID:    b.ParentID,
		TxsFeatures: b.TxsFeatures,
		GasLimit:    b.GasLimit,
	}
}

// Clone returns a deep copy of the block.
func (b Block) Clone() Block {
	c := b
	if b.Transactions != nil {
		c.Transactions = append([]string(nil), b.Transactions...)
	}
	return c
}

// Revision addresses historical chain state by block id or block number.
type Revision struct {
	id       string
	number   uint32
	byNumber bool
}

// RevisionID addresses a block by its 32-byte identifier.
func RevisionID(id string) Revision {
	return Revision{id: id}
}

// RevisionNumber addresses a block by its number.
func RevisionNumber(n uint32) Revision {
	return Revision{number: n, byNumber: true}
}

// ID returns the block id and whether the revision is id-based.
func (r Revision) ID() (string, bool) {
	return r.id, !r.byNumber
}

// Number returns the block number and whether the revision is number-based.
func (r Revision) Number() (uint32, bool) {
	return r.number, r.byNumber
}

func (r Revision) String() string {
	if r.byNumber {
		return strconv.FormatUint(uint64(r.number), 10)
	}
	return r.id
}

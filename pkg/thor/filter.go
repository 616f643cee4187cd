package thor

// FilterUnit is the unit of a filter range.
type FilterUnit string

// FilterOrder is the sort direction of filtered rows.
type FilterOrder string

const (
	UnitBlock FilterUnit = "block"
	UnitTime  FilterUnit = "time"
)

const (
	OrderAsc  FilterOrder = "asc"
	OrderDesc FilterOrder = "desc"
)

// FilterRange bounds a filter by block number or timestamp, both ends inclusive.
type FilterRange struct {
	Unit FilterUnit `json:"unit"`
	From uint64     `json:"from"`
	To   uint64     `json:"to"`
}

// FilterOptions paginates filtered rows.
type FilterOptions struct {
	Offset uint64 `json:"offset"`
	Limit  uint64 `json:"limit"`
}

// EventCriteria is one AND-group of event match conditions.
type EventCriteria struct {
	Address *string `json:"address,omitempty"`
	Topic0  *string `json:"topic0,omitempty"`
	Topic1  *string `json:"topic1,omitempty"`
	Topic2  *string `json:"topic2,omitempty"`
	Topic3  *string `json:"topic3,omitempty"`
	Topic4  *string `json:"topic4,omitempty"`
}

// TransferCriteria is one AND-group of transfer match conditions.
type TransferCriteria struct {
	TxOrigin  *string `json:"txOrigin,omitempty"`
	Sender    *string `json:"sender,omitempty"`
	Recipient *string `json:"recipient,omitempty"`
}

// LogMeta locates a log row in the chain.
type LogMeta struct {
	BlockID        string `json:"blockID"`
	BlockNumber    uint32 `json:"blockNumber"`
	BlockTimestamp uint64 `json:"blockTimestamp"`
	TxID           string `json:"txID"`
	TxOrigin       string `json:"txOrigin"`
	ClauseIndex    uint32 `json:"clauseIndex"`
	TxIndex        uint32 `json:"txIndex"`
	LogIndex       uint32 `json:"logIndex"`
}

// EventLog is a filtered event row.
type EventLog struct {
	VMEvent
	Meta LogMeta `json:"meta"`
}

// TransferLog is a filtered transfer row.
type TransferLog struct {
	Transfer
	Meta LogMeta `json:"meta"`
}

// Less orders two rows by block number, then by position inside the block.
func (m LogMeta) Less(o LogMeta) bool {
	if m.BlockNumber != o.BlockNumber {
		return m.BlockNumber < o.BlockNumber
	}
	if m.TxIndex != o.TxIndex {
		return m.TxIndex < o.TxIndex
	}
	return m.LogIndex < o.LogIndex
}

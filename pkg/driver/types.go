package driver

import (
	"context"

	"github.com/goodnatureofminers/connex-go/pkg/thor"
)

type (
	// ExplainArg is a batch call-simulation request.
	ExplainArg struct {
		Clauses  []thor.Clause `json:"clauses"`
		Caller   string        `json:"caller,omitempty"`
		Gas      uint64        `json:"gas,omitempty"`
		GasPrice string        `json:"gasPrice,omitempty"`
	}

	FilterEventLogsArg struct {
		Range       thor.FilterRange     `json:"range"`
		Options     thor.FilterOptions   `json:"options"`
		CriteriaSet []thor.EventCriteria `json:"criteriaSet"`
		Order       thor.FilterOrder     `json:"order"`
	}

	FilterTransferLogsArg struct {
		Range       thor.FilterRange        `json:"range"`
		Options     thor.FilterOptions      `json:"options"`
		CriteriaSet []thor.TransferCriteria `json:"criteriaSet"`
		Order       thor.FilterOrder        `json:"order"`
	}

	// DelegateFunc co-signs an unsigned transaction on behalf of a fee delegator.
	DelegateFunc func(ctx context.Context, unsigned thor.UnsignedTx) (thor.DelegationResult, error)

	// Delegator is either a delegation service URL the driver calls over the
	// network, or a callback. Exactly one of the fields is set.
	Delegator struct {
		URL  string
		Sign DelegateFunc
	}

	TxOptions struct {
		Signer    string
		Gas       uint64
		DependsOn string
		Link      string
		Comment   string
		Delegator *Delegator
		// OnPrepared must be invoked by the driver when user confirmation begins.
		OnPrepared func()
	}

	CertOptions struct {
		Signer     string
		Link       string
		OnPrepared func()
	}
)

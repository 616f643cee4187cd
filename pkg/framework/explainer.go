package framework

import (
	"context"
	"slices"
	"strings"
	"sync/atomic"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common/hexutil"

	"github.com/goodnatureofminers/connex-go/pkg/driver"
	"github.com/goodnatureofminers/connex-go/pkg/rules"
	"github.com/goodnatureofminers/connex-go/pkg/thor"
)

// Explainer simulates a clause batch at the current head. Clauses are
// executed in sequence and a reverting clause does not stop the batch.
type Explainer struct {
	driver     driver.Driver
	head       func() thor.Head
	caller     string
	gas        uint64
	gasPrice   string
	cacheHints []string
	err        error
	busy       atomic.Bool
}

func newExplainer(d driver.Driver, head func() thor.Head) *Explainer {
	return &Explainer{driver: d, head: head}
}

func (e *Explainer) fail(err error) {
	if e.err == nil && err != nil {
		e.err = err
	}
}

// Err returns the first configuration error, if any.
func (e *Explainer) Err() error {
	return e.err
}

// Caller overrides the simulated transaction origin.
func (e *Explainer) Caller(addr string) *Explainer {
	if err := rules.Test("arg0", rules.Address(addr)); err != nil {
		e.fail(err)
		return e
	}
	e.caller = strings.ToLower(addr)
	return e
}

// Gas caps the gas available to the batch.
func (e *Explainer) Gas(gas uint64) *Explainer {
	e.gas = gas
	return e
}

// GasPrice sets the simulated gas price. It accepts the same values as Clause.Value.
func (e *Explainer) GasPrice(price any) *Explainer {
	d, err := rules.Decimal(price)
	if err != nil {
		e.fail(rules.Test("arg0", err))
		return e
	}
	e.gasPrice = d
	return e
}

// Cache hints the driver with addresses or storage keys whose state is
// touched by the batch.
func (e *Explainer) Cache(hints []string) *Explainer {
	normalized := make([]string, 0, len(hints))
	for i, h := range hints {
		if rules.Address(h) != nil && rules.Bytes32(h) != nil {
			e.fail(rules.BadParameter("%s: expected address or bytes32", indexPath("arg0", i)))
			return e
		}
		normalized = append(normalized, strings.ToLower(h))
	}
	e.cacheHints = normalized
	return e
}

// Execute simulates clauses and returns one output per clause, in order.
// Reverted outputs carrying an Error(string) payload get RevertReason set.
func (e *Explainer) Execute(ctx context.Context, clauses []Clause) ([]thor.VMOutput, error) {
	if e.err != nil {
		return nil, e.err
	}
	msg, err := normalizeClauses("arg0", clauses)
	if err != nil {
		return nil, err
	}
	if !e.busy.CompareAndSwap(false, true) {
		return nil, rules.BadParameter("explainer: request in progress")
	}
	defer e.busy.Store(false)

	arg := driver.ExplainArg{
		Clauses:  make([]thor.Clause, len(msg)),
		Caller:   e.caller,
		Gas:      e.gas,
		GasPrice: e.gasPrice,
	}
	for i, c := range msg {
		arg.Clauses[i] = c.Clause
	}

	outputs, err := e.driver.Explain(ctx, arg, e.head().ID, slices.Clone(e.cacheHints))
	if err != nil {
		return nil, err
	}
	for i := range outputs {
		if outputs[i].Reverted && outputs[i].RevertReason == "" {
			outputs[i].RevertReason = revertReason(outputs[i].Data)
		}
	}
	return outputs, nil
}

// revertReason decodes an Error(string) revert payload, or returns "".
func revertReason(data string) string {
	b, err := hexutil.Decode(data)
	if err != nil {
		return ""
	}
	reason, err := abi.UnpackRevert(b)
	if err != nil {
		return ""
	}
	return reason
}

// Package guard validates every value crossing the driver boundary without
// ever failing the call. It is a development aid for driver implementers:
// violations are reported to a handler and the driver's values are passed
// through unchanged.
package guard

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/connex-go/pkg/driver"
	"github.com/goodnatureofminers/connex-go/pkg/rules"
	"github.com/goodnatureofminers/connex-go/pkg/thor"
)

// ViolationError describes every contract violation observed during one driver call.
type ViolationError struct {
	Method     string
	Violations rules.Violations
}

func (e *ViolationError) Error() string {
	return fmt.Sprintf("driver.%s: %v", e.Method, e.Violations.Err())
}

// Guard wraps a Driver and reports contract violations.
type Guard struct {
	driver      driver.Driver
	logger      *zap.Logger
	onViolation func(error)
}

var _ driver.Driver = (*Guard)(nil)

// New wraps d. When onViolation is nil violations are logged at warn level.
func New(d driver.Driver, logger *zap.Logger, onViolation func(error)) *Guard {
	if logger == nil {
		logger = zap.NewNop()
	}
	g := &Guard{
		driver:      d,
		logger:      logger.Named("guard"),
		onViolation: onViolation,
	}
	if g.onViolation == nil {
		g.onViolation = g.logViolation
	}
	return g
}

func (g *Guard) logViolation(err error) {
	method := "unknown"
	var v *ViolationError
	if errors.As(err, &v) {
		method = v.Method
	}
	g.logger.Warn("driver contract violation", zap.String("method", method), zap.Error(err))
}

func (g *Guard) report(method string, vs rules.Violations) {
	if vs.OK() {
		return
	}
	g.onViolation(&ViolationError{Method: method, Violations: vs})
}

func (g *Guard) Genesis() thor.Block {
	b := g.driver.Genesis()
	var vs rules.Violations
	vs.Nest("ret", blockSchema(&b))
	g.report("genesis", vs)
	return b
}

func (g *Guard) Head() thor.Head {
	h := g.driver.Head()
	var vs rules.Violations
	vs.Nest("ret", headSchema(h))
	g.report("head", vs)
	return h
}

func (g *Guard) PollHead(ctx context.Context) (thor.Head, error) {
	h, err := g.driver.PollHead(ctx)
	if err == nil {
		var vs rules.Violations
		vs.Nest("ret", headSchema(h))
		g.report("pollHead", vs)
	}
	return h, err
}

func (g *Guard) GetBlock(ctx context.Context, revision thor.Revision) (*thor.Block, error) {
	b, err := g.driver.GetBlock(ctx, revision)
	var vs rules.Violations
	if id, ok := revision.ID(); ok {
		vs.CheckValue("arg0", id, rules.Bytes32(id))
	}
	if err == nil {
		vs.Nest("ret", blockSchema(b))
	}
	g.report("getBlock", vs)
	return b, err
}

func (g *Guard) GetTransaction(ctx context.Context, id string, allowPending bool) (*thor.Transaction, error) {
	tx, err := g.driver.GetTransaction(ctx, id, allowPending)
	var vs rules.Violations
	vs.CheckValue("arg0", id, rules.Bytes32(id))
	if err == nil {
		vs.Nest("ret", transactionSchema(tx))
	}
	g.report("getTransaction", vs)
	return tx, err
}

func (g *Guard) GetReceipt(ctx context.Context, id string) (*thor.Receipt, error) {
	r, err := g.driver.GetReceipt(ctx, id)
	var vs rules.Violations
	vs.CheckValue("arg0", id, rules.Bytes32(id))
	if err == nil {
		vs.Nest("ret", receiptSchema(r))
	}
	g.report("getReceipt", vs)
	return r, err
}

func (g *Guard) GetAccount(ctx context.Context, addr string, revision string) (*thor.Account, error) {
	acc, err := g.driver.GetAccount(ctx, addr, revision)
	var vs rules.Violations
	vs.CheckValue("arg0", addr, rules.Address(addr))
	vs.CheckValue("arg1", revision, rules.Bytes32(revision))
	if err == nil {
		vs.Nest("ret", accountSchema(acc))
	}
	g.report("getAccount", vs)
	return acc, err
}

func (g *Guard) GetCode(ctx context.Context, addr string, revision string) (*thor.Code, error) {
	code, err := g.driver.GetCode(ctx, addr, revision)
	var vs rules.Violations
	vs.CheckValue("arg0", addr, rules.Address(addr))
	vs.CheckValue("arg1", revision, rules.Bytes32(revision))
	if err == nil {
		vs.Nest("ret", codeSchema(code))
	}
	g.report("getCode", vs)
	return code, err
}

func (g *Guard) GetStorage(ctx context.Context, addr string, key string, revision string) (*thor.Storage, error) {
	s, err := g.driver.GetStorage(ctx, addr, key, revision)
	var vs rules.Violations
	vs.CheckValue("arg0", addr, rules.Address(addr))
	vs.CheckValue("arg1", key, rules.Bytes32(key))
	vs.CheckValue("arg2", revision, rules.Bytes32(revision))
	if err == nil {
		vs.Nest("ret", storageSchema(s))
	}
	g.report("getStorage", vs)
	return s, err
}

func (g *Guard) Explain(ctx context.Context, arg driver.ExplainArg, revision string, cacheHints []string) ([]thor.VMOutput, error) {
	outputs, err := g.driver.Explain(ctx, arg, revision, cacheHints)
	var vs rules.Violations
	vs.Nest("arg0", explainArgSchema(arg))
	vs.CheckValue("arg1", revision, rules.Bytes32(revision))
	for i, hint := range cacheHints {
		vs.CheckValue(fmt.Sprintf("arg2[%d]", i), hint, addressOrBytes32(hint))
	}
	if err == nil {
		if len(outputs) != len(arg.Clauses) {
			vs.Check("ret", fmt.Errorf("expected %d outputs, got %d", len(arg.Clauses), len(outputs)))
		}
		for i, o := range outputs {
			vs.Nest(fmt.Sprintf("ret[%d]", i), vmOutputSchema(o))
		}
	}
	g.report("explain", vs)
	return outputs, err
}

func (g *Guard) FilterEventLogs(ctx context.Context, arg driver.FilterEventLogsArg) ([]thor.EventLog, error) {
	rows, err := g.driver.FilterEventLogs(ctx, arg)
	var vs rules.Violations
	vs.Nest("arg0.range", filterRangeSchema(arg.Range))
	vs.CheckValue("arg0.order", arg.Order, rules.OneOf(arg.Order, thor.OrderAsc, thor.OrderDesc))
	for i, c := range arg.CriteriaSet {
		vs.Nest(fmt.Sprintf("arg0.criteriaSet[%d]", i), eventCriteriaSchema(c))
	}
	if err == nil {
		for i, row := range rows {
			prefix := fmt.Sprintf("ret[%d]", i)
			vs.Nest(prefix, eventSchema(row.VMEvent))
			vs.Nest(prefix+".meta", logMetaSchema(row.Meta))
		}
	}
	g.report("filterEventLogs", vs)
	return rows, err
}

func (g *Guard) FilterTransferLogs(ctx context.Context, arg driver.FilterTransferLogsArg) ([]thor.TransferLog, error) {
	rows, err := g.driver.FilterTransferLogs(ctx, arg)
	var vs rules.Violations
	vs.Nest("arg0.range", filterRangeSchema(arg.Range))
	vs.CheckValue("arg0.order", arg.Order, rules.OneOf(arg.Order, thor.OrderAsc, thor.OrderDesc))
	for i, c := range arg.CriteriaSet {
		vs.Nest(fmt.Sprintf("arg0.criteriaSet[%d]", i), transferCriteriaSchema(c))
	}
	if err == nil {
		for i, row := range rows {
			prefix := fmt.Sprintf("ret[%d]", i)
			vs.Nest(prefix, transferSchema(row.Transfer))
			vs.Nest(prefix+".meta", logMetaSchema(row.Meta))
		}
	}
	g.report("filterTransferLogs", vs)
	return rows, err
}

func (g *Guard) SignTx(ctx context.Context, msg thor.TxMessage, opts driver.TxOptions) (*thor.TxResponse, error) {
	resp, err := g.driver.SignTx(ctx, msg, opts)
	var vs rules.Violations
	vs.Nest("arg0", txMessageSchema(msg))
	vs.Nest("arg1", txOptionsSchema(opts))
	if err == nil {
		vs.Nest("ret", txResponseSchema(resp))
	}
	g.report("signTx", vs)
	return resp, err
}

func (g *Guard) SignCert(ctx context.Context, msg thor.CertMessage, opts driver.CertOptions) (*thor.CertResponse, error) {
	resp, err := g.driver.SignCert(ctx, msg, opts)
	var vs rules.Violations
	vs.Nest("arg0", certMessageSchema(msg))
	vs.CheckValue("arg1.signer", opts.Signer, optionalAddress(opts.Signer))
	if err == nil {
		vs.Nest("ret", certResponseSchema(resp))
	}
	g.report("signCert", vs)
	return resp, err
}

func (g *Guard) IsAddressOwned(ctx context.Context, addr string) (bool, error) {
	owned, err := g.driver.IsAddressOwned(ctx, addr)
	var vs rules.Violations
	vs.CheckValue("arg0", addr, rules.Address(addr))
	g.report("isAddressOwned", vs)
	return owned, err
}

package driver

import (
	"context"
	"time"

	"github.com/goodnatureofminers/connex-go/pkg/thor"
)

type (
	// Metrics records driver operation outcomes.
	Metrics interface {
		Observe(operation string, err error, started time.Time)
	}
)

// Observed decorates a Driver with per-operation metrics.
type Observed struct {
	driver  Driver
	metrics Metrics
}

var _ Driver = (*Observed)(nil)

// NewObserved wraps d so that every blocking call is recorded in m.
func NewObserved(d Driver, m Metrics) *Observed {
	return &Observed{
		driver:  d,
		metrics: m,
	}
}

func (o *Observed) Genesis() thor.Block {
	return o.driver.Genesis()
}

func (o *Observed) Head() thor.Head {
	return o.driver.Head()
}

func (o *Observed) PollHead(ctx context.Context) (head thor.Head, err error) {
	started := time.Now()
	defer func() {
		o.metrics.Observe("poll_head", err, started)
	}()
	return o.driver.PollHead(ctx)
}

func (o *Observed) GetBlock(ctx context.Context, revision thor.Revision) (block *thor.Block, err error) {
	started := time.Now()
	defer func() {
		o.metrics.Observe("get_block", err, started)
	}()
	return o.driver.GetBlock(ctx, revision)
}

func (o *Observed) GetTransaction(ctx context.Context, id string, allowPending bool) (tx *thor.Transaction, err error) {
	started := time.Now()
	defer func() {
		o.metrics.Observe("get_transaction", err, started)
	}()
	return o.driver.GetTransaction(ctx, id, allowPending)
}

func (o *Observed) GetReceipt(ctx context.Context, id string) (receipt *thor.Receipt, err error) {
	started := time.Now()
	defer func() {
		o.metrics.Observe("get_receipt", err, started)
	}()
	return o.driver.GetReceipt(ctx, id)
}

func (o *Observed) GetAccount(ctx context.Context, addr string, revision string) (acc *thor.Account, err error) {
	started := time.Now()
	defer func() {
		o.metrics.Observe("get_account", err, started)
	}()
	return o.driver.GetAccount(ctx, addr, revision)
}

func (o *Observed) GetCode(ctx context.Context, addr string, revision string) (code *thor.Code, err error) {
	started := time.Now()
	defer func() {
		o.metrics.Observe("get_code", err, started)
	}()
	return o.driver.GetCode(ctx, addr, revision)
}

func (o *Observed) GetStorage(ctx context.Context, addr string, key string, revision string) (storage *thor.Storage, err error) {
	started := time.Now()
	defer func() {
		o.metrics.Observe("get_storage", err, started)
	}()
	return o.driver.GetStorage(ctx, addr, key, revision)
}

func (o *Observed) Explain(ctx context.Context, arg ExplainArg, revision string, cacheHints []string) (outputs []thor.VMOutput, err error) {
	started := time.Now()
	defer func() {
		o.metrics.Observe("explain", err, started)
	}()
	return o.driver.Explain(ctx, arg, revision, cacheHints)
}

func (o *Observed) FilterEventLogs(ctx context.Context, arg FilterEventLogsArg) (rows []thor.EventLog, err error) {
	started := time.Now()
	defer func() {
		o.metrics.Observe("filter_event_logs", err, started)
	}()
	return o.driver.FilterEventLogs(ctx, arg)
}

func (o *Observed) FilterTransferLogs(ctx context.Context, arg FilterTransferLogsArg) (rows []thor.TransferLog, err error) {
	started := time.Now()
	defer func() {
		o.metrics.Observe("filter_transfer_logs", err, started)
	}()
	return o.driver.FilterTransferLogs(ctx, arg)
}

func (o *Observed) SignTx(ctx context.Context, msg thor.TxMessage, opts TxOptions) (resp *thor.TxResponse, err error) {
	started := time.Now()
	defer func() {
		o.metrics.Observe("sign_tx", err, started)
	}()
	return o.driver.SignTx(ctx, msg, opts)
}

func (o *Observed) SignCert(ctx context.Context, msg thor.CertMessage, opts CertOptions) (resp *thor.CertResponse, err error) {
	started := time.Now()
	defer func() {
		o.metrics.Observe("sign_cert", err, started)
	}()
	return o.driver.SignCert(ctx, msg, opts)
}

func (o *Observed) IsAddressOwned(ctx context.Context, addr string) (owned bool, err error) {
	started := time.Now()
	defer func() {
		o.metrics.Observe("is_address_owned", err, started)
	}()
	return o.driver.IsAddressOwned(ctx, addr)
}

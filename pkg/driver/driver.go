// Package driver defines the capability set a chain access driver must expose.
package driver

import (
	"context"
	"errors"

	"github.com/goodnatureofminers/connex-go/pkg/thor"
)

//go:generate mockgen -destination=drivermock/driver.go -package=drivermock . Driver

// ErrClosed is returned by PollHead once the driver is permanently closed.
var ErrClosed = errors.New("driver closed")

// Driver is the low-level chain access and signing object the framework is built on.
// Lookups return a nil entity, not an error, when nothing was found.
type Driver interface {
	// Genesis returns the genesis block of the network the driver is bound to.
	Genesis() thor.Block
	// Head returns the driver's current best-known head.
	Head() thor.Head
	// PollHead blocks until the next head is known. It fails with ErrClosed
	// only once the driver is closed; any other error is transient.
	PollHead(ctx context.Context) (thor.Head, error)

	GetBlock(ctx context.Context, revision thor.Revision) (*thor.Block, error)
	GetTransaction(ctx context.Context, id string, allowPending bool) (*thor.Transaction, error)
	GetReceipt(ctx context.Context, id string) (*thor.Receipt, error)

	GetAccount(ctx context.Context, addr string, revision string) (*thor.Account, error)
	GetCode(ctx context.Context, addr string, revision string) (*thor.Code, error)
	GetStorage(ctx context.Context, addr string, key string, revision string) (*thor.Storage, error)

	// Explain simulates clauses in sequence and returns one output per clause.
	Explain(ctx context.Context, arg ExplainArg, revision string, cacheHints []string) ([]thor.VMOutput, error)

	FilterEventLogs(ctx context.Context, arg FilterEventLogsArg) ([]thor.EventLog, error)
	FilterTransferLogs(ctx context.Context, arg FilterTransferLogsArg) ([]thor.TransferLog, error)

	SignTx(ctx context.Context, msg thor.TxMessage, opts TxOptions) (*thor.TxResponse, error)
	SignCert(ctx context.Context, msg thor.CertMessage, opts CertOptions) (*thor.CertResponse, error)
	// IsAddressOwned reports whether addr is controlled by the signing identity.
	IsAddressOwned(ctx context.Context, addr string) (bool, error)
}

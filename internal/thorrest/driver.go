package thorrest

import (
	"context"
	"net/url"

	"github.com/goodnatureofminers/connex-go/pkg/driver"
	"github.com/goodnatureofminers/connex-go/pkg/thor"
)

func revisionQuery(revision string) url.Values {
	q := url.Values{}
	if revision != "" {
		q.Set("revision", revision)
	}
	return q
}

func (c *Client) GetBlock(ctx context.Context, revision thor.Revision) (*thor.Block, error) {
	return c.block(ctx, revision.String())
}

func (c *Client) GetTransaction(ctx context.Context, id string, allowPending bool) (*thor.Transaction, error) {
	q := url.Values{}
	if allowPending {
		q.Set("pending", "true")
	}
	var tx *thor.Transaction
	if err := c.get(ctx, "/transactions/"+url.PathEscape(id), q, &tx); err != nil {
		return nil, err
	}
	return tx, nil
}

func (c *Client) GetReceipt(ctx context.Context, id string) (*thor.Receipt, error) {
	var r *thor.Receipt
	if err := c.get(ctx, "/transactions/"+url.PathEscape(id)+"/receipt", nil, &r); err != nil {
		return nil, err
	}
	return r, nil
}

func (c *Client) GetAccount(ctx context.Context, addr string, revision string) (*thor.Account, error) {
	var acc *thor.Account
	if err := c.get(ctx, "/accounts/"+url.PathEscape(addr), revisionQuery(revision), &acc); err != nil {
		return nil, err
	}
	return acc, nil
}

func (c *Client) GetCode(ctx context.Context, addr string, revision string) (*thor.Code, error) {
	var code *thor.Code
	if err := c.get(ctx, "/accounts/"+url.PathEscape(addr)+"/code", revisionQuery(revision), &code); err != nil {
		return nil, err
	}
	return code, nil
}

func (c *Client) GetStorage(ctx context.Context, addr string, key string, revision string) (*thor.Storage, error) {
	var s *thor.Storage
	path := "/accounts/" + url.PathEscape(addr) + "/storage/" + url.PathEscape(key)
	if err := c.get(ctx, path, revisionQuery(revision), &s); err != nil {
		return nil, err
	}
	return s, nil
}

// Explain simulates the clauses on the node. The REST API keeps no cache,
// so cacheHints are ignored.
func (c *Client) Explain(ctx context.Context, arg driver.ExplainArg, revision string, _ []string) ([]thor.VMOutput, error) {
	var outputs []thor.VMOutput
	if err := c.post(ctx, "/accounts/*", revisionQuery(revision), arg, &outputs); err != nil {
		return nil, err
	}
	return outputs, nil
}

func (c *Client) FilterEventLogs(ctx context.Context, arg driver.FilterEventLogsArg) ([]thor.EventLog, error) {
	var rows []thor.EventLog
	if err := c.post(ctx, "/logs/event", nil, arg, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

func (c *Client) FilterTransferLogs(ctx context.Context, arg driver.FilterTransferLogsArg) ([]thor.TransferLog, error) {
	var rows []thor.TransferLog
	if err := c.post(ctx, "/logs/transfer", nil, arg, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

func (c *Client) SignTx(context.Context, thor.TxMessage, driver.TxOptions) (*thor.TxResponse, error) {
	return nil, ErrVendorUnsupported
}

func (c *Client) SignCert(context.Context, thor.CertMessage, driver.CertOptions) (*thor.CertResponse, error) {
	return nil, ErrVendorUnsupported
}

// IsAddressOwned always reports false: a node holds no keys.
func (c *Client) IsAddressOwned(context.Context, string) (bool, error) {
	return false, nil
}

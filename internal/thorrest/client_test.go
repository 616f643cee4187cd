package thorrest

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/connex-go/pkg/driver"
	"github.com/goodnatureofminers/connex-go/pkg/thor"
)

const (
	genesisID = "0x00000000851caf3cfdb6e899cf5958bfb1ac3413d346d43539627e6be7ec1b4a"
	block1ID  = "0x00000001aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"
	block2ID  = "0x00000002bbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb"
	account   = "0x7567d83b7b8d80addcb281a71d54fc7b3364ffed"
	txID      = "0x9daa5b584a98976dfca3d70348b44ba5332f966e187ba84510efb810a0f9f851"
)

// node is a fake thor REST API whose best block can be moved by tests.
type node struct {
	mu   sync.Mutex
	best thor.Block
	mux  *http.ServeMux
}

func newNode(t *testing.T) (*node, *httptest.Server) {
	t.Helper()
	n := &node{
		best: thor.Block{ID: block1ID, Number: 1, ParentID: genesisID, Timestamp: 1530316810},
		mux:  http.NewServeMux(),
	}
	genesis := thor.Block{ID: genesisID, Timestamp: 1530316800, Transactions: []string{}}

	n.mux.HandleFunc("GET /blocks/{rev}", func(w http.ResponseWriter, r *http.Request) {
		switch r.PathValue("rev") {
		case "0", genesisID:
			writeJSON(w, genesis)
		case "best":
			n.mu.Lock()
			defer n.mu.Unlock()
			writeJSON(w, n.best)
		default:
			writeJSON(w, nil)
		}
	})
	srv := httptest.NewServer(n.mux)
	t.Cleanup(srv.Close)
	return n, srv
}

func (n *node) setBest(b thor.Block) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.best = b
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

func newTestClient(t *testing.T, srv *httptest.Server) *Client {
	t.Helper()
	c, err := New(context.Background(), Config{
		BaseURL:         srv.URL + "/",
		MinPollInterval: time.Millisecond,
		RPS:             1000,
	}, zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })
	return c
}

func TestNew(t *testing.T) {
	t.Parallel()

	_, srv := newNode(t)
	c := newTestClient(t, srv)

	assert.Equal(t, genesisID, c.Genesis().ID)
	assert.Equal(t, block1ID, c.Head().ID)
	assert.Equal(t, uint32(1), c.Head().Number)

	_, err := New(context.Background(), Config{BaseURL: "localhost"}, nil)
	require.Error(t, err)
}

func TestNew_NodeDown(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "maintenance", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	_, err := New(context.Background(), Config{BaseURL: srv.URL}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load genesis")
	assert.Contains(t, err.Error(), "503")
	assert.Contains(t, err.Error(), "maintenance")
}

func TestClient_PollHead(t *testing.T) {
	t.Parallel()

	n, srv := newNode(t)
	c := newTestClient(t, srv)

	result := make(chan thor.Head, 1)
	go func() {
		head, err := c.PollHead(context.Background())
		assert.NoError(t, err)
		result <- head
	}()

	time.Sleep(20 * time.Millisecond)
	n.setBest(thor.Block{ID: block2ID, Number: 2, ParentID: block1ID, Timestamp: 1530316820})

	select {
	case head := <-result:
		assert.Equal(t, block2ID, head.ID)
		assert.Equal(t, head, c.Head())
	case <-time.After(2 * time.Second):
		t.Fatal("PollHead did not observe the new best block")
	}
}

func TestClient_PollHeadClosed(t *testing.T) {
	t.Parallel()

	_, srv := newNode(t)
	c := newTestClient(t, srv)

	errs := make(chan error, 1)
	go func() {
		_, err := c.PollHead(context.Background())
		errs <- err
	}()
	time.Sleep(10 * time.Millisecond)
	require.NoError(t, c.Close())

	select {
	case err := <-errs:
		assert.ErrorIs(t, err, driver.ErrClosed)
	case <-time.After(2 * time.Second):
		t.Fatal("PollHead did not return after Close")
	}

	_, err := c.PollHead(context.Background())
	assert.ErrorIs(t, err, driver.ErrClosed)
}

func TestClient_PollHeadCanceled(t *testing.T) {
	t.Parallel()

	_, srv := newNode(t)
	c := newTestClient(t, srv)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err := c.PollHead(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.False(t, errors.Is(err, driver.ErrClosed))
}

func TestClient_Lookups(t *testing.T) {
	t.Parallel()

	n, srv := newNode(t)
	n.mux.HandleFunc("GET /transactions/{id}", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("pending") != "true" {
			writeJSON(w, nil)
			return
		}
		writeJSON(w, thor.Transaction{ID: r.PathValue("id"), Origin: account})
	})
	n.mux.HandleFunc("GET /transactions/{id}/receipt", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, thor.Receipt{GasUsed: 21000, Meta: thor.ReceiptMeta{TxID: r.PathValue("id")}})
	})
	n.mux.HandleFunc("GET /accounts/{addr}", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, block1ID, r.URL.Query().Get("revision"))
		writeJSON(w, thor.Account{Balance: "0x64", Energy: "0x0"})
	})
	n.mux.HandleFunc("GET /accounts/{addr}/code", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, thor.Code{Code: "0x6080"})
	})
	n.mux.HandleFunc("GET /accounts/{addr}/storage/{key}", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, thor.Storage{Value: r.PathValue("key")})
	})
	c := newTestClient(t, srv)
	ctx := context.Background()

	b, err := c.GetBlock(ctx, thor.RevisionNumber(0))
	require.NoError(t, err)
	assert.Equal(t, genesisID, b.ID)

	missing, err := c.GetBlock(ctx, thor.RevisionNumber(99))
	require.NoError(t, err)
	assert.Nil(t, missing)

	tx, err := c.GetTransaction(ctx, txID, true)
	require.NoError(t, err)
	assert.Equal(t, txID, tx.ID)

	tx, err = c.GetTransaction(ctx, txID, false)
	require.NoError(t, err)
	assert.Nil(t, tx)

	receipt, err := c.GetReceipt(ctx, txID)
	require.NoError(t, err)
	assert.Equal(t, uint64(21000), receipt.GasUsed)

	acc, err := c.GetAccount(ctx, account, block1ID)
	require.NoError(t, err)
	assert.Equal(t, "0x64", acc.Balance)

	code, err := c.GetCode(ctx, account, block1ID)
	require.NoError(t, err)
	assert.Equal(t, "0x6080", code.Code)

	storage, err := c.GetStorage(ctx, account, txID, block1ID)
	require.NoError(t, err)
	assert.Equal(t, txID, storage.Value)
}

func TestClient_Explain(t *testing.T) {
	t.Parallel()

	n, srv := newNode(t)
	n.mux.HandleFunc("POST /accounts/*", func(w http.ResponseWriter, r *http.Request) {
		var arg driver.ExplainArg
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&arg))
		assert.Equal(t, block1ID, r.URL.Query().Get("revision"))
		outputs := make([]thor.VMOutput, len(arg.Clauses))
		outputs[1].Reverted = true
		writeJSON(w, outputs)
	})
	c := newTestClient(t, srv)

	to := account
	outputs, err := c.Explain(context.Background(), driver.ExplainArg{
		Clauses: []thor.Clause{{To: &to, Value: "0", Data: "0x"}, {To: &to, Value: "1", Data: "0x"}},
		Caller:  account,
	}, block1ID, nil)
	require.NoError(t, err)
	require.Len(t, outputs, 2)
	assert.False(t, outputs[0].Reverted)
	assert.True(t, outputs[1].Reverted)
}

func TestClient_FilterLogs(t *testing.T) {
	t.Parallel()

	n, srv := newNode(t)
	n.mux.HandleFunc("POST /logs/event", func(w http.ResponseWriter, r *http.Request) {
		var arg driver.FilterEventLogsArg
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&arg))
		assert.Equal(t, thor.OrderDesc, arg.Order)
		assert.Equal(t, uint64(5), arg.Options.Limit)
		writeJSON(w, []thor.EventLog{{VMEvent: thor.VMEvent{Address: account}, Meta: thor.LogMeta{BlockNumber: 100}}})
	})
	n.mux.HandleFunc("POST /logs/transfer", func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "range too large", http.StatusForbidden)
	})
	c := newTestClient(t, srv)
	ctx := context.Background()

	events, err := c.FilterEventLogs(ctx, driver.FilterEventLogsArg{
		Range:   thor.FilterRange{Unit: thor.UnitBlock, From: 0, To: 100},
		Options: thor.FilterOptions{Limit: 5},
		Order:   thor.OrderDesc,
	})
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, uint32(100), events[0].Meta.BlockNumber)

	_, err = c.FilterTransferLogs(ctx, driver.FilterTransferLogsArg{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "range too large")
}

func TestClient_Vendor(t *testing.T) {
	t.Parallel()

	_, srv := newNode(t)
	c := newTestClient(t, srv)
	ctx := context.Background()

	_, err := c.SignTx(ctx, thor.TxMessage{}, driver.TxOptions{})
	assert.ErrorIs(t, err, ErrVendorUnsupported)
	_, err = c.SignCert(ctx, thor.CertMessage{}, driver.CertOptions{})
	assert.ErrorIs(t, err, ErrVendorUnsupported)

	owned, err := c.IsAddressOwned(ctx, account)
	require.NoError(t, err)
	assert.False(t, owned)
}

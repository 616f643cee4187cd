package guard

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/goodnatureofminers/connex-go/pkg/driver"
	"github.com/goodnatureofminers/connex-go/pkg/driver/drivermock"
	"github.com/goodnatureofminers/connex-go/pkg/rules"
	"github.com/goodnatureofminers/connex-go/pkg/thor"
)

var (
	testID   = "0x" + strings.Repeat("ab", 32)
	testAddr = "0x7567d83b7b8d80addcb281a71d54fc7b3364ffed"
)

type recorder struct {
	reports []error
}

func (r *recorder) handle(err error) {
	r.reports = append(r.reports, err)
}

func validBlock() *thor.Block {
	return &thor.Block{
		ID:           testID,
		Number:       100,
		ParentID:     testID,
		Beneficiary:  testAddr,
		TxsRoot:      testID,
		StateRoot:    testID,
		ReceiptsRoot: testID,
		Signer:       testAddr,
		Transactions: []string{testID},
	}
}

func TestGuard_GetBlock(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		revision    thor.Revision
		block       *thor.Block
		driverErr   error
		wantReports int
		wantInMsg   string
	}{
		{
			name:     "valid block",
			revision: thor.RevisionNumber(100),
			block:    validBlock(),
		},
		{
			name:     "absent block",
			revision: thor.RevisionID(testID),
		},
		{
			name:     "odd length id",
			revision: thor.RevisionNumber(100),
			block: func() *thor.Block {
				b := validBlock()
				b.ID = testID[:len(testID)-1]
				return b
			}(),
			wantReports: 1,
			wantInMsg:   "driver.getBlock: ret.id: expected bytes32",
		},
		{
			name:        "malformed revision",
			revision:    thor.RevisionID("0x1234"),
			block:       validBlock(),
			wantReports: 1,
			wantInMsg:   "arg0: expected bytes32",
		},
		{
			name:      "driver error skips response check",
			revision:  thor.RevisionNumber(1),
			block:     &thor.Block{ID: "bad"},
			driverErr: errors.New("network down"),
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			t.Cleanup(ctrl.Finish)

			d := drivermock.NewMockDriver(ctrl)
			ctx := context.Background()
			d.EXPECT().GetBlock(ctx, tt.revision).Return(tt.block, tt.driverErr)

			rec := &recorder{}
			g := New(d, zap.NewNop(), rec.handle)

			got, err := g.GetBlock(ctx, tt.revision)
			if !errors.Is(err, tt.driverErr) {
				t.Fatalf("GetBlock() error = %v, want %v", err, tt.driverErr)
			}
			if got != tt.block {
				t.Fatalf("GetBlock() must return the driver value unchanged")
			}
			if len(rec.reports) != tt.wantReports {
				t.Fatalf("reports = %v, want %d", rec.reports, tt.wantReports)
			}
			if tt.wantInMsg != "" && !strings.Contains(rec.reports[0].Error(), tt.wantInMsg) {
				t.Fatalf("report %q does not contain %q", rec.reports[0].Error(), tt.wantInMsg)
			}
		})
	}
}

func TestGuard_DefaultHandlerLogs(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	core, logs := observer.New(zapcore.WarnLevel)
	d := drivermock.NewMockDriver(ctrl)
	d.EXPECT().Head().Return(thor.Head{ID: "0xabc", ParentID: testID})

	g := New(d, zap.New(core), nil)
	h := g.Head()
	if h.ID != "0xabc" {
		t.Fatalf("Head() = %+v, want driver value", h)
	}

	entries := logs.FilterMessage("driver contract violation").All()
	if len(entries) != 1 {
		t.Fatalf("expected one warn entry, got %d", len(entries))
	}
	if method := entries[0].ContextMap()["method"]; method != "head" {
		t.Fatalf("logged method = %v, want head", method)
	}
}

func TestGuard_DefaultHandlerUnwraps(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		err        error
		wantMethod string
	}{
		{
			name:       "violation",
			err:        &ViolationError{Method: "getBlock", Violations: rules.Violations{{Path: "ret.id", Msg: "expected bytes32"}}},
			wantMethod: "getBlock",
		},
		{
			name:       "wrapped violation",
			err:        fmt.Errorf("reported: %w", &ViolationError{Method: "signCert", Violations: rules.Violations{{Path: "ret.signer", Msg: "expected address"}}}),
			wantMethod: "signCert",
		},
		{
			name:       "foreign error",
			err:        errors.New("opaque"),
			wantMethod: "unknown",
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			core, logs := observer.New(zapcore.WarnLevel)
			g := New(nil, zap.New(core), nil)
			g.onViolation(tt.err)

			entries := logs.FilterMessage("driver contract violation").All()
			if len(entries) != 1 {
				t.Fatalf("expected one warn entry, got %d", len(entries))
			}
			if method := entries[0].ContextMap()["method"]; method != tt.wantMethod {
				t.Fatalf("logged method = %v, want %s", method, tt.wantMethod)
			}
		})
	}
}

func TestGuard_Explain(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	d := drivermock.NewMockDriver(ctrl)
	ctx := context.Background()
	arg := driver.ExplainArg{
		Clauses: []thor.Clause{
			{To: &testAddr, Value: "0", Data: "0x"},
			{To: &testAddr, Value: "1", Data: "0x"},
		},
	}
	outputs := []thor.VMOutput{{Data: "0x"}}
	d.EXPECT().Explain(ctx, arg, testID, []string{testAddr}).Return(outputs, nil)

	rec := &recorder{}
	got, err := New(d, zap.NewNop(), rec.handle).Explain(ctx, arg, testID, []string{testAddr})
	if err != nil {
		t.Fatalf("Explain() unexpected error: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("Explain() must forward the driver outputs, got %d", len(got))
	}
	if len(rec.reports) != 1 || !strings.Contains(rec.reports[0].Error(), "expected 2 outputs, got 1") {
		t.Fatalf("unexpected reports %v", rec.reports)
	}
}

func TestGuard_SignTx(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	d := drivermock.NewMockDriver(ctrl)
	ctx := context.Background()
	msg := thor.TxMessage{{Clause: thor.Clause{To: &testAddr, Value: "10", Data: "0x"}}}
	opts := driver.TxOptions{Signer: testAddr}
	resp := &thor.TxResponse{TxID: testID, Signer: "0xnot-an-address"}
	d.EXPECT().SignTx(ctx, msg, gomock.Any()).Return(resp, nil)

	rec := &recorder{}
	got, err := New(d, zap.NewNop(), rec.handle).SignTx(ctx, msg, opts)
	if err != nil || got != resp {
		t.Fatalf("SignTx() = %v, %v; want driver response", got, err)
	}
	if len(rec.reports) != 1 {
		t.Fatalf("expected one report, got %v", rec.reports)
	}
	var ve *ViolationError
	if !errors.As(rec.reports[0], &ve) || ve.Method != "signTx" || ve.Violations[0].Path != "ret.signer" {
		t.Fatalf("unexpected report %#v", rec.reports[0])
	}
}

func TestGuard_PollHeadError(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	d := drivermock.NewMockDriver(ctrl)
	ctx := context.Background()
	d.EXPECT().PollHead(ctx).Return(thor.Head{}, driver.ErrClosed)

	rec := &recorder{}
	_, err := New(d, zap.NewNop(), rec.handle).PollHead(ctx)
	if !errors.Is(err, driver.ErrClosed) {
		t.Fatalf("PollHead() error = %v, want ErrClosed", err)
	}
	if len(rec.reports) != 0 {
		t.Fatalf("expected no reports, got %v", rec.reports)
	}
}

func TestGuard_FilterEventLogs(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	d := drivermock.NewMockDriver(ctrl)
	ctx := context.Background()
	arg := driver.FilterEventLogsArg{
		Range:   thor.FilterRange{Unit: thor.UnitBlock, From: 0, To: 10},
		Options: thor.FilterOptions{Limit: 10},
		Order:   thor.OrderAsc,
	}
	rows := []thor.EventLog{{
		VMEvent: thor.VMEvent{Address: testAddr, Topics: []string{testID}, Data: "0x"},
		Meta:    thor.LogMeta{BlockID: testID, TxID: testID, TxOrigin: testAddr},
	}}
	d.EXPECT().FilterEventLogs(ctx, arg).Return(rows, nil)

	rec := &recorder{}
	if _, err := New(d, zap.NewNop(), rec.handle).FilterEventLogs(ctx, arg); err != nil {
		t.Fatalf("FilterEventLogs() unexpected error: %v", err)
	}
	if len(rec.reports) != 0 {
		t.Fatalf("expected no reports, got %v", rec.reports)
	}
}

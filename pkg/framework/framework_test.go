package framework

import (
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/connex-go/pkg/driver/drivermock"
	"github.com/goodnatureofminers/connex-go/pkg/rules"
	"github.com/goodnatureofminers/connex-go/pkg/thor"
)

const (
	testAddr      = "0x7567d83b7b8d80addcb281a71d54fc7b3364ffed"
	testAddrUpper = "0x7567D83B7B8D80ADDCB281A71D54FC7B3364FFED"
	testTxID      = "0x9daa5b584a98976dfca3d70348b44ba5332f966e187ba84510efb810a0f9f851"
)

var (
	testGenesis = thor.Block{
		ID:           "0x00000000851caf3cfdb6e899cf5958bfb1ac3413d346d43539627e6be7ec1b4a",
		Timestamp:    1530316800,
		Transactions: []string{},
	}
	testHead = thor.Head{
		ID:        "0x00a1b2c3aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa",
		Number:    10596803,
		Timestamp: 1636000000,
		ParentID:  "0x00a1b2c2aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa",
	}
)

// newTestFramework builds a Framework over a mock driver that only expects
// the synchronous reads done at construction.
func newTestFramework(t *testing.T) (*Framework, *drivermock.MockDriver) {
	t.Helper()
	ctrl := gomock.NewController(t)
	d := drivermock.NewMockDriver(ctrl)
	d.EXPECT().Genesis().Return(testGenesis).AnyTimes()
	d.EXPECT().Head().Return(testHead).AnyTimes()
	return New(d, zap.NewNop(), nil), d
}

func requireBadParameter(t *testing.T, err error, wantMsg string) {
	t.Helper()
	if !errors.Is(err, rules.ErrBadParameter) {
		t.Fatalf("error = %v, want BadParameter", err)
	}
	if wantMsg != "" && err.Error() != wantMsg {
		t.Fatalf("error = %q, want %q", err.Error(), wantMsg)
	}
}

func strPtr(s string) *string { return &s }

func TestFramework_GuardDriver(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	d := drivermock.NewMockDriver(ctrl)
	bad := testHead
	bad.ID = "0x123"
	d.EXPECT().Head().Return(bad)

	var reports []error
	g := GuardDriver(d, zap.NewNop(), func(err error) { reports = append(reports, err) })

	if got := g.Head(); got != bad {
		t.Fatalf("Head() = %+v, want the driver value unchanged", got)
	}
	if len(reports) != 1 {
		t.Fatalf("got %d reports, want 1", len(reports))
	}
}

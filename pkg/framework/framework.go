// Package framework is the application facing layer over a chain driver:
// Thor for chain reads and queries, Vendor for signing requests.
package framework

import (
	"context"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/connex-go/pkg/driver"
	"github.com/goodnatureofminers/connex-go/pkg/guard"
	"github.com/goodnatureofminers/connex-go/pkg/headtracker"
)

// Framework bundles Thor and Vendor over one driver.
type Framework struct {
	Thor   *Thor
	Vendor *Vendor

	tracker *headtracker.Tracker
}

// New builds a Framework over d. Metrics may be nil. The head tracker does
// not poll until Run is called.
func New(d driver.Driver, logger *zap.Logger, metrics headtracker.Metrics) *Framework {
	if logger == nil {
		logger = zap.NewNop()
	}
	tracker := headtracker.New(d, logger, metrics)
	return &Framework{
		Thor:    newThor(d, tracker),
		Vendor:  newVendor(d),
		tracker: tracker,
	}
}

// Run tracks the chain head until ctx is done or the driver is closed.
func (f *Framework) Run(ctx context.Context) error {
	return f.tracker.Run(ctx)
}

// GuardDriver wraps d with contract validation. Violations go to onViolation,
// or are logged when it is nil.
func GuardDriver(d driver.Driver, logger *zap.Logger, onViolation func(error)) driver.Driver {
	return guard.New(d, logger, onViolation)
}

package framework

import (
	"strings"

	"github.com/goodnatureofminers/connex-go/pkg/driver"
	"github.com/goodnatureofminers/connex-go/pkg/headtracker"
	"github.com/goodnatureofminers/connex-go/pkg/rules"
	"github.com/goodnatureofminers/connex-go/pkg/thor"
)

// Thor is the read side of the framework: chain status, entity visitors
// and query builders.
type Thor struct {
	driver  driver.Driver
	tracker *headtracker.Tracker
	genesis thor.Block
}

func newThor(d driver.Driver, tracker *headtracker.Tracker) *Thor {
	return &Thor{
		driver:  d,
		tracker: tracker,
		genesis: d.Genesis().Clone(),
	}
}

// Genesis returns a copy of the genesis block.
func (t *Thor) Genesis() thor.Block {
	return t.genesis.Clone()
}

// Status returns the best known head and the sync progress.
func (t *Thor) Status() thor.Status {
	return t.tracker.Status()
}

// Ticker returns a cursor over head changes.
func (t *Thor) Ticker() *headtracker.Ticker {
	return t.tracker.Ticker()
}

// Account returns a visitor for the account at addr.
func (t *Thor) Account(addr string) (*AccountVisitor, error) {
	if err := rules.Test("arg0", rules.Address(addr)); err != nil {
		return nil, err
	}
	return &AccountVisitor{
		driver:  t.driver,
		head:    t.tracker.Head,
		address: strings.ToLower(addr),
	}, nil
}

// Block returns a visitor for the block at revision.
func (t *Thor) Block(revision thor.Revision) (*BlockVisitor, error) {
	if id, ok := revision.ID(); ok {
		if err := rules.Bytes32(id); err != nil {
			return nil, rules.BadParameter("arg0: expected bytes32 or unsigned 32-bit integer")
		}
		revision = thor.RevisionID(strings.ToLower(id))
	}
	return &BlockVisitor{driver: t.driver, revision: revision}, nil
}

// BestBlock returns a visitor for the block at the current head.
func (t *Thor) BestBlock() *BlockVisitor {
	return &BlockVisitor{driver: t.driver, revision: thor.RevisionID(t.tracker.Head().ID)}
}

// Transaction returns a visitor for the transaction id.
func (t *Thor) Transaction(id string) (*TxVisitor, error) {
	if err := rules.Test("arg0", rules.Bytes32(id)); err != nil {
		return nil, err
	}
	return &TxVisitor{driver: t.driver, id: strings.ToLower(id)}, nil
}

// EventFilter starts an event log query.
func (t *Thor) EventFilter() *EventFilter {
	return newEventFilter(t.driver)
}

// TransferFilter starts a transfer log query.
func (t *Thor) TransferFilter() *TransferFilter {
	return newTransferFilter(t.driver)
}

// Explain starts a call simulation at the current head.
func (t *Thor) Explain() *Explainer {
	return newExplainer(t.driver, t.tracker.Head)
}

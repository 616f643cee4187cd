package framework

import (
	"context"
	"math"
	"slices"
	"strings"
	"sync/atomic"

	"github.com/goodnatureofminers/connex-go/pkg/driver"
	"github.com/goodnatureofminers/connex-go/pkg/rules"
	"github.com/goodnatureofminers/connex-go/pkg/thor"
)

// maxFilterLimit caps the rows a single Apply may ask for.
const maxFilterLimit = 256

type (
	criteria interface {
		thor.EventCriteria | thor.TransferCriteria
	}
	logRow interface {
		thor.EventLog | thor.TransferLog
	}
)

// filterQuery performs the driver call of one filter kind.
type filterQuery[C criteria, R logRow] func(ctx context.Context, rng thor.FilterRange, opts thor.FilterOptions, set []C, order thor.FilterOrder) ([]R, error)

// Filter accumulates a log query. Configuration errors are kept and returned
// by Apply before the driver is called; Err exposes them right away.
//
// A Filter may be applied any number of times in sequence, each Apply is a
// fresh driver call. Overlapping Apply calls on one Filter are refused.
type Filter[C criteria, R logRow] struct {
	rng      thor.FilterRange
	criteria []C
	order    thor.FilterOrder
	err      error
	busy     atomic.Bool

	normalize func(C) (C, rules.Violations)
	query     filterQuery[C, R]
	meta      func(R) thor.LogMeta
}

// EventFilter matches contract events.
type EventFilter = Filter[thor.EventCriteria, thor.EventLog]

// TransferFilter matches VET transfers.
type TransferFilter = Filter[thor.TransferCriteria, thor.TransferLog]

func newFilter[C criteria, R logRow](normalize func(C) (C, rules.Violations), query filterQuery[C, R], meta func(R) thor.LogMeta) *Filter[C, R] {
	return &Filter[C, R]{
		rng: thor.FilterRange{
			Unit: thor.UnitBlock,
			From: 0,
			To:   math.MaxUint32,
		},
		order:     thor.OrderAsc,
		normalize: normalize,
		query:     query,
		meta:      meta,
	}
}

func newEventFilter(d driver.Driver) *EventFilter {
	return newFilter[thor.EventCriteria, thor.EventLog](normalizeEventCriteria,
		func(ctx context.Context, rng thor.FilterRange, opts thor.FilterOptions, set []thor.EventCriteria, order thor.FilterOrder) ([]thor.EventLog, error) {
			return d.FilterEventLogs(ctx, driver.FilterEventLogsArg{
				Range:       rng,
				Options:     opts,
				CriteriaSet: set,
				Order:       order,
			})
		},
		func(r thor.EventLog) thor.LogMeta { return r.Meta },
	)
}

func newTransferFilter(d driver.Driver) *TransferFilter {
	return newFilter[thor.TransferCriteria, thor.TransferLog](normalizeTransferCriteria,
		func(ctx context.Context, rng thor.FilterRange, opts thor.FilterOptions, set []thor.TransferCriteria, order thor.FilterOrder) ([]thor.TransferLog, error) {
			return d.FilterTransferLogs(ctx, driver.FilterTransferLogsArg{
				Range:       rng,
				Options:     opts,
				CriteriaSet: set,
				Order:       order,
			})
		},
		func(r thor.TransferLog) thor.LogMeta { return r.Meta },
	)
}

func (f *Filter[C, R]) fail(err error) {
	if f.err == nil && err != nil {
		f.err = err
	}
}

// Err returns the first configuration error, if any.
func (f *Filter[C, R]) Err() error {
	return f.err
}

// Range bounds the query, both ends inclusive. Block ranges must fit uint32.
func (f *Filter[C, R]) Range(unit thor.FilterUnit, from, to uint64) *Filter[C, R] {
	if err := rules.Test("arg0", rules.OneOf(unit, thor.UnitBlock, thor.UnitTime)); err != nil {
		f.fail(err)
		return f
	}
	if unit == thor.UnitBlock {
		if from > math.MaxUint32 {
			f.fail(rules.BadParameter("arg1: expected unsigned 32-bit integer"))
			return f
		}
		if to > math.MaxUint32 {
			f.fail(rules.BadParameter("arg2: expected unsigned 32-bit integer"))
			return f
		}
	}
	if from > to {
		f.fail(rules.BadParameter("arg2: expected to >= from"))
		return f
	}
	f.rng = thor.FilterRange{Unit: unit, From: from, To: to}
	return f
}

// Criteria appends match groups. Groups are OR-ed, fields inside a group AND-ed.
func (f *Filter[C, R]) Criteria(set ...C) *Filter[C, R] {
	var vs rules.Violations
	normalized := make([]C, 0, len(set))
	for i, c := range set {
		nc, cvs := f.normalize(c)
		vs.Nest(indexPath("arg0", i), cvs)
		normalized = append(normalized, nc)
	}
	if !vs.OK() {
		f.fail(rules.BadParameter("%v", vs.Err()))
		return f
	}
	f.criteria = append(f.criteria, normalized...)
	return f
}

// Order sets the row order.
func (f *Filter[C, R]) Order(order thor.FilterOrder) *Filter[C, R] {
	if err := rules.Test("arg0", rules.OneOf(order, thor.OrderAsc, thor.OrderDesc)); err != nil {
		f.fail(err)
		return f
	}
	f.order = order
	return f
}

// Apply queries one page of rows. Rows are sorted by block number, then
// transaction index, then log index; descending order reverses all three.
func (f *Filter[C, R]) Apply(ctx context.Context, offset, limit uint64) ([]R, error) {
	if f.err != nil {
		return nil, f.err
	}
	if limit > maxFilterLimit {
		return nil, rules.BadParameter("arg1: expected unsigned integer <= %d", maxFilterLimit)
	}
	if !f.busy.CompareAndSwap(false, true) {
		return nil, rules.BadParameter("filter: request in progress")
	}
	defer f.busy.Store(false)

	rows, err := f.query(ctx, f.rng, thor.FilterOptions{Offset: offset, Limit: limit}, slices.Clone(f.criteria), f.order)
	if err != nil {
		return nil, err
	}
	sortRows(rows, f.meta, f.order)
	return rows, nil
}

func sortRows[R any](rows []R, meta func(R) thor.LogMeta, order thor.FilterOrder) {
	slices.SortStableFunc(rows, func(a, b R) int {
		ma, mb := meta(a), meta(b)
		switch {
		case ma.Less(mb):
			return -1
		case mb.Less(ma):
			return 1
		}
		return 0
	})
	if order == thor.OrderDesc {
		slices.Reverse(rows)
	}
}

func normalizeEventCriteria(c thor.EventCriteria) (thor.EventCriteria, rules.Violations) {
	var vs rules.Violations
	c.Address = lowerChecked(&vs, "address", c.Address, rules.Address)
	c.Topic0 = lowerChecked(&vs, "topic0", c.Topic0, rules.Bytes32)
	c.Topic1 = lowerChecked(&vs, "topic1", c.Topic1, rules.Bytes32)
	c.Topic2 = lowerChecked(&vs, "topic2", c.Topic2, rules.Bytes32)
	c.Topic3 = lowerChecked(&vs, "topic3", c.Topic3, rules.Bytes32)
	c.Topic4 = lowerChecked(&vs, "topic4", c.Topic4, rules.Bytes32)
	return c, vs
}

func normalizeTransferCriteria(c thor.TransferCriteria) (thor.TransferCriteria, rules.Violations) {
	var vs rules.Violations
	c.TxOrigin = lowerChecked(&vs, "txOrigin", c.TxOrigin, rules.Address)
	c.Sender = lowerChecked(&vs, "sender", c.Sender, rules.Address)
	c.Recipient = lowerChecked(&vs, "recipient", c.Recipient, rules.Address)
	return c, vs
}

// lowerChecked validates an optional field and returns a lowercased copy.
func lowerChecked(vs *rules.Violations, path string, v *string, check func(string) error) *string {
	if v == nil {
		return nil
	}
	if err := check(*v); err != nil {
		vs.CheckValue(path, *v, err)
		return v
	}
	lower := strings.ToLower(*v)
	return &lower
}

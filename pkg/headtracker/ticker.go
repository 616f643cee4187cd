package headtracker

import (
	"context"

	"github.com/goodnatureofminers/connex-go/pkg/thor"
)

// Ticker is a per-consumer cursor over head changes. A head that arrived
// between two calls to Next is not missed.
type Ticker struct {
	tracker *Tracker
	lastID  string
}

// Ticker returns a cursor positioned at the current head.
func (t *Tracker) Ticker() *Ticker {
	return &Ticker{
		tracker: t,
		lastID:  t.Head().ID,
	}
}

// Next returns the head as soon as it differs from the one last returned.
func (tk *Ticker) Next(ctx context.Context) (thor.Head, error) {
	head, err := tk.tracker.nextAfter(ctx, tk.lastID)
	if err != nil {
		return thor.Head{}, err
	}
	tk.lastID = head.ID
	return head, nil
}

package headtracker

import (
	"context"
	"time"

	"github.com/goodnatureofminers/connex-go/pkg/thor"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// HeadSource is the part of a driver the tracker polls.
	HeadSource interface {
		Genesis() thor.Block
		Head() thor.Head
		PollHead(ctx context.Context) (thor.Head, error)
	}

	// Metrics records polling outcomes and the tracked head.
	Metrics interface {
		ObservePoll(err error, started time.Time)
		ObserveHead(number uint32, progress float64)
	}
)

type nopMetrics struct{}

func (nopMetrics) ObservePoll(error, time.Time) {}
func (nopMetrics) ObserveHead(uint32, float64) {}

// Package storage persists classified events and stat snapshots.
package storage

import (
	"context"

	"github.com/mclog/mclog-go/pkg/mclog/event"
	"github.com/mclog/mclog-go/pkg/mclog/stats"
)

// Sink receives the rows produced by one collection cycle. Implementations
// return the number of rows written; an empty input writes nothing and
// returns (0, nil).
type Sink interface {
	WriteEvents(ctx context.Context, events []event.Event) (int, error)
	WritePlayerStats(ctx context.Context, rows []stats.PlayerStats) (int, error)
	WriteMobKillDetails(ctx context.Context, rows []stats.MobKillDetail) (int, error)
	WriteItemStatDetails(ctx context.Context, rows []stats.ItemStatDetail) (int, error)
}

// Package collector runs the periodic extract-and-store cycle: tail the
// server log, classify new lines, snapshot player stat files, and write
// everything to the configured sink.
package collector

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jellydator/ttlcache/v3"

	"github.com/mclog/mclog-go/internal/config"
	"github.com/mclog/mclog-go/internal/reporting"
	"github.com/mclog/mclog-go/internal/storage"
	"github.com/mclog/mclog-go/internal/tailreader"
	"github.com/mclog/mclog-go/pkg/mclog"
	"github.com/mclog/mclog-go/pkg/mclog/stats"
)

// The usercache rarely changes; re-reading it every cycle is wasted work.
const (
	identityTTL = 5 * time.Minute
	identityKey = "usercache"
)

// Collector ties the tail reader, classifier, stats reader, and sink
// together.
type Collector struct {
	cfg      config.Config
	sink     storage.Sink
	offsets  *tailreader.OffsetStore
	identity *ttlcache.Cache[string, stats.Index]
	log      *slog.Logger

	now func() time.Time // test hook
}

// Summary reports what one cycle did.
type Summary struct {
	Events           int
	PlayerStats      int
	MobKills         int
	ItemStats        int
	SkippedStatFiles int
	Offset           int64
}

func New(cfg config.Config, sink storage.Sink, logger *slog.Logger) *Collector {
	identity := ttlcache.New[string, stats.Index](
		ttlcache.WithTTL[string, stats.Index](identityTTL),
		ttlcache.WithDisableTouchOnHit[string, stats.Index](),
	)
	go identity.Start()

	return &Collector{
		cfg:      cfg,
		sink:     sink,
		offsets:  tailreader.NewOffsetStore(cfg.ResolvedOffsetFile()),
		identity: identity,
		log:      logger,
		now:      time.Now,
	}
}

// Close releases the identity cache's expiry goroutine.
func (c *Collector) Close() {
	c.identity.Stop()
}

// CollectOnce runs a single cycle. The offset is persisted only after the
// classified events have been written, so a failed write replays the same
// lines next cycle rather than dropping them.
func (c *Collector) CollectOnce(ctx context.Context) (Summary, error) {
	var sum Summary

	offset, err := c.offsets.Load()
	if err != nil {
		return sum, fmt.Errorf("loading offset: %w", err)
	}

	lines, newOffset, err := tailreader.Read(c.cfg.ResolvedLogFile(), offset)
	if err != nil {
		return sum, fmt.Errorf("reading log: %w", err)
	}
	sum.Offset = newOffset

	events := mclog.ClassifyLines(lines, c.now())
	written, err := c.sink.WriteEvents(ctx, events)
	if err != nil {
		return sum, fmt.Errorf("writing events: %w", err)
	}
	sum.Events = written

	if newOffset != offset {
		if err := c.offsets.Save(newOffset); err != nil {
			return sum, fmt.Errorf("saving offset: %w", err)
		}
	}

	snap, err := stats.ReadDir(c.cfg.ResolvedStatsDir(), c.identityIndex(), c.now().UTC())
	if err != nil {
		return sum, fmt.Errorf("reading stats: %w", err)
	}
	sum.SkippedStatFiles = snap.Skipped

	if sum.PlayerStats, err = c.sink.WritePlayerStats(ctx, snap.Players); err != nil {
		return sum, fmt.Errorf("writing player stats: %w", err)
	}
	if sum.MobKills, err = c.sink.WriteMobKillDetails(ctx, snap.MobKills); err != nil {
		return sum, fmt.Errorf("writing mob kill details: %w", err)
	}
	if sum.ItemStats, err = c.sink.WriteItemStatDetails(ctx, snap.ItemStats); err != nil {
		return sum, fmt.Errorf("writing item stat details: %w", err)
	}

	c.log.Info("collection cycle complete",
		slog.Int("events", sum.Events),
		slog.Int("playerStats", sum.PlayerStats),
		slog.Int("mobKills", sum.MobKills),
		slog.Int("itemStats", sum.ItemStats),
		slog.Int("skippedStatFiles", sum.SkippedStatFiles),
		slog.Int64("offset", sum.Offset),
	)

	return sum, nil
}

// Run loops CollectOnce on the configured interval until ctx is cancelled.
// Cycle errors are reported and logged but never stop the loop.
func (c *Collector) Run(ctx context.Context) error {
	c.log.Info("collector started",
		slog.String("logFile", c.cfg.ResolvedLogFile()),
		slog.String("statsDir", c.cfg.ResolvedStatsDir()),
		slog.Duration("interval", c.cfg.CollectInterval),
	)

	ticker := time.NewTicker(c.cfg.CollectInterval)
	defer ticker.Stop()

	for {
		if _, err := c.CollectOnce(ctx); err != nil {
			reporting.Capture(err, map[string]string{"component": "collector"}, c.log)
		}

		select {
		case <-ctx.Done():
			c.log.Info("collector stopping")
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

// identityIndex returns the usercache index, reloading it at most once per
// TTL window. A missing or unreadable usercache degrades to UUID fallback
// names rather than failing the cycle.
func (c *Collector) identityIndex() stats.Index {
	if item := c.identity.Get(identityKey); item != nil {
		return item.Value()
	}

	index, err := stats.LoadUsercache(c.cfg.ResolvedUsercacheFile())
	if err != nil {
		c.log.Warn("failed to load usercache", slog.String("error", err.Error()))
		return stats.Index{}
	}

	c.identity.Set(identityKey, index, ttlcache.DefaultTTL)
	return index
}

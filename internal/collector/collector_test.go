package collector

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mclog/mclog-go/internal/config"
	"github.com/mclog/mclog-go/pkg/mclog/event"
	"github.com/mclog/mclog-go/pkg/mclog/stats"
)

type fakeSink struct {
	events      []event.Event
	playerStats []stats.PlayerStats
	mobKills    []stats.MobKillDetail
	itemStats   []stats.ItemStatDetail

	failEvents bool
}

func (f *fakeSink) WriteEvents(_ context.Context, evs []event.Event) (int, error) {
	if f.failEvents {
		return 0, assert.AnError
	}
	f.events = append(f.events, evs...)
	return len(evs), nil
}

func (f *fakeSink) WritePlayerStats(_ context.Context, rows []stats.PlayerStats) (int, error) {
	f.playerStats = append(f.playerStats, rows...)
	return len(rows), nil
}

func (f *fakeSink) WriteMobKillDetails(_ context.Context, rows []stats.MobKillDetail) (int, error) {
	f.mobKills = append(f.mobKills, rows...)
	return len(rows), nil
}

func (f *fakeSink) WriteItemStatDetails(_ context.Context, rows []stats.ItemStatDetail) (int, error) {
	f.itemStats = append(f.itemStats, rows...)
	return len(rows), nil
}

func testConfig(t *testing.T) config.Config {
	t.Helper()
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "logs"), 0o755))
	require.NoError(t, os.MkdirAll(filepath.Join(root, "world", "stats"), 0o755))

	cfg := config.Default()
	cfg.ServerDir = root
	cfg.OffsetFile = filepath.Join(root, ".log_offset")
	return cfg
}

func writeLog(t *testing.T, cfg config.Config, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(cfg.ResolvedLogFile(), []byte(content), 0o644))
}

func writeStatTree(t *testing.T, cfg config.Config, uuid string) {
	t.Helper()
	tree := map[string]map[string]map[string]int64{
		"stats": {
			"minecraft:custom": {
				"minecraft:deaths": 3,
				"minecraft:jump":   100,
			},
			"minecraft:killed": {
				"minecraft:zombie": 7,
			},
			"minecraft:mined": {
				"minecraft:stone": 50,
			},
		},
	}
	data, err := json.Marshal(tree)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(cfg.ResolvedStatsDir(), uuid+".json"), data, 0o644))
}

func newTestCollector(t *testing.T, cfg config.Config, sink *fakeSink) *Collector {
	t.Helper()
	c := New(cfg, sink, slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError})))
	t.Cleanup(c.Close)
	return c
}

func TestCollectOnce(t *testing.T) {
	cfg := testConfig(t)
	writeLog(t, cfg, "[10:30:00] [Server thread/INFO]: Steve joined the game\n[10:31:00] [Server thread/INFO]: <Steve> hello\n")
	writeStatTree(t, cfg, "63f167bb-ff0d-4bcb-a09b-ca34f443510b")

	sink := &fakeSink{}
	c := newTestCollector(t, cfg, sink)

	sum, err := c.CollectOnce(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, sum.Events)
	assert.Equal(t, 1, sum.PlayerStats)
	assert.Equal(t, 1, sum.MobKills)
	assert.Equal(t, 1, sum.ItemStats)
	assert.Zero(t, sum.SkippedStatFiles)

	require.Len(t, sink.events, 2)
	assert.Equal(t, event.Join, sink.events[0].Type)
	assert.Equal(t, event.Chat, sink.events[1].Type)

	require.Len(t, sink.playerStats, 1)
	assert.Equal(t, int64(3), sink.playerStats[0].Deaths)
	// No usercache entry: falls back to the UUID as the name.
	assert.Equal(t, "63f167bb-ff0d-4bcb-a09b-ca34f443510b", sink.playerStats[0].Player)
}

func TestCollectOnce_OffsetPersists(t *testing.T) {
	cfg := testConfig(t)
	writeLog(t, cfg, "[10:30:00] [Server thread/INFO]: Steve joined the game\n")

	sink := &fakeSink{}
	c := newTestCollector(t, cfg, sink)

	sum1, err := c.CollectOnce(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, sum1.Events)

	// Nothing new: second cycle classifies nothing and keeps the offset.
	sum2, err := c.CollectOnce(context.Background())
	require.NoError(t, err)
	assert.Zero(t, sum2.Events)
	assert.Equal(t, sum1.Offset, sum2.Offset)
	assert.Len(t, sink.events, 1)
}

func TestCollectOnce_FailedWriteReplaysLines(t *testing.T) {
	cfg := testConfig(t)
	writeLog(t, cfg, "[10:30:00] [Server thread/INFO]: Steve joined the game\n")

	sink := &fakeSink{failEvents: true}
	c := newTestCollector(t, cfg, sink)

	_, err := c.CollectOnce(context.Background())
	require.Error(t, err)

	// The offset was not advanced, so the line is classified again once the
	// sink recovers.
	sink.failEvents = false
	sum, err := c.CollectOnce(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, sum.Events)
}

func TestCollectOnce_UsercacheNames(t *testing.T) {
	cfg := testConfig(t)
	writeLog(t, cfg, "")
	writeStatTree(t, cfg, "63f167bb-ff0d-4bcb-a09b-ca34f443510b")

	usercache := `[{"name": "Njackisyourdad", "uuid": "63f167bb-ff0d-4bcb-a09b-ca34f443510b", "expiresOn": "2026-09-01 00:00:00 +0000"}]`
	require.NoError(t, os.WriteFile(cfg.ResolvedUsercacheFile(), []byte(usercache), 0o644))

	sink := &fakeSink{}
	c := newTestCollector(t, cfg, sink)

	_, err := c.CollectOnce(context.Background())
	require.NoError(t, err)

	require.Len(t, sink.playerStats, 1)
	assert.Equal(t, "Njackisyourdad", sink.playerStats[0].Player)
}

func TestCollectOnce_MissingLogAndStats(t *testing.T) {
	cfg := testConfig(t)

	sink := &fakeSink{}
	c := newTestCollector(t, cfg, sink)

	sum, err := c.CollectOnce(context.Background())
	require.NoError(t, err)
	assert.Zero(t, sum.Events)
	assert.Zero(t, sum.PlayerStats)
}

func TestRun_StopsOnCancel(t *testing.T) {
	cfg := testConfig(t)
	cfg.CollectInterval = 10 * time.Millisecond
	writeLog(t, cfg, "")

	sink := &fakeSink{}
	c := newTestCollector(t, cfg, sink)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	err := c.Run(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

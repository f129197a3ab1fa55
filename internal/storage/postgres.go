package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/mclog/mclog-go/pkg/mclog/event"
	"github.com/mclog/mclog-go/pkg/mclog/stats"
)

const (
	eventsTable      = "events"
	playerStatsTable = "player_stats"
	mobKillsTable    = "mob_kills_detail"
	itemStatsTable   = "item_stats_detail"
)

// PostgresSink writes collection rows to Postgres under a dedicated schema.
type PostgresSink struct {
	db     *sqlx.DB
	schema string
}

func NewPostgresSink(db *sqlx.DB, schema string) *PostgresSink {
	return &PostgresSink{db: db, schema: schema}
}

// dbEvent flattens event.Event into the events table row. Data is dropped;
// custom classifier captures are carried in Details by convention.
type dbEvent struct {
	ID         string    `db:"id"`
	Timestamp  time.Time `db:"timestamp"`
	Player     string    `db:"player"`
	EventType  string    `db:"event_type"`
	Details    string    `db:"details"`
	RawMessage string    `db:"raw_message"`
}

func (s *PostgresSink) WriteEvents(ctx context.Context, events []event.Event) (int, error) {
	if len(events) == 0 {
		return 0, nil
	}

	rows := make([]dbEvent, 0, len(events))
	for _, ev := range events {
		rows = append(rows, dbEvent{
			ID:         uuid.NewString(),
			Timestamp:  ev.Timestamp,
			Player:     ev.Player,
			EventType:  string(ev.Type),
			Details:    ev.Details,
			RawMessage: ev.RawMessage,
		})
	}

	query := `INSERT INTO events
		(id, timestamp, player, event_type, details, raw_message)
		VALUES (:id, :timestamp, :player, :event_type, :details, :raw_message)`
	if err := s.insert(ctx, "WriteEvents", query, rows); err != nil {
		return 0, err
	}
	return len(rows), nil
}

type dbPlayerStats struct {
	ID string `db:"id"`
	stats.PlayerStats
}

func (s *PostgresSink) WritePlayerStats(ctx context.Context, rows []stats.PlayerStats) (int, error) {
	if len(rows) == 0 {
		return 0, nil
	}

	dbRows := make([]dbPlayerStats, 0, len(rows))
	for _, r := range rows {
		dbRows = append(dbRows, dbPlayerStats{ID: uuid.NewString(), PlayerStats: r})
	}

	query := `INSERT INTO player_stats (
		id, snapshot_time, player, uuid,
		deaths, mob_kills, player_kills, damage_dealt, damage_taken,
		walk_cm, sprint_cm, crouch_cm, swim_cm, fly_cm, fall_cm, climb_cm,
		boat_cm, horse_cm, minecart_cm, elytra_cm, walk_on_water_cm,
		walk_under_water_cm, jump, sneak_time_ticks,
		blocks_mined, blocks_placed, items_crafted, items_used,
		items_picked_up, items_dropped, items_broken, items_enchanted,
		animals_bred, fish_caught, traded_with_villager, talked_to_villager,
		opened_chest, opened_enderchest, opened_shulker_box, sleep_in_bed,
		bell_ring, eat_cake_slice, raid_trigger, raid_win,
		play_time_ticks, time_since_death_ticks, time_since_rest_ticks
	) VALUES (
		:id, :snapshot_time, :player, :uuid,
		:deaths, :mob_kills, :player_kills, :damage_dealt, :damage_taken,
		:walk_cm, :sprint_cm, :crouch_cm, :swim_cm, :fly_cm, :fall_cm, :climb_cm,
		:boat_cm, :horse_cm, :minecart_cm, :elytra_cm, :walk_on_water_cm,
		:walk_under_water_cm, :jump, :sneak_time_ticks,
		:blocks_mined, :blocks_placed, :items_crafted, :items_used,
		:items_picked_up, :items_dropped, :items_broken, :items_enchanted,
		:animals_bred, :fish_caught, :traded_with_villager, :talked_to_villager,
		:opened_chest, :opened_enderchest, :opened_shulker_box, :sleep_in_bed,
		:bell_ring, :eat_cake_slice, :raid_trigger, :raid_win,
		:play_time_ticks, :time_since_death_ticks, :time_since_rest_ticks
	)`
	if err := s.insert(ctx, "WritePlayerStats", query, dbRows); err != nil {
		return 0, err
	}
	return len(dbRows), nil
}

type dbMobKillDetail struct {
	ID string `db:"id"`
	stats.MobKillDetail
}

func (s *PostgresSink) WriteMobKillDetails(ctx context.Context, rows []stats.MobKillDetail) (int, error) {
	if len(rows) == 0 {
		return 0, nil
	}

	dbRows := make([]dbMobKillDetail, 0, len(rows))
	for _, r := range rows {
		dbRows = append(dbRows, dbMobKillDetail{ID: uuid.NewString(), MobKillDetail: r})
	}

	query := `INSERT INTO mob_kills_detail
		(id, snapshot_time, player, uuid, direction, entity, count)
		VALUES (:id, :snapshot_time, :player, :uuid, :direction, :entity, :count)`
	if err := s.insert(ctx, "WriteMobKillDetails", query, dbRows); err != nil {
		return 0, err
	}
	return len(dbRows), nil
}

type dbItemStatDetail struct {
	ID string `db:"id"`
	stats.ItemStatDetail
}

func (s *PostgresSink) WriteItemStatDetails(ctx context.Context, rows []stats.ItemStatDetail) (int, error) {
	if len(rows) == 0 {
		return 0, nil
	}

	dbRows := make([]dbItemStatDetail, 0, len(rows))
	for _, r := range rows {
		dbRows = append(dbRows, dbItemStatDetail{ID: uuid.NewString(), ItemStatDetail: r})
	}

	query := `INSERT INTO item_stats_detail
		(id, snapshot_time, player, uuid, category, item, count)
		VALUES (:id, :snapshot_time, :player, :uuid, :category, :item, :count)`
	if err := s.insert(ctx, "WriteItemStatDetails", query, dbRows); err != nil {
		return 0, err
	}
	return len(dbRows), nil
}

// insert runs one batch insert inside a transaction with search_path pinned
// to the sink's schema.
func (s *PostgresSink) insert(ctx context.Context, op, query string, rows interface{}) error {
	txx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%s: failed to start transaction: %w", op, err)
	}
	defer txx.Rollback()

	_, err = txx.ExecContext(ctx, fmt.Sprintf("SET search_path TO %s", pq.QuoteIdentifier(s.schema)))
	if err != nil {
		return fmt.Errorf("%s: failed to set search path: %w", op, err)
	}

	_, err = txx.NamedExecContext(ctx, query, rows)
	if err != nil {
		return fmt.Errorf("%s: failed to insert: %w", op, err)
	}

	if err := txx.Commit(); err != nil {
		return fmt.Errorf("%s: failed to commit transaction: %w", op, err)
	}
	return nil
}

package stats

import "time"

// PlayerStats is one player's cumulative lifetime totals at a snapshot
// instant, as reported by the game. Values are totals, not deltas; consumers
// diff successive snapshots themselves. Distances are in centimeters, times
// in game ticks (20 per second). Field names form the wire contract with
// downstream sinks.
type PlayerStats struct {
	SnapshotTime time.Time `json:"snapshot_time" db:"snapshot_time"`
	Player       string    `json:"player" db:"player"`
	UUID         string    `json:"uuid" db:"uuid"`

	// Combat
	Deaths      int64 `json:"deaths" db:"deaths"`
	MobKills    int64 `json:"mob_kills" db:"mob_kills"`
	PlayerKills int64 `json:"player_kills" db:"player_kills"`
	DamageDealt int64 `json:"damage_dealt" db:"damage_dealt"`
	DamageTaken int64 `json:"damage_taken" db:"damage_taken"`

	// Movement
	WalkCM           int64 `json:"walk_cm" db:"walk_cm"`
	SprintCM         int64 `json:"sprint_cm" db:"sprint_cm"`
	CrouchCM         int64 `json:"crouch_cm" db:"crouch_cm"`
	SwimCM           int64 `json:"swim_cm" db:"swim_cm"`
	FlyCM            int64 `json:"fly_cm" db:"fly_cm"`
	FallCM           int64 `json:"fall_cm" db:"fall_cm"`
	ClimbCM          int64 `json:"climb_cm" db:"climb_cm"`
	BoatCM           int64 `json:"boat_cm" db:"boat_cm"`
	HorseCM          int64 `json:"horse_cm" db:"horse_cm"`
	MinecartCM       int64 `json:"minecart_cm" db:"minecart_cm"`
	ElytraCM         int64 `json:"elytra_cm" db:"elytra_cm"`
	WalkOnWaterCM    int64 `json:"walk_on_water_cm" db:"walk_on_water_cm"`
	WalkUnderWaterCM int64 `json:"walk_under_water_cm" db:"walk_under_water_cm"`
	Jump             int64 `json:"jump" db:"jump"`
	SneakTimeTicks   int64 `json:"sneak_time_ticks" db:"sneak_time_ticks"`

	// Blocks & items (aggregates)
	BlocksMined    int64 `json:"blocks_mined" db:"blocks_mined"`
	BlocksPlaced   int64 `json:"blocks_placed" db:"blocks_placed"`
	ItemsCrafted   int64 `json:"items_crafted" db:"items_crafted"`
	ItemsUsed      int64 `json:"items_used" db:"items_used"`
	ItemsPickedUp  int64 `json:"items_picked_up" db:"items_picked_up"`
	ItemsDropped   int64 `json:"items_dropped" db:"items_dropped"`
	ItemsBroken    int64 `json:"items_broken" db:"items_broken"`
	ItemsEnchanted int64 `json:"items_enchanted" db:"items_enchanted"`

	// Interactions
	AnimalsBred        int64 `json:"animals_bred" db:"animals_bred"`
	FishCaught         int64 `json:"fish_caught" db:"fish_caught"`
	TradedWithVillager int64 `json:"traded_with_villager" db:"traded_with_villager"`
	TalkedToVillager   int64 `json:"talked_to_villager" db:"talked_to_villager"`
	OpenedChest        int64 `json:"opened_chest" db:"opened_chest"`
	OpenedEnderchest   int64 `json:"opened_enderchest" db:"opened_enderchest"`
	OpenedShulkerBox   int64 `json:"opened_shulker_box" db:"opened_shulker_box"`
	SleepInBed         int64 `json:"sleep_in_bed" db:"sleep_in_bed"`
	BellRing           int64 `json:"bell_ring" db:"bell_ring"`
	EatCakeSlice       int64 `json:"eat_cake_slice" db:"eat_cake_slice"`
	RaidTrigger        int64 `json:"raid_trigger" db:"raid_trigger"`
	RaidWin            int64 `json:"raid_win" db:"raid_win"`

	// Time
	PlayTimeTicks       int64 `json:"play_time_ticks" db:"play_time_ticks"`
	TimeSinceDeathTicks int64 `json:"time_since_death_ticks" db:"time_since_death_ticks"`
	TimeSinceRestTicks  int64 `json:"time_since_rest_ticks" db:"time_since_rest_ticks"`
}

// Kill breakdown directions.
const (
	DirectionKilled   = "killed"
	DirectionKilledBy = "killed_by"
)

// MobKillDetail is one (player, direction, entity) cumulative count at a
// snapshot instant.
type MobKillDetail struct {
	SnapshotTime time.Time `json:"snapshot_time" db:"snapshot_time"`
	Player       string    `json:"player" db:"player"`
	UUID         string    `json:"uuid" db:"uuid"`
	Direction    string    `json:"direction" db:"direction"`
	Entity       string    `json:"entity" db:"entity"`
	Count        int64     `json:"count" db:"count"`
}

// ItemStatDetail is one (player, category, item) cumulative count at a
// snapshot instant. Category is one of mined, crafted, used, picked_up,
// dropped, broken.
type ItemStatDetail struct {
	SnapshotTime time.Time `json:"snapshot_time" db:"snapshot_time"`
	Player       string    `json:"player" db:"player"`
	UUID         string    `json:"uuid" db:"uuid"`
	Category     string    `json:"category" db:"category"`
	Item         string    `json:"item" db:"item"`
	Count        int64     `json:"count" db:"count"`
}

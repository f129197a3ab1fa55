package stats

import (
	"sort"
	"time"
)

// itemCategories maps raw category keys to output category labels, in output
// order.
var itemCategories = []struct {
	raw   string
	label string
}{
	{categoryMined, "mined"},
	{categoryCrafted, "crafted"},
	{categoryUsed, "used"},
	{categoryPickedUp, "picked_up"},
	{categoryDropped, "dropped"},
	{categoryBroken, "broken"},
}

// Normalize flattens one player's counter tree into an aggregate PlayerStats
// row plus per-entity kill and per-item breakdowns, all stamped with the
// same snapshot instant. Absent counters and categories read as zero; the
// function never fails.
func Normalize(tree Tree, uuid, player string, snapshotTime time.Time) (PlayerStats, []MobKillDetail, []ItemStatDetail) {
	ps := PlayerStats{
		SnapshotTime: snapshotTime,
		Player:       player,
		UUID:         uuid,

		// Combat
		Deaths:      tree.custom("deaths"),
		MobKills:    tree.custom("mob_kills"),
		PlayerKills: tree.custom("player_kills"),
		DamageDealt: tree.custom("damage_dealt"),
		DamageTaken: tree.custom("damage_taken"),

		// Movement
		WalkCM:           tree.custom("walk_one_cm"),
		SprintCM:         tree.custom("sprint_one_cm"),
		CrouchCM:         tree.custom("crouch_one_cm"),
		SwimCM:           tree.custom("swim_one_cm"),
		FlyCM:            tree.custom("fly_one_cm"),
		FallCM:           tree.custom("fall_one_cm"),
		ClimbCM:          tree.custom("climb_one_cm"),
		BoatCM:           tree.custom("boat_one_cm"),
		HorseCM:          tree.custom("horse_one_cm"),
		MinecartCM:       tree.custom("minecart_one_cm"),
		ElytraCM:         tree.custom("aviate_one_cm"),
		WalkOnWaterCM:    tree.custom("walk_on_water_one_cm"),
		WalkUnderWaterCM: tree.custom("walk_under_water_one_cm"),
		Jump:             tree.custom("jump"),
		SneakTimeTicks:   tree.custom("sneak_time"),

		// Blocks & items. Placement is reported through item use, so
		// blocks_placed sums the used category.
		BlocksMined:    tree.sumCategory(categoryMined),
		BlocksPlaced:   tree.sumCategory(categoryUsed),
		ItemsCrafted:   tree.sumCategory(categoryCrafted),
		ItemsUsed:      tree.sumCategory(categoryUsed),
		ItemsPickedUp:  tree.sumCategory(categoryPickedUp),
		ItemsDropped:   tree.sumCategory(categoryDropped),
		ItemsBroken:    tree.sumCategory(categoryBroken),
		ItemsEnchanted: tree.custom("enchant_item"),

		// Interactions
		AnimalsBred:        tree.custom("animals_bred"),
		FishCaught:         tree.custom("fish_caught"),
		TradedWithVillager: tree.custom("traded_with_villager"),
		TalkedToVillager:   tree.custom("talked_to_villager"),
		OpenedChest:        tree.custom("open_chest"),
		OpenedEnderchest:   tree.custom("open_enderchest"),
		OpenedShulkerBox:   tree.custom("open_shulker_box"),
		SleepInBed:         tree.custom("sleep_in_bed"),
		BellRing:           tree.custom("bell_ring"),
		EatCakeSlice:       tree.custom("eat_cake_slice"),
		RaidTrigger:        tree.custom("raid_trigger"),
		RaidWin:            tree.custom("raid_win"),

		// Time
		PlayTimeTicks:       tree.custom("play_time"),
		TimeSinceDeathTicks: tree.custom("time_since_death"),
		TimeSinceRestTicks:  tree.custom("time_since_rest"),
	}

	var mobKills []MobKillDetail
	for entity, count := range sorted(tree.category(categoryKilled)) {
		mobKills = append(mobKills, MobKillDetail{
			SnapshotTime: snapshotTime,
			Player:       player,
			UUID:         uuid,
			Direction:    DirectionKilled,
			Entity:       stripNamespace(entity),
			Count:        count,
		})
	}
	for entity, count := range sorted(tree.category(categoryKilledBy)) {
		mobKills = append(mobKills, MobKillDetail{
			SnapshotTime: snapshotTime,
			Player:       player,
			UUID:         uuid,
			Direction:    DirectionKilledBy,
			Entity:       stripNamespace(entity),
			Count:        count,
		})
	}

	var itemStats []ItemStatDetail
	for _, cat := range itemCategories {
		for item, count := range sorted(tree.category(cat.raw)) {
			itemStats = append(itemStats, ItemStatDetail{
				SnapshotTime: snapshotTime,
				Player:       player,
				UUID:         uuid,
				Category:     cat.label,
				Item:         stripNamespace(item),
				Count:        count,
			})
		}
	}

	return ps, mobKills, itemStats
}

// sorted yields a category's entries in key order, so output rows are
// deterministic across runs.
func sorted(category map[string]int64) func(yield func(string, int64) bool) {
	keys := make([]string, 0, len(category))
	for key := range category {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	return func(yield func(string, int64) bool) {
		for _, key := range keys {
			if !yield(key, category[key]) {
				return
			}
		}
	}
}

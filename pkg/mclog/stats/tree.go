// Package stats reads vanilla per-player statistics files and flattens the
// nested counter trees into analytics-ready row sets.
package stats

import (
	"encoding/json"
	"os"
	"strings"
)

// Namespace is the identifier prefix the game puts on every raw key. It is
// stripped from entity and item identifiers in output rows.
const Namespace = "minecraft:"

// Raw category keys in the counter tree.
const (
	categoryCustom   = "minecraft:custom"
	categoryMined    = "minecraft:mined"
	categoryUsed     = "minecraft:used"
	categoryCrafted  = "minecraft:crafted"
	categoryPickedUp = "minecraft:picked_up"
	categoryDropped  = "minecraft:dropped"
	categoryBroken   = "minecraft:broken"
	categoryKilled   = "minecraft:killed"
	categoryKilledBy = "minecraft:killed_by"
)

// Tree is one player's raw counter tree as stored in world/stats/<uuid>.json.
// It is a read-only view: categories map namespaced identifiers to cumulative
// counts, and a missing category simply reads as empty.
type Tree struct {
	Stats map[string]map[string]int64 `json:"stats"`
}

// LoadTree decodes a single stat file.
func LoadTree(path string) (Tree, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Tree{}, err
	}
	var tree Tree
	if err := json.Unmarshal(data, &tree); err != nil {
		return Tree{}, err
	}
	return tree, nil
}

// category returns the sub-map for a raw category key. Reading from the nil
// map a missing category yields is safe, so callers never nil-check.
func (t Tree) category(name string) map[string]int64 {
	return t.Stats[name]
}

// custom returns a single counter from the custom category by its bare key.
// Absent keys read as 0.
func (t Tree) custom(key string) int64 {
	return t.Stats[categoryCustom][Namespace+key]
}

// sumCategory totals every counter in a category. An absent category sums
// to 0.
func (t Tree) sumCategory(name string) int64 {
	var total int64
	for _, count := range t.Stats[name] {
		total += count
	}
	return total
}

// stripNamespace removes the game's namespace prefix from a raw identifier.
func stripNamespace(key string) string {
	return strings.TrimPrefix(key, Namespace)
}

package types

import "cosmossdk.io/collections"

const (
	// ModuleName defines the module name
	ModuleName = "rps"

	// StoreKey defines the primary module store key
	StoreKey = ModuleName

	// RouterKey is the message route for the module
	RouterKey = ModuleName

	// MemStoreKey defines the in-memory store key
	MemStoreKey = "mem_rps"
)

var (
	// SettingsKey is the prefix to retrieve the Settings singleton
	SettingsKey = collections.NewPrefix("settings")

	// GameKeyPrefix is the prefix for Game records, keyed by (creator, game_id)
	GameKeyPrefix = collections.NewPrefix("game")
)

// KeyPrefix returns a key prefix from a string
func KeyPrefix(p string) []byte { return []byte(p) }

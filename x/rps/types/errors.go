package types

import (
	errorsmod "cosmossdk.io/errors"
)

// Codes 1 through 9 mirror the protocol's externally observed error surface and
// must stay stable; callers match on the code, not the message.
var (
	ErrCustom                       = errorsmod.Register(ModuleName, 1, "custom error")
	ErrAccountIsNotAPlayerInTheGame = errorsmod.Register(ModuleName, 2, "account is not a player in the game")
	ErrInvalidGameState             = errorsmod.Register(ModuleName, 3, "invalid game state")
	ErrInvalidPlayer                = errorsmod.Register(ModuleName, 4, "invalid player")
	ErrInvalidHash                  = errorsmod.Register(ModuleName, 5, "invalid hash")
	ErrBothPlayersCantBeTheSame     = errorsmod.Register(ModuleName, 6, "both players can't be the same")
	ErrGameIsNotStale               = errorsmod.Register(ModuleName, 7, "game is not stale")
	ErrPlayerAlreadyRevealed        = errorsmod.Register(ModuleName, 8, "player already revealed")
	ErrNumericOverflow              = errorsmod.Register(ModuleName, 9, "numeric overflow")
)

var (
	ErrUnauthorized               = errorsmod.Register(ModuleName, 10, "unauthorized")
	ErrInvalidRequest             = errorsmod.Register(ModuleName, 11, "invalid request")
	ErrGameNotFound               = errorsmod.Register(ModuleName, 12, "game not found")
	ErrGameAlreadyExists          = errorsmod.Register(ModuleName, 13, "game already exists")
	ErrSettingsNotInitialized     = errorsmod.Register(ModuleName, 14, "settings not initialized")
	ErrSettingsAlreadyInitialized = errorsmod.Register(ModuleName, 15, "settings already initialized")
)

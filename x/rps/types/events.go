package types

const (
	EventSettingsInitialized = "rps.settings_initialized"
	EventSettingsUpdated     = "rps.settings_updated"
	EventGameCreated         = "rps.game_created"
	EventGameJoined          = "rps.game_joined"
	EventChoiceRevealed      = "rps.choice_revealed"
	EventGameCancelled       = "rps.game_cancelled"
	EventGameUnwound         = "rps.game_unwound"
	EventGameSettled         = "rps.game_settled"
)

const (
	AttrCreator   = "creator"
	AttrGameID    = "game_id"
	AttrPlayer    = "player"
	AttrSlot      = "slot"
	AttrMint      = "mint"
	AttrStake     = "stake_amount"
	AttrState     = "state"
	AttrOutcome   = "outcome"
	AttrPool      = "pool"
	AttrFee       = "fee"
	AttrAmountWon = "amount_won"
	AttrAuthority = "authority"
)

package types

import "context"

// Tx messages for the rps module. These are plain Go structs handled by the
// keeper's msg server; transaction-level routing and signing live outside the
// module.

// MsgInitializeSettings creates the Settings singleton. It may run once per
// deployment; the signer becomes the settings authority.
type MsgInitializeSettings struct {
	Signer         string `json:"signer"`
	Treasury       string `json:"treasury"`
	ForfeitTimeout int64  `json:"forfeit_timeout"`
	StaleTimeout   int64  `json:"stale_timeout"`
	FeeRate        uint64 `json:"fee_rate"`
	FeeOnDraw      bool   `json:"fee_on_draw"`
}

type MsgInitializeSettingsResponse struct{}

// MsgUpdateSettings overwrites the timeout and fee fields atomically. Only the
// stored authority may sign.
type MsgUpdateSettings struct {
	Authority      string `json:"authority"`
	ForfeitTimeout int64  `json:"forfeit_timeout"`
	StaleTimeout   int64  `json:"stale_timeout"`
	FeeRate        uint64 `json:"fee_rate"`
	FeeOnDraw      bool   `json:"fee_on_draw"`
}

type MsgUpdateSettingsResponse struct{}

// MsgInitializeGame opens a game: the creator deposits the stake and commits
// to a hidden choice.
type MsgInitializeGame struct {
	Creator     string `json:"creator"`
	GameId      string `json:"game_id"`
	Mint        string `json:"mint"`
	StakeAmount uint64 `json:"stake_amount"`
	Commitment  []byte `json:"commitment"` // sha256(choice byte || 32-byte salt)
}

type MsgInitializeGameResponse struct{}

// MsgJoinGame enters an open game as the second player, matching the stake.
type MsgJoinGame struct {
	Player     string `json:"player"`
	Creator    string `json:"creator"`
	GameId     string `json:"game_id"`
	Commitment []byte `json:"commitment"`
}

type MsgJoinGameResponse struct{}

// MsgRevealChoice discloses the (choice, salt) pair behind a commitment.
type MsgRevealChoice struct {
	Player  string `json:"player"`
	Creator string `json:"creator"`
	GameId  string `json:"game_id"`
	Choice  uint32 `json:"choice"`
	Salt    []byte `json:"salt"`
}

type MsgRevealChoiceResponse struct{}

// MsgCancelGame refunds and closes a game no second player has joined. Only
// the first player may cancel.
type MsgCancelGame struct {
	Player  string `json:"player"`
	Creator string `json:"creator"`
	GameId  string `json:"game_id"`
}

type MsgCancelGameResponse struct{}

// MsgUnwindGame refunds both sides of a stale game with no reveals.
// Permissionless.
type MsgUnwindGame struct {
	Signer  string `json:"signer"`
	Creator string `json:"creator"`
	GameId  string `json:"game_id"`
}

type MsgUnwindGameResponse struct{}

// MsgSettleGame computes the outcome and pays out the pool. Permissionless.
type MsgSettleGame struct {
	Signer  string `json:"signer"`
	Creator string `json:"creator"`
	GameId  string `json:"game_id"`
}

type MsgSettleGameResponse struct {
	Outcome   string `json:"outcome"`
	AmountWon uint64 `json:"amount_won"`
}

// MsgServer is the transaction surface of the module.
type MsgServer interface {
	InitializeSettings(ctx context.Context, msg *MsgInitializeSettings) (*MsgInitializeSettingsResponse, error)
	UpdateSettings(ctx context.Context, msg *MsgUpdateSettings) (*MsgUpdateSettingsResponse, error)
	InitializeGame(ctx context.Context, msg *MsgInitializeGame) (*MsgInitializeGameResponse, error)
	JoinGame(ctx context.Context, msg *MsgJoinGame) (*MsgJoinGameResponse, error)
	RevealChoice(ctx context.Context, msg *MsgRevealChoice) (*MsgRevealChoiceResponse, error)
	CancelGame(ctx context.Context, msg *MsgCancelGame) (*MsgCancelGameResponse, error)
	UnwindGame(ctx context.Context, msg *MsgUnwindGame) (*MsgUnwindGameResponse, error)
	SettleGame(ctx context.Context, msg *MsgSettleGame) (*MsgSettleGameResponse, error)
}

package types

// Choice is a player's move, encoded as the single byte that leads the
// commitment pre-image.
type Choice uint8

const (
	ChoiceRock     Choice = 0
	ChoicePaper    Choice = 1
	ChoiceScissors Choice = 2
)

// Valid reports whether c is one of the three playable choices.
func (c Choice) Valid() bool { return c <= ChoiceScissors }

// Beats reports whether c wins against other under standard precedence:
// rock beats scissors, scissors beats paper, paper beats rock.
func (c Choice) Beats(other Choice) bool {
	switch c {
	case ChoiceRock:
		return other == ChoiceScissors
	case ChoicePaper:
		return other == ChoiceRock
	case ChoiceScissors:
		return other == ChoicePaper
	}
	return false
}

func (c Choice) String() string {
	switch c {
	case ChoiceRock:
		return "rock"
	case ChoicePaper:
		return "paper"
	case ChoiceScissors:
		return "scissors"
	}
	return "invalid"
}

// PlayerSlot tags one of the two sides of a game. Slots are always resolved by
// identity lookup, never by positional indexing.
type PlayerSlot int

const (
	FirstPlayer PlayerSlot = iota
	SecondPlayer
)

func (s PlayerSlot) String() string {
	if s == FirstPlayer {
		return "first_player"
	}
	return "second_player"
}

// Game lifecycle states. SETTLED, CANCELLED and UNWOUND are terminal; a
// terminal record is immutable.
const (
	GameStateAwaitingSecondPlayer = "AWAITING_SECOND_PLAYER"
	GameStateAwaitingReveals      = "AWAITING_REVEALS"
	GameStateSettled              = "SETTLED"
	GameStateCancelled            = "CANCELLED"
	GameStateUnwound              = "UNWOUND"
)

// Settlement outcomes. Empty until the game reaches SETTLED.
const (
	OutcomeFirstPlayerWon  = "FIRST_PLAYER_WON"
	OutcomeSecondPlayerWon = "SECOND_PLAYER_WON"
	OutcomeDraw            = "DRAW"
)

// EscrowRef is a claim ticket against the module escrow account for one
// deposited stake. The game owns its refs until a terminal transition
// releases them.
type EscrowRef struct {
	Denom  string `json:"denom"`
	Amount uint64 `json:"amount"`
}

// PlayerState holds one side of a game: identity, commitment, and the reveal
// once it lands.
type PlayerState struct {
	Address    string     `json:"address"`
	Commitment []byte     `json:"commitment"`
	Choice     *Choice    `json:"choice,omitempty"`
	RevealedAt int64      `json:"revealed_at,omitempty"`
	Escrow     *EscrowRef `json:"escrow,omitempty"`
}

// Revealed reports whether this side has disclosed its choice.
func (p *PlayerState) Revealed() bool { return p != nil && p.Choice != nil }

// Game is one commit-reveal match between two stake-escrowed players.
type Game struct {
	Creator     string       `json:"creator"`
	GameId      string       `json:"game_id"`
	Mint        string       `json:"mint"`
	StakeAmount uint64       `json:"stake_amount"`
	First       PlayerState  `json:"first"`
	Second      *PlayerState `json:"second,omitempty"`
	State       string       `json:"state"`
	Outcome     string       `json:"outcome,omitempty"`
	AmountWon   uint64       `json:"amount_won,omitempty"`
	CreatedAt   int64        `json:"created_at"`
	SettledAt   int64        `json:"settled_at,omitempty"`
}

// NewGame builds the record created by initializeGame.
func NewGame(creator, gameID, mint string, stake uint64, commitment []byte, escrow *EscrowRef, createdAt int64) Game {
	return Game{
		Creator:     creator,
		GameId:      gameID,
		Mint:        mint,
		StakeAmount: stake,
		First: PlayerState{
			Address:    creator,
			Commitment: commitment,
			Escrow:     escrow,
		},
		State:     GameStateAwaitingSecondPlayer,
		CreatedAt: createdAt,
	}
}

// Join records the second player and moves the game to AWAITING_REVEALS.
func (g *Game) Join(player string, commitment []byte, escrow *EscrowRef) {
	g.Second = &PlayerState{
		Address:    player,
		Commitment: commitment,
		Escrow:     escrow,
	}
	g.State = GameStateAwaitingReveals
}

// IsTerminal reports whether the game reached one of SETTLED, CANCELLED or
// UNWOUND.
func (g *Game) IsTerminal() bool {
	switch g.State {
	case GameStateSettled, GameStateCancelled, GameStateUnwound:
		return true
	}
	return false
}

// SlotOf resolves the slot a calling identity occupies. It fails with
// ErrAccountIsNotAPlayerInTheGame when the address is neither side.
func (g *Game) SlotOf(address string) (PlayerSlot, error) {
	if g.First.Address == address {
		return FirstPlayer, nil
	}
	if g.Second != nil && g.Second.Address == address {
		return SecondPlayer, nil
	}
	return FirstPlayer, ErrAccountIsNotAPlayerInTheGame
}

// Player returns the state of the given slot. The second slot is nil before a
// join.
func (g *Game) Player(slot PlayerSlot) *PlayerState {
	if slot == FirstPlayer {
		return &g.First
	}
	return g.Second
}

// SetChoice stores a verified reveal for the given slot.
func (g *Game) SetChoice(slot PlayerSlot, choice Choice, revealedAt int64) {
	p := g.Player(slot)
	p.Choice = &choice
	p.RevealedAt = revealedAt
}

// RevealCount reports how many sides have revealed.
func (g *Game) RevealCount() int {
	n := 0
	if g.First.Revealed() {
		n++
	}
	if g.Second.Revealed() {
		n++
	}
	return n
}

// IsStale reports whether the game has aged past the staleness window.
// Staleness only makes a game unwindable while no reveal exists.
func (g *Game) IsStale(now, staleTimeout int64) bool {
	return now >= g.CreatedAt+staleTimeout
}

// DecideOutcome is the single settlement-eligibility check. It returns the
// outcome for a game in AWAITING_REVEALS, branching on reveal count and the
// forfeit window:
//   - both revealed: decided by game rules, or a draw on equal choices;
//   - one revealed: the revealed side wins by forfeit once the opponent's
//     window (reveal time + forfeitTimeout) has elapsed, otherwise
//     ErrInvalidGameState;
//   - none revealed: never settleable here, ErrInvalidGameState (the caller
//     must unwind once stale).
func (g *Game) DecideOutcome(now, forfeitTimeout int64) (string, error) {
	firstRevealed := g.First.Revealed()
	secondRevealed := g.Second.Revealed()

	switch {
	case firstRevealed && secondRevealed:
		a, b := *g.First.Choice, *g.Second.Choice
		if a == b {
			return OutcomeDraw, nil
		}
		if a.Beats(b) {
			return OutcomeFirstPlayerWon, nil
		}
		return OutcomeSecondPlayerWon, nil

	case firstRevealed:
		if now >= g.First.RevealedAt+forfeitTimeout {
			return OutcomeFirstPlayerWon, nil
		}
		return "", ErrInvalidGameState

	case secondRevealed:
		if now >= g.Second.RevealedAt+forfeitTimeout {
			return OutcomeSecondPlayerWon, nil
		}
		return "", ErrInvalidGameState
	}

	return "", ErrInvalidGameState
}

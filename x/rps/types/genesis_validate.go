package types

import "strings"

func (gs GenesisState) Validate() error {
	if gs.Settings != nil {
		if err := gs.Settings.Validate(); err != nil {
			return err
		}
	}
	seen := make(map[string]struct{}, len(gs.Games))
	for _, g := range gs.Games {
		if strings.TrimSpace(g.Creator) == "" || strings.TrimSpace(g.GameId) == "" {
			return ErrInvalidRequest.Wrap("game requires creator and game_id")
		}
		key := g.Creator + "/" + g.GameId
		if _, ok := seen[key]; ok {
			return ErrGameAlreadyExists.Wrapf("duplicate game %s", key)
		}
		seen[key] = struct{}{}
		if len(g.First.Commitment) != CommitmentLength {
			return ErrInvalidRequest.Wrapf("game %s: first commitment must be %d bytes", key, CommitmentLength)
		}
		if g.Second != nil && len(g.Second.Commitment) != CommitmentLength {
			return ErrInvalidRequest.Wrapf("game %s: second commitment must be %d bytes", key, CommitmentLength)
		}
		switch g.State {
		case GameStateAwaitingSecondPlayer, GameStateAwaitingReveals,
			GameStateSettled, GameStateCancelled, GameStateUnwound:
		default:
			return ErrInvalidGameState.Wrapf("game %s: unknown state %q", key, g.State)
		}
		// cancelling is only possible before a join, so CANCELLED records have
		// a single player like AWAITING_SECOND_PLAYER ones
		switch g.State {
		case GameStateAwaitingReveals, GameStateSettled, GameStateUnwound:
			if g.Second == nil {
				return ErrInvalidRequest.Wrapf("game %s: state %s requires a second player", key, g.State)
			}
		}
	}
	return nil
}

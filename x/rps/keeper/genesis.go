package keeper

import (
	"context"
	"errors"

	"cosmossdk.io/collections"

	"rpschain/x/rps/types"
)

// InitGenesis writes the settings singleton (when present) and all games.
func (k Keeper) InitGenesis(ctx context.Context, gs types.GenesisState) error {
	if err := gs.Validate(); err != nil {
		return err
	}
	if gs.Settings != nil {
		if err := k.Settings.Set(ctx, *gs.Settings); err != nil {
			return err
		}
	}
	for _, g := range gs.Games {
		if err := k.SetGame(ctx, g); err != nil {
			return err
		}
	}
	return nil
}

// ExportGenesis reads back the full module state.
func (k Keeper) ExportGenesis(ctx context.Context) (*types.GenesisState, error) {
	gs := types.DefaultGenesis()

	s, err := k.Settings.Get(ctx)
	switch {
	case err == nil:
		gs.Settings = &s
	case !errors.Is(err, collections.ErrNotFound):
		return nil, err
	}

	if err := k.Games.Walk(ctx, nil, func(_ collections.Pair[string, string], g types.Game) (bool, error) {
		gs.Games = append(gs.Games, g)
		return false, nil
	}); err != nil {
		return nil, err
	}
	return gs, nil
}

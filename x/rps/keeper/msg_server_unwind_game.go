package keeper

import (
	"context"

	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"rpschain/x/rps/types"
)

// UnwindGame refunds both sides of a stale match in full, with no fee. It is
// permissionless and only applies while neither side has revealed; a match
// with any reveal must go through settlement instead.
//
// A reveal makes the game permanently ineligible here, surfaced as
// ErrBothPlayersCantBeTheSame. The code is a historical labeling artifact,
// preserved because callers match on it.
func (k msgServer) UnwindGame(ctx context.Context, msg *types.MsgUnwindGame) (*types.MsgUnwindGameResponse, error) {
	if msg == nil {
		return nil, errorsmod.Wrap(types.ErrInvalidRequest, "empty request")
	}
	if _, err := k.addressCodec.StringToBytes(msg.Signer); err != nil {
		return nil, errorsmod.Wrap(err, "invalid signer address")
	}

	game, err := k.GetGame(ctx, msg.Creator, msg.GameId)
	if err != nil {
		return nil, err
	}
	if game.State != types.GameStateAwaitingReveals {
		return nil, types.ErrInvalidGameState
	}
	if game.RevealCount() > 0 {
		return nil, types.ErrBothPlayersCantBeTheSame
	}

	settings, err := k.GetSettings(ctx)
	if err != nil {
		return nil, err
	}
	if !game.IsStale(blockNow(ctx), settings.StaleTimeout) {
		return nil, types.ErrGameIsNotStale
	}

	if err := k.ReleaseTo(ctx, game.First.Escrow, game.First.Address); err != nil {
		return nil, err
	}
	if err := k.ReleaseTo(ctx, game.Second.Escrow, game.Second.Address); err != nil {
		return nil, err
	}

	game.First.Escrow = nil
	game.Second.Escrow = nil
	game.State = types.GameStateUnwound
	game.SettledAt = blockNow(ctx)
	if err := k.SetGame(ctx, game); err != nil {
		return nil, err
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventGameUnwound,
			sdk.NewAttribute(types.AttrCreator, msg.Creator),
			sdk.NewAttribute(types.AttrGameID, msg.GameId),
			sdk.NewAttribute(types.AttrState, game.State),
		),
	)

	return &types.MsgUnwindGameResponse{}, nil
}

package keeper

import (
	"context"

	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"rpschain/x/rps/types"
)

// RevealChoice discloses the (choice, salt) pair behind the caller's
// commitment. The state stays AWAITING_REVEALS whether one or both sides have
// revealed; settlement is a separate, permissionless step.
func (k msgServer) RevealChoice(ctx context.Context, msg *types.MsgRevealChoice) (*types.MsgRevealChoiceResponse, error) {
	if msg == nil {
		return nil, errorsmod.Wrap(types.ErrInvalidRequest, "empty request")
	}
	if _, err := k.addressCodec.StringToBytes(msg.Player); err != nil {
		return nil, errorsmod.Wrap(err, "invalid player address")
	}
	choice := types.Choice(msg.Choice)
	if !choice.Valid() {
		return nil, errorsmod.Wrapf(types.ErrInvalidRequest, "invalid choice %d", msg.Choice)
	}

	game, err := k.GetGame(ctx, msg.Creator, msg.GameId)
	if err != nil {
		return nil, err
	}
	if game.State != types.GameStateAwaitingReveals {
		return nil, types.ErrInvalidGameState
	}

	slot, err := game.SlotOf(msg.Player)
	if err != nil {
		return nil, err
	}
	player := game.Player(slot)
	if player.Revealed() {
		return nil, types.ErrPlayerAlreadyRevealed
	}

	if err := types.VerifyCommitment(choice, msg.Salt, player.Commitment); err != nil {
		return nil, err
	}

	game.SetChoice(slot, choice, blockNow(ctx))
	if err := k.SetGame(ctx, game); err != nil {
		return nil, err
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventChoiceRevealed,
			sdk.NewAttribute(types.AttrCreator, msg.Creator),
			sdk.NewAttribute(types.AttrGameID, msg.GameId),
			sdk.NewAttribute(types.AttrPlayer, msg.Player),
			sdk.NewAttribute(types.AttrSlot, slot.String()),
		),
	)

	return &types.MsgRevealChoiceResponse{}, nil
}

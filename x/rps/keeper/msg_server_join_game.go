package keeper

import (
	"context"

	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"rpschain/x/rps/types"
)

// JoinGame enters an open match as the second player: matches the stake,
// records the commitment and moves the game to AWAITING_REVEALS.
func (k msgServer) JoinGame(ctx context.Context, msg *types.MsgJoinGame) (*types.MsgJoinGameResponse, error) {
	if msg == nil {
		return nil, errorsmod.Wrap(types.ErrInvalidRequest, "empty request")
	}
	if _, err := k.addressCodec.StringToBytes(msg.Player); err != nil {
		return nil, errorsmod.Wrap(err, "invalid player address")
	}
	if len(msg.Commitment) != types.CommitmentLength {
		return nil, errorsmod.Wrapf(types.ErrInvalidRequest, "commitment must be %d bytes", types.CommitmentLength)
	}

	game, err := k.GetGame(ctx, msg.Creator, msg.GameId)
	if err != nil {
		return nil, err
	}
	if game.State != types.GameStateAwaitingSecondPlayer {
		return nil, types.ErrInvalidGameState
	}
	if msg.Player == game.First.Address {
		return nil, types.ErrBothPlayersCantBeTheSame
	}

	escrow, err := k.DepositStake(ctx, msg.Player, game.Mint, game.StakeAmount)
	if err != nil {
		return nil, err
	}

	game.Join(msg.Player, msg.Commitment, escrow)
	if err := k.SetGame(ctx, game); err != nil {
		return nil, err
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventGameJoined,
			sdk.NewAttribute(types.AttrCreator, msg.Creator),
			sdk.NewAttribute(types.AttrGameID, msg.GameId),
			sdk.NewAttribute(types.AttrPlayer, msg.Player),
			sdk.NewAttribute(types.AttrState, game.State),
		),
	)

	return &types.MsgJoinGameResponse{}, nil
}

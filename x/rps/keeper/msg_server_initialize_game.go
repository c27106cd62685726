package keeper

import (
	"context"
	"strconv"

	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"rpschain/x/rps/types"
)

// InitializeGame opens a match: the creator escrows the stake and records the
// commitment to a hidden choice. The game starts in AWAITING_SECOND_PLAYER.
func (k msgServer) InitializeGame(ctx context.Context, msg *types.MsgInitializeGame) (*types.MsgInitializeGameResponse, error) {
	if msg == nil {
		return nil, errorsmod.Wrap(types.ErrInvalidRequest, "empty request")
	}
	if _, err := k.addressCodec.StringToBytes(msg.Creator); err != nil {
		return nil, errorsmod.Wrap(err, "invalid creator address")
	}
	if msg.GameId == "" {
		return nil, errorsmod.Wrap(types.ErrInvalidRequest, "game_id is required")
	}
	if err := sdk.ValidateDenom(msg.Mint); err != nil {
		return nil, errorsmod.Wrap(types.ErrInvalidRequest, "invalid mint denom")
	}
	if msg.StakeAmount == 0 {
		return nil, errorsmod.Wrap(types.ErrInvalidRequest, "stake_amount must be greater than 0")
	}
	if len(msg.Commitment) != types.CommitmentLength {
		return nil, errorsmod.Wrapf(types.ErrInvalidRequest, "commitment must be %d bytes", types.CommitmentLength)
	}

	// Settings must exist before any game; timeouts and fee are read live at
	// each later transition.
	if _, err := k.GetSettings(ctx); err != nil {
		return nil, err
	}

	exists, err := k.HasGame(ctx, msg.Creator, msg.GameId)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, errorsmod.Wrapf(types.ErrGameAlreadyExists, "game %s/%s", msg.Creator, msg.GameId)
	}

	escrow, err := k.DepositStake(ctx, msg.Creator, msg.Mint, msg.StakeAmount)
	if err != nil {
		return nil, err
	}

	game := types.NewGame(msg.Creator, msg.GameId, msg.Mint, msg.StakeAmount, msg.Commitment, escrow, blockNow(ctx))
	if err := k.SetGame(ctx, game); err != nil {
		return nil, err
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventGameCreated,
			sdk.NewAttribute(types.AttrCreator, msg.Creator),
			sdk.NewAttribute(types.AttrGameID, msg.GameId),
			sdk.NewAttribute(types.AttrMint, msg.Mint),
			sdk.NewAttribute(types.AttrStake, strconv.FormatUint(msg.StakeAmount, 10)),
		),
	)

	return &types.MsgInitializeGameResponse{}, nil
}

package keeper

import (
	"context"
	"strconv"

	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"rpschain/x/rps/types"
)

// InitializeSettings creates the settings singleton. It fails once the
// singleton exists; there is no other path that creates it.
func (k msgServer) InitializeSettings(ctx context.Context, msg *types.MsgInitializeSettings) (*types.MsgInitializeSettingsResponse, error) {
	if msg == nil {
		return nil, errorsmod.Wrap(types.ErrInvalidRequest, "empty request")
	}
	if _, err := k.addressCodec.StringToBytes(msg.Signer); err != nil {
		return nil, errorsmod.Wrap(err, "invalid signer address")
	}

	ok, err := k.Settings.Has(ctx)
	if err != nil {
		return nil, err
	}
	if ok {
		return nil, types.ErrSettingsAlreadyInitialized
	}

	treasury := msg.Treasury
	if treasury == "" {
		treasury = msg.Signer
	}
	if _, err := k.addressCodec.StringToBytes(treasury); err != nil {
		return nil, errorsmod.Wrap(err, "invalid treasury address")
	}

	settings := types.Settings{
		Authority:      msg.Signer,
		Treasury:       treasury,
		ForfeitTimeout: msg.ForfeitTimeout,
		StaleTimeout:   msg.StaleTimeout,
		FeeRate:        msg.FeeRate,
		FeeOnDraw:      msg.FeeOnDraw,
	}
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	if err := k.Settings.Set(ctx, settings); err != nil {
		return nil, err
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventSettingsInitialized,
			sdk.NewAttribute(types.AttrAuthority, settings.Authority),
		),
	)

	return &types.MsgInitializeSettingsResponse{}, nil
}

// UpdateSettings overwrites the timeout and fee fields in one write. Only the
// stored authority may call it; authority and treasury are fixed at
// initialization.
func (k msgServer) UpdateSettings(ctx context.Context, msg *types.MsgUpdateSettings) (*types.MsgUpdateSettingsResponse, error) {
	if msg == nil {
		return nil, errorsmod.Wrap(types.ErrInvalidRequest, "empty request")
	}
	if _, err := k.addressCodec.StringToBytes(msg.Authority); err != nil {
		return nil, errorsmod.Wrap(err, "invalid authority address")
	}

	settings, err := k.GetSettings(ctx)
	if err != nil {
		return nil, err
	}
	if msg.Authority != settings.Authority {
		return nil, errorsmod.Wrap(types.ErrUnauthorized, "signer is not the settings authority")
	}

	settings.ForfeitTimeout = msg.ForfeitTimeout
	settings.StaleTimeout = msg.StaleTimeout
	settings.FeeRate = msg.FeeRate
	settings.FeeOnDraw = msg.FeeOnDraw
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	if err := k.Settings.Set(ctx, settings); err != nil {
		return nil, err
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventSettingsUpdated,
			sdk.NewAttribute(types.AttrAuthority, settings.Authority),
			sdk.NewAttribute(types.AttrFee, strconv.FormatUint(settings.FeeRate, 10)),
		),
	)

	return &types.MsgUpdateSettingsResponse{}, nil
}

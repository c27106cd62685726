package keeper

import (
	"context"

	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"rpschain/x/rps/types"
)

// Escrow gateway. Stakes are held by the module account; each deposit is
// tracked by an EscrowRef recorded on the game, and the sum of releases for a
// ref always equals its deposited amount.

func coinsFor(denom string, amount uint64) sdk.Coins {
	return sdk.NewCoins(sdk.NewCoin(denom, math.NewIntFromUint64(amount)))
}

func (k Keeper) accAddress(bech32 string) (sdk.AccAddress, error) {
	bz, err := k.addressCodec.StringToBytes(bech32)
	if err != nil {
		return nil, errorsmod.Wrapf(types.ErrInvalidRequest, "invalid address %q: %s", bech32, err)
	}
	return sdk.AccAddress(bz), nil
}

// DepositStake moves a player's stake into module custody and returns the
// claim ticket the game holds for its lifetime.
func (k Keeper) DepositStake(ctx context.Context, player, denom string, amount uint64) (*types.EscrowRef, error) {
	addr, err := k.accAddress(player)
	if err != nil {
		return nil, err
	}
	if err := k.bankKeeper.SendCoinsFromAccountToModule(ctx, addr, types.ModuleName, coinsFor(denom, amount)); err != nil {
		return nil, errorsmod.Wrap(err, "failed to escrow stake")
	}
	return &types.EscrowRef{Denom: denom, Amount: amount}, nil
}

// ReleaseTo pays out an entire escrow ref to one recipient.
func (k Keeper) ReleaseTo(ctx context.Context, ref *types.EscrowRef, recipient string) error {
	if ref == nil {
		return errorsmod.Wrap(types.ErrInvalidRequest, "escrow already released")
	}
	addr, err := k.accAddress(recipient)
	if err != nil {
		return err
	}
	return k.bankKeeper.SendCoinsFromModuleToAccount(ctx, types.ModuleName, addr, coinsFor(ref.Denom, ref.Amount))
}

// SplitRelease pays out one escrow ref to two recipients. The two amounts
// must consume the ref exactly; value is neither created nor destroyed.
func (k Keeper) SplitRelease(ctx context.Context, ref *types.EscrowRef, recipientA string, amountA uint64, recipientB string, amountB uint64) error {
	if ref == nil {
		return errorsmod.Wrap(types.ErrInvalidRequest, "escrow already released")
	}
	total, err := checkedAdd(amountA, amountB)
	if err != nil {
		return err
	}
	if total != ref.Amount {
		return errorsmod.Wrapf(types.ErrInvalidRequest, "split %d+%d does not consume escrow of %d", amountA, amountB, ref.Amount)
	}
	if amountA > 0 {
		addrA, err := k.accAddress(recipientA)
		if err != nil {
			return err
		}
		if err := k.bankKeeper.SendCoinsFromModuleToAccount(ctx, types.ModuleName, addrA, coinsFor(ref.Denom, amountA)); err != nil {
			return err
		}
	}
	if amountB > 0 {
		addrB, err := k.accAddress(recipientB)
		if err != nil {
			return err
		}
		if err := k.bankKeeper.SendCoinsFromModuleToAccount(ctx, types.ModuleName, addrB, coinsFor(ref.Denom, amountB)); err != nil {
			return err
		}
	}
	return nil
}

package keeper_test

import (
	"context"
	"testing"
	"time"

	"cosmossdk.io/core/address"
	"cosmossdk.io/math"
	storetypes "cosmossdk.io/store/types"
	addresscodec "github.com/cosmos/cosmos-sdk/codec/address"
	"github.com/cosmos/cosmos-sdk/runtime"
	"github.com/cosmos/cosmos-sdk/testutil"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	"rpschain/x/rps/keeper"
	"rpschain/x/rps/types"
)

const testDenom = "urps"

// MockBankKeeper is a mock implementation of the BankKeeper interface
type MockBankKeeper struct {
	Balances map[string]sdk.Coins
}

func NewMockBankKeeper() *MockBankKeeper {
	return &MockBankKeeper{
		Balances: make(map[string]sdk.Coins),
	}
}

func (m *MockBankKeeper) SendCoinsFromAccountToModule(_ context.Context, senderAddr sdk.AccAddress, recipientModule string, amt sdk.Coins) error {
	balance := m.Balances[senderAddr.String()]
	if !balance.IsAllGTE(amt) {
		return types.ErrInvalidRequest.Wrap("insufficient funds")
	}
	m.Balances[senderAddr.String()] = balance.Sub(amt...)
	moduleBalance := m.Balances[recipientModule]
	m.Balances[recipientModule] = moduleBalance.Add(amt...)
	return nil
}

func (m *MockBankKeeper) SendCoinsFromModuleToAccount(_ context.Context, senderModule string, recipientAddr sdk.AccAddress, amt sdk.Coins) error {
	balance := m.Balances[senderModule]
	if !balance.IsAllGTE(amt) {
		return types.ErrInvalidRequest.Wrap("insufficient module funds")
	}
	m.Balances[senderModule] = balance.Sub(amt...)
	userBalance := m.Balances[recipientAddr.String()]
	m.Balances[recipientAddr.String()] = userBalance.Add(amt...)
	return nil
}

// BalanceOf returns the mock balance of the given denom for a bech32 account
// or module name.
func (m *MockBankKeeper) BalanceOf(holder, denom string) uint64 {
	return m.Balances[holder].AmountOf(denom).Uint64()
}

// TotalSupply sums every balance in the mock; constant across any sequence of
// transfers (conservation check).
func (m *MockBankKeeper) TotalSupply(denom string) uint64 {
	total := math.ZeroInt()
	for _, coins := range m.Balances {
		total = total.Add(coins.AmountOf(denom))
	}
	return total.Uint64()
}

type fixture struct {
	ctx          sdk.Context
	keeper       keeper.Keeper
	addressCodec address.Codec
	bankKeeper   *MockBankKeeper

	authority string
	treasury  string
	alice     string
	bob       string
	carol     string
}

func initFixture(t *testing.T) *fixture {
	t.Helper()

	addressCodec := addresscodec.NewBech32Codec(sdk.GetConfig().GetBech32AccountAddrPrefix())
	storeKey := storetypes.NewKVStoreKey(types.StoreKey)

	storeService := runtime.NewKVStoreService(storeKey)
	ctx := testutil.DefaultContextWithDB(t, storeKey, storetypes.NewTransientStoreKey("transient_test")).Ctx
	ctx = ctx.WithBlockTime(time.Unix(1_700_000_000, 0).UTC())

	bankKeeper := NewMockBankKeeper()

	k := keeper.NewKeeper(
		storeService,
		addressCodec,
		bankKeeper,
	)

	f := &fixture{
		ctx:          ctx,
		keeper:       k,
		addressCodec: addressCodec,
		bankKeeper:   bankKeeper,
	}

	f.authority = f.bech32(t, "authority_________")
	f.treasury = f.bech32(t, "treasury__________")
	f.alice = f.bech32(t, "alice_____________")
	f.bob = f.bech32(t, "bob_______________")
	f.carol = f.bech32(t, "carol_____________")

	return f
}

func (f *fixture) bech32(t *testing.T, seed string) string {
	t.Helper()
	s, err := f.addressCodec.BytesToString(sdk.AccAddress([]byte(seed)))
	require.NoError(t, err)
	return s
}

func (f *fixture) fund(addr string, amount uint64) {
	f.bankKeeper.Balances[addr] = f.bankKeeper.Balances[addr].
		Add(sdk.NewCoin(testDenom, math.NewIntFromUint64(amount)))
}

// advance moves the block clock forward; handlers read time from the context.
func (f *fixture) advance(d time.Duration) {
	f.ctx = f.ctx.WithBlockTime(f.ctx.BlockTime().Add(d))
}

// initSettings seeds the singleton with test timeouts: 10 minute forfeit
// window, 1 hour staleness window, 1% fee.
func (f *fixture) initSettings(t *testing.T, feeRate uint64, feeOnDraw bool) {
	t.Helper()
	ms := keeper.NewMsgServerImpl(f.keeper)
	_, err := ms.InitializeSettings(f.ctx, &types.MsgInitializeSettings{
		Signer:         f.authority,
		Treasury:       f.treasury,
		ForfeitTimeout: 600,
		StaleTimeout:   3600,
		FeeRate:        feeRate,
		FeeOnDraw:      feeOnDraw,
	})
	require.NoError(t, err)
}

func commitment(t *testing.T, choice types.Choice, salt []byte) []byte {
	t.Helper()
	preimage, err := types.CommitmentPreimage(choice, salt)
	require.NoError(t, err)
	digest, err := types.ComputeCommitment(preimage)
	require.NoError(t, err)
	return digest
}

func testSalt(fill byte) []byte {
	salt := make([]byte, types.SaltLength)
	for i := range salt {
		salt[i] = fill
	}
	return salt
}

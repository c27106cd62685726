package keeper

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"cosmossdk.io/collections"
	collcodec "cosmossdk.io/collections/codec"
	"cosmossdk.io/core/address"
	"cosmossdk.io/core/store"
	"cosmossdk.io/log"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"rpschain/x/rps/types"
)

// Keeper owns the match protocol state: the Settings singleton and the Game
// records, both stored as JSON through hand-written collection codecs.
type Keeper struct {
	storeService store.KVStoreService
	addressCodec address.Codec
	bankKeeper   types.BankKeeper

	Schema   collections.Schema
	Settings collections.Item[types.Settings]
	Games    collections.Map[collections.Pair[string, string], types.Game]
}

var (
	_ collcodec.ValueCodec[types.Settings] = jsonValueCodec[types.Settings]{}
	_ collcodec.ValueCodec[types.Game]     = jsonValueCodec[types.Game]{}
)

// jsonValueCodec stores values as their JSON encoding. Module state is not
// backed by generated proto types, so JSON is the storage format throughout.
type jsonValueCodec[T any] struct {
	name string
}

func (c jsonValueCodec[T]) Encode(value T) ([]byte, error) { return json.Marshal(value) }
func (c jsonValueCodec[T]) Decode(bz []byte) (T, error) {
	var v T
	return v, json.Unmarshal(bz, &v)
}
func (c jsonValueCodec[T]) EncodeJSON(value T) ([]byte, error) { return c.Encode(value) }
func (c jsonValueCodec[T]) DecodeJSON(bz []byte) (T, error)    { return c.Decode(bz) }
func (c jsonValueCodec[T]) Stringify(value T) string {
	bz, err := json.Marshal(value)
	if err != nil {
		return fmt.Sprintf("%v", value)
	}
	return string(bz)
}
func (c jsonValueCodec[T]) ValueType() string { return c.name }

func NewKeeper(
	storeService store.KVStoreService,
	addressCodec address.Codec,
	bankKeeper types.BankKeeper,
) Keeper {
	sb := collections.NewSchemaBuilder(storeService)

	k := Keeper{
		storeService: storeService,
		addressCodec: addressCodec,
		bankKeeper:   bankKeeper,

		Settings: collections.NewItem(sb, types.SettingsKey, "settings", jsonValueCodec[types.Settings]{name: "rps/Settings"}),
		Games: collections.NewMap(sb, types.GameKeyPrefix, "games",
			collections.PairKeyCodec(collections.StringKey, collections.StringKey),
			jsonValueCodec[types.Game]{name: "rps/Game"}),
	}

	schema, err := sb.Build()
	if err != nil {
		panic(err)
	}
	k.Schema = schema

	return k
}

// Logger returns a module-scoped logger.
func (k Keeper) Logger(ctx context.Context) log.Logger {
	return sdk.UnwrapSDKContext(ctx).Logger().With("module", "x/"+types.ModuleName)
}

// GetSettings returns the settings singleton, failing when it was never
// initialized. Settings are always read live; games never cache them.
func (k Keeper) GetSettings(ctx context.Context) (types.Settings, error) {
	s, err := k.Settings.Get(ctx)
	if err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return types.Settings{}, types.ErrSettingsNotInitialized
		}
		return types.Settings{}, err
	}
	return s, nil
}

// GetGame loads one game by its (creator, game_id) identifier.
func (k Keeper) GetGame(ctx context.Context, creator, gameID string) (types.Game, error) {
	g, err := k.Games.Get(ctx, collections.Join(creator, gameID))
	if err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return types.Game{}, types.ErrGameNotFound
		}
		return types.Game{}, err
	}
	return g, nil
}

// SetGame stores a game under its identifier.
func (k Keeper) SetGame(ctx context.Context, g types.Game) error {
	return k.Games.Set(ctx, collections.Join(g.Creator, g.GameId), g)
}

// HasGame reports whether a game exists for the identifier.
func (k Keeper) HasGame(ctx context.Context, creator, gameID string) (bool, error) {
	return k.Games.Has(ctx, collections.Join(creator, gameID))
}

// blockNow returns the ledger clock: consensus block time in unix seconds.
func blockNow(ctx context.Context) int64 {
	return sdk.UnwrapSDKContext(ctx).BlockTime().Unix()
}

package types

import (
	"github.com/cosmos/cosmos-sdk/codec"
	codectypes "github.com/cosmos/cosmos-sdk/codec/types"
)

func RegisterLegacyAminoCodec(_ *codec.LegacyAmino) {}

// RegisterInterfaces is a no-op: module state is stored as JSON through the
// keeper's collections codecs, so nothing needs interface registration.
func RegisterInterfaces(_ codectypes.InterfaceRegistry) {}

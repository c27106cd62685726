package types

// GenesisState holds the module's full exportable state.
type GenesisState struct {
	// Settings is nil when the singleton has not been initialized yet.
	Settings *Settings `json:"settings,omitempty"`
	Games    []Game    `json:"games"`
}

func DefaultGenesis() *GenesisState {
	return &GenesisState{
		Games: []Game{},
	}
}

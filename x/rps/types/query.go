package types

import "context"

type QuerySettingsRequest struct{}

type QuerySettingsResponse struct {
	Settings Settings `json:"settings"`
}

type QueryGameRequest struct {
	Creator string `json:"creator"`
	GameId  string `json:"game_id"`
}

type QueryGameResponse struct {
	Game Game `json:"game"`
}

// QueryGamesRequest lists games, optionally filtered by creator and/or state.
type QueryGamesRequest struct {
	Creator string `json:"creator,omitempty"`
	State   string `json:"state,omitempty"`
}

type QueryGamesResponse struct {
	Games []Game `json:"games"`
}

// QueryServer is the read surface of the module.
type QueryServer interface {
	Settings(ctx context.Context, req *QuerySettingsRequest) (*QuerySettingsResponse, error)
	Game(ctx context.Context, req *QueryGameRequest) (*QueryGameResponse, error)
	Games(ctx context.Context, req *QueryGamesRequest) (*QueryGamesResponse, error)
}

package keeper

import (
	"context"
	"errors"

	"cosmossdk.io/collections"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"rpschain/x/rps/types"
)

type queryServer struct {
	Keeper
}

var _ types.QueryServer = queryServer{}

func NewQueryServerImpl(k Keeper) types.QueryServer {
	return queryServer{Keeper: k}
}

func (q queryServer) Settings(ctx context.Context, _ *types.QuerySettingsRequest) (*types.QuerySettingsResponse, error) {
	s, err := q.GetSettings(ctx)
	if err != nil {
		if errors.Is(err, types.ErrSettingsNotInitialized) {
			return nil, status.Error(codes.NotFound, "settings not initialized")
		}
		return nil, err
	}
	return &types.QuerySettingsResponse{Settings: s}, nil
}

func (q queryServer) Game(ctx context.Context, req *types.QueryGameRequest) (*types.QueryGameResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}
	g, err := q.GetGame(ctx, req.Creator, req.GameId)
	if err != nil {
		if errors.Is(err, types.ErrGameNotFound) {
			return nil, status.Error(codes.NotFound, "game not found")
		}
		return nil, err
	}
	return &types.QueryGameResponse{Game: g}, nil
}

func (q queryServer) Games(ctx context.Context, req *types.QueryGamesRequest) (*types.QueryGamesResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}

	// rng stays a nil interface for the unfiltered walk
	var rng collections.Ranger[collections.Pair[string, string]]
	if req.Creator != "" {
		rng = collections.NewPrefixedPairRange[string, string](req.Creator)
	}

	games := []types.Game{}
	err := q.Keeper.Games.Walk(ctx, rng, func(_ collections.Pair[string, string], g types.Game) (bool, error) {
		if req.State == "" || g.State == req.State {
			games = append(games, g)
		}
		return false, nil
	})
	if err != nil {
		return nil, err
	}
	return &types.QueryGamesResponse{Games: games}, nil
}

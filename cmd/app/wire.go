//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"

	"github.com/pbryant/clueboard/internal/bootstrap"
	"github.com/pbryant/clueboard/internal/domain/answer"
	"github.com/pbryant/clueboard/internal/domain/game"
	"github.com/pbryant/clueboard/internal/infra/config"
	httpiface "github.com/pbryant/clueboard/internal/interface/http"
	"github.com/pbryant/clueboard/pkg/logger"
)

func initializeApp() (*bootstrap.App, error) {
	wire.Build(
		config.Load,
		logger.New,
		provideAnswerConfig,
		provideGameConfig,
		provideChatClient,
		provideClueRepository,
		provideScoreStore,
		answer.NewService,
		game.NewService,
		httpiface.NewHandler,
		httpiface.NewRouter,
		bootstrap.NewApp,
	)
	return nil, nil
}

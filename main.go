package main

import (
	api "portfolio-web/cmd/api"
	"portfolio-web/internal/auth/events"
	authusecase "portfolio-web/internal/auth/usecase"
	postusecase "portfolio-web/internal/post/usecase"
	projectusecase "portfolio-web/internal/project/usecase"
	"portfolio-web/internal/session/repository"
	"portfolio-web/pkg/config"
	"portfolio-web/pkg/logger"
	"portfolio-web/pkg/revalidate"
	"portfolio-web/pkg/upstream"
)

func main() {
	cfg := config.Load()
	log := logger.Setup(cfg.LogLevel, cfg.Dev)

	// Shared infrastructure
	sessions := repository.NewCookieSessionRepository(cfg.SessionMaxAge, cfg.SecureCookies, log)
	store := revalidate.NewMemoryStore()
	apiClient := upstream.NewClient(cfg.BaseAPI, log)
	broadcaster := events.NewBroadcaster()

	// Use cases (dependency injection)
	authUc := authusecase.NewAuthUsecase(apiClient, log)
	projectUc := projectusecase.NewProjectUsecase(apiClient, store, log)
	postUc := postusecase.NewPostUsecase(apiClient, store, log)

	handler := api.NewHandler(cfg, log, sessions, authUc, projectUc, postUc, broadcaster)

	log.Info().Str("port", cfg.Port).Str("base_api", cfg.BaseAPI).Msg("server starting")
	if err := handler.Start(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}

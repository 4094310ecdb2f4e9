package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/opdbook/formkit/handler"
	"github.com/opdbook/formkit/pkg/config"
	"github.com/opdbook/formkit/pkg/httpserver"
	"github.com/opdbook/formkit/pkg/logger"
	"github.com/opdbook/formkit/pkg/validator"
)

type appConfig struct {
	Env             string `env:"APP_ENV" envDefault:"development"`
	EmailPolicyPath string `env:"EMAIL_POLICY_PATH"`

	HTTP httpserver.Config
}

func main() {
	var cfg appConfig
	config.MustLoad(&cfg)

	log := logger.New(logger.WithEnvironment(cfg.Env, "formkitd"))
	logger.SetAsDefault(log)

	policy := validator.DefaultEmailPolicy()
	if cfg.EmailPolicyPath != "" {
		loaded, err := config.LoadEmailPolicy(cfg.EmailPolicyPath)
		if err != nil {
			log.Error("failed to load email policy", slog.Any("error", err))
			os.Exit(1)
		}
		policy = loaded
		log.Info("email policy loaded",
			slog.String("path", cfg.EmailPolicyPath),
			slog.Int("tlds", len(policy.AllowedTLDs)))
	}

	svc := handler.NewService(
		handler.WithLogger(log),
		handler.WithEmailPolicy(policy),
	)

	srv := httpserver.New(cfg.HTTP, httpserver.WithLogger(log))
	if err := srv.Run(context.Background(), svc.Router()); err != nil {
		log.Error("server exited", slog.Any("error", err))
		os.Exit(1)
	}
}

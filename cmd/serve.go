package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"jobboard/internal/api"
	"jobboard/internal/api/handler/v1handler"
	"jobboard/internal/application"
	"jobboard/internal/auth"
	"jobboard/internal/config"
	"jobboard/internal/employer"
	"jobboard/internal/jobseeker"
	"jobboard/internal/notification"
	"jobboard/internal/posting"
	"jobboard/pkg/logger"
	"jobboard/pkg/storage"
	"jobboard/pkg/upload"
)

// buildDeps wires the service graph on top of the given storage. The
// notification broadcaster is created here and handed to the service
// explicitly.
func buildDeps(ctx context.Context, cfg *config.Config, strg storage.Storage) api.Deps {
	hasher := auth.NewPasswordHasher(cfg.Auth.BcryptCost)
	tokens := auth.NewTokenManager(auth.NewOptions(cfg))
	broadcaster := notification.NewBroadcaster()

	uploads, err := upload.NewLocalStore(cfg.Uploads.Directory, cfg.Uploads.BaseURL, cfg.Uploads.MaxSize)
	if err != nil {
		logger.Fatal(ctx, "could not create upload store", zap.Error(err))
	}

	return api.Deps{
		Deps: v1handler.Deps{
			Employers:     employer.New(strg, hasher, tokens),
			JobSeekers:    jobseeker.New(strg, hasher, tokens),
			Postings:      posting.New(strg),
			Applications:  application.New(strg),
			Notifications: notification.New(strg, broadcaster),
			Tokens:        tokens,
			Uploads:       uploads,
		},
	}
}

func serveCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Starts the job board API server",
		Run: func(cmd *cobra.Command, args []string) {
			ctx, _ := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			opts := api.NewOptions(cfg)
			server := api.NewServer(buildDeps(ctx, cfg, strg), opts)

			go func() {
				logger.Info(ctx, "starting webserver...", zap.String("addr", opts.Addr))
				if err := server.Listen(opts.Addr); err != nil {
					logger.Error(ctx, "could not start webserver", zap.Error(err))
				}
			}()

			// wait for interrupt
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.GracefulShutdownTimeout)
			defer cancel()

			logger.Info(ctx, "stopping webserver...")
			if err := server.ShutdownWithContext(shutdownCtx); err != nil {
				logger.Error(ctx, "could not stop webserver", zap.Error(err))
			}
		},
	}

	return cmd
}

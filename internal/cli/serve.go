package cli

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/soyeahso/cineco/internal/archive"
	"github.com/soyeahso/cineco/internal/chat"
	"github.com/soyeahso/cineco/internal/config"
	"github.com/soyeahso/cineco/internal/gateway"
	"github.com/soyeahso/cineco/internal/llm"
	"github.com/soyeahso/cineco/internal/tools"
	"github.com/soyeahso/cineco/internal/youtube"
	"github.com/spf13/cobra"
)

func newServeCmd() *cobra.Command {
	var (
		port      int
		bind      string
		staticDir string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the Cineco server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(paths.Config)
			if err != nil {
				return err
			}

			if port != 0 {
				cfg.Server.Port = port
			}
			if bind != "" {
				cfg.Server.Bind = bind
			}
			if staticDir != "" {
				cfg.Server.StaticDir = staticDir
			}

			issues := config.Validate(&cfg)
			if len(issues) > 0 {
				for _, issue := range issues {
					log.Error().Str("path", issue.Path).Msg(issue.Message)
				}
				return fmt.Errorf("config validation failed with %d issue(s)", len(issues))
			}

			// Block until SIGINT/SIGTERM
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			archiveClient := archive.NewClient(log)

			registry := tools.NewRegistry(log)
			registry.Register(tools.NewSearchArchive(archiveClient))
			registry.Register(tools.NewItemDetails(archiveClient))
			registry.Register(tools.NewCurateMovies(archiveClient))

			if cfg.YouTube.APIKey != "" {
				ytClient, err := youtube.New(ctx, cfg.YouTube.APIKey, log)
				if err != nil {
					return fmt.Errorf("initializing youtube client: %w", err)
				}
				registry.Register(tools.NewSearchYouTube(ytClient))
			} else {
				log.Warn().Msg("no YouTube API key — search_youtube will be unavailable")
			}

			provider := llm.NewOpenAIClient(cfg.OpenAI.APIKey, cfg.OpenAI.Model, cfg.OpenAI.BaseURL)
			chatter := chat.NewOrchestrator(provider, cfg.OpenAI.Model, registry, log)
			log.Info().Str("provider", provider.Name()).Str("model", cfg.OpenAI.Model).Msg("chat enabled")

			srv := gateway.New(cfg, log, chatter, archiveClient)
			return srv.Start(ctx)
		},
	}

	cmd.Flags().IntVar(&port, "port", 0, "override server port")
	cmd.Flags().StringVar(&bind, "bind", "", "override bind mode (loopback, lan, custom)")
	cmd.Flags().StringVar(&staticDir, "static-dir", "", "override static frontend directory")

	return cmd
}

package cli

import (
	"fmt"

	"github.com/soyeahso/cineco/internal/config"
	"github.com/soyeahso/cineco/internal/version"
	"github.com/spf13/cobra"
)

func newStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show Cineco status and configuration summary",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Printf("Cineco %s (commit %s)\n\n", version.Version, version.Commit)

			fmt.Printf("Config:  %s\n", paths.Config)
			fmt.Printf("Logs:    %s\n", paths.Logs)
			fmt.Println()

			cfg, err := config.Load(paths.Config)
			if err != nil {
				fmt.Printf("Config:  error loading: %v\n", err)
				return nil
			}

			fmt.Printf("Server:  port=%d bind=%s static=%s\n",
				cfg.Server.Port, cfg.Server.Bind, cfg.Server.StaticDir)
			fmt.Printf("Model:   %s\n", cfg.OpenAI.Model)

			if cfg.OpenAI.APIKey != "" {
				fmt.Println("OpenAI:  key configured")
			} else {
				fmt.Println("OpenAI:  key missing")
			}
			if cfg.YouTube.APIKey != "" {
				fmt.Println("YouTube: key configured")
			} else {
				fmt.Println("YouTube: key missing (search_youtube disabled)")
			}

			issues := config.Validate(&cfg)
			if len(issues) > 0 {
				fmt.Printf("\nValidation issues (%d):\n", len(issues))
				for _, issue := range issues {
					fmt.Printf("  - %s: %s\n", issue.Path, issue.Message)
				}
			}

			return nil
		},
	}

	return cmd
}

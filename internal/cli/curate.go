package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/soyeahso/cineco/internal/archive"
	"github.com/spf13/cobra"
)

func newCurateCmd() *cobra.Command {
	var (
		minViews int
		limit    int
	)

	cmd := &cobra.Command{
		Use:   "curate",
		Short: "Print a curated list of popular, well-reviewed films as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if minViews < 0 {
				return fmt.Errorf("--min-views must be >= 0")
			}
			if limit <= 0 {
				return fmt.Errorf("--limit must be > 0")
			}

			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()

			client := archive.NewClient(log)
			items, err := client.Curate(ctx, minViews, limit)
			if err != nil {
				return fmt.Errorf("curate failed: %w", err)
			}

			if len(items) == 0 {
				fmt.Println("[]")
				return nil
			}

			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(items)
		},
	}

	cmd.Flags().IntVar(&minViews, "min-views", 10000, "minimum download count")
	cmd.Flags().IntVar(&limit, "limit", 20, "maximum number of films")

	return cmd
}

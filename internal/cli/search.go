package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/soyeahso/cineco/internal/archive"
	"github.com/spf13/cobra"
)

func newSearchCmd() *cobra.Command {
	var rows int

	cmd := &cobra.Command{
		Use:   "search [query]",
		Short: "Search the Internet Archive for films and print the results as JSON",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := strings.Join(args, " ")

			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()

			client := archive.NewClient(log)
			items, err := client.Search(ctx, query, rows)
			if err != nil {
				return fmt.Errorf("search failed: %w", err)
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

	cmd.Flags().IntVar(&rows, "rows", 15, "maximum number of results")

	return cmd
}

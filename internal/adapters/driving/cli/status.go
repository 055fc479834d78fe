package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var statusJSON bool

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show indexing status",
	Long: `Shows the current indexing status: how many records are live in the
index and how many ingestions committed, queued or failed since the
last full-discovery pass.`,
	RunE: runStatus,
}

func init() {
	statusCmd.Flags().BoolVar(&statusJSON, "json", false, "output status as JSON")
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, _ []string) error {
	if engine == nil {
		return errors.New("discovery engine not configured")
	}
	seedIndex(cmd)

	status, err := engine.Status(cmd.Context())
	if err != nil {
		return fmt.Errorf("reading status: %w", err)
	}

	if statusJSON {
		data, err := json.MarshalIndent(status, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal status: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	cmd.Println(titleStyle.Render("Indexing Status"))
	cmd.Printf("  Total:   %d\n", status.TotalContent)
	cmd.Printf("  Indexed: %d\n", status.IndexedContent)
	cmd.Printf("  Pending: %d\n", status.PendingContent)
	cmd.Printf("  Failed:  %d\n", status.FailedContent)
	if status.LastIndexed != nil {
		cmd.Printf("  Last indexed: %s\n", status.LastIndexed.Format("2006-01-02 15:04:05"))
	} else {
		cmd.Println(mutedStyle.Render("  Nothing indexed yet"))
	}
	return nil
}

package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/probe-labs/scout-cli/internal/core/domain"
)

var (
	searchCategory string
	searchPriority string
	searchType     string
	searchLimit    int
	searchJSON     bool
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search the content index",
	Long: `Searches the discovered content index by keyword.
Results are ranked by how often the query words occur in each record's
searchable text. Filters narrow results by classification or type.`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().StringVar(&searchCategory, "category", "", "filter by category (dashboard, service, metric, user, system, unknown)")
	searchCmd.Flags().StringVar(&searchPriority, "priority", "", "filter by priority (high, medium, low)")
	searchCmd.Flags().StringVar(&searchType, "type", "", "filter by content type")
	searchCmd.Flags().IntVarP(&searchLimit, "limit", "n", 10, "maximum number of results")
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "output results as JSON")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	query := args[0]

	if engine == nil {
		return errors.New("discovery engine not configured")
	}
	seedIndex(cmd)

	filters := domain.SearchFilters{
		Category: domain.Category(searchCategory),
		Priority: domain.Priority(searchPriority),
		Type:     domain.ContentType(searchType),
	}

	results, err := engine.Search(cmd.Context(), query, filters)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}
	if searchLimit > 0 && len(results) > searchLimit {
		results = results[:searchLimit]
	}

	if searchJSON {
		return outputSearchJSON(cmd, results)
	}
	return outputSearchTable(cmd, results)
}

func outputSearchJSON(cmd *cobra.Command, results []domain.SearchResult) error {
	data, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputSearchTable(cmd *cobra.Command, results []domain.SearchResult) error {
	if len(results) == 0 {
		cmd.Println("No results found.")
		return nil
	}

	cmd.Println(titleStyle.Render("Results:"))
	cmd.Println()
	for i := range results {
		record := results[i].Record
		title := record.Title
		if title == "" {
			title = record.ID
		}

		priority := string(record.Classification.Priority)
		cmd.Printf("  [%d] %s (%d)\n", i+1, title, results[i].Relevance)
		cmd.Printf("      %s\n", mutedStyle.Render(fmt.Sprintf("%s | %s | %s",
			record.Source, record.Classification.Category,
			priorityStyle(priority).Render(priority))))
		if record.Text != "" {
			cmd.Printf("      %s\n", snippet(record.Text))
		}
		cmd.Println()
	}
	return nil
}

// snippet truncates text for single-line table display.
func snippet(text string) string {
	const max = 80
	runes := []rune(text)
	if len(runes) <= max {
		return text
	}
	return string(runes[:max]) + "..."
}

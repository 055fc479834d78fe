package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

var insightsJSON bool

var insightsCmd = &cobra.Command{
	Use:   "insights",
	Short: "Summarise the content index",
	Long: `Shows aggregate insights over the content index: distributions by
type, category and priority, relationship graph statistics, and
heuristic recommendations.`,
	RunE: runInsights,
}

func init() {
	insightsCmd.Flags().BoolVar(&insightsJSON, "json", false, "output insights as JSON")
	rootCmd.AddCommand(insightsCmd)
}

func runInsights(cmd *cobra.Command, _ []string) error {
	if engine == nil {
		return errors.New("discovery engine not configured")
	}
	seedIndex(cmd)

	insights, err := engine.Insights(cmd.Context())
	if err != nil {
		return fmt.Errorf("reading insights: %w", err)
	}

	if insightsJSON {
		data, err := json.MarshalIndent(insights, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal insights: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	cmd.Println(titleStyle.Render("Content Insights"))
	cmd.Printf("  Records: %d\n", insights.Status.TotalContent)
	cmd.Println()

	printDistribution(cmd, "By category", toCounts(insights.ByCategory))
	printDistribution(cmd, "By priority", toCounts(insights.ByPriority))
	printDistribution(cmd, "By type", toCounts(insights.ByType))

	cmd.Println(titleStyle.Render("Relationships"))
	cmd.Printf("  Edges: %d (%.2f per record)\n",
		insights.Relationships.TotalEdges,
		insights.Relationships.AverageEdgesPerRecord)
	cmd.Println()

	if len(insights.Recommendations) > 0 {
		cmd.Println(titleStyle.Render("Recommendations"))
		for _, rec := range insights.Recommendations {
			cmd.Printf("  - %s\n", rec)
		}
	}
	return nil
}

// toCounts flattens a typed count map to sortable label pairs.
func toCounts[K ~string](m map[K]int) []labelledCount {
	counts := make([]labelledCount, 0, len(m))
	for key, count := range m {
		counts = append(counts, labelledCount{label: string(key), count: count})
	}
	sort.Slice(counts, func(i, j int) bool {
		if counts[i].count != counts[j].count {
			return counts[i].count > counts[j].count
		}
		return counts[i].label < counts[j].label
	})
	return counts
}

type labelledCount struct {
	label string
	count int
}

func printDistribution(cmd *cobra.Command, header string, counts []labelledCount) {
	if len(counts) == 0 {
		return
	}
	cmd.Println(titleStyle.Render(header))
	for _, c := range counts {
		cmd.Printf("  %-12s %d\n", c.label, c.count)
	}
	cmd.Println()
}

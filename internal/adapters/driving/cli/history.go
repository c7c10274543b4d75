package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/rephrase-cli/internal/core/domain"
)

var (
	historyLimit int
	historyJSON  bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Browse past transformations",
	RunE:  runHistoryList,
}

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent transformations",
	RunE:  runHistoryList,
}

var historyShowCmd = &cobra.Command{
	Use:   "show [id]",
	Short: "Show one transformation in full",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistoryShow,
}

func init() {
	historyCmd.PersistentFlags().BoolVar(&historyJSON, "json", false, "output as JSON")
	historyListCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "maximum entries to list")
	historyCmd.AddCommand(historyListCmd)
	historyCmd.AddCommand(historyShowCmd)
	rootCmd.AddCommand(historyCmd)
}

func runHistoryList(cmd *cobra.Command, _ []string) error {
	if historyStore == nil {
		return errors.New("history is disabled")
	}

	entries, err := historyStore.List(cmd.Context(), historyLimit)
	if err != nil {
		return fmt.Errorf("listing history: %w", err)
	}

	if historyJSON {
		data, err := json.MarshalIndent(entries, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal history: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	if len(entries) == 0 {
		cmd.Println("No history yet.")
		return nil
	}

	for i := range entries {
		e := &entries[i]
		applied := "none"
		if len(e.AppliedTransforms) > 0 {
			applied = strings.Join(e.AppliedTransforms, ",")
		}
		cmd.Printf("  %s  %s  i=%.2f  [%s]\n",
			shortID(e.ID),
			e.CreatedAt.Local().Format("2006-01-02 15:04"),
			e.Intensity,
			applied,
		)
		cmd.Printf("      %s\n", snippet(e.Original, 60))
	}
	return nil
}

func runHistoryShow(cmd *cobra.Command, args []string) error {
	if historyStore == nil {
		return errors.New("history is disabled")
	}

	entry, err := historyStore.Get(cmd.Context(), args[0])
	if errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("no history entry %s", args[0])
	}
	if err != nil {
		return fmt.Errorf("loading history entry: %w", err)
	}

	if historyJSON {
		data, err := json.MarshalIndent(entry, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal entry: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	cmd.Printf("ID:        %s\n", entry.ID)
	cmd.Printf("Created:   %s\n", entry.CreatedAt.Local().Format("2006-01-02 15:04:05"))
	cmd.Printf("Intensity: %.2f\n", entry.Intensity)
	if len(entry.AppliedTransforms) > 0 {
		cmd.Printf("Applied:   %s\n", strings.Join(entry.AppliedTransforms, ", "))
	} else {
		cmd.Println("Applied:   none")
	}
	cmd.Println()
	cmd.Println(headingStyle.Render("Original"))
	cmd.Println(entry.Original)
	cmd.Println()
	cmd.Println(headingStyle.Render("Transformed"))
	cmd.Println(entry.Transformed)
	cmd.Println()
	cmd.Println(renderMetrics(entry.Metrics))
	return nil
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func snippet(text string, maxRunes int) string {
	runes := []rune(strings.ReplaceAll(text, "\n", " "))
	if len(runes) <= maxRunes {
		return string(runes)
	}
	return string(runes[:maxRunes]) + "..."
}

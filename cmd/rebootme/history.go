package rebootme

import (
	"database/sql"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/disneysandhya1/RebootMe-Backend/internal/history"
	"github.com/disneysandhya1/RebootMe-Backend/internal/report"
	"github.com/disneysandhya1/RebootMe-Backend/internal/service"
)

var (
	historyFormat string
	historyPDF    string
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show saved check-ins",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withHistory(func(_ *sql.DB, log history.Log) error {
			entries, err := log.ReadAll()
			if err != nil {
				return err
			}
			if historyPDF != "" {
				if err := report.WriteHistoryPDF(historyPDF, entries, now()); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Wrote history report to %s\n", historyPDF)
				return nil
			}

			out := cmd.OutOrStdout()
			switch strings.ToLower(strings.TrimSpace(historyFormat)) {
			case "", "table":
				fmt.Fprintln(out, "DATE\tMOOD\tWATER\tSTRETCHED")
				for _, e := range entries {
					fmt.Fprintf(out, "%s\t%d %s\t%d\t%s\n", e.Timestamp.Local().Format("2006-01-02 15:04"), e.Mood, e.Mood.Emoji(), e.Water, yesNo(e.Stretched))
				}
				sum := service.Summarize(entries)
				fmt.Fprintf(out, "Check-ins: %d | Avg mood: %.1f | Avg water: %.1f | Stretched: %.0f%%\n", sum.Entries, sum.AverageMood, sum.AverageWater, sum.StretchRate*100)
			case "csv":
				w := csv.NewWriter(out)
				if err := w.Write([]string{"timestamp", "mood", "water", "stretched"}); err != nil {
					return fmt.Errorf("write history csv header: %w", err)
				}
				for _, e := range entries {
					record := []string{
						e.Timestamp.Format(time.RFC3339),
						strconv.Itoa(int(e.Mood)),
						strconv.Itoa(e.Water),
						strconv.FormatBool(e.Stretched),
					}
					if err := w.Write(record); err != nil {
						return fmt.Errorf("write history csv row: %w", err)
					}
				}
				w.Flush()
				if err := w.Error(); err != nil {
					return fmt.Errorf("flush history csv: %w", err)
				}
			case "json":
				b, err := json.MarshalIndent(entries, "", "  ")
				if err != nil {
					return fmt.Errorf("marshal history json: %w", err)
				}
				fmt.Fprintln(out, string(b))
			default:
				return fmt.Errorf("unsupported --format %q (use table, csv, or json)", historyFormat)
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().StringVar(&historyFormat, "format", "table", "Output format: table, csv, or json")
	historyCmd.Flags().StringVar(&historyPDF, "pdf", "", "Write a PDF report to this path instead")
}

package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"daybook/internal/ui"
	"daybook/stats"
)

// daybook stats
var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show task statistics and week-over-week trends",
	Args:  cobra.NoArgs,
	RunE:  runStats,
}

var statsJSON bool

func init() {
	rootCmd.AddCommand(statsCmd)
	statsCmd.Flags().BoolVar(&statsJSON, "json", false, "Output as JSON")
}

type statsReport struct {
	Summary        stats.Summary      `json:"summary"`
	Dates          stats.DateSummary  `json:"dates"`
	Productivity   stats.Productivity `json:"productivity"`
	CompletionRate int                `json:"completionRate"`
	Trends         map[string]string  `json:"trends"`
}

func runStats(cmd *cobra.Command, args []string) error {
	store, _, err := openStore()
	if err != nil {
		return err
	}
	now := time.Now()
	tasks := store.Tasks()

	summary := stats.Summarize(tasks)
	dates := stats.SummarizeDates(tasks, now)
	productivity := stats.Measure(tasks, now)
	rate := stats.CompletionRate(tasks)

	previous := stats.PreviousWeekTasks(tasks, now)
	prevDates := stats.SummarizeDates(previous, previousWeekReference(now))
	trends := map[string]string{}
	if trend, ok := stats.CalculateTrend(dates.CompletedThisWeek, prevDates.CompletedThisWeek); ok {
		trends["completedWeek"] = string(trend.Direction) + " " + trend.Label
	}

	if statsJSON {
		return encodeJSONToStdout(statsReport{
			Summary:        summary,
			Dates:          dates,
			Productivity:   productivity,
			CompletionRate: rate,
			Trends:         trends,
		})
	}

	fmt.Println(ui.Bold("Tasks"))
	fmt.Printf("  total      %d\n", summary.Total)
	fmt.Printf("  active     %d\n", summary.Active)
	fmt.Printf("  completed  %d (%d%%)\n", summary.Completed, rate)
	fmt.Printf("  important  %d\n", summary.Important)
	fmt.Printf("  planned    %d\n", summary.Planned)

	fmt.Println(ui.Bold("Today"))
	fmt.Printf("  due today        %d\n", dates.DueToday)
	fmt.Printf("  overdue          %d\n", dates.Overdue)
	fmt.Printf("  completed today  %d\n", dates.CompletedToday)
	fmt.Printf("  completed week   %d %s\n", dates.CompletedThisWeek, trendCell(trends["completedWeek"]))

	fmt.Println(ui.Bold("Productivity"))
	fmt.Printf("  avg completion   %.1fh\n", productivity.AvgCompletionHours)
	fmt.Printf("  creation rate    %.1f/day\n", productivity.CreationRate)
	fmt.Printf("  daily average    %.1f/day\n", productivity.DailyAverage)
	fmt.Printf("  streak           %s\n", countLabel(productivity.Streak, "day", "days"))
	return nil
}

func trendCell(trend string) string {
	if trend == "" {
		return ""
	}
	direction, label, _ := strings.Cut(trend, " ")
	return ui.TrendArrow(direction) + " " + ui.Muted(label)
}

// previousWeekReference returns a time inside the previous calendar week
// so date summaries computed over baseline tasks use that week's bounds.
func previousWeekReference(now time.Time) time.Time {
	return now.AddDate(0, 0, -7)
}

func countLabel(n int, singular, plural string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, singular)
	}
	return fmt.Sprintf("%d %s", n, plural)
}

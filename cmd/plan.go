package cmd

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/maelqr/studyload/core/model"
)

var (
	planTasksPath string
	planDate      string

	dailyHours  float64
	weekBudgets []string
	spreadDays  int
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Generate study schedules from a task batch",
}

var planDailyCmd = &cobra.Command{
	Use:   "daily",
	Short: "Pack tasks into a single day's budget",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := newService()
		if err != nil {
			return err
		}
		defer svc.Close()
		tasks, err := loadTasks(planTasksPath)
		if err != nil {
			return err
		}
		start, err := planStart()
		if err != nil {
			return err
		}
		day := svc.PlanDaily(svc.Enrich(tasks, start), dailyHours, start)
		return printJSON(day)
	},
}

var planWeeklyCmd = &cobra.Command{
	Use:   "weekly",
	Short: "Pack tasks into a seven-day window",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := newService()
		if err != nil {
			return err
		}
		defer svc.Close()
		tasks, err := loadTasks(planTasksPath)
		if err != nil {
			return err
		}
		start, err := planStart()
		if err != nil {
			return err
		}
		budgets, err := parseBudgets(weekBudgets)
		if err != nil {
			return err
		}
		week, analysis, recs := svc.PlanWeekly(svc.Enrich(tasks, start), budgets, start)
		return printJSON(struct {
			Schedule        model.WeeklySchedule   `json:"schedule"`
			Analysis        model.WorkloadAnalysis `json:"analysis"`
			Recommendations []string               `json:"recommendations"`
		}{week, analysis, recs})
	},
}

var planSpreadCmd = &cobra.Command{
	Use:   "spread",
	Short: "Balance whole tasks across a multi-day plan",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := newService()
		if err != nil {
			return err
		}
		defer svc.Close()
		tasks, err := loadTasks(planTasksPath)
		if err != nil {
			return err
		}
		start, err := planStart()
		if err != nil {
			return err
		}
		plan, analysis, recs := svc.PlanSpread(svc.Enrich(tasks, start), start, spreadDays)
		return printJSON(struct {
			Plan            model.Plan             `json:"plan"`
			Analysis        model.WorkloadAnalysis `json:"analysis"`
			Recommendations []string               `json:"recommendations"`
		}{plan, analysis, recs})
	},
}

func init() {
	planCmd.PersistentFlags().StringVarP(&planTasksPath, "tasks", "t", "tasks.json", "JSON file with the task batch")
	planCmd.PersistentFlags().StringVar(&planDate, "date", "", "start date (YYYY-MM-DD, default today)")
	planDailyCmd.Flags().Float64Var(&dailyHours, "hours", 4.0, "available study hours for the day")
	planWeeklyCmd.Flags().StringSliceVar(&weekBudgets, "budget", nil, "per-day budget as day=hours (e.g. monday=3)")
	planSpreadCmd.Flags().IntVar(&spreadDays, "days", 0, "plan length in days (0 uses the configured horizon)")
	planCmd.AddCommand(planDailyCmd, planWeeklyCmd, planSpreadCmd)
	rootCmd.AddCommand(planCmd)
}

func planStart() (time.Time, error) {
	if planDate == "" {
		return time.Now(), nil
	}
	d, err := time.Parse(model.DateLayout, planDate)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date: %w", err)
	}
	return d, nil
}

// parseBudgets turns day=hours pairs into the weekly budget map.
func parseBudgets(pairs []string) (map[string]float64, error) {
	if len(pairs) == 0 {
		return nil, nil
	}
	budgets := make(map[string]float64, len(pairs))
	for _, p := range pairs {
		day, val, ok := strings.Cut(p, "=")
		if !ok {
			return nil, fmt.Errorf("invalid budget %q, expected day=hours", p)
		}
		hours, err := strconv.ParseFloat(val, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid budget %q: %w", p, err)
		}
		budgets[strings.ToLower(strings.TrimSpace(day))] = hours
	}
	return budgets, nil
}

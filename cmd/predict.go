package cmd

import (
	"time"

	"github.com/spf13/cobra"
)

var predictTasksPath string

var predictCmd = &cobra.Command{
	Use:   "predict",
	Short: "Score a task batch without scheduling it",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := newService()
		if err != nil {
			return err
		}
		defer svc.Close()
		tasks, err := loadTasks(predictTasksPath)
		if err != nil {
			return err
		}
		return printJSON(svc.Enrich(tasks, time.Now()))
	},
}

func init() {
	predictCmd.Flags().StringVarP(&predictTasksPath, "tasks", "t", "tasks.json", "JSON file with the task batch")
	rootCmd.AddCommand(predictCmd)
}

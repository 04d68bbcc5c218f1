package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/maelqr/studyload/core/estimate"
)

var trainFeedbackPath string

var trainCmd = &cobra.Command{
	Use:   "train",
	Short: "Train the hour estimator from a feedback file",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := newService()
		if err != nil {
			return err
		}
		defer svc.Close()

		data, err := os.ReadFile(trainFeedbackPath)
		if err != nil {
			return fmt.Errorf("read feedback: %w", err)
		}
		var samples []estimate.Feedback
		if err := json.Unmarshal(data, &samples); err != nil {
			return fmt.Errorf("parse feedback: %w", err)
		}
		for _, fb := range samples {
			svc.Estimator.Update(fb.Task, fb.ActualHours)
		}
		if err := svc.Estimator.Train(); err != nil {
			return fmt.Errorf("train: %w", err)
		}
		return printJSON(svc.Estimator.Stats())
	},
}

func init() {
	trainCmd.Flags().StringVarP(&trainFeedbackPath, "feedback", "f", "feedback.json", "JSON file with completed-task feedback")
	rootCmd.AddCommand(trainCmd)
}

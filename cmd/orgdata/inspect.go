package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"pkg.jsn.cam/orgdata/pkg/orgdata"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect [file]",
	Short: "Read a dataset back and print a summary",
	Args:  cobra.ExactArgs(1),
	RunE:  runInspect,
}

func runInspect(cmd *cobra.Command, args []string) error {
	records, err := orgdata.ReadFile(args[0])
	if err != nil {
		logger.Error("read failed", zap.String("path", args[0]), zap.Error(err))
		return err
	}

	s := orgdata.Summarize(records)
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "records:  %d\n", s.Records)
	fmt.Fprintf(out, "managers: %d\n", s.Managers)
	fmt.Fprintf(out, "salary:   min %d, max %d, mean %.2f\n", s.MinSalary, s.MaxSalary, s.MeanSalary)
	return nil
}

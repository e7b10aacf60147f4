package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"pkg.jsn.cam/orgdata/pkg/orgdata"
)

var reportDepth int

var reportCmd = &cobra.Command{
	Use:   "report [file]",
	Short: "Print average salaries per level and the salary discrepancy report",
	Long: `Reads a dataset, builds the reporting hierarchy and checks every manager
against 1.20x to 1.50x the average salary of the level below.

Levels deeper than --depth are only counted. With the default of 6 that is
everyone with more than 4 managers between them and the top level.`,
	Args: cobra.ExactArgs(1),
	RunE: runReport,
}

func init() {
	reportCmd.Flags().IntVarP(&reportDepth, "depth", "d", orgdata.DefaultReportDepth, "Number of levels to report in full")
}

func runReport(cmd *cobra.Command, args []string) error {
	records, err := orgdata.ReadFile(args[0])
	if err != nil {
		logger.Error("read failed", zap.String("path", args[0]), zap.Error(err))
		return err
	}

	s := orgdata.NewStructure(records)
	logger.Debug("hierarchy built", zap.Int("employees", len(records)), zap.Int("levels", s.Depth()))

	out := cmd.OutOrStdout()
	if err := orgdata.WriteLevelAverages(out, s); err != nil {
		return err
	}
	if _, err := out.Write([]byte("\n")); err != nil {
		return err
	}
	return orgdata.NewReport(s).Write(out, reportDepth)
}

package main

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"pkg.jsn.cam/orgdata/internal/config"
	"pkg.jsn.cam/orgdata/pkg/orgdata"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a dataset and overwrite the output file",
	Long: `Generates subordinates for every manager id in [--manager-min, --manager-max].
Ids start at --start-id and salaries are multiples of 100 drawn from
[--salary-min, --salary-max]. The output file is replaced on every run.

Example:
  orgdata generate --start-id 900 --manager-min 700 --manager-max 888 \
    --salary-min 12000 --salary-max 24000 -o managers.csv`,
	Args: cobra.NoArgs,
	RunE: runGenerate,
}

func addGenerateFlags(cmd *cobra.Command) {
	def := config.Default()
	cmd.Flags().Int("start-id", def.StartID, "First subordinate id")
	cmd.Flags().Int("manager-min", def.Managers.Min, "Lowest manager id (inclusive)")
	cmd.Flags().Int("manager-max", def.Managers.Max, "Highest manager id (inclusive)")
	cmd.Flags().Int("salary-min", def.SalaryMin, "Minimum salary")
	cmd.Flags().Int("salary-max", def.SalaryMax, "Maximum salary")
	cmd.Flags().StringP("output", "o", def.Output, "Output CSV path")
	cmd.Flags().Uint64("seed", 0, "Random seed (0 = unseeded)")
}

// resolveConfig loads the config file and applies only the flags the user set.
func resolveConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return config.Config{}, err
	}

	flags := cmd.Flags()
	ints := map[string]*int{
		"start-id":    &cfg.StartID,
		"manager-min": &cfg.Managers.Min,
		"manager-max": &cfg.Managers.Max,
		"salary-min":  &cfg.SalaryMin,
		"salary-max":  &cfg.SalaryMax,
	}
	for name, dst := range ints {
		if !flags.Changed(name) {
			continue
		}
		if *dst, err = flags.GetInt(name); err != nil {
			return config.Config{}, err
		}
	}
	if flags.Changed("output") {
		if cfg.Output, err = flags.GetString("output"); err != nil {
			return config.Config{}, err
		}
	}
	if flags.Changed("seed") {
		if cfg.Seed, err = flags.GetUint64("seed"); err != nil {
			return config.Config{}, err
		}
	}
	return cfg, nil
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	log := logger.With(zap.String("run_id", uuid.NewString()))
	log.Debug("generating dataset",
		zap.Int("start_id", cfg.StartID),
		zap.Int("manager_min", cfg.Managers.Min),
		zap.Int("manager_max", cfg.Managers.Max),
		zap.Int("salary_min", cfg.SalaryMin),
		zap.Int("salary_max", cfg.SalaryMax),
		zap.Uint64("seed", cfg.Seed),
	)

	n, err := orgdata.GenerateFile(orgdata.NewRand(cfg.Seed), cfg.Params, cfg.Output)
	if err != nil {
		log.Error("generation failed", zap.Error(err))
		return err
	}

	log.Info("dataset written", zap.String("output", cfg.Output), zap.Int("records", n))
	fmt.Fprintln(cmd.OutOrStdout(), "Subordinates generated successfully.")
	return nil
}

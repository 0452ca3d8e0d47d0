package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvpattern/codec"
	"github.com/katalvlaran/lvpattern/harness"
)

// verifyCommand creates the verify command.
func (c *CLI) verifyCommand() *cobra.Command {
	var (
		configPath string
		dumpDir    string
		flagCfg    = harness.DefaultConfig()
	)

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Cross-validate the resolvers on random fixtures",
		Long: `Cross-validate the resolvers on random fixtures.

Every trial draws a source and a pattern, plants the pattern, and checks that
the fast resolver finds every planted assignment and, with --oracle, returns
exactly the brute-force result. A TOML profile (--config) sets every knob;
flags given on the command line override it.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := harness.DefaultConfig()
			if configPath != "" {
				loaded, err := harness.LoadConfig(configPath)
				if err != nil {
					return err
				}
				cfg = loaded
			}
			applyChanged(cmd, &cfg, flagCfg)
			return c.runVerify(cmd.Context(), cfg, dumpDir)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "TOML verification profile")
	cmd.Flags().StringVar(&dumpDir, "dump-dir", "", "write the fixture of every failed trial to this directory")
	cmd.Flags().IntVarP(&flagCfg.Trials, "trials", "n", flagCfg.Trials, "number of trials")
	cmd.Flags().Int64Var(&flagCfg.Seed, "seed", flagCfg.Seed, "random seed")
	cmd.Flags().IntVarP(&flagCfg.Workers, "workers", "w", flagCfg.Workers, "trials run concurrently")
	cmd.Flags().BoolVar(&flagCfg.Oracle, "oracle", flagCfg.Oracle, "compare against the brute-force resolver")
	cmd.Flags().StringSliceVar(&flagCfg.Modes, "modes", flagCfg.Modes, "check modes: soft, hard")
	cmd.Flags().IntVar(&flagCfg.Plant, "plant", flagCfg.Plant, "plantings per trial")

	return cmd
}

// applyChanged copies the flags the user actually set from src into dst.
func applyChanged(cmd *cobra.Command, dst *harness.Config, src harness.Config) {
	f := cmd.Flags()
	if f.Changed("trials") {
		dst.Trials = src.Trials
	}
	if f.Changed("seed") {
		dst.Seed = src.Seed
	}
	if f.Changed("workers") {
		dst.Workers = src.Workers
	}
	if f.Changed("oracle") {
		dst.Oracle = src.Oracle
	}
	if f.Changed("modes") {
		dst.Modes = src.Modes
	}
	if f.Changed("plant") {
		dst.Plant = src.Plant
		dst.MaxAttempts = max(dst.MaxAttempts, src.Plant)
	}
}

// runVerify runs the harness and reports failures.
func (c *CLI) runVerify(ctx context.Context, cfg harness.Config, dumpDir string) error {
	p := newProgress(c.Logger)
	report, err := harness.Run(ctx, cfg, c.Logger)
	if err != nil {
		return err
	}
	p.done("verification complete", "run", report.RunID)

	failed := report.Failed()
	printKeyValue(c.Out, "run", report.RunID)
	printKeyValue(c.Out, "seed", report.Seed)
	printKeyValue(c.Out, "trials", len(report.Trials))
	printKeyValue(c.Out, "failed", len(failed))
	if len(failed) == 0 {
		printSuccess(c.Out, "fast resolver verified on %d trials", len(report.Trials))
		return nil
	}

	for _, tr := range failed {
		printError(c.Out, "trial %d (n=%d, k=%d, planted=%d)", tr.Index, tr.SourceSize, tr.PatternSize, tr.Planted)
		for _, m := range tr.Modes {
			if m.OK() {
				continue
			}
			printDetail(c.Out, "hard=%v fast=%d oracle=%d missing=%v only-fast=%v only-oracle=%v",
				m.HardCheck, m.Fast, m.Oracle, m.MissingPlanted, m.OnlyFast, m.OnlyOracle)
		}
		if dumpDir != "" {
			path, err := dumpFixture(dumpDir, tr)
			if err != nil {
				return err
			}
			printFile(c.Out, path)
		}
	}

	return fmt.Errorf("%d of %d trials: %w", len(failed), len(report.Trials), errVerificationFailed)
}

// dumpFixture writes the reproducing document of a failed trial.
func dumpFixture(dir string, tr harness.TrialResult) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create dump dir: %w", err)
	}
	path := filepath.Join(dir, fmt.Sprintf("trial-%03d.json", tr.Index))
	if err := codec.WriteFile(path, tr.Fixture); err != nil {
		return "", err
	}

	return path, nil
}

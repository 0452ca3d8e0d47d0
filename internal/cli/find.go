package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvpattern/codec"
	"github.com/katalvlaran/lvpattern/combinatorics"
	"github.com/katalvlaran/lvpattern/subgraph"
)

// findOptions carries the find flags.
type findOptions struct {
	algo       string
	hard       *bool // nil keeps the document's hard_check
	maxMatches int
	limit      int
	output     string
	show       bool
}

// findCommand creates the find command.
func (c *CLI) findCommand() *cobra.Command {
	var (
		opts findOptions
		hard bool
	)

	cmd := &cobra.Command{
		Use:   "find <fixture>",
		Short: "Find every embedding of a fixture's pattern in its source",
		Long: `Find every embedding of a fixture's pattern in its source.

The fixture is a JSON, YAML or TOML document with "source" and "pattern"
matrices (see 'generate'). The check mode comes from the document's
hard_check field unless --hard is given. When the document lists planted
assignments, find fails if any of them is missing from the results.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("hard") {
				opts.hard = &hard
			}
			return c.runFind(cmd.Context(), args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.algo, "algo", "a", subgraph.Fast.String(), "resolver: fast, brute")
	cmd.Flags().BoolVar(&hard, "hard", false, "exact matching (zero pattern cells must be zero in the source)")
	cmd.Flags().IntVar(&opts.maxMatches, "max", 0, "stop after this many matches (0 = all)")
	cmd.Flags().IntVar(&opts.limit, "limit", 20, "print at most this many matches (0 = all)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "write the fixture with its matches to this file")
	cmd.Flags().BoolVar(&opts.show, "show", false, "print the source and pattern matrices")

	return cmd
}

// runFind loads the fixture, searches it and reports the matches.
func (c *CLI) runFind(ctx context.Context, path string, opts findOptions) error {
	doc, err := codec.ReadFile(path)
	if err != nil {
		return fmt.Errorf("load fixture: %w", err)
	}
	src, pat, err := doc.Matrices()
	if err != nil {
		return fmt.Errorf("load fixture %s: %w", path, err)
	}
	algo, err := subgraph.ParseAlgorithm(opts.algo)
	if err != nil {
		return err
	}
	hard := doc.HardCheck
	if opts.hard != nil {
		hard = *opts.hard
	}
	c.Logger.Debug("loaded fixture", "path", path, "n", src.Size(), "k", pat.Size(), "hard", hard, "algo", algo)

	p := newProgress(c.Logger)
	res, err := subgraph.Find(src, pat,
		subgraph.WithAlgorithm(algo),
		subgraph.WithHardCheck(hard),
		subgraph.WithMaxMatches(opts.maxMatches),
		subgraph.WithContext(ctx),
	)
	if err != nil {
		return fmt.Errorf("search %s: %w", path, err)
	}
	p.done("search finished", "matches", res.Matches.Len(), "steps", res.Stats.Steps)

	if opts.show {
		printMatrix(c.Out, "source", src)
		printMatrix(c.Out, "pattern", pat)
	}
	printSuccess(c.Out, "%d embeddings", res.Matches.Len())
	printKeyValue(c.Out, "algorithm", algo)
	printKeyValue(c.Out, "hard check", hard)
	printKeyValue(c.Out, "steps", res.Stats.Steps)
	printKeyValue(c.Out, "degree prunes", res.Stats.DegreePrunes)
	printAssignments(c.Out, res.Matches.Sorted(), opts.limit)

	if opts.output != "" {
		doc.HardCheck = hard
		doc.SetMatches(res.Matches)
		if err = codec.WriteFile(opts.output, doc); err != nil {
			return err
		}
		printFile(c.Out, opts.output)
	}

	return checkPlanted(c, doc.PlantedAssignments(), res.Matches, opts.maxMatches > 0)
}

// checkPlanted fails when a planted assignment is absent from a complete result.
func checkPlanted(c *CLI, planted []combinatorics.Sequence, found *combinatorics.Set, truncated bool) error {
	if len(planted) == 0 || truncated {
		return nil
	}
	var missing []combinatorics.Sequence
	for _, a := range planted {
		if !found.Has(a) {
			missing = append(missing, a)
		}
	}
	if len(missing) == 0 {
		printInfo(c.Out, "all %d planted assignments found", len(planted))
		return nil
	}
	printError(c.Out, "%d of %d planted assignments missing", len(missing), len(planted))
	printAssignments(c.Out, missing, 0)

	return fmt.Errorf("%d: %w", len(missing), errPlantedMissing)
}

// Package cli implements the lvpattern command-line interface.
//
// # Commands
//
//   - find: search a fixture document for embeddings of its pattern
//   - verify: cross-validate the resolvers on random fixtures
//   - generate: write a random fixture with planted patterns
//
// All commands support --verbose (-v) for debug-level logging on stderr.
// Results go to the CLI's output writer (stdout by default).
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// appName is the binary name used in usage strings.
const appName = "lvpattern"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// Version is reported by --version; main overrides it via ldflags.
var Version = "dev"

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	Out    io.Writer
}

// New creates a CLI that logs to logw at level and prints results to out.
func New(out, logw io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(logw, level),
		Out:    out,
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:           appName,
		Short:         "lvpattern finds labeled sub-graph embeddings",
		Long:          `lvpattern finds every embedding of a small labeled directed pattern graph inside a larger source graph, both given as integer adjacency matrices.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				c.SetLogLevel(LogDebug)
			}
		},
	}
	root.SetOut(c.Out)
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(c.findCommand())
	root.AddCommand(c.verifyCommand())
	root.AddCommand(c.generateCommand())

	return root
}

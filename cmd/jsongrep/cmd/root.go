// Package cmd implements the jsongrep command-line interface: argument
// parsing, output formatting, and the generate subcommand for shell
// completions and man pages.
package cmd

import (
	"github.com/spf13/cobra"
)

var (
	// Version is set by build flags (see spec.md §6, "--version: standard").
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:     "jsongrep [QUERY] [FILE]",
	Short:   "Query JSON documents with regular expressions over paths",
	Version: Version,
	Long: `jsongrep queries a JSON document using a regular expression over paths.

A query describes a set of paths through the JSON tree; jsongrep
enumerates every matching (path, value) pair. See the man page for the
query grammar, or run with no query to read from standard input.`,
	Args: cobra.MaximumNArgs(2),
	RunE: runQuery,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "print diagnostic information to stderr")

	rootCmd.Flags().BoolVar(&flagCompact, "compact", false, "emit matched values without pretty-printing")
	rootCmd.Flags().BoolVar(&flagCount, "count", false, "print \"Found matches: <N>\" after evaluation")
	rootCmd.Flags().BoolVar(&flagDepth, "depth", false, "print the maximum nesting depth of the input document")
	rootCmd.Flags().BoolVarP(&flagNoDisplay, "no-display", "n", false, "suppress per-match output (still honours --count)")
	rootCmd.Flags().BoolVarP(&flagFixedString, "fixed-string", "F", false, "treat the query as a literal field name, searched at any depth")
	rootCmd.Flags().BoolVar(&flagWithPath, "with-path", false, "always print the path header before each match")
	rootCmd.Flags().BoolVar(&flagNoPath, "no-path", false, "never print the path header")
	rootCmd.Flags().IntVar(&flagMaxDepth, "max-depth", 0, "stop descending past this many steps (0 means unbounded)")
	rootCmd.Flags().StringVarP(&flagQueryFile, "query-file", "q", "", "read the query string from a file instead of the first positional argument")
	rootCmd.Flags().BoolVar(&flagStats, "stats", false, "print the compiled NFA/DFA state counts and compile time to stderr")
}

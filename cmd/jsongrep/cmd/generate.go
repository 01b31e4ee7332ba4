package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate shell completions or man pages",
}

var generateShellCmd = &cobra.Command{
	Use:       "shell {bash|zsh|fish|powershell}",
	Short:     "Write a shell completion script to standard output",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"bash", "zsh", "fish", "powershell"},
	RunE: func(_ *cobra.Command, args []string) error {
		switch args[0] {
		case "bash":
			return rootCmd.GenBashCompletion(os.Stdout)
		case "zsh":
			return rootCmd.GenZshCompletion(os.Stdout)
		case "fish":
			return rootCmd.GenFishCompletion(os.Stdout, true)
		case "powershell":
			return rootCmd.GenPowerShellCompletionWithDesc(os.Stdout)
		default:
			return fmt.Errorf("unsupported shell %q", args[0])
		}
	},
}

var generateManOutDir string

var generateManCmd = &cobra.Command{
	Use:   "man",
	Short: "Write man pages for jsongrep and its subcommands",
	RunE: func(_ *cobra.Command, _ []string) error {
		if err := os.MkdirAll(generateManOutDir, 0o755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
		header := &doc.GenManHeader{Title: "JSONGREP", Section: "1"}
		return doc.GenManTree(rootCmd, header, generateManOutDir)
	},
}

func init() {
	rootCmd.AddCommand(generateCmd)
	generateCmd.AddCommand(generateShellCmd)
	generateCmd.AddCommand(generateManCmd)

	generateManCmd.Flags().StringVarP(&generateManOutDir, "out", "o", ".", "directory to write man pages into")
}

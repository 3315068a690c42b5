// Package cmd implements the zr CLI: lex/parse/render/pretty-print
// entry points over the Zirconium front end, styled after the
// teacher's cmd/dwscript/cmd package.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Version information (set by build flags)
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "zr",
	Short: "Zirconium front-end compiler",
	Long: `zr is the command-line front end for Zirconium (Zr), a small
shell-inspired embedded scripting language.

It exposes the lexer, parser, and renderer as standalone commands for
inspecting how a Zr script tokenizes, parses, and round-trips.`,
	Version: Version,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output (not read by any subcommand)")
}

// readSource resolves a command's input: an inline -e expression or a
// single file argument. Unlike the teacher's parse.go, there is no
// stdin fallback; scripting against zr is expected to go through the
// zr package directly rather than piping into the CLI.
func readSource(eval string, args []string) (source, label string, err error) {
	if eval != "" {
		return eval, "<eval>", nil
	}
	if len(args) == 1 {
		content, readErr := os.ReadFile(args[0])
		if readErr != nil {
			return "", "", fmt.Errorf("failed to read file %s: %w", args[0], readErr)
		}
		return string(content), args[0], nil
	}
	return "", "", fmt.Errorf("either provide a file path or use -e for inline source")
}

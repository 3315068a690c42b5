package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/roblox-aurora/cmd-ast/internal/parser"
	"github.com/roblox-aurora/cmd-ast/internal/render"
)

var (
	parseEval    string
	parseDumpAST bool
)

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse Zirconium source and display the AST",
	Long: `Parse Zirconium source code and display the Abstract Syntax Tree.

Use -e to parse an inline expression. Use --dump-ast for a one-node-per-line
tree instead of the default rendered form.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runParseCmd,
}

func init() {
	rootCmd.AddCommand(parseCmd)

	parseCmd.Flags().StringVarP(&parseEval, "eval", "e", "", "parse inline source instead of reading a file")
	parseCmd.Flags().BoolVar(&parseDumpAST, "dump-ast", false, "dump the full AST as an indented tree")
}

func runParseCmd(cmd *cobra.Command, args []string) error {
	source, _, err := readSource(parseEval, args)
	if err != nil {
		return err
	}

	src, errs := parser.Parse(source)

	if len(errs) > 0 {
		fmt.Fprintln(os.Stderr, "Parser errors:")
		for _, e := range errs {
			fmt.Fprintf(os.Stderr, "  %s\n", e.Error())
		}
	}

	if parseDumpAST {
		fmt.Print(render.PrettyPrint(src.Children(), ""))
	} else {
		fmt.Println(render.Render(src))
	}

	if len(errs) > 0 {
		return fmt.Errorf("parsing produced %d error(s)", len(errs))
	}
	return nil
}

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roblox-aurora/cmd-ast/internal/parser"
	"github.com/roblox-aurora/cmd-ast/internal/render"
)

var renderEval string

var renderCmd = &cobra.Command{
	Use:   "render [file]",
	Short: "Parse Zirconium source and render it back to near-source text",
	Long: `Parse a Zirconium script and re-emit it via render.Render, a
near-source (not byte-exact) reconstruction of the parsed tree.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRenderCmd,
}

func init() {
	rootCmd.AddCommand(renderCmd)

	renderCmd.Flags().StringVarP(&renderEval, "eval", "e", "", "render inline source instead of reading a file")
}

func runRenderCmd(cmd *cobra.Command, args []string) error {
	source, _, err := readSource(renderEval, args)
	if err != nil {
		return err
	}

	src, errs := parser.Parse(source)
	fmt.Println(render.Render(src))

	if len(errs) > 0 {
		return fmt.Errorf("parsing produced %d error(s); render is best-effort", len(errs))
	}
	return nil
}

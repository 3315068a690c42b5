package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roblox-aurora/cmd-ast/internal/lexer"
	"github.com/roblox-aurora/cmd-ast/internal/token"
)

var (
	lexEval       string
	lexShowPos    bool
	lexComments   bool
	lexWhitespace bool
)

var lexCmd = &cobra.Command{
	Use:   "lex [file]",
	Short: "Tokenize a Zirconium script and print the resulting tokens",
	Long: `Tokenize (lex) a Zirconium program and print the resulting tokens.

Examples:
  zr lex script.zr
  zr lex -e 'cmd --flag "hi $name"'
  zr lex --show-pos --comments script.zr`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLex,
}

func init() {
	rootCmd.AddCommand(lexCmd)

	lexCmd.Flags().StringVarP(&lexEval, "eval", "e", "", "tokenize inline source instead of reading a file")
	lexCmd.Flags().BoolVar(&lexShowPos, "show-pos", false, "show byte offsets alongside each token")
	lexCmd.Flags().BoolVar(&lexComments, "comments", false, "emit Comment tokens instead of discarding them")
	lexCmd.Flags().BoolVar(&lexWhitespace, "whitespace", false, "emit Whitespace tokens instead of discarding them")
}

func runLex(cmd *cobra.Command, args []string) error {
	source, _, err := readSource(lexEval, args)
	if err != nil {
		return err
	}

	l := lexer.New(source, lexer.WithComments(lexComments), lexer.WithWhitespace(lexWhitespace))

	for l.HasNext() {
		t := l.Next()
		printToken(t)
	}

	return nil
}

func printToken(t *token.Token) {
	out := fmt.Sprintf("%-12s %q", t.Kind, t.Value)
	if t.Flags != token.None {
		out += fmt.Sprintf(" flags=%08b", t.Flags)
	}
	if lexShowPos {
		out += fmt.Sprintf(" @%d..%d", t.Start.Offset, t.End.Offset)
	}
	fmt.Println(out)
}

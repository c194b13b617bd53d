package cmd

import (
	"fmt"
	"os"

	"github.com/estreejs/esjs/internal/estree"
	"github.com/estreejs/esjs/pkg/esjs"
	"github.com/kr/pretty"
	"github.com/spf13/cobra"
)

var (
	evalExpr string
	dumpAST  bool
)

var evalCmd = &cobra.Command{
	Use:   "eval [file]",
	Short: "Evaluate a serialized ESTree JSON document",
	Long: `Evaluate reads a serialized ESTree AST (the top-level node expected to
be a BlockStatement) from a file or from -e, and prints the resulting host
value.

Examples:
  # Evaluate an AST document
  esjs eval program.json

  # Evaluate inline JSON
  esjs eval -e '{"type":"BlockStatement","body":[]}'

  # Dump the decoded AST instead of (also) evaluating
  esjs eval --dump-ast program.json`,
	Args: cobra.MaximumNArgs(1),
	RunE: runEval,
}

func init() {
	rootCmd.AddCommand(evalCmd)

	evalCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "evaluate inline JSON instead of reading from file")
	evalCmd.Flags().BoolVar(&dumpAST, "dump-ast", false, "dump the decoded AST instead of evaluating")
}

func runEval(_ *cobra.Command, args []string) error {
	raw, filename, err := readInput(evalExpr, args)
	if err != nil {
		return err
	}

	if dumpAST {
		node, err := estree.Decode(raw)
		if err != nil {
			return fmt.Errorf("decoding %s: %w", filename, err)
		}
		pretty.Println(node)
		return nil
	}

	result, err := esjs.Evaluate(raw)
	if err != nil {
		return fmt.Errorf("evaluating %s: %w", filename, err)
	}
	if verbose {
		fmt.Printf("%s: %v\n", result.Kind, result.Raw)
		return nil
	}
	fmt.Printf("%v\n", result.Raw)
	return nil
}

func readInput(inline string, args []string) (data []byte, filename string, err error) {
	if inline != "" {
		return []byte(inline), "<eval>", nil
	}
	if len(args) == 1 {
		content, err := os.ReadFile(args[0])
		if err != nil {
			return nil, "", fmt.Errorf("failed to read file %s: %w", args[0], err)
		}
		return content, args[0], nil
	}
	return nil, "", fmt.Errorf("either provide a file path or use -e flag for inline JSON")
}

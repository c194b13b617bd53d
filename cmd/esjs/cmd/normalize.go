package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

var normalizeOutput string

var normalizeCmd = &cobra.Command{
	Use:   "normalize [file]",
	Short: "Strip loc subtrees from a serialized ESTree document",
	Long: `Normalize reads a serialized ESTree AST from a file or stdin and writes
it back out with every "loc" field removed, for producing minimized fixtures
from a parser's raw output.

Examples:
  esjs normalize program.json
  esjs normalize program.json -o program.min.json
  cat program.json | esjs normalize -`,
	Args: cobra.ExactArgs(1),
	RunE: runNormalize,
}

func init() {
	rootCmd.AddCommand(normalizeCmd)
	normalizeCmd.Flags().StringVarP(&normalizeOutput, "output", "o", "", "write to this file instead of stdout")
}

func runNormalize(_ *cobra.Command, args []string) error {
	var (
		raw []byte
		err error
	)
	if args[0] == "-" {
		raw, err = io.ReadAll(os.Stdin)
	} else {
		raw, err = os.ReadFile(args[0])
	}
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	stripped, err := stripLoc(raw)
	if err != nil {
		return fmt.Errorf("stripping loc fields: %w", err)
	}

	if normalizeOutput == "" {
		fmt.Println(string(stripped))
		return nil
	}
	if err := os.WriteFile(normalizeOutput, stripped, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", normalizeOutput, err)
	}
	return nil
}

// stripLoc removes every "loc" field anywhere in the document. sjson's
// path-based Delete addresses one key at a time, so this first walks the
// parsed tree with gjson collecting every dotted path ending in "loc", then
// deletes each in turn — a deletion at one path never shifts the addressing
// of a sibling "loc" path, since none of the deleted values are themselves
// array elements.
func stripLoc(raw []byte) ([]byte, error) {
	paths := collectLocPaths(gjson.ParseBytes(raw), "")
	out := raw
	for _, path := range paths {
		var err error
		out, err = sjson.DeleteBytes(out, path)
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}

func collectLocPaths(v gjson.Result, prefix string) []string {
	var paths []string
	switch {
	case v.IsObject():
		v.ForEach(func(key, value gjson.Result) bool {
			childPath := joinPath(prefix, key.String())
			if key.String() == "loc" {
				paths = append(paths, childPath)
				return true
			}
			paths = append(paths, collectLocPaths(value, childPath)...)
			return true
		})
	case v.IsArray():
		i := 0
		v.ForEach(func(_, value gjson.Result) bool {
			childPath := fmt.Sprintf("%s.%d", prefix, i)
			paths = append(paths, collectLocPaths(value, childPath)...)
			i++
			return true
		})
	}
	return paths
}

func joinPath(prefix, key string) string {
	if prefix == "" {
		return key
	}
	return prefix + "." + key
}


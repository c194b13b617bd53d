// Package cmd implements the esjs command-line front end: a thin cobra
// wrapper around pkg/esjs.
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	// Version information (set by build flags)
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// verbose is read by runEval to decide whether to print the result's kind
// alongside its value.
var verbose bool

var rootCmd = &cobra.Command{
	Use:   "esjs",
	Short: "ECMAScript-subset ESTree evaluator",
	Long: `esjs evaluates a pre-parsed ESTree JSON document to a single host
value. It does not parse JavaScript source itself — it consumes the
serialized AST an external parser produced and walks it.`,
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

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/goccy/go-yaml"
	"github.com/maruel/natural"
	"github.com/spf13/cobra"
)

var fixturesManifestDir string

var fixturesCmd = &cobra.Command{
	Use:   "fixtures",
	Short: "List the evaluator's fixture corpus",
	Long: `Fixtures reads testdata/fixtures/manifest.yaml and prints each entry's
name, the file it points at, and its description, in natural sort order
(case2 before case10) rather than the manifest's own declaration order.`,
	RunE: runFixtures,
}

func init() {
	rootCmd.AddCommand(fixturesCmd)
	fixturesCmd.Flags().StringVar(&fixturesManifestDir, "dir", "testdata/fixtures", "directory containing manifest.yaml")
}

type fixtureManifest struct {
	Fixtures []fixtureManifestEntry `yaml:"fixtures"`
}

type fixtureManifestEntry struct {
	Name        string `yaml:"name"`
	File        string `yaml:"file"`
	Description string `yaml:"description"`
}

func runFixtures(_ *cobra.Command, _ []string) error {
	manifestPath := filepath.Join(fixturesManifestDir, "manifest.yaml")
	raw, err := os.ReadFile(manifestPath)
	if err != nil {
		return fmt.Errorf("reading %s: %w", manifestPath, err)
	}

	var m fixtureManifest
	if err := yaml.Unmarshal(raw, &m); err != nil {
		return fmt.Errorf("parsing %s: %w", manifestPath, err)
	}

	sort.Slice(m.Fixtures, func(i, j int) bool {
		return natural.Less(m.Fixtures[i].Name, m.Fixtures[j].Name)
	})

	for _, fx := range m.Fixtures {
		fmt.Printf("%s\t%s\t%s\n", fx.Name, fx.File, fx.Description)
	}
	return nil
}

package esjs

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime/debug"
	"strings"
	"testing"
	"time"

	"github.com/gkampitakis/go-snaps/snaps"
	"github.com/goccy/go-yaml"
)

// manifest mirrors testdata/fixtures/manifest.yaml, externalized to data
// since the fixture list is also consumed by the `esjs fixtures` CLI
// subcommand, not just this test binary.
type manifest struct {
	Fixtures []fixtureEntry `yaml:"fixtures"`
}

type fixtureEntry struct {
	Name        string `yaml:"name"`
	File        string `yaml:"file"`
	Description string `yaml:"description"`
}

// expectsError reports whether a fixture's name marks it as a deliberate
// error-path scenario, by the "_error" suffix convention used throughout
// testdata/fixtures.
func (f fixtureEntry) expectsError() bool {
	return strings.HasSuffix(f.Name, "_error")
}

func loadManifest(t *testing.T) manifest {
	t.Helper()
	raw, err := os.ReadFile(filepath.Join("..", "..", "testdata", "fixtures", "manifest.yaml"))
	if err != nil {
		t.Fatalf("reading fixture manifest: %v", err)
	}
	var m manifest
	if err := yaml.Unmarshal(raw, &m); err != nil {
		t.Fatalf("parsing fixture manifest: %v", err)
	}
	if len(m.Fixtures) == 0 {
		t.Fatal("fixture manifest contains no entries")
	}
	return m
}

// TestFixtures runs every fixture named in testdata/fixtures/manifest.yaml
// through Evaluate, snapshotting a passing scenario's marshalled result and
// asserting an error scenario actually fails. A timeout-guarded goroutine
// per case guards against a runaway recursive evaluation hanging the test
// run, and a deferred panic recovery turns a decoder/evaluator panic into a
// test failure instead of crashing the whole suite.
func TestFixtures(t *testing.T) {
	m := loadManifest(t)

	for _, fx := range m.Fixtures {
		t.Run(fx.Name, func(t *testing.T) {
			runFixture(t, fx)
		})
	}
}

func runFixture(t *testing.T, fx fixtureEntry) {
	t.Helper()
	defer func() {
		if r := recover(); r != nil {
			t.Fatalf("panic evaluating fixture %s: %v\n%s", fx.Name, r, debug.Stack())
		}
	}()

	astJSON, err := os.ReadFile(filepath.Join("..", "..", "testdata", "fixtures", fx.File))
	if err != nil {
		t.Fatalf("reading fixture %s: %v", fx.File, err)
	}

	type outcome struct {
		value    HostValue
		err      error
		panicked any
	}
	done := make(chan outcome, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				done <- outcome{panicked: fmt.Sprintf("%v\n%s", r, debug.Stack())}
			}
		}()
		v, err := Evaluate(astJSON)
		done <- outcome{value: v, err: err}
	}()

	var result outcome
	select {
	case result = <-done:
	case <-time.After(5 * time.Second):
		t.Fatalf("fixture %s timed out after 5s (likely an ungrounded recursive call)", fx.Name)
		return
	}
	if result.panicked != nil {
		t.Fatalf("panic evaluating fixture %s: %v", fx.Name, result.panicked)
	}

	if fx.expectsError() {
		if result.err == nil {
			t.Fatalf("fixture %s: expected an error, got %v (%s)", fx.Name, result.value.Raw, fx.Description)
		}
		snaps.MatchSnapshot(t, fmt.Sprintf("%s_error", fx.Name), result.err.Error())
		return
	}

	if result.err != nil {
		t.Fatalf("fixture %s: unexpected error: %v (%s)", fx.Name, result.err, fx.Description)
	}
	snaps.MatchSnapshot(t, fmt.Sprintf("%s_result", fx.Name), fmt.Sprintf("%s: %v", result.value.Kind, result.value.Raw))
}

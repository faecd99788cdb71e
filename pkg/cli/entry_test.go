package cli

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/arraykit/arraykit/internal/override"
	"github.com/arraykit/arraykit/internal/trace"
)

const cliScenario = `
types:
  - name: Masked
  - name: Unit
    parent: Masked
call:
  op: add
  args:
    - type: Masked
      handle: decline
    - type: Unit
      handle: accept
      result: unit sum
`

func writeScenario(t *testing.T, doc string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatalf("write scenario: %v", err)
	}
	return path
}

func TestRunScenario(t *testing.T) {
	var out bytes.Buffer
	err := RunScenario(writeScenario(t, cliScenario), Options{Out: &out, NoColor: true})
	if err != nil {
		t.Fatalf("RunScenario error: %v", err)
	}

	text := out.String()
	for _, want := range []string{
		"candidates:",
		"rounds:",
		"Unit",
		"accepted",
		`resolved: "unit sum"`,
	} {
		if !strings.Contains(text, want) {
			t.Errorf("report missing %q:\n%s", want, text)
		}
	}
	// Masked's handler never ran: exactly one round.
	if strings.Count(text, "declined") != 0 {
		t.Errorf("report shows declined rounds, want none:\n%s", text)
	}
}

func TestRunScenarioQuiet(t *testing.T) {
	var out bytes.Buffer
	err := RunScenario(writeScenario(t, cliScenario), Options{Out: &out, NoColor: true, Quiet: true})
	if err != nil {
		t.Fatalf("RunScenario error: %v", err)
	}
	text := out.String()
	if strings.Contains(text, "rounds:") {
		t.Errorf("quiet report still lists rounds:\n%s", text)
	}
	if !strings.Contains(text, "resolved:") {
		t.Errorf("quiet report misses the outcome line:\n%s", text)
	}
}

func TestRunScenarioPersistsTrace(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "traces.db")
	var out bytes.Buffer
	err := RunScenario(writeScenario(t, cliScenario), Options{Out: &out, NoColor: true, DBPath: dbPath})
	if err != nil {
		t.Fatalf("RunScenario error: %v", err)
	}

	store, err := trace.OpenStore(dbPath)
	if err != nil {
		t.Fatalf("OpenStore error: %v", err)
	}
	defer store.Close()
	traces, err := store.Recent(5)
	if err != nil {
		t.Fatalf("Recent error: %v", err)
	}
	if len(traces) != 1 {
		t.Fatalf("stored %d traces, want 1", len(traces))
	}
	if traces[0].Op != "add" || len(traces[0].Rounds) != 1 {
		t.Errorf("stored trace = %s with %d rounds, want add with 1", traces[0].Op, len(traces[0].Rounds))
	}
}

func TestRunScenarioExhausted(t *testing.T) {
	var out bytes.Buffer
	err := RunScenario(writeScenario(t, `
types:
  - name: Masked
call:
  op: add
  args:
    - type: Masked
      handle: decline
    - type: Int
      value: 1
`), Options{Out: &out, NoColor: true})

	var exhausted *override.ExhaustedError
	if !errors.As(err, &exhausted) {
		t.Fatalf("error = %T (%v), want *ExhaustedError", err, err)
	}
	if !strings.Contains(out.String(), "failed:") {
		t.Errorf("report misses the failure line:\n%s", out.String())
	}
}

func TestRunScenarioNoOverride(t *testing.T) {
	var out bytes.Buffer
	err := RunScenario(writeScenario(t, `
call:
  op: add
  args:
    - type: Array
    - type: Int
      value: 2
`), Options{Out: &out, NoColor: true})
	if err != nil {
		t.Fatalf("RunScenario error: %v", err)
	}
	if !strings.Contains(out.String(), "no override") {
		t.Errorf("report misses the no-override line:\n%s", out.String())
	}
}

func TestRunScenarioBadPath(t *testing.T) {
	if err := RunScenario(filepath.Join(t.TempDir(), "missing.yaml"), Options{Out: &bytes.Buffer{}}); err == nil {
		t.Errorf("RunScenario accepted a missing file")
	}
}

func TestListOps(t *testing.T) {
	var out bytes.Buffer
	ListOps(&out)
	text := out.String()
	for _, want := range []string{"add", "multiply", "negative"} {
		if !strings.Contains(text, want) {
			t.Errorf("ops listing missing %q:\n%s", want, text)
		}
	}
}

package driver

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/shubham1882003/plipy/pkg/interpreter"
	"github.com/shubham1882003/plipy/pkg/runtime"
)

// testingT is the slice of testing.T the fixture helpers need. Keeping it
// an interface lets the helpers live outside a _test.go file so the CLI
// check command shares them.
type testingT interface {
	Helper()
	Fatalf(format string, args ...interface{})
}

// CaseResult pairs a manifest case with its replay outcome.
type CaseResult struct {
	Case *Case
	Err  error
}

// RunManifest replays every case in the manifest at path. The returned
// error covers manifest-level problems only; per-case failures land in the
// results.
func RunManifest(path string) ([]CaseResult, error) {
	manifest, err := LoadManifest(path)
	if err != nil {
		return nil, err
	}
	baseDir := filepath.Dir(manifest.Path)
	results := make([]CaseResult, 0, len(manifest.Cases))
	for _, c := range manifest.Cases {
		results = append(results, CaseResult{Case: c, Err: replayCase(baseDir, c)})
	}
	return results, nil
}

// replayCase runs one case and compares what happened against what the
// manifest promises. Outputs emitted before an expected error still count.
func replayCase(baseDir string, c *Case) error {
	data, err := os.ReadFile(filepath.Join(baseDir, c.Program))
	if err != nil {
		return fmt.Errorf("read program: %w", err)
	}
	qio := &interpreter.QueueIO{Inputs: append([]int64(nil), c.Inputs...)}
	runErr := RunSource(string(data), qio, Options{MaxCallDepth: c.MaxDepth})

	if c.Error == "" {
		if runErr != nil {
			return fmt.Errorf("unexpected error: %w", runErr)
		}
	} else {
		want, ok := runtime.KindFromName(c.Error)
		if !ok {
			return fmt.Errorf("unknown error kind %q", c.Error)
		}
		if runErr == nil {
			return fmt.Errorf("expected %s error, run succeeded", want)
		}
		kind, ok := runtime.KindOf(runErr)
		if !ok {
			return fmt.Errorf("expected %s error, got: %v", want, runErr)
		}
		if kind != want {
			return fmt.Errorf("expected %s error, got %s: %v", want, kind, runErr)
		}
	}

	if !sameValues(qio.Outputs, c.Outputs) {
		return fmt.Errorf("outputs mismatch: got %v, want %v", qio.Outputs, c.Outputs)
	}
	return nil
}

func sameValues(got, want []int64) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range got {
		if got[i] != want[i] {
			return false
		}
	}
	return true
}

// checkCase replays one manifest case and fails the test on any mismatch.
func checkCase(t testingT, baseDir string, c *Case) {
	t.Helper()
	if err := replayCase(baseDir, c); err != nil {
		t.Fatalf("case %s: %v", c.Name, err)
	}
}

package driver

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/shubham1882003/plipy/pkg/runtime"
)

// Manifest represents the parsed contents of a run manifest. A run manifest
// lists fixture programs together with the inputs to feed get, the values
// put must emit, and the error kind (if any) the run must end with.
type Manifest struct {
	Path  string
	Cases []*Case
}

// Case describes one program run and its expected behaviour.
type Case struct {
	Name     string
	Program  string  // source path, relative to the manifest
	Inputs   []int64 // queued get values, in order
	Outputs  []int64 // expected put values, in order
	Error    string  // expected error kind name, empty for a clean run
	MaxDepth int     // call depth override, 0 keeps the default
}

// ValidationError aggregates manifest validation failures.
type ValidationError struct {
	Issues []string
}

func (e *ValidationError) Error() string {
	if len(e.Issues) == 0 {
		return "manifest: invalid configuration"
	}
	var b strings.Builder
	b.WriteString("manifest validation failed:")
	for _, issue := range e.Issues {
		b.WriteString("\n- ")
		b.WriteString(issue)
	}
	return b.String()
}

// LoadManifest parses a run manifest from disk, returning a validated
// manifest with Path set to the absolute file location.
func LoadManifest(path string) (*Manifest, error) {
	if path == "" {
		return nil, fmt.Errorf("manifest: empty path")
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("manifest: resolve %s: %w", path, err)
	}
	file, err := os.Open(absPath)
	if err != nil {
		return nil, fmt.Errorf("manifest: open %s: %w", absPath, err)
	}
	defer file.Close()

	decoder := yaml.NewDecoder(file)
	decoder.KnownFields(true)

	var raw manifestFile
	if err := decoder.Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("manifest: %s is empty", absPath)
		}
		return nil, fmt.Errorf("manifest: parse %s: %w", absPath, err)
	}

	manifest := raw.toManifest(absPath)
	if err := manifest.validate(); err != nil {
		return nil, err
	}
	return manifest, nil
}

func (m *Manifest) validate() error {
	var errs ValidationError
	if len(m.Cases) == 0 {
		errs.Issues = append(errs.Issues, "at least one case must be provided")
	}
	seen := make(map[string]struct{}, len(m.Cases))
	for i, c := range m.Cases {
		label := fmt.Sprintf("case %q", c.Name)
		if c.Name == "" {
			label = fmt.Sprintf("cases[%d]", i)
			errs.Issues = append(errs.Issues, fmt.Sprintf("%s: name must be provided", label))
		} else if _, dup := seen[c.Name]; dup {
			errs.Issues = append(errs.Issues, fmt.Sprintf("%s appears more than once", label))
		} else {
			seen[c.Name] = struct{}{}
		}
		if c.Program == "" {
			errs.Issues = append(errs.Issues, fmt.Sprintf("%s: program must be provided", label))
		} else if filepath.IsAbs(c.Program) {
			errs.Issues = append(errs.Issues, fmt.Sprintf("%s: program must be a relative path", label))
		}
		if c.Error != "" {
			if _, ok := runtime.KindFromName(c.Error); !ok {
				errs.Issues = append(errs.Issues, fmt.Sprintf("%s: unknown error kind %q", label, c.Error))
			}
		}
		if c.MaxDepth < 0 {
			errs.Issues = append(errs.Issues, fmt.Sprintf("%s: max_depth must not be negative", label))
		}
	}
	if len(errs.Issues) > 0 {
		return &errs
	}
	return nil
}

type manifestFile struct {
	Cases []caseYAML `yaml:"cases"`
}

type caseYAML struct {
	Name     string  `yaml:"name"`
	Program  string  `yaml:"program"`
	Inputs   intList `yaml:"inputs"`
	Outputs  intList `yaml:"outputs"`
	Error    string  `yaml:"error"`
	MaxDepth int     `yaml:"max_depth"`
}

func (mf manifestFile) toManifest(path string) *Manifest {
	result := &Manifest{
		Path:  path,
		Cases: make([]*Case, 0, len(mf.Cases)),
	}
	for _, raw := range mf.Cases {
		result.Cases = append(result.Cases, &Case{
			Name:     strings.TrimSpace(raw.Name),
			Program:  strings.TrimSpace(raw.Program),
			Inputs:   raw.Inputs.Clone(),
			Outputs:  raw.Outputs.Clone(),
			Error:    strings.TrimSpace(raw.Error),
			MaxDepth: raw.MaxDepth,
		})
	}
	return result
}

// intList accepts either a single integer or a sequence of integers.
type intList []int64

func (l intList) Clone() []int64 {
	if len(l) == 0 {
		return nil
	}
	return append([]int64(nil), l...)
}

func (l *intList) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		if value.Tag == "!!null" || strings.TrimSpace(value.Value) == "" {
			*l = nil
			return nil
		}
		n, err := strconv.ParseInt(strings.TrimSpace(value.Value), 10, 64)
		if err != nil {
			return fmt.Errorf("manifest: expected an integer but found %q", value.Value)
		}
		*l = intList{n}
		return nil
	case yaml.SequenceNode:
		items := make([]int64, 0, len(value.Content))
		for _, node := range value.Content {
			var n int64
			if err := node.Decode(&n); err != nil {
				return err
			}
			items = append(items, n)
		}
		*l = intList(items)
		return nil
	case yaml.AliasNode:
		return l.UnmarshalYAML(value.Alias)
	case 0:
		*l = nil
		return nil
	default:
		return fmt.Errorf("manifest: expected integer or sequence for list but found %s", value.ShortTag())
	}
}

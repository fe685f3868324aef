package harness

import (
	"bytes"
	"fmt"
	"io/fs"
	"path/filepath"
	"regexp"
	"slices"
	"strings"
	"time"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// Scenario defines a conformance test scenario.
// Tags are duplicated for YAML and JSON because CUE files are decoded through
// their JSON form.
type Scenario struct {
	// Name uniquely identifies this scenario and names its golden file.
	Name string `yaml:"name" json:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description" json:"description"`

	// Now is the RFC 3339 instant the clock is frozen at.
	// If empty, defaults to 2024-01-01T00:00:00Z.
	Now string `yaml:"now,omitempty" json:"now,omitempty"`

	// Seed feeds the random source used for UUIDs.
	Seed string `yaml:"seed,omitempty" json:"seed,omitempty"`

	// Steps are executed in order.
	Steps []Step `yaml:"steps" json:"steps"`

	// Assertions validate the finished trace.
	// Supported types: trace_contains, trace_order, trace_count
	Assertions []Assertion `yaml:"assertions,omitempty" json:"assertions,omitempty"`
}

// Step invokes one catalog operation.
type Step struct {
	// Op is the operation name (e.g., "number.format").
	Op string `yaml:"op" json:"op"`

	// Args are passed to the operation unchanged.
	Args map[string]any `yaml:"args,omitempty" json:"args,omitempty"`

	// Advance moves the clock by a Go duration ("90s", "-2h") before the step runs.
	Advance string `yaml:"advance,omitempty" json:"advance,omitempty"`

	// Expect describes the expected outcome. If nil, the step only has to
	// succeed.
	Expect *Expect `yaml:"expect,omitempty" json:"expect,omitempty"`
}

// Expect specifies the expected outcome of a step.
type Expect struct {
	// Value is compared to the result as canonical JSON.
	Value any `yaml:"value,omitempty" json:"value,omitempty"`

	// Error is a substring of the expected error message.
	Error string `yaml:"error,omitempty" json:"error,omitempty"`

	// Match is a regular expression the textual result must match.
	Match string `yaml:"match,omitempty" json:"match,omitempty"`
}

// Assertion validates the trace as a whole.
type Assertion struct {
	// Type is one of trace_contains, trace_order, trace_count.
	Type string `yaml:"type" json:"type"`

	// Op is the operation name (trace_contains, trace_count).
	Op string `yaml:"op,omitempty" json:"op,omitempty"`

	// Args are matched as a subset (trace_contains).
	Args map[string]any `yaml:"args,omitempty" json:"args,omitempty"`

	// Count is the exact number of invocations (trace_count).
	Count int `yaml:"count,omitempty" json:"count,omitempty"`

	// Ops is the expected order (trace_order).
	Ops []string `yaml:"ops,omitempty" json:"ops,omitempty"`
}

// Assertion type constants.
const (
	AssertTraceContains = "trace_contains"
	AssertTraceOrder    = "trace_order"
	AssertTraceCount    = "trace_count"
)

// Scenario file extensions.
const (
	extYAML = ".yaml"
	extYML  = ".yml"
	extCUE  = ".cue"
)

var validName = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// strictJSON rejects unknown fields in CUE-sourced scenarios, like the YAML decoder does.
var strictJSON = jsoniter.Config{DisallowUnknownFields: true}.Froze()

// LoadScenario reads and parses a scenario file from fsys. The format is
// chosen by extension. Returns an error if the file doesn't exist, is
// malformed, contains unknown fields (typos), or is missing required fields.
func LoadScenario(fsys afero.Fs, path string) (*Scenario, error) {
	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}

	var scenario *Scenario
	switch strings.ToLower(filepath.Ext(path)) {
	case extYAML, extYML:
		scenario, err = ParseYAML(data)
	case extCUE:
		scenario, err = ParseCUE(data, path)
	default:
		return nil, fmt.Errorf("unsupported scenario file %s: want .yaml, .yml or .cue", path)
	}
	if err != nil {
		return nil, err
	}
	return scenario, nil
}

// ParseYAML decodes and validates a YAML scenario.
func ParseYAML(data []byte) (*Scenario, error) {
	// Strict field validation catches typos like "expects:" vs "expect:"
	var scenario Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := validateScenario(&scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}
	return &scenario, nil
}

// ParseCUE compiles a CUE scenario. The value must be concrete; it is then
// decoded through its JSON form.
func ParseCUE(data []byte, filename string) (*Scenario, error) {
	ctx := cuecontext.New()
	v := ctx.CompileBytes(data, cue.Filename(filename))
	if err := v.Err(); err != nil {
		return nil, fmt.Errorf("failed to parse CUE: %s", formatCUEError(err))
	}
	if err := v.Validate(cue.Concrete(true)); err != nil {
		return nil, fmt.Errorf("failed to parse CUE: %s", formatCUEError(err))
	}

	raw, err := v.MarshalJSON()
	if err != nil {
		return nil, fmt.Errorf("failed to export CUE: %w", err)
	}

	var scenario Scenario
	if err := strictJSON.Unmarshal(raw, &scenario); err != nil {
		return nil, fmt.Errorf("failed to decode CUE scenario: %w", err)
	}

	if err := validateScenario(&scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}
	return &scenario, nil
}

// formatCUEError flattens a CUE error list into one line per error with positions.
func formatCUEError(err error) string {
	var lines []string
	for _, e := range cueerrors.Errors(err) {
		msg := e.Error()
		if pos := e.Position(); pos.IsValid() {
			msg = fmt.Sprintf("%s:%d:%d: %s", pos.Filename(), pos.Line(), pos.Column(), msg)
		}
		lines = append(lines, msg)
	}
	if len(lines) == 0 {
		return err.Error()
	}
	return strings.Join(lines, "; ")
}

// FindScenarioFiles lists scenario files directly inside dir, sorted by path.
// A non-empty filter is a filepath.Match pattern applied to base names.
func FindScenarioFiles(fsys afero.Fs, dir, filter string) ([]string, error) {
	entries, err := afero.ReadDir(fsys, dir)
	if err != nil {
		return nil, err
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() || !isScenarioFile(entry) {
			continue
		}
		if filter != "" {
			matched, err := filepath.Match(filter, entry.Name())
			if err != nil {
				return nil, fmt.Errorf("invalid filter pattern: %w", err)
			}
			if !matched {
				continue
			}
		}
		files = append(files, filepath.Join(dir, entry.Name()))
	}
	slices.Sort(files)
	return files, nil
}

func isScenarioFile(entry fs.FileInfo) bool {
	switch strings.ToLower(filepath.Ext(entry.Name())) {
	case extYAML, extYML, extCUE:
		return true
	}
	return false
}

// validateScenario checks that required fields are present and valid.
func validateScenario(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}
	if !validName.MatchString(s.Name) {
		return fmt.Errorf("name %q must contain only letters, digits, '_' and '-'", s.Name)
	}

	if s.Description == "" {
		return fmt.Errorf("description is required")
	}

	if s.Now != "" {
		if _, err := time.Parse(time.RFC3339, s.Now); err != nil {
			return fmt.Errorf("now must be RFC 3339: %w", err)
		}
	}

	if len(s.Steps) == 0 {
		return fmt.Errorf("steps list is required and must be non-empty")
	}

	for i, step := range s.Steps {
		if step.Op == "" {
			return fmt.Errorf("steps[%d]: op is required", i)
		}
		if step.Advance != "" {
			if _, err := time.ParseDuration(step.Advance); err != nil {
				return fmt.Errorf("steps[%d]: advance: %w", i, err)
			}
		}
		if err := validateExpect(i, step.Expect); err != nil {
			return err
		}
	}

	for i, assertion := range s.Assertions {
		if err := validateAssertion(i, &assertion); err != nil {
			return err
		}
	}

	return nil
}

func validateExpect(index int, e *Expect) error {
	if e == nil {
		return nil
	}
	if e.Value == nil && e.Error == "" && e.Match == "" {
		return fmt.Errorf("steps[%d].expect: one of value, error or match is required", index)
	}
	if e.Error != "" && (e.Value != nil || e.Match != "") {
		return fmt.Errorf("steps[%d].expect: error cannot be combined with value or match", index)
	}
	if e.Match != "" {
		if _, err := regexp.Compile(e.Match); err != nil {
			return fmt.Errorf("steps[%d].expect: match: %w", index, err)
		}
	}
	return nil
}

// validateAssertion validates a single assertion based on its type.
func validateAssertion(index int, a *Assertion) error {
	if a.Type == "" {
		return fmt.Errorf("assertions[%d]: type is required", index)
	}

	switch a.Type {
	case AssertTraceContains:
		if a.Op == "" {
			return fmt.Errorf("assertions[%d]: op is required for trace_contains", index)
		}
	case AssertTraceOrder:
		if len(a.Ops) == 0 {
			return fmt.Errorf("assertions[%d]: ops list is required for trace_order", index)
		}
	case AssertTraceCount:
		if a.Op == "" {
			return fmt.Errorf("assertions[%d]: op is required for trace_count", index)
		}
		if a.Count < 0 {
			return fmt.Errorf("assertions[%d]: count must be non-negative for trace_count", index)
		}
	default:
		return fmt.Errorf("assertions[%d]: unknown assertion type %q", index, a.Type)
	}

	return nil
}

package catalog

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"
)

// SupportedMajor is the catalog format major version this build reads.
const SupportedMajor = "v1"

// Kind identifies which catalog a document holds.
type Kind string

const (
	KindDrills     Kind = "drills"
	KindChallenges Kind = "challenges"
)

// Summary describes a validated catalog document.
type Summary struct {
	Kind    Kind
	Version string
	Count   int
}

type drillDocument struct {
	Version string        `json:"version"`
	Drills  []DrillRecord `json:"drills"`
}

type challengeDocument struct {
	Version    string            `json:"version"`
	Challenges []ChallengeRecord `json:"challenges"`
}

// schemaCache caches compiled schemas by name.
var schemaCache sync.Map // map[string]*jsonschema.Schema

// LoadDrills reads and validates a drill catalog file (.yaml, .yml or .json).
func LoadDrills(path string) ([]Drill, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read drills: %w", err)
	}
	drills, err := ParseDrills(data, filepath.Ext(path))
	if err != nil {
		return nil, withFile(err, path)
	}
	return drills, nil
}

// LoadChallenges reads and validates a challenge catalog file.
func LoadChallenges(path string) ([]Challenge, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read challenges: %w", err)
	}
	challenges, err := ParseChallenges(data, filepath.Ext(path))
	if err != nil {
		return nil, withFile(err, path)
	}
	return challenges, nil
}

// ParseDrills decodes a drill catalog document. ext selects the decoder;
// anything other than ".json" is read as YAML.
func ParseDrills(data []byte, ext string) ([]Drill, error) {
	raw, err := canonicalJSON(data, ext)
	if err != nil {
		return nil, err
	}
	if err := validateDocument(DrillSchema, raw); err != nil {
		return nil, err
	}

	var doc drillDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, &ValidationError{Err: fmt.Errorf("decode drills: %w", err)}
	}
	if err := checkVersion(doc.Version); err != nil {
		return nil, err
	}

	seen := make(map[string]bool, len(doc.Drills))
	drills := make([]Drill, 0, len(doc.Drills))
	for i := range doc.Drills {
		rec := &doc.Drills[i]
		if seen[rec.ID] {
			return nil, &ValidationError{Err: fmt.Errorf("duplicate drill id %q", rec.ID)}
		}
		seen[rec.ID] = true
		drills = append(drills, rec.Drill())
	}
	return drills, nil
}

// ParseChallenges decodes a challenge catalog document.
func ParseChallenges(data []byte, ext string) ([]Challenge, error) {
	raw, err := canonicalJSON(data, ext)
	if err != nil {
		return nil, err
	}
	if err := validateDocument(ChallengeSchema, raw); err != nil {
		return nil, err
	}

	var doc challengeDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, &ValidationError{Err: fmt.Errorf("decode challenges: %w", err)}
	}
	if err := checkVersion(doc.Version); err != nil {
		return nil, err
	}

	seen := make(map[string]bool, len(doc.Challenges))
	challenges := make([]Challenge, 0, len(doc.Challenges))
	for i := range doc.Challenges {
		rec := &doc.Challenges[i]
		if seen[rec.ID] {
			return nil, &ValidationError{Err: fmt.Errorf("duplicate challenge id %q", rec.ID)}
		}
		seen[rec.ID] = true
		challenges = append(challenges, rec.Challenge())
	}
	return challenges, nil
}

// ValidateFile checks a catalog file of either kind and reports what it
// contains. The kind is taken from the document's top-level key.
func ValidateFile(path string) (*Summary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	ext := filepath.Ext(path)
	raw, err := canonicalJSON(data, ext)
	if err != nil {
		return nil, withFile(err, path)
	}

	var probe struct {
		Version    string          `json:"version"`
		Drills     json.RawMessage `json:"drills"`
		Challenges json.RawMessage `json:"challenges"`
	}
	if err := json.Unmarshal(raw, &probe); err != nil {
		return nil, withFile(&ValidationError{Err: err}, path)
	}

	switch {
	case probe.Drills != nil:
		drills, err := ParseDrills(data, ext)
		if err != nil {
			return nil, withFile(err, path)
		}
		return &Summary{Kind: KindDrills, Version: probe.Version, Count: len(drills)}, nil
	case probe.Challenges != nil:
		challenges, err := ParseChallenges(data, ext)
		if err != nil {
			return nil, withFile(err, path)
		}
		return &Summary{Kind: KindChallenges, Version: probe.Version, Count: len(challenges)}, nil
	default:
		return nil, withFile(&ValidationError{
			Err: fmt.Errorf("document has neither %q nor %q", KindDrills, KindChallenges),
		}, path)
	}
}

// canonicalJSON turns a YAML or JSON document into JSON bytes so both
// formats flow through one schema and one decoder.
func canonicalJSON(data []byte, ext string) ([]byte, error) {
	if strings.EqualFold(ext, ".json") {
		if !json.Valid(data) {
			return nil, &ValidationError{Err: errors.New("malformed JSON")}
		}
		return data, nil
	}

	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, &ValidationError{Err: fmt.Errorf("parse YAML: %w", err)}
	}
	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, &ValidationError{Err: fmt.Errorf("convert YAML: %w", err)}
	}
	return raw, nil
}

func validateDocument(schema *Schema, raw []byte) error {
	compiled, err := compiledSchema(schema)
	if err != nil {
		return fmt.Errorf("compile schema %q: %w", schema.Name, err)
	}
	parsed, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return &ValidationError{Err: fmt.Errorf("invalid JSON: %w", err)}
	}
	if err := compiled.Validate(parsed); err != nil {
		return &ValidationError{Err: fmt.Errorf("schema validation failed: %w", err)}
	}
	return nil
}

// compiledSchema returns a cached compiled schema or compiles and caches it.
func compiledSchema(schema *Schema) (*jsonschema.Schema, error) {
	if cached, ok := schemaCache.Load(schema.Name); ok {
		return cached.(*jsonschema.Schema), nil
	}

	defBytes, err := json.Marshal(schema.Definition)
	if err != nil {
		return nil, fmt.Errorf("marshal schema definition: %w", err)
	}
	def, err := jsonschema.UnmarshalJSON(bytes.NewReader(defBytes))
	if err != nil {
		return nil, fmt.Errorf("parse schema definition: %w", err)
	}

	c := jsonschema.NewCompiler()
	url := fmt.Sprintf("schema://%s.json", schema.Name)
	if err := c.AddResource(url, def); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}
	compiled, err := c.Compile(url)
	if err != nil {
		return nil, fmt.Errorf("compile: %w", err)
	}

	schemaCache.Store(schema.Name, compiled)
	return compiled, nil
}

// checkVersion gates the document on a valid semver with a supported major.
func checkVersion(v string) error {
	if !semver.IsValid(v) {
		return &ValidationError{Err: fmt.Errorf("version %q is not a semantic version", v)}
	}
	if semver.Major(v) != SupportedMajor {
		return fmt.Errorf("%w: %s (want %s.x)", ErrUnsupportedVersion, v, SupportedMajor)
	}
	return nil
}

// withFile records the file name on a ValidationError.
func withFile(err error, path string) error {
	if ve, ok := err.(*ValidationError); ok && ve.File == "" {
		ve.File = path
	}
	return err
}

package match

import (
	"bytes"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"golang.org/x/mod/semver"
)

// SupportedMajor is the fixture format major version this build reads.
const SupportedMajor = "v1"

//go:embed fixtures/matches.json fixtures/schema.json
var fixtureFS embed.FS

// FixtureError reports a fixture document that could not be loaded.
type FixtureError struct {
	Source string
	Err    error
}

func (e *FixtureError) Error() string {
	return fmt.Sprintf("match fixtures %s: %v", e.Source, e.Err)
}

func (e *FixtureError) Unwrap() error { return e.Err }

// ErrUnsupportedVersion is returned for fixture files of another major version.
var ErrUnsupportedVersion = errors.New("unsupported fixture version")

type fixtureFile struct {
	Version string         `json:"version"`
	Matches []fixtureEntry `json:"matches"`
}

type fixtureEntry struct {
	Entry
	PendingFor string `json:"pendingFor,omitempty"`
}

var (
	compiledOnce sync.Once
	compiled     *jsonschema.Schema
	compileErr   error
)

// fixtureSchema compiles the embedded schema once.
func fixtureSchema() (*jsonschema.Schema, error) {
	compiledOnce.Do(func() {
		raw, err := fixtureFS.ReadFile("fixtures/schema.json")
		if err != nil {
			compileErr = fmt.Errorf("read schema: %w", err)
			return
		}
		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
		if err != nil {
			compileErr = fmt.Errorf("parse schema: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		const url = "schema://xoxo/matches.json"
		if err := c.AddResource(url, doc); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiled, compileErr = c.Compile(url)
	})
	return compiled, compileErr
}

// Default returns the catalog embedded in the binary.
func Default() (*Catalog, error) {
	data, err := fixtureFS.ReadFile("fixtures/matches.json")
	if err != nil {
		return nil, &FixtureError{Source: "embedded", Err: err}
	}
	return parse("embedded", data)
}

// Load reads a catalog from a fixture file on disk.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &FixtureError{Source: path, Err: err}
	}
	return parse(path, data)
}

// Parse decodes and validates a fixture document.
func Parse(data []byte) (*Catalog, error) {
	return parse("input", data)
}

func parse(source string, data []byte) (*Catalog, error) {
	schema, err := fixtureSchema()
	if err != nil {
		return nil, &FixtureError{Source: source, Err: err}
	}

	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return nil, &FixtureError{Source: source, Err: fmt.Errorf("invalid JSON: %w", err)}
	}
	if err := schema.Validate(doc); err != nil {
		return nil, &FixtureError{Source: source, Err: fmt.Errorf("schema validation failed: %w", err)}
	}

	var file fixtureFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, &FixtureError{Source: source, Err: fmt.Errorf("decode: %w", err)}
	}

	if !semver.IsValid(file.Version) {
		return nil, &FixtureError{Source: source, Err: fmt.Errorf("%w: %q is not a semantic version", ErrUnsupportedVersion, file.Version)}
	}
	if major := semver.Major(file.Version); major != SupportedMajor {
		return nil, &FixtureError{Source: source, Err: fmt.Errorf("%w: %s (want %s)", ErrUnsupportedVersion, file.Version, SupportedMajor)}
	}

	entries := make([]Entry, 0, len(file.Matches))
	seen := make(map[int]bool, len(file.Matches))
	for _, fe := range file.Matches {
		if seen[fe.ID] {
			return nil, &FixtureError{Source: source, Err: fmt.Errorf("duplicate match id %d", fe.ID)}
		}
		seen[fe.ID] = true

		e := fe.Entry
		if fe.PendingFor != "" {
			d, err := time.ParseDuration(fe.PendingFor)
			if err != nil {
				return nil, &FixtureError{Source: source, Err: fmt.Errorf("match %d pendingFor: %w", fe.ID, err)}
			}
			e.PendingFor = d
		}
		if e.Interests == nil {
			e.Interests = []string{}
		}
		if e.Conversation == nil {
			e.Conversation = []Message{}
		}
		entries = append(entries, e)
	}

	return NewCatalog(file.Version, entries), nil
}

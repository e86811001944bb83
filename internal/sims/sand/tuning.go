package sand

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"
)

// ErrInvalidTuning reports a tuning file that fails schema validation.
var ErrInvalidTuning = errors.New("invalid tuning file")

//go:embed tuning.schema.json
var tuningSchemaSource string

var (
	tuningSchemaOnce sync.Once
	tuningSchema     *jsonschema.Schema
	tuningSchemaErr  error
)

func compiledTuningSchema() (*jsonschema.Schema, error) {
	tuningSchemaOnce.Do(func() {
		tuningSchema, tuningSchemaErr = jsonschema.CompileString("tuning.schema.json", tuningSchemaSource)
	})
	return tuningSchema, tuningSchemaErr
}

// LoadTuning reads a YAML tuning file and overlays it onto cfg. Keys missing
// from the file keep their current values.
func LoadTuning(path string, cfg *Config) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := ParseTuning(raw, cfg); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

// ParseTuning validates a YAML tuning document and overlays it onto cfg.
func ParseTuning(raw []byte, cfg *Config) error {
	var doc any
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("tuning yaml: %w", err)
	}
	if doc == nil {
		return nil
	}
	// Round-trip through JSON so the validator sees plain JSON values.
	buf, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidTuning, err)
	}
	var value any
	if err := json.Unmarshal(buf, &value); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidTuning, err)
	}
	schema, err := compiledTuningSchema()
	if err != nil {
		return fmt.Errorf("tuning schema: %w", err)
	}
	if err := schema.Validate(value); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidTuning, err)
	}

	next := *cfg
	if err := yaml.Unmarshal(raw, &next); err != nil {
		return fmt.Errorf("tuning yaml: %w", err)
	}
	if err := next.Validate(); err != nil {
		return err
	}
	*cfg = next
	return nil
}

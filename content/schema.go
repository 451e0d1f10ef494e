package content

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/invopop/jsonschema"
	"github.com/samber/oops"
	jschema "github.com/santhosh-tekuri/jsonschema/v6"
	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/roam/core"
)

// SchemaID is the $id of the entry list schema
const SchemaID = "https://roam.lixenwraith.dev/schemas/entries.schema.json"

// EntryFile is the YAML/JSON list form of an entry collection
type EntryFile struct {
	Entries []core.Entry `yaml:"entries" json:"entries"`
}

var (
	schemaOnce     sync.Once
	schemaCompiled *jschema.Schema
	schemaErr      error
)

// GenerateSchema reflects the JSON Schema of EntryFile using yaml field names
func GenerateSchema() ([]byte, error) {
	r := jsonschema.Reflector{
		DoNotReference: true,
		FieldNameTag:   "yaml",
	}
	schema := r.Reflect(&EntryFile{})
	schema.ID = jsonschema.ID(SchemaID)
	schema.Title = "roam entry list"
	schema.Description = "Entries placed as doors, statues or console items"

	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return nil, oops.Wrapf(err, "marshal schema")
	}
	return data, nil
}

func compiledSchema() (*jschema.Schema, error) {
	schemaOnce.Do(func() {
		raw, err := GenerateSchema()
		if err != nil {
			schemaErr = err
			return
		}
		var doc any
		if err := json.Unmarshal(raw, &doc); err != nil {
			schemaErr = oops.Wrapf(err, "parse schema")
			return
		}
		c := jschema.NewCompiler()
		if err := c.AddResource("entries.json", doc); err != nil {
			schemaErr = oops.Wrapf(err, "add schema resource")
			return
		}
		schemaCompiled, schemaErr = c.Compile("entries.json")
	})
	return schemaCompiled, schemaErr
}

// ValidateList checks a YAML or JSON entry list document
// A bare top-level sequence is accepted as the entries field
func ValidateList(data []byte) error {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return oops.Wrapf(err, "invalid YAML")
	}
	if list, ok := doc.([]any); ok {
		doc = map[string]any{"entries": list}
	}

	sch, err := compiledSchema()
	if err != nil {
		return oops.Wrapf(err, "compile schema")
	}
	if err := sch.Validate(jsonTypes(doc)); err != nil {
		return oops.Wrapf(err, "schema validation failed")
	}
	return nil
}

// jsonTypes converts decoded YAML into the value set the validator expects
func jsonTypes(v any) any {
	switch val := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			out[k] = jsonTypes(item)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = jsonTypes(item)
		}
		return out
	case int:
		return float64(val)
	case time.Time:
		return val.Format(time.RFC3339)
	default:
		return val
	}
}

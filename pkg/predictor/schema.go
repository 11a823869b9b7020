package predictor

import (
	"encoding/json"

	"github.com/invopop/jsonschema"
)

// Schema returns the JSON Schema of the artifact format.
func Schema() *jsonschema.Schema {
	r := &jsonschema.Reflector{ExpandedStruct: true}
	return r.Reflect(&Artifact{})
}

// SchemaJSON renders Schema as indented JSON.
func SchemaJSON() (string, error) {
	data, err := json.MarshalIndent(Schema(), "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

package analyzer

import (
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"
)

// Schema returns the JSON schema of a Report.
func Schema() ([]byte, error) {
	return marshalSchema(&Report{})
}

// ComparisonSchema returns the JSON schema of a Comparison.
func ComparisonSchema() ([]byte, error) {
	return marshalSchema(&Comparison{})
}

func marshalSchema(v any) ([]byte, error) {
	r := &jsonschema.Reflector{
		DoNotReference: true,
	}
	data, err := json.MarshalIndent(r.Reflect(v), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal schema: %w", err)
	}
	return data, nil
}

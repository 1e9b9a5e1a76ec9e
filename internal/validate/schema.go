package validate

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// SchemaDecoder decodes with Inner and then checks the value against a JSON Schema
type SchemaDecoder struct {
	Inner  Decoder
	schema *jsonschema.Schema
}

// NewSchemaDecoder compiles the JSON Schema at path and wraps inner with it
func NewSchemaDecoder(inner Decoder, path string) (*SchemaDecoder, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read schema: %w", err)
	}

	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("unmarshal schema: %w", err)
	}

	name := filepath.Base(path)
	c := jsonschema.NewCompiler()
	if err := c.AddResource(name, doc); err != nil {
		return nil, fmt.Errorf("add schema resource: %w", err)
	}

	sch, err := c.Compile(name)
	if err != nil {
		return nil, fmt.Errorf("compile schema: %w", err)
	}

	return &SchemaDecoder{Inner: inner, schema: sch}, nil
}

// Decode decodes text and validates the result against the schema
func (d *SchemaDecoder) Decode(text string) (any, error) {
	v, err := d.Inner.Decode(text)
	if err != nil {
		return nil, err
	}

	doc, err := toJSONValue(v)
	if err != nil {
		return nil, err
	}

	if err := d.schema.Validate(doc); err != nil {
		if ve, ok := err.(*jsonschema.ValidationError); ok {
			return nil, fmt.Errorf("schema: %s", flattenCauses(ve))
		}
		return nil, fmt.Errorf("schema: %w", err)
	}
	return v, nil
}

// toJSONValue normalises decoder output (yaml ints, cue values) into the
// generic JSON shapes the schema validator understands
func toJSONValue(v any) (any, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("value is not representable as JSON: %w", err)
	}
	return jsonschema.UnmarshalJSON(bytes.NewReader(data))
}

func flattenCauses(ve *jsonschema.ValidationError) string {
	var msgs []string
	var walk func(e *jsonschema.ValidationError)
	walk = func(e *jsonschema.ValidationError) {
		if len(e.Causes) == 0 {
			msgs = append(msgs, fmt.Sprintf("/%s: %v", strings.Join(e.InstanceLocation, "/"), e.ErrorKind))
			return
		}
		for _, c := range e.Causes {
			walk(c)
		}
	}
	walk(ve)
	return strings.Join(msgs, "; ")
}

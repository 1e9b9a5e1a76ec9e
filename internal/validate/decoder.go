package validate

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"gopkg.in/yaml.v3"
)

// Decoder is the decode contract the wrapper depends on: a non-nil error
// means the text was rejected. A panic is treated the same as an error.
type Decoder interface {
	Decode(text string) (any, error)
}

// DecoderFunc adapts a function to the Decoder interface
type DecoderFunc func(text string) (any, error)

// Decode calls f(text)
func (f DecoderFunc) Decode(text string) (any, error) {
	return f(text)
}

// YAMLDecoder decodes YAML documents with gopkg.in/yaml.v3
type YAMLDecoder struct{}

// Decode parses text as a single YAML document
func (YAMLDecoder) Decode(text string) (any, error) {
	var v any
	if err := yaml.Unmarshal([]byte(text), &v); err != nil {
		return nil, err
	}
	return v, nil
}

// JSONDecoder decodes a single JSON value
type JSONDecoder struct{}

// Decode parses text as JSON, rejecting trailing data
func (JSONDecoder) Decode(text string) (any, error) {
	dec := json.NewDecoder(strings.NewReader(text))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	if dec.More() {
		return nil, fmt.Errorf("unexpected data after top-level value")
	}
	return v, nil
}

// CUEDecoder compiles text as CUE and requires it to be free of errors
type CUEDecoder struct {
	Filename string // Used in error positions
}

// Decode compiles text and returns the value as plain Go data when it is concrete
func (d CUEDecoder) Decode(text string) (any, error) {
	ctx := cuecontext.New()
	v := ctx.CompileString(text, cue.Filename(d.Filename))
	if err := v.Err(); err != nil {
		return nil, err
	}
	if err := v.Validate(); err != nil {
		return nil, err
	}

	var out any
	if err := v.Decode(&out); err != nil {
		// Non-concrete values are valid CUE; hand back the cue.Value itself
		return v, nil
	}
	return out, nil
}

var decoders = map[string]func(filename string) Decoder{
	"yaml": func(string) Decoder { return YAMLDecoder{} },
	"json": func(string) Decoder { return JSONDecoder{} },
	"cue":  func(name string) Decoder { return CUEDecoder{Filename: name} },
}

// Formats lists the names accepted by NewDecoder
func Formats() []string {
	names := make([]string, 0, len(decoders))
	for name := range decoders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// NewDecoder returns the decoder registered for format
func NewDecoder(format, filename string) (Decoder, error) {
	mk, ok := decoders[strings.ToLower(format)]
	if !ok {
		return nil, fmt.Errorf("unknown format %q: must be one of %v", format, Formats())
	}
	return mk(filename), nil
}

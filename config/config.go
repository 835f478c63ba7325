// Package config loads pipeline descriptions from JSON and decodes
// per-step attribute maps into typed option structs.
package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/edaniels/golog"
	"github.com/go-viper/mapstructure/v2"
	"github.com/pkg/errors"
	"go.viam.com/utils"
)

// AttributeMap is a convenience wrapper around untyped step attributes.
type AttributeMap map[string]interface{}

// Has returns whether the map contains the named attribute.
func (am AttributeMap) Has(name string) bool {
	_, has := am[name]
	return has
}

// String returns the named attribute as a string, or empty when unset.
func (am AttributeMap) String(name string) string {
	x := am[name]
	if x == nil {
		return ""
	}
	s, ok := x.(string)
	if ok {
		return s
	}
	panic(fmt.Errorf("wanted a string for (%s) but got (%v) %T", name, x, x))
}

// Float64 returns the named attribute as a float64, or def when unset.
func (am AttributeMap) Float64(name string, def float64) float64 {
	x, has := am[name]
	if !has {
		return def
	}
	v, ok := x.(float64)
	if ok {
		return v
	}
	v2, ok := x.(int)
	if ok {
		return float64(v2)
	}
	panic(fmt.Errorf("wanted a float64 for (%s) but got (%v) %T", name, x, x))
}

// Int returns the named attribute as an int, or def when unset. JSON numbers
// arrive as float64 and are truncated.
func (am AttributeMap) Int(name string, def int) int {
	x, has := am[name]
	if !has {
		return def
	}
	v, ok := x.(int)
	if ok {
		return v
	}
	v2, ok := x.(float64)
	if ok {
		return int(v2)
	}
	panic(fmt.Errorf("wanted an int for (%s) but got (%v) %T", name, x, x))
}

// Bool returns the named attribute as a bool, or def when unset.
func (am AttributeMap) Bool(name string, def bool) bool {
	x, has := am[name]
	if !has {
		return def
	}
	v, ok := x.(bool)
	if ok {
		return v
	}
	panic(fmt.Errorf("wanted a bool for (%s) but got (%v) %T", name, x, x))
}

// Step is one stage of a pipeline: a type name plus its attributes.
type Step struct {
	Type       string       `json:"type"`
	Attributes AttributeMap `json:"attributes"`
}

// Pipeline is a declarative run: an optional seed, an output file, and an
// ordered list of steps.
type Pipeline struct {
	Seed   *int64 `json:"seed"`
	Output string `json:"output"`
	Steps  []Step `json:"steps"`
}

// CheckValid returns an error unless every step carries a type.
func (p *Pipeline) CheckValid() error {
	if len(p.Steps) == 0 {
		return errors.New("pipeline has no steps")
	}
	for i, s := range p.Steps {
		if s.Type == "" {
			return errors.Errorf("step %d has no type", i)
		}
	}
	return nil
}

// ReadPipeline loads and validates a pipeline JSON file.
func ReadPipeline(fn string, logger golog.Logger) (*Pipeline, error) {
	f, err := os.Open(fn)
	if err != nil {
		return nil, err
	}
	defer utils.UncheckedErrorFunc(f.Close)

	var p Pipeline
	decoder := json.NewDecoder(f)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&p); err != nil {
		return nil, errors.Wrapf(err, "parsing pipeline %q", fn)
	}
	if err := p.CheckValid(); err != nil {
		return nil, errors.Wrapf(err, "validating pipeline %q", fn)
	}
	logger.Debugw("read pipeline", "file", fn, "steps", len(p.Steps))
	return &p, nil
}

// TransformAttributeMapToStruct decodes the attributes into the given struct
// using its json tags.
func TransformAttributeMapToStruct(to interface{}, attributes AttributeMap) (interface{}, error) {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{TagName: "json", Result: to})
	if err != nil {
		return nil, err
	}
	if err := decoder.Decode(map[string]interface{}(attributes)); err != nil {
		return nil, err
	}
	return to, nil
}

// Copyright 2025 Greenmask
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package plan

import (
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path"
	"strconv"

	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"

	"github.com/greenmaskio/randkit/pkg/random"
)

const (
	TypeBytes  = "bytes"
	TypeInt    = "int"
	TypeLong   = "long"
	TypeFloat  = "float"
	TypeDouble = "double"
	TypeBool   = "bool"
)

var ErrUnknownType = errors.New("unknown request type")

type Plan struct {
	Requests []*Request `mapstructure:"requests" yaml:"requests" json:"requests"`
}

// Request - one batch of values of the same type. Min and Max may be numbers or base 10 strings, they are
// required for the range types and checked against the request type on execution.
type Request struct {
	Name string `mapstructure:"name" yaml:"name" json:"name"`
	Type string `mapstructure:"type" yaml:"type" json:"type"`
	Min  any    `mapstructure:"min" yaml:"min" json:"min,omitempty"`
	Max  any    `mapstructure:"max" yaml:"max" json:"max,omitempty"`
	// Count - amount of values to generate. Zero means one value
	Count int `mapstructure:"count" yaml:"count" json:"count,omitempty"`
	// Size - length of the byte sequence for the bytes type
	Size int `mapstructure:"size" yaml:"size" json:"size,omitempty"`
}

type Result struct {
	Name   string   `json:"name"`
	Type   string   `json:"type"`
	Values []string `json:"values"`
}

// ReadPlan - parse plan file by its extension. Supported .json, .yaml and .yml
func ReadPlan(planFilePath string) (*Plan, error) {
	ext := path.Ext(planFilePath)
	f, err := os.Open(planFilePath)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := f.Close(); err != nil {
			log.Warn().Err(err).Msg("error closing plan file")
		}
	}()

	p := &Plan{}
	switch ext {
	case ".json":
		if err = json.NewDecoder(f).Decode(p); err != nil {
			return nil, fmt.Errorf("cannot decode plan: %w", err)
		}
	case ".yaml", ".yml":
		if err = yaml.NewDecoder(f).Decode(p); err != nil {
			return nil, fmt.Errorf("cannot decode plan: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported file extension \"%s\"", ext)
	}
	return p, nil
}

func (p *Plan) Validate() error {
	if len(p.Requests) == 0 {
		return errors.New("plan has no requests")
	}
	for idx, r := range p.Requests {
		if r.Count < 0 {
			return fmt.Errorf("request %d (%s): count must be non-negative", idx, r.Name)
		}
		switch r.Type {
		case TypeBytes, TypeInt, TypeLong, TypeFloat, TypeDouble, TypeBool:
		default:
			return fmt.Errorf("request %d (%s): %w \"%s\"", idx, r.Name, ErrUnknownType, r.Type)
		}
	}
	return nil
}

// Execute - run every request of the plan in order against g
func Execute(g *random.Generator, p *Plan) ([]*Result, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	res := make([]*Result, 0, len(p.Requests))
	for idx, r := range p.Requests {
		values, err := r.execute(g)
		if err != nil {
			return nil, fmt.Errorf("request %d (%s): %w", idx, r.Name, err)
		}
		log.Debug().
			Str("Name", r.Name).
			Str("Type", r.Type).
			Int("Count", len(values)).
			Msg("request executed")
		res = append(res, &Result{
			Name:   r.Name,
			Type:   r.Type,
			Values: values,
		})
	}
	return res, nil
}

func (r *Request) execute(g *random.Generator) ([]string, error) {
	count := r.Count
	if count == 0 {
		count = 1
	}
	next, err := r.valueFunc(g)
	if err != nil {
		return nil, err
	}
	values := make([]string, 0, count)
	for i := 0; i < count; i++ {
		v, err := next()
		if err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	return values, nil
}

func (r *Request) valueFunc(g *random.Generator) (func() (string, error), error) {
	switch r.Type {
	case TypeBytes:
		return func() (string, error) {
			b, err := g.Bytes(r.Size)
			return hex.EncodeToString(b), err
		}, nil
	case TypeBool:
		return func() (string, error) {
			v, err := g.Bool()
			return strconv.FormatBool(v), err
		}, nil
	case TypeInt, TypeLong:
		minValue, maxValue, err := Int64Bounds(r.Type, r.Min, r.Max)
		if err != nil {
			return nil, err
		}
		l, err := random.NewInt64Limiter(minValue, maxValue)
		if err != nil {
			return nil, err
		}
		return func() (string, error) {
			v, err := g.LimitInt64(l)
			return strconv.FormatInt(v, 10), err
		}, nil
	case TypeFloat:
		minValue, maxValue, err := Float64Bounds(r.Type, r.Min, r.Max)
		if err != nil {
			return nil, err
		}
		l, err := random.NewFloat32Limiter(float32(minValue), float32(maxValue))
		if err != nil {
			return nil, err
		}
		return func() (string, error) {
			v, err := g.LimitFloat32(l)
			return strconv.FormatFloat(float64(v), 'g', -1, 32), err
		}, nil
	case TypeDouble:
		minValue, maxValue, err := Float64Bounds(r.Type, r.Min, r.Max)
		if err != nil {
			return nil, err
		}
		l, err := random.NewFloat64Limiter(minValue, maxValue)
		if err != nil {
			return nil, err
		}
		return func() (string, error) {
			v, err := g.LimitFloat64(l)
			return strconv.FormatFloat(v, 'g', -1, 64), err
		}, nil
	}
	return nil, fmt.Errorf("%w \"%s\"", ErrUnknownType, r.Type)
}

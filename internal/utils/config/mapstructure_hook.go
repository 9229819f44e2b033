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

package config

import (
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"github.com/xhit/go-str2duration/v2"

	"github.com/greenmaskio/randkit/internal/domains"
)

const (
	hexSaltPrefix    = "hex:"
	base64SaltPrefix = "base64:"
)

// StringToSaltHookFunc - decodes salt strings. Prefixes "hex:" and "base64:" select the encoding, any other
// string is taken as is.
func StringToSaltHookFunc() mapstructure.DecodeHookFunc {
	return func(
		f reflect.Type,
		t reflect.Type,
		data interface{},
	) (interface{}, error) {
		if t != reflect.TypeOf(domains.Salt{}) || f.Kind() != reflect.String {
			return data, nil
		}
		return ParseSalt(data.(string))
	}
}

func ParseSalt(raw string) (domains.Salt, error) {
	switch {
	case strings.HasPrefix(raw, hexSaltPrefix):
		res, err := hex.DecodeString(strings.TrimPrefix(raw, hexSaltPrefix))
		if err != nil {
			return nil, fmt.Errorf("cannot decode hex salt: %w", err)
		}
		return res, nil
	case strings.HasPrefix(raw, base64SaltPrefix):
		res, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(raw, base64SaltPrefix))
		if err != nil {
			return nil, fmt.Errorf("cannot decode base64 salt: %w", err)
		}
		return res, nil
	}
	return domains.Salt(raw), nil
}

// StringToDurationHookFunc - like mapstructure.StringToTimeDurationHookFunc but accepts days and weeks
// ("1d2h", "1w")
func StringToDurationHookFunc() mapstructure.DecodeHookFunc {
	return func(
		f reflect.Type,
		t reflect.Type,
		data interface{},
	) (interface{}, error) {
		if f.Kind() != reflect.String || t != reflect.TypeOf(time.Duration(0)) {
			return data, nil
		}
		res, err := str2duration.ParseDuration(data.(string))
		if err != nil {
			return nil, fmt.Errorf("cannot parse duration: %w", err)
		}
		return res, nil
	}
}

// DecoderConfig - hooks used for decoding the viper config
func DecoderConfig(cfg *mapstructure.DecoderConfig) {
	cfg.DecodeHook = mapstructure.ComposeDecodeHookFunc(
		StringToSaltHookFunc(),
		StringToDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	)
}

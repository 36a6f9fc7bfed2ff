// Copyright 2023 The acquirecloud Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package config builds configuration structures from several sources: the
// default values, a YAML or JSON file and the environment variables. Every
// source is loaded into its own Enricher, and the enrichers are applied one on
// top of another.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"reflect"
	"strconv"
	"strings"

	"github.com/ghodss/yaml"
	"github.com/solarisdb/lrucache/golibs/errors"
	"github.com/solarisdb/lrucache/golibs/logging"
)

type (
	// Enricher keeps a value of the structure type T and updates it from
	// different sources.
	//
	// Only the exported fields are updated. A field is addressed by its name or by
	// the name from its json tag, both are case-insensitive. YAML and JSON files
	// are read with the json tags as well.
	Enricher[T any] interface {
		// LoadFromFile reads the value from the YAML (.yaml, .yml) or JSON (.json)
		// file. The empty fileName is ignored.
		LoadFromFile(fileName string) error

		// ApplyOther overwrites the current value fields by the non-zero fields of
		// the other enricher value. Nested structures are applied field by field.
		ApplyOther(other Enricher[T]) error

		// ApplyEnvVariables applies the environment variables which names start
		// with prefix+sep. The rest of the name is the path to the field, where
		// the path elements are separated by sep:
		//
		//	type Inner struct { Port int `json:"port"` }
		//	type T struct { Name string; Grpc *Inner }
		//
		// the variables APP_NAME and APP_GRPC_PORT set T.Name and T.Grpc.Port for
		// ApplyEnvVariables("app", "_"). The values are JSON values, strings may be
		// not quoted. A complex field may be set at once: APP_GRPC={"port": 1234}
		ApplyEnvVariables(prefix, sep string) error

		// ApplyKeyValues applies the keyValues by the same rules as ApplyEnvVariables
		ApplyKeyValues(prefix, sep string, keyValues map[string]string) error

		// Value returns the current value
		Value() T
	}

	enricher[T any] struct {
		log logging.Logger
		val T
	}
)

// NewEnricher creates the Enricher with the initial value val. T must be a struct.
func NewEnricher[T any](val T) Enricher[T] {
	tp := reflect.TypeOf(val)
	if tp == nil || tp.Kind() != reflect.Struct {
		panic(fmt.Sprintf("only structs are acceptable in the Enricher, but got %v", tp))
	}
	return newEnricher(val)
}

func newEnricher[T any](val T) *enricher[T] {
	e := new(enricher[T])
	e.val = val
	e.log = logging.NewLogger("config.enricher." + reflect.TypeOf(val).Name())
	return e
}

func (e *enricher[T]) LoadFromFile(fileName string) error {
	if fileName == "" {
		e.log.Infof("no config file is provided, skipping")
		return nil
	}
	ext := strings.ToLower(strings.TrimSpace(fileName))
	if !strings.HasSuffix(ext, ".yaml") && !strings.HasSuffix(ext, ".yml") && !strings.HasSuffix(ext, ".json") {
		return fmt.Errorf("cannot recognize file format %s, expecting .json, .yaml or .yml: %w", fileName, errors.ErrInvalid)
	}

	e.log.Infof("reading config from %s", fileName)
	buf, err := os.ReadFile(fileName)
	if os.IsNotExist(err) {
		return fmt.Errorf("config file %s: %w", fileName, errors.ErrNotExist)
	}
	if err != nil {
		return fmt.Errorf("could not read file %s: %w", fileName, err)
	}
	// JSON is a subset of YAML, so one decoder serves both formats
	if err = yaml.Unmarshal(buf, &e.val); err != nil {
		return fmt.Errorf("could not unmarshal file %s: %s: %w", fileName, err, errors.ErrInvalid)
	}
	return nil
}

func (e *enricher[T]) ApplyOther(other Enricher[T]) error {
	o, ok := other.(*enricher[T])
	if !ok {
		return fmt.Errorf("unsupported enricher implementation %T: %w", other, errors.ErrInvalid)
	}
	applyValues(reflect.ValueOf(&o.val).Elem(), reflect.ValueOf(&e.val).Elem())
	return nil
}

func (e *enricher[T]) ApplyEnvVariables(prefix, sep string) error {
	env := make(map[string]string)
	for _, kv := range os.Environ() {
		k, v, ok := strings.Cut(kv, "=")
		if !ok {
			continue
		}
		env[k] = v
	}
	return e.ApplyKeyValues(prefix, sep, env)
}

func (e *enricher[T]) ApplyKeyValues(prefix, sep string, keyValues map[string]string) error {
	sep = strings.ToUpper(sep)
	pfx := ""
	if prefix != "" {
		pfx = strings.ToUpper(prefix) + sep
	}
	for key, value := range keyValues {
		key = strings.ToUpper(key)
		if !strings.HasPrefix(key, pfx) {
			continue
		}
		path := strings.Split(key[len(pfx):], sep)
		ok, err := assignPath(reflect.ValueOf(&e.val).Elem(), path, value)
		if err != nil {
			return fmt.Errorf("could not apply %s=%q: %s: %w", key, value, err, errors.ErrInvalid)
		}
		if ok {
			e.log.Infof("applied %s", key)
		} else {
			e.log.Debugf("no field for %s, skipping", key)
		}
	}
	return nil
}

func (e *enricher[T]) Value() T {
	return e.val
}

// applyValues copies non-zero values of other into target. Both are of the same type.
func applyValues(other, target reflect.Value) {
	if other.IsZero() {
		return
	}
	switch other.Kind() {
	case reflect.Ptr:
		if target.IsNil() {
			target.Set(reflect.New(target.Type().Elem()))
		}
		applyValues(other.Elem(), target.Elem())
	case reflect.Struct:
		for i := 0; i < other.NumField(); i++ {
			if target.Field(i).CanSet() {
				applyValues(other.Field(i), target.Field(i))
			}
		}
	default:
		target.Set(other)
	}
}

// assignPath sets the field of the struct value v addressed by the path to the
// JSON value s. The nil pointers on the path are allocated only if the field
// is found. It returns false if there is no field for the path.
func assignPath(v reflect.Value, path []string, s string) (bool, error) {
	if len(path) == 0 || path[0] == "" {
		return false, nil
	}
	if v.Kind() != reflect.Struct {
		return false, nil
	}
	tp := v.Type()
	for i := 0; i < tp.NumField(); i++ {
		sf := tp.Field(i)
		if !sf.IsExported() || !matchField(sf, path[0]) {
			continue
		}
		f := v.Field(i)
		if len(path) == 1 {
			return true, setFromString(f, s)
		}

		// copy the nested value, so nothing is changed if the path is not found
		var nested reflect.Value
		if f.Kind() == reflect.Ptr {
			nested = reflect.New(f.Type().Elem())
			if !f.IsNil() {
				nested.Elem().Set(f.Elem())
			}
			ok, err := assignPath(nested.Elem(), path[1:], s)
			if ok && err == nil {
				f.Set(nested)
			}
			return ok, err
		}
		nested = reflect.New(f.Type()).Elem()
		nested.Set(f)
		ok, err := assignPath(nested, path[1:], s)
		if ok && err == nil {
			f.Set(nested)
		}
		return ok, err
	}
	return false, nil
}

func matchField(sf reflect.StructField, name string) bool {
	if strings.ToUpper(sf.Name) == name {
		return true
	}
	alias, _, _ := strings.Cut(sf.Tag.Get("json"), ",")
	return alias != "" && strings.ToUpper(alias) == name
}

// setFromString decodes s as JSON into the field. String fields accept
// not quoted values.
func setFromString(f reflect.Value, s string) error {
	if s == "" {
		return nil
	}
	tp := f.Type()
	base := tp
	for base.Kind() == reflect.Ptr {
		base = base.Elem()
	}
	if base.Kind() == reflect.String && !isQuoted(s) {
		s = strconv.Quote(s)
	}
	obj := reflect.New(tp)
	if err := json.Unmarshal([]byte(s), obj.Interface()); err != nil {
		return err
	}
	f.Set(obj.Elem())
	return nil
}

func isQuoted(s string) bool {
	s = strings.TrimSpace(s)
	return len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"'
}

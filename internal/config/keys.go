// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// ErrUnknownKey is returned for a key that names no setting.
var ErrUnknownKey = errors.New("unknown setting")

// secretKeys are masked by Display.
var secretKeys = map[string]bool{"api_token": true}

// Keys returns every settable key in dot notation, in declaration order.
func Keys() []string {
	var keys []string
	collectKeys(reflect.TypeOf(Settings{}), "", &keys)
	return keys
}

func collectKeys(t reflect.Type, prefix string, keys *[]string) {
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		name := tomlName(f)
		if name == "" {
			continue
		}
		if f.Type.Kind() == reflect.Struct {
			collectKeys(f.Type, prefix+name+".", keys)
			continue
		}
		*keys = append(*keys, prefix+name)
	}
}

func tomlName(f reflect.StructField) string {
	name, _, _ := strings.Cut(f.Tag.Get("toml"), ",")
	if name == "-" {
		return ""
	}
	return name
}

// field walks a dot-notation key ("log.level") to a settable field.
func (s *Settings) field(key string) (reflect.Value, error) {
	key = strings.ToLower(strings.TrimSpace(key))
	if key == "" {
		return reflect.Value{}, fmt.Errorf("%w: empty key", ErrUnknownKey)
	}

	v := reflect.ValueOf(s).Elem()
	parts := strings.Split(strings.ReplaceAll(key, "-", "_"), ".")
	for i, part := range parts {
		found := false
		for j := 0; j < v.NumField(); j++ {
			if tomlName(v.Type().Field(j)) == part {
				v = v.Field(j)
				found = true
				break
			}
		}
		if !found {
			return reflect.Value{}, fmt.Errorf("%w: %s", ErrUnknownKey, strings.Join(parts[:i+1], "."))
		}
		if i < len(parts)-1 && v.Kind() != reflect.Struct {
			return reflect.Value{}, fmt.Errorf("%w: %s is not a section", ErrUnknownKey, strings.Join(parts[:i+1], "."))
		}
	}
	if v.Kind() == reflect.Struct {
		return reflect.Value{}, fmt.Errorf("%w: %s is a section", ErrUnknownKey, key)
	}
	return v, nil
}

// Get returns the value of a setting by key.
func (s *Settings) Get(key string) (any, error) {
	v, err := s.field(key)
	if err != nil {
		return nil, err
	}
	return v.Interface(), nil
}

// Set parses value into the setting named by key. It does not validate the
// result; Store.Set does.
func (s *Settings) Set(key, value string) error {
	v, err := s.field(key)
	if err != nil {
		return err
	}

	switch v.Kind() {
	case reflect.String:
		v.SetString(value)
	case reflect.Bool:
		b, err := parseBool(value)
		if err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
		v.SetBool(b)
	case reflect.Int, reflect.Int64:
		n, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
		if err != nil {
			return fmt.Errorf("%s: invalid integer value %q", key, value)
		}
		v.SetInt(n)
	default:
		return fmt.Errorf("%s: unsupported setting type %s", key, v.Type())
	}
	return nil
}

func parseBool(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "true", "yes", "on":
		return true, nil
	case "0", "false", "no", "off":
		return false, nil
	}
	return false, fmt.Errorf("invalid boolean value %q", s)
}

// Display returns the value of key formatted for printing, with secrets
// masked.
func (s *Settings) Display(key string) (string, error) {
	val, err := s.Get(key)
	if err != nil {
		return "", err
	}
	str := fmt.Sprint(val)
	if secretKeys[key] && str != "" {
		return maskSecret(str), nil
	}
	return str, nil
}

func maskSecret(s string) string {
	if len(s) <= 8 {
		return "****"
	}
	return s[:4] + "..." + s[len(s)-4:]
}

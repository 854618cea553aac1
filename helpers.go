// This file is part of go-optspec.
//
// Copyright (C) 2015-2026  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package optspec

import (
	"github.com/DavidGamba/go-optspec/text"
)

func wrongType(key, typeName string, v interface{}) error {
	return newError(ErrorWrongType, key, text.ErrorWrongType, key, typeName, v)
}

// GetBool - Same as Get but asserts a bool.
// Options without a value return false.
func (gopt *OptSpec) GetBool(key string) (bool, error) {
	v, err := gopt.Get(key)
	if err != nil {
		return false, err
	}
	switch e := v.(type) {
	case nil, NoValue:
		return false, nil
	case bool:
		return e, nil
	}
	return false, wrongType(key, "bool", v)
}

// GetInt - Same as Get but asserts an int.
// Options without a value return 0.
func (gopt *OptSpec) GetInt(key string) (int, error) {
	v, err := gopt.Get(key)
	if err != nil {
		return 0, err
	}
	switch e := v.(type) {
	case nil, NoValue:
		return 0, nil
	case int:
		return e, nil
	}
	return 0, wrongType(key, "int", v)
}

// GetFloat64 - Same as Get but asserts a float64.
func (gopt *OptSpec) GetFloat64(key string) (float64, error) {
	v, err := gopt.Get(key)
	if err != nil {
		return 0, err
	}
	switch e := v.(type) {
	case nil, NoValue:
		return 0, nil
	case float64:
		return e, nil
	}
	return 0, wrongType(key, "float64", v)
}

// GetString - Same as Get but asserts a string.
func (gopt *OptSpec) GetString(key string) (string, error) {
	v, err := gopt.Get(key)
	if err != nil {
		return "", err
	}
	switch e := v.(type) {
	case nil, NoValue:
		return "", nil
	case string:
		return e, nil
	}
	return "", wrongType(key, "string", v)
}

// GetStringSlice - Same as Get but asserts a []string.
func (gopt *OptSpec) GetStringSlice(key string) ([]string, error) {
	v, err := gopt.Get(key)
	if err != nil {
		return nil, err
	}
	switch e := v.(type) {
	case nil:
		return nil, nil
	case []string:
		return e, nil
	}
	return nil, wrongType(key, "[]string", v)
}

// GetIntSlice - Same as Get but asserts a []int.
func (gopt *OptSpec) GetIntSlice(key string) ([]int, error) {
	v, err := gopt.Get(key)
	if err != nil {
		return nil, err
	}
	switch e := v.(type) {
	case nil:
		return nil, nil
	case []int:
		return e, nil
	}
	return nil, wrongType(key, "[]int", v)
}

// GetFloat64Slice - Same as Get but asserts a []float64.
func (gopt *OptSpec) GetFloat64Slice(key string) ([]float64, error) {
	v, err := gopt.Get(key)
	if err != nil {
		return nil, err
	}
	switch e := v.(type) {
	case nil:
		return nil, nil
	case []float64:
		return e, nil
	}
	return nil, wrongType(key, "[]float64", v)
}

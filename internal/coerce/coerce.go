// This file is part of go-optspec.
//
// Copyright (C) 2015-2026  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package coerce - converts raw command line arguments into typed values.
package coerce

import (
	"fmt"
	"math"
	"strconv"
)

// Type - Indicates the type of value an option argument is converted to.
type Type int

// Value Types
const (
	StringType Type = iota
	IntType
	Float64Type
)

// String - name used in messages and help.
func (t Type) String() string {
	switch t {
	case IntType:
		return "integer"
	case Float64Type:
		return "float"
	default:
		return "string"
	}
}

// ParseType - maps the short and long type tokens of a specification to a Type.
func ParseType(token string) (Type, bool) {
	switch token {
	case "s", "string":
		return StringType, true
	case "i", "integer":
		return IntType, true
	case "f", "float":
		return Float64Type, true
	}
	return StringType, false
}

// Value - converts raw into t.
// The bool result is false when raw can't be represented as t.
//
// Integers follow Go literal syntax so 0x1f, 0b101, 0o17 and 1_000 are accepted.
func Value(raw string, t Type) (interface{}, bool) {
	switch t {
	case IntType:
		i, err := strconv.ParseInt(raw, 0, strconv.IntSize)
		if err != nil {
			return 0, false
		}
		return int(i), true
	case Float64Type:
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil || math.IsInf(f, 0) || math.IsNaN(f) {
			return 0.0, false
		}
		return f, true
	default:
		return raw, true
	}
}

// Empty - returns an empty list for t.
func Empty(t Type) interface{} {
	switch t {
	case IntType:
		return []int{}
	case Float64Type:
		return []float64{}
	default:
		return []string{}
	}
}

// Append - appends v to the list held in list, creating it if list is nil.
func Append(list interface{}, v interface{}) (interface{}, error) {
	switch e := v.(type) {
	case string:
		l, ok := list.([]string)
		if list != nil && !ok {
			return list, fmt.Errorf("can't append %T to %T", v, list)
		}
		return append(l, e), nil
	case int:
		l, ok := list.([]int)
		if list != nil && !ok {
			return list, fmt.Errorf("can't append %T to %T", v, list)
		}
		return append(l, e), nil
	case float64:
		l, ok := list.([]float64)
		if list != nil && !ok {
			return list, fmt.Errorf("can't append %T to %T", v, list)
		}
		return append(l, e), nil
	}
	return list, fmt.Errorf("unsupported value type %T", v)
}

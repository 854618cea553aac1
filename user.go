// This file is part of go-optspec.
//
// Copyright (C) 2015-2026  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package optspec

import (
	"fmt"
	"io"
	"log"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/DavidGamba/go-optspec/internal/option"
	"github.com/DavidGamba/go-optspec/text"
)

// Logger instance set to `io.Discard` by default.
// Enable debug logging by setting: `Logger.SetOutput(os.Stderr)`.
var Logger = log.New(io.Discard, "DEBUG: ", log.Ldate|log.Ltime|log.Lshortfile)

// OptSpec - main object.
type OptSpec struct {
	// Built once from the specifications, read only afterwards.
	table *optionTable

	// Values set by the last call to Parse.
	result *results
}

// New - compiles the given option specifications.
// For example:
//
//	opt, err := optspec.New("help|h", "debug!", "verbose|v+", "size=i", "host=@s")
//
// The returned error wraps ErrorInvalidSpecFormat or ErrorUnknownArgumentType.
func New(specs ...string) (*OptSpec, error) {
	t, err := compile(specs)
	if err != nil {
		return nil, err
	}
	return &OptSpec{table: t, result: newResults()}, nil
}

// Parse - Call the parse method when done describing.
// It will operate on any given slice of strings and return the remaining (non
// used) command line arguments: the operands in the order they were found
// followed by everything after the `--` terminator.
//
// The given slice is not modified.
// Every call starts from empty results, values from a previous call are discarded.
func (gopt *OptSpec) Parse(args []string) ([]string, error) {
	gopt.result = newResults()
	return parseCLIArgs(gopt.table, gopt.result, args)
}

// Parse - compiles specs and parses args in a single call.
func Parse(specs []string, args []string) (*OptSpec, []string, error) {
	gopt, err := New(specs...)
	if err != nil {
		return nil, nil, err
	}
	remaining, err := gopt.Parse(args)
	return gopt, remaining, err
}

// ParseOSArgs - compiles specs and parses os.Args[1:].
// os.Args is not modified, use the returned remaining slice instead.
func ParseOSArgs(specs ...string) (*OptSpec, []string, error) {
	return Parse(specs, os.Args[1:])
}

func (gopt *OptSpec) lookup(key string) (*option.Option, error) {
	if key == "" {
		return nil, newError(ErrorNilKey, "", text.ErrorNilKey)
	}
	opt, ok := gopt.table.Lookup(key)
	if !ok {
		return nil, newError(ErrorUnknownOptionAccess, key, text.ErrorUnknownOptionAccess, key)
	}
	return opt, nil
}

// Get - Returns the value of the given option.
// The key can be the option name or any of its spellings.
//
// Options that were declared but not called return nil, except for
// incremental options which return 0.
// Options with an optional argument that were called without one return NoValue{}.
//
// Type assertions are required, for example: `v.(int)`, or use the typed helpers.
func (gopt *OptSpec) Get(key string) (interface{}, error) {
	opt, err := gopt.lookup(key)
	if err != nil {
		return nil, err
	}
	if v, ok := gopt.result.get(opt.Name); ok {
		return v, nil
	}
	if opt.Kind == option.IncrementType {
		return 0, nil
	}
	return nil, nil
}

// Has - Indicates if the option has a value.
// Unlike Get, unknown keys are not an error.
func (gopt *OptSpec) Has(key string) (bool, error) {
	if key == "" {
		return false, newError(ErrorNilKey, "", text.ErrorNilKey)
	}
	opt, ok := gopt.table.Lookup(key)
	if !ok {
		return false, nil
	}
	_, ok = gopt.result.get(opt.Name)
	return ok, nil
}

// Each - calls fn for every option that has a value, in the order they were first set.
func (gopt *OptSpec) Each(fn func(key string, value interface{})) {
	for _, k := range gopt.result.keys {
		fn(k, gopt.result.values[k])
	}
}

// Describe - one `key: value` line per option that has a value, sorted by key.
func (gopt *OptSpec) Describe() string {
	keys := append([]string{}, gopt.result.keys...)
	sort.Strings(keys)
	lines := []string{}
	for _, k := range keys {
		lines = append(lines, fmt.Sprintf("%s: %s", k, valueLiteral(gopt.result.values[k])))
	}
	return strings.Join(lines, "\n")
}

func (gopt *OptSpec) String() string {
	return gopt.Describe()
}

// Usage - option synopsis in declaration order.
func (gopt *OptSpec) Usage() string {
	out := "OPTIONS:\n"
	for _, opt := range gopt.table.definitions {
		out += "    " + opt.Synopsis() + "\n"
	}
	return out
}

func valueLiteral(v interface{}) string {
	switch e := v.(type) {
	case nil, NoValue:
		return "nil"
	case string:
		return strconv.Quote(e)
	case bool:
		return strconv.FormatBool(e)
	case int:
		return strconv.Itoa(e)
	case float64:
		return floatLiteral(e)
	case []string:
		list := []string{}
		for _, s := range e {
			list = append(list, strconv.Quote(s))
		}
		return "[" + strings.Join(list, ", ") + "]"
	case []int:
		list := []string{}
		for _, i := range e {
			list = append(list, strconv.Itoa(i))
		}
		return "[" + strings.Join(list, ", ") + "]"
	case []float64:
		list := []string{}
		for _, f := range e {
			list = append(list, floatLiteral(f))
		}
		return "[" + strings.Join(list, ", ") + "]"
	}
	return fmt.Sprintf("%v", v)
}

// floatLiteral always shows a decimal point so floats can be told apart from integers.
func floatLiteral(f float64) string {
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eEnN") {
		s += ".0"
	}
	return s
}

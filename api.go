// This file is part of go-optspec.
//
// Copyright (C) 2015-2026  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package optspec

import (
	"strings"

	"github.com/DavidGamba/go-optspec/internal/coerce"
	"github.com/DavidGamba/go-optspec/internal/option"
	"github.com/DavidGamba/go-optspec/internal/sliceiterator"
	"github.com/DavidGamba/go-optspec/text"
)

// NoValue - Stored for options with an optional scalar argument that were
// called without one. It allows telling apart "called without a value" from
// "never called".
type NoValue struct{}

func (NoValue) String() string {
	return "nil"
}

// results - parsed values by canonical key.
type results struct {
	values map[string]interface{}
	keys   []string // first write order
}

func newResults() *results {
	return &results{values: map[string]interface{}{}}
}

func (r *results) set(key string, value interface{}) {
	if _, ok := r.values[key]; !ok {
		r.keys = append(r.keys, key)
	}
	r.values[key] = value
}

func (r *results) get(key string) (interface{}, bool) {
	v, ok := r.values[key]
	return v, ok
}

// parseCLIArgs - Given the option table and the cli args it populates the results.
// It returns the operands followed by everything after the `--` terminator.
func parseCLIArgs(t *optionTable, r *results, args []string) ([]string, error) {
	// Ensure consistent response for empty and nil slices
	remaining := []string{}

	iterator := sliceiterator.New(args)

ARGS_LOOP:
	for iterator.Next() {
		// handle terminator
		if iterator.Value() == terminator {
			remaining = append(remaining, iterator.Remaining()...)
			Logger.Printf("terminator, remaining: %v\n", remaining)
			break ARGS_LOOP
		}

		optPair, is := isOption(iterator.Value())
		if !is {
			Logger.Printf("operand: %s\n", iterator.Value())
			remaining = append(remaining, iterator.Value())
			continue ARGS_LOOP
		}

		// --opt=arg is handled as --opt arg
		if optPair.HasArg {
			iterator.Unshift(optPair.Arg)
		}

		for i, name := range optPair.Options {
			// -w12 is handled as -w 12 unless the rest of the cluster is all options
			rest := optPair.Options[i+1:]
			if !optPair.Long && len(rest) > 0 && t.takesArgument(name) && !t.allKnown(rest) {
				iterator.Unshift(strings.Join(rest, ""))
				Logger.Printf("cluster remainder: %s\n", strings.Join(rest, ""))
				err := matchOption(t, r, iterator, name)
				if err != nil {
					return nil, err
				}
				continue ARGS_LOOP
			}
			err := matchOption(t, r, iterator, name)
			if err != nil {
				return nil, err
			}
		}
	}
	return remaining, nil
}

func matchOption(t *optionTable, r *results, iterator *sliceiterator.Iterator, name string) error {
	opt, ok := t.Lookup(name)
	if !ok {
		return t.unknownOptionError(name)
	}
	Logger.Printf("option: %s, key: %s, kind: %s\n", name, opt.Name, opt.Kind)

	switch opt.Kind {
	case option.BoolType:
		r.set(opt.Name, true)
	case option.NegatableType:
		r.set(opt.Name, name != opt.NegatedName())
	case option.IncrementType:
		count, _ := r.values[opt.Name].(int)
		r.set(opt.Name, count+1)
	case option.OptionalType, option.RequiredType:
		return collectArgs(t, r, iterator, opt)
	}
	return nil
}

// collectArgs - consumes arguments for opt until the input ends, the
// terminator is found or the next value is a known option.
// Scalar options take at most one argument.
func collectArgs(t *optionTable, r *results, iterator *sliceiterator.Iterator, opt *option.Option) error {
	accepted := 0
	for opt.Shape == option.List || accepted < 1 {
		value, ok := iterator.PeekNextValue()
		if !ok || value == terminator || t.isKnownOption(value) {
			break
		}
		iterator.Next()

		v, ok := coerce.Value(value, opt.ValueType)
		if !ok {
			return newError(ErrorTypeCoercion, opt.Name, text.ErrorConvertToType, opt.ValueType, opt.Name)
		}
		Logger.Printf("argument: %s, key: %s\n", value, opt.Name)

		switch opt.Shape {
		case option.List:
			current, _ := r.get(opt.Name)
			list, err := coerce.Append(current, v)
			if err != nil {
				return newError(ErrorTypeCoercion, opt.Name, text.ErrorConvertToType, opt.ValueType, opt.Name)
			}
			r.set(opt.Name, list)
		case option.Scalar:
			r.set(opt.Name, v)
		}
		accepted++
	}
	if accepted > 0 {
		return nil
	}

	switch opt.Kind {
	case option.RequiredType:
		return newError(ErrorMissingArgument, opt.Name, text.ErrorMissingArgument, opt.Name)
	case option.OptionalType:
		if _, ok := r.get(opt.Name); ok {
			return nil
		}
		switch opt.Shape {
		case option.List:
			r.set(opt.Name, coerce.Empty(opt.ValueType))
		case option.Scalar:
			r.set(opt.Name, NoValue{})
		}
	}
	return nil
}

// isKnownOption - Check if s is an option that the table knows.
// Short option clusters are known only when every character is.
func (t *optionTable) isKnownOption(s string) bool {
	optPair, is := isOption(s)
	if !is {
		return false
	}
	return t.allKnown(optPair.Options)
}

func (t *optionTable) allKnown(names []string) bool {
	for _, name := range names {
		if _, ok := t.Lookup(name); !ok {
			return false
		}
	}
	return true
}

func (t *optionTable) takesArgument(name string) bool {
	opt, ok := t.Lookup(name)
	return ok && opt.TakesArgument()
}

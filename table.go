// This file is part of go-optspec.
//
// Copyright (C) 2015-2026  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package optspec

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/DavidGamba/go-optspec/internal/abbrev"
	"github.com/DavidGamba/go-optspec/internal/option"
	"github.com/DavidGamba/go-optspec/text"
)

// optionTable - lookup from every recognized spelling to its option.
//
// Declared aliases of an option point to the same *option.Option.
// Abbreviations point to a copy marked with IsAbbreviation.
type optionTable struct {
	entries     map[string]*option.Option
	spellings   []string         // declared and negated spellings in declaration order
	negated     map[string]bool  // spellings that only exist as the negated form
	definitions []*option.Option // one per specification in declaration order
}

func newOptionTable() *optionTable {
	return &optionTable{
		entries: map[string]*option.Option{},
		negated: map[string]bool{},
	}
}

// compile - builds the option table from the list of specifications.
func compile(specs []string) (*optionTable, error) {
	t := newOptionTable()
	for _, spec := range specs {
		opt, err := option.Parse(spec)
		if err != nil {
			kind := ErrorInvalidSpecFormat
			if errors.Is(err, ErrorUnknownArgumentType) {
				kind = ErrorUnknownArgumentType
			}
			return nil, &Error{Err: kind, msg: err.Error()}
		}
		for _, alias := range opt.Aliases {
			err := t.add(alias, opt)
			if err != nil {
				return nil, err
			}
		}
		if opt.Kind == option.NegatableType {
			err := t.add(opt.NegatedName(), opt)
			if err != nil {
				return nil, err
			}
			t.negated[opt.NegatedName()] = true
		}
		t.definitions = append(t.definitions, opt)
		Logger.Printf("compiled: %s, kind: %s, shape: %s, type: %s\n", opt.Spec, opt.Kind, opt.Shape, opt.ValueType)
	}

	// Negated spellings take part in the ambiguity check but never get abbreviations.
	for prefix, spelling := range abbrev.New(t.spellings...) {
		if _, ok := t.entries[prefix]; ok {
			continue
		}
		if t.negated[spelling] {
			continue
		}
		t.entries[prefix] = t.entries[spelling].Abbreviation()
	}
	return t, nil
}

func (t *optionTable) add(spelling string, opt *option.Option) error {
	if v, ok := t.entries[spelling]; ok {
		return newError(ErrorInvalidSpecFormat, spelling, text.ErrorDuplicateSpelling, spelling, v.Name)
	}
	t.entries[spelling] = opt
	t.spellings = append(t.spellings, spelling)
	return nil
}

// Lookup - returns the option for the given spelling.
func (t *optionTable) Lookup(spelling string) (*option.Option, bool) {
	opt, ok := t.entries[spelling]
	return opt, ok
}

// String - debug dump of the table sorted by spelling.
func (t *optionTable) String() string {
	keys := []string{}
	for k := range t.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := ""
	for _, k := range keys {
		opt := t.entries[k]
		marker := ""
		if opt.IsAbbreviation {
			marker = " (abbreviation)"
		}
		out += fmt.Sprintf("{ %s = %s }%s\n", k, opt.Name, marker)
	}
	return strings.TrimSuffix(out, "\n")
}

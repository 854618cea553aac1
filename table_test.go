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
	"testing"
)

func TestCompileErrors(t *testing.T) {
	tests := []struct {
		name  string
		specs []string
		err   error
		msg   string
	}{
		{"unknown type", []string{"debug", "size=x"}, ErrorUnknownArgumentType,
			"unknown argument type 'x' in option specification 'size=x': unknown argument type"},
		{"invalid format", []string{"size!=i"}, ErrorInvalidSpecFormat,
			"invalid option specification 'size!=i': invalid spec format"},
		{"empty spec", []string{""}, ErrorInvalidSpecFormat,
			"invalid option specification '': invalid spec format"},
		{"duplicate alias", []string{"help|h", "host|h=s"}, ErrorInvalidSpecFormat,
			"option/alias 'h' is already defined in option 'help'"},
		{"duplicate within spec", []string{"help|help"}, ErrorInvalidSpecFormat,
			"option/alias 'help' is already defined in option 'help'"},
		{"duplicate negated", []string{"debug!", "no-debug"}, ErrorInvalidSpecFormat,
			"option/alias 'no-debug' is already defined in option 'debug'"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gopt, err := New(tt.specs...)
			checkError(t, err, tt.err)
			if gopt != nil {
				t.Errorf("expected nil parser on compile error")
			}
			if err != nil && err.Error() != tt.msg {
				t.Errorf("%s", firstDiff(err.Error(), tt.msg))
			}
		})
	}
}

func TestCompileLookup(t *testing.T) {
	table, err := compile([]string{"verbose|v+", "version", "debug!"})
	if err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		spelling       string
		name           string
		isAbbreviation bool
	}{
		{"verbose", "verbose", false},
		{"v", "verbose", false},
		{"verb", "verbose", true},
		{"verbos", "verbose", true},
		{"version", "version", false},
		{"vers", "version", true},
		{"debug", "debug", false},
		{"d", "debug", true},
		{"no-debug", "debug", false},
	}
	for _, tt := range tests {
		t.Run(tt.spelling, func(t *testing.T) {
			opt, ok := table.Lookup(tt.spelling)
			if !ok {
				t.Fatalf("spelling not found: %s", tt.spelling)
			}
			if opt.Name != tt.name || opt.IsAbbreviation != tt.isAbbreviation {
				t.Errorf("got %s (abbreviation %v), want %s (abbreviation %v)", opt.Name, opt.IsAbbreviation, tt.name, tt.isAbbreviation)
			}
		})
	}
	for _, spelling := range []string{"ve", "ver", "n", "no", "no-", "no-deb", "x", ""} {
		if _, ok := table.Lookup(spelling); ok {
			t.Errorf("unexpected spelling in table: %q", spelling)
		}
	}

	verbose, _ := table.Lookup("verbose")
	v, _ := table.Lookup("v")
	if verbose != v {
		t.Errorf("aliases don't share the option")
	}
	verb, _ := table.Lookup("verb")
	if verb == verbose || verbose.IsAbbreviation {
		t.Errorf("abbreviation shares the declared option")
	}
}

// Every abbreviation is a strict prefix of exactly one declared spelling.
func TestCompileAbbreviationsAreUnambiguous(t *testing.T) {
	table, err := compile([]string{"host|h=@s", "hostname=s", "help", "debug!", "dry-run", "noise", "n=i"})
	if err != nil {
		t.Fatal(err)
	}
	for spelling, opt := range table.entries {
		if !opt.IsAbbreviation {
			continue
		}
		matches := []string{}
		for _, declared := range table.spellings {
			if strings.HasPrefix(declared, spelling) {
				matches = append(matches, declared)
			}
		}
		if len(matches) != 1 || matches[0] == spelling {
			t.Errorf("abbreviation %q is ambiguous: %v", spelling, matches)
		}
		if table.negated[matches[0]] {
			t.Errorf("abbreviation %q points to a negated spelling", spelling)
		}
	}
}

func TestOptionTableString(t *testing.T) {
	table, err := compile([]string{"list|l=@i"})
	if err != nil {
		t.Fatal(err)
	}
	expected := `{ l = list }
{ li = list } (abbreviation)
{ lis = list } (abbreviation)
{ list = list }`
	if table.String() != expected {
		t.Errorf("%s", firstDiff(table.String(), expected))
	}
}

// This file is part of go-optspec.
//
// Copyright (C) 2015-2026  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package option - internal option definition and specification grammar.
package option

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/DavidGamba/go-optspec/internal/coerce"
	"github.com/DavidGamba/go-optspec/text"
)

// ErrorInvalidSpecFormat - the specification doesn't follow the grammar.
var ErrorInvalidSpecFormat = errors.New("invalid spec format")

// ErrorUnknownArgumentType - the specification binding uses an unknown type token.
var ErrorUnknownArgumentType = errors.New("unknown argument type")

// NegatedPrefix is prepended to the name of negatable options to build the negated spelling.
const NegatedPrefix = "no-"

// Kind - Indicates how an option consumes the token stream.
type Kind int

// Option Kinds
const (
	BoolType Kind = iota
	NegatableType
	IncrementType
	OptionalType
	RequiredType
)

func (k Kind) String() string {
	switch k {
	case BoolType:
		return "boolean-presence"
	case NegatableType:
		return "boolean-negatable"
	case IncrementType:
		return "increment-counter"
	case OptionalType:
		return "optional-value"
	case RequiredType:
		return "required-value"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Shape - Indicates the container used to store the value of argument taking options.
type Shape int

// Container Shapes
const (
	Scalar Shape = iota
	List
)

func (s Shape) String() string {
	if s == List {
		return "list"
	}
	return "scalar"
}

// Option - main object
type Option struct {
	Name           string      // Canonical key, the first alias in the specification
	Aliases        []string    // All declared forms, Name included
	Kind           Kind        // Option Kind
	Shape          Shape       // Only relevant for OptionalType and RequiredType
	ValueType      coerce.Type // Only relevant for OptionalType and RequiredType
	IsAbbreviation bool        // Marks table entries synthesized from an unambiguous prefix

	// Verbatim specification text used to generate the option
	Spec string
}

// 1: forms separated by |
// 2: modifier ! or +
// 3: binding = or :
// 4: @ list marker
// 5: type token
var specRegex = regexp.MustCompile(`^([^|!+=:@\s]+(?:\|[^|!+=:@\s]+)*)(?:([!+])|([=:])(@?)(\w+))?$`)

// Parse - compiles a single specification string into an Option.
func Parse(spec string) (*Option, error) {
	match := specRegex.FindStringSubmatch(spec)
	if match == nil {
		return nil, fmt.Errorf(text.ErrorInvalidSpecFormat+": %w", spec, ErrorInvalidSpecFormat)
	}
	aliases := strings.Split(match[1], "|")
	opt := &Option{
		Name:    aliases[0],
		Aliases: aliases,
		Kind:    BoolType,
		Spec:    spec,
	}
	switch {
	case match[2] == "!":
		opt.Kind = NegatableType
	case match[2] == "+":
		opt.Kind = IncrementType
	case match[3] != "":
		t, ok := coerce.ParseType(match[5])
		if !ok {
			return nil, fmt.Errorf(text.ErrorUnknownArgumentType+": %w", match[5], spec, ErrorUnknownArgumentType)
		}
		opt.ValueType = t
		opt.Kind = RequiredType
		if match[3] == ":" {
			opt.Kind = OptionalType
		}
		if match[4] == "@" {
			opt.Shape = List
		}
	}
	return opt, nil
}

// TakesArgument - Indicates if the option collects arguments from the token stream.
func (opt *Option) TakesArgument() bool {
	return opt.Kind == OptionalType || opt.Kind == RequiredType
}

// NegatedName - The negated spelling for NegatableType options, empty otherwise.
func (opt *Option) NegatedName() string {
	if opt.Kind != NegatableType {
		return ""
	}
	return NegatedPrefix + opt.Name
}

// Abbreviation - Returns a copy of the option marked as an abbreviation entry.
func (opt *Option) Abbreviation() *Option {
	c := *opt
	c.Aliases = append([]string{}, opt.Aliases...)
	c.IsAbbreviation = true
	return &c
}

func dashed(e string) string {
	if len([]rune(e)) > 1 {
		return "--" + e
	}
	return "-" + e
}

// Synopsis - help synopsis for the option, for example `-v|--verbose...` or `--size <integer>`.
func (opt *Option) Synopsis() string {
	aliases := []string{}
	for _, e := range opt.Aliases {
		aliases = append(aliases, dashed(e))
	}
	if opt.Kind == NegatableType {
		aliases = append(aliases, dashed(opt.NegatedName()))
	}
	synopsis := strings.Join(aliases, "|")
	switch opt.Kind {
	case IncrementType:
		synopsis += "..."
	case RequiredType:
		synopsis += fmt.Sprintf(" <%s>", opt.ValueType)
	case OptionalType:
		synopsis += fmt.Sprintf(" [<%s>]", opt.ValueType)
	}
	if opt.TakesArgument() && opt.Shape == List {
		synopsis += "..."
	}
	return synopsis
}

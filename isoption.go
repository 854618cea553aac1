// This file is part of go-optspec.
//
// Copyright (C) 2015-2026  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package optspec

import (
	"regexp"
	"strings"
)

const terminator = "--"

// 1: option
// 2: =arg
var isLongOptionRegex = regexp.MustCompile(`^--([^=]+)(=.*)?$`)

// 1: bundled options
// 2: =arg
var isShortOptionRegex = regexp.MustCompile(`^-([^-=][^=]*)(=.*)?$`)

type optionPair struct {
	Long bool
	// Spellings to look up in order, a single one for long options and one per
	// character for short option clusters.
	Options []string
	Arg     string
	HasArg  bool
}

/*
isOption - Check if the given string is an option (starts with - or --).
Return the option(s) without the starting dash and their argument if the string contained one.

Long options return a single spelling: `--opt=arg` is `opt` with argument `arg`.
Short options are split per character: `-opt=arg` is `o`, `p` and `t` with argument `arg`.

The terminator `--` and the lonesome dash `-` are not options.
*/
func isOption(s string) (optionPair, bool) {
	if s == terminator {
		return optionPair{}, false
	}
	if match := isLongOptionRegex.FindStringSubmatch(s); match != nil {
		opt := optionPair{Long: true, Options: []string{match[1]}}
		if strings.HasPrefix(match[2], "=") {
			opt.Arg = strings.TrimPrefix(match[2], "=")
			opt.HasArg = true
		}
		return opt, true
	}
	if match := isShortOptionRegex.FindStringSubmatch(s); match != nil {
		opt := optionPair{Options: strings.Split(match[1], "")}
		if strings.HasPrefix(match[2], "=") {
			opt.Arg = strings.TrimPrefix(match[2], "=")
			opt.HasArg = true
		}
		return opt, true
	}
	return optionPair{}, false
}

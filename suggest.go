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
	"sort"
	"strings"

	"github.com/DavidGamba/go-optspec/text"
	"github.com/xrash/smetrics"
)

// closeMatches - declared spellings that start with name, closest first.
//
// Closeness is the Jaro-Winkler similarity to name. Ties keep declaration order.
func (t *optionTable) closeMatches(name string) []string {
	matches := []string{}
	for _, spelling := range t.spellings {
		if strings.HasPrefix(spelling, name) {
			matches = append(matches, spelling)
		}
	}
	sort.SliceStable(matches, func(i, j int) bool {
		return smetrics.JaroWinkler(name, matches[i], 0.7, 4) > smetrics.JaroWinkler(name, matches[j], 0.7, 4)
	})
	return matches
}

// unknownOptionError - builds the error for an option token that isn't in the table.
func (t *optionTable) unknownOptionError(name string) *Error {
	matches := t.closeMatches(name)
	var err *Error
	switch len(matches) {
	case 0:
		err = newError(ErrorUnknownOption, name, text.ErrorUnknownOption, name)
	case 1:
		err = newError(ErrorUnknownOption, name, text.ErrorUnknownOptionDidYouMean, name, matches[0])
	default:
		list := fmt.Sprintf("%s %s %s", strings.Join(matches[:len(matches)-1], ", "), text.WordAnd, matches[len(matches)-1])
		err = newError(ErrorUnknownOption, name, text.ErrorUnknownOptionCloseMatches, name, list)
	}
	err.Suggestions = matches
	return err
}

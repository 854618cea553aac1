// This file is part of go-optspec.
//
// Copyright (C) 2015-2026  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package text - User facing strings.
package text

// ErrorInvalidSpecFormat holds the text for a specification that doesn't follow the grammar.
// It has a string placeholder '%s' for the specification.
var ErrorInvalidSpecFormat = "invalid option specification '%s'"

// ErrorUnknownArgumentType holds the text for a specification with an unsupported argument type.
// It has two string placeholders: the type token and the specification.
var ErrorUnknownArgumentType = "unknown argument type '%s' in option specification '%s'"

// ErrorDuplicateSpelling holds the text for an option or alias declared twice.
// It has two string placeholders: the alias and the option that already holds it.
var ErrorDuplicateSpelling = "option/alias '%s' is already defined in option '%s'"

// ErrorUnknownOption holds the text for an option that is not defined.
// It has a string placeholder '%s' for the option name.
var ErrorUnknownOption = "unknown option '%s'"

// ErrorUnknownOptionDidYouMean holds the text for an unknown option with a single close match.
var ErrorUnknownOptionDidYouMean = "unknown option '%s', did you mean '%s'?"

// ErrorUnknownOptionCloseMatches holds the text for an unknown option with multiple close matches.
var ErrorUnknownOptionCloseMatches = "unknown option '%s', close matches are: %s"

// ErrorMissingArgument holds the text for missing argument error.
// It has a string placeholder '%s' for the name of the option missing the argument.
var ErrorMissingArgument = "missing argument for option '%s'"

// ErrorConvertToType holds the text for a type conversion error.
// It has two string placeholders: the type name and the option name.
var ErrorConvertToType = "expecting %s value for option '%s'"

// ErrorNilKey holds the text for a lookup with an empty key.
var ErrorNilKey = "option key can't be empty"

// ErrorUnknownOptionAccess holds the text for a lookup of an option that was never declared.
var ErrorUnknownOptionAccess = "option '%s' is not defined"

// ErrorWrongType holds the text for a typed lookup on a value of a different type.
// It has three placeholders: the option name, the requested type and the stored value.
var ErrorWrongType = "option '%s' doesn't hold a %s value: %v"

// WordAnd joins the last element of a list of close matches.
var WordAnd = "and"

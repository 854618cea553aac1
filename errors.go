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

	"github.com/DavidGamba/go-optspec/internal/option"
)

// ErrorInvalidSpecFormat - Specification doesn't follow the grammar or redefines an alias.
var ErrorInvalidSpecFormat = option.ErrorInvalidSpecFormat

// ErrorUnknownArgumentType - Specification uses an unsupported type token.
var ErrorUnknownArgumentType = option.ErrorUnknownArgumentType

// ErrorUnknownOption - An option token doesn't match any known option.
var ErrorUnknownOption = errors.New("unknown option")

// ErrorMissingArgument - An option with a required argument didn't get one.
var ErrorMissingArgument = errors.New("missing argument")

// ErrorTypeCoercion - An argument couldn't be converted to the option type.
var ErrorTypeCoercion = errors.New("type coercion failure")

// ErrorNilKey - Lookup called with an empty key.
var ErrorNilKey = errors.New("nil key access")

// ErrorUnknownOptionAccess - Lookup of an option that was never declared.
var ErrorUnknownOptionAccess = errors.New("unknown option access")

// ErrorWrongType - Typed lookup of an option holding a different type.
var ErrorWrongType = errors.New("wrong type")

// Error - Every error returned by the package is of this type.
// Use errors.Is against the Error* sentinels to find out the kind.
type Error struct {
	Err         error    // Kind of error, wraps one of the Error* sentinels
	Option      string   // Option key or spelling involved, if any
	Suggestions []string // Close matches for ErrorUnknownOption
	msg         string
}

func (e *Error) Error() string {
	return e.msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

func newError(kind error, optName string, format string, a ...interface{}) *Error {
	return &Error{
		Err:    kind,
		Option: optName,
		msg:    fmt.Sprintf(format, a...),
	}
}

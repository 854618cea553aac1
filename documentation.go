// This file is part of go-optspec.
//
// Copyright (C) 2015-2026  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

/*
Package optspec - Declarative option parser driven by compact textual
specifications.

Options are declared with strings like `verbose|v+`, `host=@s` or `debug!` and
parsed from any given slice of strings. The parse returns the remaining (non
used) command line arguments.

	opt, err := optspec.New("help|h", "debug!", "verbose|v+", "prefix:s", "size=i", "host=@s")
	if err != nil {
		// programmer error
	}
	remaining, err := opt.Parse(os.Args[1:])
	if err != nil {
		// user error
	}
	v, _ := opt.GetInt("verbose")

# Specification grammar

	spec      := forms (modifier)? (binding)?
	forms     := name ('|' name)*
	modifier  := '!' | '+'
	binding   := ('=' | ':') ('@')? typeToken
	typeToken := 's' | 'string' | 'i' | 'integer' | 'f' | 'float'

The first form is the canonical key used to store the value.

• No modifier nor binding: boolean option, set to true when found.

• `!`: negatable boolean, `--no-<key>` sets it to false. Last one wins.

• `+`: incremental counter, defaults to 0.

• `=`: required argument. `:`: optional argument.

• `@`: the argument is accumulated into a list across calls and aliases.
List options greedily consume arguments until the next known option, the `--`
terminator or the end of the input: `--host a b c --debug`.

# Features

• Support for `--long` options, `--long=value`, bundled short options `-vvv`,
`-abc` and `-c=value`.

• Allows abbreviations when the provided option is not ambiguous.
For example: An option called `build` can be called with `--b`, `--bu`, `--bui`, `--buil` and `--build` as long as there is no ambiguity.
This also applies to single dash lookups, `-b` resolves `build` if no other option starts with `b`.

• Unknown options report the close matches: `unknown option 'ver', close matches are: verbose and version`.

• Supports passing `--` to stop parsing arguments (everything after will be left in the `remaining []string`).

• Allows passing arguments to options that start with dash `-` when passed after equal.
For example: `--string=--hello` and `--int=-123`.
Arguments that look like options but don't match a known option are consumed as well: `--int -123`.

• Errors expose their kind through sentinel values usable with `errors.Is`.
*/
package optspec

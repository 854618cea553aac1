// This file is part of go-optspec.
//
// Copyright (C) 2015-2026  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/DavidGamba/go-optspec"
	"gopkg.in/yaml.v3"
)

const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

type report struct {
	Options   map[string]interface{} `json:"options" yaml:"options"`
	Remaining []string               `json:"remaining" yaml:"remaining"`
}

func newReport(opt *optspec.OptSpec, remaining []string) report {
	r := report{Options: map[string]interface{}{}, Remaining: remaining}
	opt.Each(func(k string, v interface{}) {
		if _, ok := v.(optspec.NoValue); ok {
			v = nil
		}
		r.Options[k] = v
	})
	return r
}

func render(w io.Writer, format string, opt *optspec.OptSpec, remaining []string) error {
	switch format {
	case formatText:
		if d := opt.Describe(); d != "" {
			fmt.Fprintln(w, d)
		}
		fmt.Fprintf(w, "remaining: %q\n", remaining)
		return nil
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(newReport(opt, remaining))
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		err := enc.Encode(newReport(opt, remaining))
		if err != nil {
			return err
		}
		return enc.Close()
	}
	return fmt.Errorf("unknown output format '%s'", format)
}

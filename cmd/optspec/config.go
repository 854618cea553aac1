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
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"
)

// specFile - document shape of --spec-file.
//
//	specs:
//	  - verbose|v+
//	  - host=@s
type specFile struct {
	Specs []string `yaml:"specs" json:"specs"`
}

func readSpecFile(filename string) ([]string, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read spec file: %w", err)
	}
	specs, err := parseSpecFile(filepath.Ext(filename), data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse spec file '%s': %w", filename, err)
	}
	return specs, nil
}

// parseSpecFile - JSON files may contain comments and trailing commas.
func parseSpecFile(ext string, data []byte) ([]string, error) {
	var f specFile
	switch strings.ToLower(ext) {
	case ".json", ".jsonc":
		err := json.Unmarshal(jsonc.ToJSON(data), &f)
		if err != nil {
			return nil, err
		}
	case ".yaml", ".yml", "":
		err := yaml.Unmarshal(data, &f)
		if err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unsupported extension '%s'", ext)
	}
	return f.Specs, nil
}

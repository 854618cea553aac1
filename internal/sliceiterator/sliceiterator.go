// This file is part of go-optspec.
//
// Copyright (C) 2015-2026  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package sliceiterator - builds an iterator from a slice to allow peeking
// at the next value and pushing values back in front of it.
package sliceiterator

// Iterator - iterator data
type Iterator struct {
	data []string
	idx  int
}

// New - builds a string Iterator over a copy of s.
func New(s []string) *Iterator {
	data := make([]string, len(s))
	copy(data, s)
	return &Iterator{data: data, idx: -1}
}

// Next - moves the index forward and returns a bool to indicate if there is another value.
func (a *Iterator) Next() bool {
	if a.idx < len(a.data) {
		a.idx++
	}
	return a.idx < len(a.data)
}

// Value - returns value at current index or an empty string if you are trying to read the value after having fully read the list.
func (a *Iterator) Value() string {
	if a.idx < 0 || a.idx >= len(a.data) {
		return ""
	}
	return a.data[a.idx]
}

// PeekNextValue - Returns the next value and indicates whether or not it is valid.
func (a *Iterator) PeekNextValue() (string, bool) {
	if a.idx+1 >= len(a.data) {
		return "", false
	}
	return a.data[a.idx+1], true
}

// Unshift - inserts s right after the current index so it is the next value read.
func (a *Iterator) Unshift(s string) {
	i := a.idx + 1
	if i > len(a.data) {
		i = len(a.data)
	}
	a.data = append(a.data, "")
	copy(a.data[i+1:], a.data[i:])
	a.data[i] = s
}

// Remaining - Get all values after the current index.
func (a *Iterator) Remaining() []string {
	if a.idx+1 >= len(a.data) {
		return []string{}
	}
	r := make([]string, len(a.data)-a.idx-1)
	copy(r, a.data[a.idx+1:])
	return r
}

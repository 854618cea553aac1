// This file is part of go-optspec.
//
// Copyright (C) 2015-2026  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package abbrev - computes the unambiguous prefixes of a set of words.
package abbrev

type node struct {
	children map[rune]*node
	count    int    // number of distinct words that pass through this node
	word     string // last word that passed through this node
}

func newNode() *node {
	return &node{children: map[rune]*node{}}
}

// New - returns a map from every non-empty prefix that belongs to exactly one
// of the given words to that word.
// A word that is itself a prefix of another word is not unique and only maps
// to itself when no other word extends it.
//
// Duplicated words are counted once.
func New(words ...string) map[string]string {
	root := newNode()
	seen := map[string]struct{}{}
	for _, w := range words {
		if w == "" {
			continue
		}
		if _, ok := seen[w]; ok {
			continue
		}
		seen[w] = struct{}{}
		n := root
		for _, r := range w {
			c, ok := n.children[r]
			if !ok {
				c = newNode()
				n.children[r] = c
			}
			c.count++
			c.word = w
			n = c
		}
	}

	m := map[string]string{}
	walk(root, []rune{}, m)
	return m
}

func walk(n *node, prefix []rune, m map[string]string) {
	for r, c := range n.children {
		p := append(prefix, r)
		if c.count == 1 {
			m[string(p)] = c.word
		}
		walk(c, p[:len(p):len(p)], m)
	}
}

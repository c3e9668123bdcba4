// Marquee - Movie Night Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package prefs

import (
	"sort"
	"strings"
)

// vocabNode is a node in the Vocabulary prefix tree.
type vocabNode struct {
	children map[rune]*vocabNode
	isEnd    bool
	value    string // canonical spelling, set when isEnd
}

func newVocabNode() *vocabNode {
	return &vocabNode{children: make(map[rune]*vocabNode)}
}

// Vocabulary is a case-insensitive prefix tree over a fixed set of words,
// used to resolve typed genre names and unique prefixes to their canonical
// spelling. It is built once and is read-only afterwards.
type Vocabulary struct {
	root *vocabNode
	size int
}

// NewVocabulary builds a Vocabulary from words. Empty words are ignored and
// the first spelling of a case-insensitive duplicate wins.
func NewVocabulary(words []string) *Vocabulary {
	v := &Vocabulary{root: newVocabNode()}
	for _, w := range words {
		v.insert(w)
	}
	return v
}

func (v *Vocabulary) insert(word string) {
	word = strings.TrimSpace(word)
	if word == "" {
		return
	}

	node := v.root
	for _, ch := range strings.ToLower(word) {
		if node.children[ch] == nil {
			node.children[ch] = newVocabNode()
		}
		node = node.children[ch]
	}

	if node.isEnd {
		return
	}
	node.isEnd = true
	node.value = word
	v.size++
}

// walk returns the node reached by key, or nil.
func (v *Vocabulary) walk(key string) *vocabNode {
	node := v.root
	for _, ch := range strings.ToLower(key) {
		node = node.children[ch]
		if node == nil {
			return nil
		}
	}
	return node
}

// Lookup returns the canonical spelling of an exact (case-insensitive) match.
func (v *Vocabulary) Lookup(word string) (string, bool) {
	word = strings.TrimSpace(word)
	if word == "" {
		return "", false
	}
	node := v.walk(word)
	if node == nil || !node.isEnd {
		return "", false
	}
	return node.value, true
}

// Complete returns every word starting with prefix, sorted alphabetically.
func (v *Vocabulary) Complete(prefix string) []string {
	prefix = strings.TrimSpace(prefix)
	if prefix == "" {
		return nil
	}
	node := v.walk(prefix)
	if node == nil {
		return nil
	}

	var out []string
	collect(node, &out)
	sort.Strings(out)
	return out
}

func collect(node *vocabNode, out *[]string) {
	if node.isEnd {
		*out = append(*out, node.value)
	}
	for _, child := range node.children {
		collect(child, out)
	}
}

// Resolve maps input to a canonical word. An exact match wins; otherwise a
// prefix shared by exactly one word resolves to it. candidates is non-empty
// when the prefix is ambiguous.
func (v *Vocabulary) Resolve(input string) (word string, candidates []string, ok bool) {
	if w, found := v.Lookup(input); found {
		return w, nil, true
	}
	matches := v.Complete(input)
	if len(matches) == 1 {
		return matches[0], nil, true
	}
	return "", matches, false
}

// All returns every word, sorted alphabetically.
func (v *Vocabulary) All() []string {
	var out []string
	collect(v.root, &out)
	sort.Strings(out)
	return out
}

// Len returns the number of distinct words.
func (v *Vocabulary) Len() int {
	return v.size
}

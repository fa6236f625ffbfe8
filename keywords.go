// seehuhn.de/go/javaname - validate simple names of Java program elements
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package javaname

import (
	"strings"

	"golang.org/x/exp/slices"
)

// A KeywordTable records which words are reserved, and at which compliance
// level each reservation starts.  A KeywordTable is never modified after
// construction and can be shared between goroutines.
type KeywordTable struct {
	since map[string]Level
}

// Entry describes one reserved word.
type Entry struct {
	Word  string
	Since Level
}

// The primitive type names, the literals true, false and null, and the
// keyword class are not in this list, since they occur as parts of
// references to the corresponding language elements.
var baseKeywords = []string{
	"abstract", "break", "case", "catch", "const", "continue", "default",
	"do", "else", "extends", "final", "finally", "for", "goto", "if",
	"implements", "import", "instanceof", "interface", "native", "new",
	"package", "private", "protected", "public", "return", "static", "super",
	"switch", "synchronized", "this", "throw", "throws", "transient", "try",
	"volatile", "while",
}

// DefaultKeywords is the table of reserved words used when no other table
// is configured.
var DefaultKeywords = NewKeywordTable(baseKeywords, map[string]Level{
	"strictfp": Java2,
	"assert":   Java4,
	"enum":     Java5,
	"_":        Java9,
})

// NewKeywordTable returns a table where the words in base are reserved at
// every level, and each word in gated is reserved from the given level
// onwards.  If a word occurs more than once, the lowest level wins.
func NewKeywordTable(base []string, gated map[string]Level) *KeywordTable {
	t := &KeywordTable{
		since: make(map[string]Level, len(base)+len(gated)),
	}
	for word, level := range gated {
		t.add(word, level)
	}
	for _, word := range base {
		t.add(word, Always)
	}
	return t
}

func (t *KeywordTable) add(word string, level Level) {
	if level < Always {
		level = Always
	}
	if old, seen := t.since[word]; seen && old <= level {
		return
	}
	t.since[word] = level
}

// IsKeyword reports whether word is reserved at the given compliance level.
func (t *KeywordTable) IsKeyword(word string, level Level) bool {
	since, ok := t.since[word]
	return ok && since <= level
}

// Since returns the level from which on word is reserved.
// The second return value is false if word is not reserved at any level.
func (t *KeywordTable) Since(word string) (Level, bool) {
	since, ok := t.since[word]
	return since, ok
}

// Len returns the number of words in the table.
func (t *KeywordTable) Len() int {
	return len(t.since)
}

// Entries returns all reserved words, ordered by the level at which they
// were introduced and then alphabetically.
func (t *KeywordTable) Entries() []Entry {
	res := make([]Entry, 0, len(t.since))
	for word, since := range t.since {
		res = append(res, Entry{Word: word, Since: since})
	}
	slices.SortFunc(res, func(a, b Entry) int {
		if a.Since != b.Since {
			return int(a.Since) - int(b.Since)
		}
		return strings.Compare(a.Word, b.Word)
	})
	return res
}

// Words returns the words reserved at the given level, in alphabetical
// order.
func (t *KeywordTable) Words(level Level) []string {
	var res []string
	for word, since := range t.since {
		if since <= level {
			res = append(res, word)
		}
	}
	slices.Sort(res)
	return res
}

// Reserve returns a copy of t in which the given words are reserved from
// the given level onwards.  Words which t already reserves at a lower
// level keep their original level.
func (t *KeywordTable) Reserve(level Level, words ...string) *KeywordTable {
	res := t.clone()
	for _, word := range words {
		res.add(word, level)
	}
	return res
}

// Unreserve returns a copy of t in which the given words are not reserved
// at any level.
func (t *KeywordTable) Unreserve(words ...string) *KeywordTable {
	res := t.clone()
	for _, word := range words {
		delete(res.since, word)
	}
	return res
}

func (t *KeywordTable) clone() *KeywordTable {
	res := &KeywordTable{
		since: make(map[string]Level, len(t.since)),
	}
	for word, since := range t.since {
		res.since[word] = since
	}
	return res
}

// IsKeyword reports whether word is reserved at the given compliance level,
// according to DefaultKeywords.
func IsKeyword(word string, level Level) bool {
	return DefaultKeywords.IsKeyword(word, level)
}

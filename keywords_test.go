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
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDefaultKeywords(t *testing.T) {
	if n := len(DefaultKeywords.Words(Always)); n != 37 {
		t.Errorf("expected 37 base keywords, got %d", n)
	}

	gated := []Entry{
		{"strictfp", Java2},
		{"assert", Java4},
		{"enum", Java5},
		{"_", Java9},
	}
	entries := DefaultKeywords.Entries()
	if d := cmp.Diff(gated, entries[len(entries)-len(gated):]); d != "" {
		t.Errorf("unexpected level-gated keywords (-want +got):\n%s", d)
	}

	for _, word := range []string{"int", "void", "boolean", "true", "false", "null", "class"} {
		if _, ok := DefaultKeywords.Since(word); ok {
			t.Errorf("%q must not be reserved", word)
		}
	}
}

func TestIsKeyword(t *testing.T) {
	cases := []struct {
		word  string
		level Level
		res   bool
	}{
		{"while", Always, true},
		{"while", Java1, true},
		{"strictfp", Java1, false},
		{"strictfp", Java2, true},
		{"assert", Java2, false},
		{"assert", Java4, true},
		{"enum", Java4, false},
		{"enum", Java5, true},
		{"enum", 17, true},
		{"_", Java8, false},
		{"_", Java9, true},
		{"Enum", Java9, false},
		{"", Java9, false},
		{"int", Java9, false},
	}
	for _, test := range cases {
		if got := IsKeyword(test.word, test.level); got != test.res {
			t.Errorf("IsKeyword(%q, %s) = %t, expected %t",
				test.word, test.level, got, test.res)
		}
	}
}

func TestWords(t *testing.T) {
	kw := NewKeywordTable([]string{"b", "a"}, map[string]Level{"c": Java5, "d": Java2})
	cases := []struct {
		level Level
		res   []string
	}{
		{Always, []string{"a", "b"}},
		{Java4, []string{"a", "b", "d"}},
		{Java9, []string{"a", "b", "c", "d"}},
	}
	for _, test := range cases {
		if d := cmp.Diff(test.res, kw.Words(test.level)); d != "" {
			t.Errorf("%s: unexpected words (-want +got):\n%s", test.level, d)
		}
	}
}

func TestLowestLevelWins(t *testing.T) {
	kw := NewKeywordTable([]string{"x"}, map[string]Level{"x": Java5, "y": -3})
	if since, _ := kw.Since("x"); since != Always {
		t.Errorf("x: expected %s, got %s", Always, since)
	}
	if since, _ := kw.Since("y"); since != Always {
		t.Errorf("y: expected %s, got %s", Always, since)
	}

	kw2 := kw.Reserve(Java9, "x", "z").Reserve(Java2, "z")
	if since, _ := kw2.Since("x"); since != Always {
		t.Errorf("x: expected %s, got %s", Always, since)
	}
	if since, _ := kw2.Since("z"); since != Java2 {
		t.Errorf("z: expected %s, got %s", Java2, since)
	}
}

func TestOverridesDoNotModify(t *testing.T) {
	before := DefaultKeywords.Entries()

	more := DefaultKeywords.Reserve(10, "var", "yield")
	less := DefaultKeywords.Unreserve("goto", "const")

	if d := cmp.Diff(before, DefaultKeywords.Entries()); d != "" {
		t.Errorf("DefaultKeywords modified (-before +after):\n%s", d)
	}
	if more.Len() != DefaultKeywords.Len()+2 {
		t.Errorf("expected %d words, got %d", DefaultKeywords.Len()+2, more.Len())
	}
	if less.Len() != DefaultKeywords.Len()-2 {
		t.Errorf("expected %d words, got %d", DefaultKeywords.Len()-2, less.Len())
	}
	if less.IsKeyword("goto", Java9) {
		t.Error("goto still reserved")
	}
}

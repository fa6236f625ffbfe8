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

import "testing"

func TestASCIITables(t *testing.T) {
	for r := rune(0); r < 128; r++ {
		if asciiStart[r] != isIdentStartRune(r) {
			t.Errorf("start table wrong for %q", r)
		}
		if asciiPart[r] != (isIdentStartRune(r) || isIdentPartRune(r)) {
			t.Errorf("part table wrong for %q", r)
		}
	}
}

func TestIdentChars(t *testing.T) {
	cases := []struct {
		r            rune
		start, part bool
	}{
		{'a', true, true},
		{'Z', true, true},
		{'_', true, true},
		{'$', true, true},
		{'0', false, true},
		{'9', false, true},
		{'.', false, false},
		{'-', false, false},
		{' ', false, false},
		{'\t', false, false},
		{0x00, false, true},  // identifier-ignorable control
		{0x7F, false, true},  // DEL
		{0xA3, true, true},   // pound sign
		{0x00E9, true, true}, // é
		{0x0301, false, true},
		{0x0660, false, true}, // Arabic-indic digit zero
		{0x2160, true, true},  // Roman numeral one
		{0x200B, false, true}, // zero width space, format character
		{0x203F, true, true},  // undertie, connector punctuation
		{0x2028, false, false},
		{0xFFFD, false, false},
		{0x1D400, true, true}, // mathematical bold capital A
		{-1, false, false},
	}
	for _, test := range cases {
		if got := IsIdentStart(test.r); got != test.start {
			t.Errorf("IsIdentStart(%U) = %t", test.r, got)
		}
		if got := IsIdentPart(test.r); got != test.part {
			t.Errorf("IsIdentPart(%U) = %t", test.r, got)
		}
	}
}

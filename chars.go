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

import "unicode"

// ASCII classification tables, filled in by init().
var (
	asciiStart [128]bool
	asciiPart  [128]bool
)

func init() {
	for i := 0; i < 128; i++ {
		r := rune(i)
		asciiStart[i] = isIdentStartRune(r)
		asciiPart[i] = asciiStart[i] || isIdentPartRune(r)
	}
}

// IsIdentStart reports whether r may be the first character of a Java
// identifier.  These are the letters, letter numbers, currency symbols and
// connector punctuation characters.
func IsIdentStart(r rune) bool {
	if r >= 0 && r < 128 {
		return asciiStart[r]
	}
	return isIdentStartRune(r)
}

// IsIdentPart reports whether r may occur after the first character of a
// Java identifier.
func IsIdentPart(r rune) bool {
	if r >= 0 && r < 128 {
		return asciiPart[r]
	}
	return isIdentStartRune(r) || isIdentPartRune(r)
}

func isIdentStartRune(r rune) bool {
	return unicode.In(r,
		unicode.Letter,
		unicode.Nl, // Number, letter.
		unicode.Sc, // Symbol, currency.
		unicode.Pc, // Punctuation, connector.
	)
}

// isIdentPartRune covers the characters allowed after the first position
// which are not already allowed at the start.
func isIdentPartRune(r rune) bool {
	return unicode.In(r,
		unicode.Nd, // Number, decimal digit.
		unicode.Mc, // Mark, spacing combining.
		unicode.Mn, // Mark, nonspacing.
	) || isIgnorable(r)
}

// isIgnorable reports whether r is an identifier-ignorable character:
// an ISO control character other than whitespace, or a format character.
func isIgnorable(r rune) bool {
	switch {
	case r >= 0x00 && r <= 0x08:
		return true
	case r >= 0x0E && r <= 0x1B:
		return true
	case r >= 0x7F && r <= 0x9F:
		return true
	}
	return unicode.Is(unicode.Cf, r)
}

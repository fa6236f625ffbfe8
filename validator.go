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

// Package javaname checks names of Java program elements, as produced by
// source analysis tools, against the identifier grammar of the Java
// language.
package javaname

// Validator checks names against the identifier rules of a given Java
// compliance level.  A Validator is safe for concurrent use.
type Validator struct {
	// Level is the compliance level which determines the reserved words.
	// If Level is zero, DefaultLevel is used.
	Level Level

	// Keywords is the table of reserved words.
	// If Keywords is nil, DefaultKeywords is used.
	Keywords *KeywordTable
}

// Validate checks whether name is a valid simple name.  If the name is
// invalid, the returned error is an *InvalidNameError describing the first
// violation.
//
// Valid names are possibly qualified and possibly generic identifiers like
// "java.util.List<E>", optionally followed by array suffixes "[]" and
// instance markers '@'.  In addition, the following names are accepted:
// the empty name (unnamed elements), a name of the form "<...>" (type
// parameters), the wildcard "?", and names starting with a sequence of
// digits (local and anonymous classes).
func (v *Validator) Validate(name string) error {
	switch {
	case name == "", name == "?":
		return nil
	case name[0] == '<' && name[len(name)-1] == '>':
		return nil
	}

	s := scanner{
		name:  name,
		kw:    v.Keywords,
		level: v.Level,
	}
	if s.kw == nil {
		s.kw = DefaultKeywords
	}
	if s.level == 0 {
		s.level = DefaultLevel
	}
	return s.scan(skipDigits(name))
}

// IsValid reports whether name is a valid simple name.
func (v *Validator) IsValid(name string) bool {
	return v.Validate(name) == nil
}

// Validate checks name against the rules of the given compliance level,
// using DefaultKeywords.
func Validate(name string, level Level) error {
	v := Validator{Level: level}
	return v.Validate(name)
}

// IsValid reports whether name is valid at the given compliance level,
// using DefaultKeywords.
func IsValid(name string, level Level) bool {
	return Validate(name, level) == nil
}

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

import "unicode/utf8"

// scanner checks a name in a single left-to-right pass.
//
// The name is split into segments at the structural delimiters '.', '<'
// and '>'.  Every character of a segment must be an identifier character,
// except for the array suffix "[]" and the instance marker '@'.  The
// identifier part of each segment must not be a reserved word.
type scanner struct {
	name  string
	kw    *KeywordTable
	level Level

	start        int  // first byte of the current segment
	markAt       int  // first '[' or '@' in the current segment, or -1
	prevDelim    byte // the most recent delimiter, or 0
	expectCloser bool // the previous byte was '['
}

func (s *scanner) scan(pos int) error {
	name := s.name
	s.start = pos
	s.markAt = -1

	for pos < len(name) {
		b := name[pos]
		if s.expectCloser {
			if b != ']' {
				return s.fail(pos, ReasonExpectedCloser, s.charAt(pos))
			}
			s.expectCloser = false
			pos++
			continue
		}

		switch b {
		case '.', '<', '>':
			err := s.endSegment(pos)
			if err != nil {
				return err
			}
			s.prevDelim = b
			s.start = pos + 1
			s.markAt = -1
		case '[':
			s.mark(pos)
			s.expectCloser = true
		case ']':
			return s.fail(pos, ReasonStrayCloser, "]")
		case '@': // instance marker, e.g. "foo@2"
			s.mark(pos)
		case '?':
			return s.fail(pos, ReasonWildcard, "?")
		default:
			r, size := rune(b), 1
			if b >= utf8.RuneSelf {
				r, size = utf8.DecodeRuneInString(name[pos:])
			}
			if pos == s.start {
				if !IsIdentStart(r) {
					return s.fail(pos, ReasonStart, name[pos:pos+size])
				}
			} else if !IsIdentPart(r) {
				return s.fail(pos, ReasonPart, name[pos:pos+size])
			}
			pos += size
			continue
		}
		pos++
	}

	if s.expectCloser {
		return s.fail(len(name), ReasonUnclosedBracket, "")
	}
	if s.start < len(name) {
		return s.checkKeyword(len(name))
	}
	return nil
}

// endSegment is called when a delimiter is found at position pos.
// Only a closing '>' may be directly followed by another delimiter.
func (s *scanner) endSegment(pos int) error {
	if pos == s.start {
		if s.prevDelim == '>' {
			return nil
		}
		return s.fail(pos, ReasonEmptySegment, s.charAt(pos))
	}
	return s.checkKeyword(pos)
}

// checkKeyword checks the segment which ends at position end.
// Array suffixes and instance markers are not part of the word.
func (s *scanner) checkKeyword(end int) error {
	if s.markAt >= 0 {
		end = s.markAt
	}
	word := s.name[s.start:end]
	if s.kw.IsKeyword(word, s.level) {
		return s.fail(s.start, ReasonKeyword, word)
	}
	return nil
}

func (s *scanner) mark(pos int) {
	if s.markAt < 0 {
		s.markAt = pos
	}
}

func (s *scanner) charAt(pos int) string {
	_, size := utf8.DecodeRuneInString(s.name[pos:])
	return s.name[pos : pos+size]
}

func (s *scanner) fail(pos int, reason Reason, segment string) error {
	return &InvalidNameError{
		Name:    s.name,
		Offset:  pos,
		Segment: segment,
		Reason:  reason,
	}
}

// skipDigits returns the position of the first byte in name which is not
// an ASCII digit.  Local and anonymous classes carry a numeric prefix.
func skipDigits(name string) int {
	pos := 0
	for pos < len(name) && name[pos] >= '0' && name[pos] <= '9' {
		pos++
	}
	return pos
}

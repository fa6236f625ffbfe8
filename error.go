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
	"errors"
	"fmt"
)

// ErrInvalidName is the error returned (wrapped in an *InvalidNameError)
// for every name which is rejected.
var ErrInvalidName = errors.New("invalid Java name")

// Reason describes which rule an invalid name violates.
type Reason int

// These are the rules a name can violate.
const (
	ReasonKeyword         Reason = iota + 1 // a segment is a reserved word
	ReasonStart                             // invalid first character of a segment
	ReasonPart                              // invalid character inside a segment
	ReasonStrayCloser                       // ']' without a preceding '['
	ReasonExpectedCloser                    // '[' followed by something other than ']'
	ReasonUnclosedBracket                   // '[' at the end of the name
	ReasonWildcard                          // '?' as part of a longer name
	ReasonEmptySegment                      // '.', '<' or '>' without a preceding identifier
)

var reasonText = map[Reason]string{
	ReasonKeyword:         "reserved keyword",
	ReasonStart:           "character cannot start an identifier",
	ReasonPart:            "character not allowed in an identifier",
	ReasonStrayCloser:     "']' without matching '['",
	ReasonExpectedCloser:  "'[' must be followed by ']'",
	ReasonUnclosedBracket: "unterminated '['",
	ReasonWildcard:        "wildcard '?' only allowed as the whole name",
	ReasonEmptySegment:    "missing identifier",
}

func (r Reason) String() string {
	if s, ok := reasonText[r]; ok {
		return s
	}
	return fmt.Sprintf("Reason(%d)", int(r))
}

// InvalidNameError reports the first violation found in a name.
type InvalidNameError struct {
	// Name is the complete name which was validated.
	Name string

	// Offset is the byte offset of the violation within Name.
	// For keyword violations this is the start of the offending segment.
	Offset int

	// Segment is the offending part of the name: the keyword, or the
	// character which is not allowed.  It is empty for violations at the
	// end of the name.
	Segment string

	Reason Reason
}

func (err *InvalidNameError) Error() string {
	if err.Segment == "" {
		return fmt.Sprintf("invalid Java name %q at offset %d: %s",
			err.Name, err.Offset, err.Reason)
	}
	return fmt.Sprintf("invalid Java name %q at offset %d: %s %q",
		err.Name, err.Offset, err.Reason, err.Segment)
}

func (err *InvalidNameError) Unwrap() error {
	return ErrInvalidName
}

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
	"strconv"
	"strings"
)

// Level is a Java compliance level.  Levels are totally ordered: a word
// which is reserved at some level is reserved at all higher levels, too.
//
// Level n corresponds to Java release 1.n for n < 5 and to Java n
// afterwards, following the convention of Java source analysis tools.
type Level int

// These are the levels at which the set of reserved words changed.
const (
	// Always is the introducing level of words which are reserved
	// independently of the compliance level.
	Always Level = 0

	Java1 Level = 1
	Java2 Level = 2 // strictfp
	Java4 Level = 4 // assert
	Java5 Level = 5 // enum
	Java8 Level = 8
	Java9 Level = 9 // _
)

// DefaultLevel is the compliance level used when none is configured.
const DefaultLevel = Java8

func (l Level) String() string {
	if l <= Always {
		return "always"
	}
	return "Java " + strconv.Itoa(int(l))
}

var errLevelSyntax = errors.New("invalid compliance level")

// ParseLevel converts a textual compliance level to a Level.
//
// The accepted forms are "8", "1.8", "java8", "Java 8" and "jdk1.8".
// Case is ignored.
func ParseLevel(s string) (Level, error) {
	orig := s
	s = strings.ToLower(strings.TrimSpace(s))
	for _, prefix := range []string{"java", "jdk"} {
		if strings.HasPrefix(s, prefix) {
			s = strings.TrimSpace(s[len(prefix):])
			break
		}
	}
	if rest, ok := strings.CutPrefix(s, "1."); ok {
		s = rest
	}

	n, err := strconv.Atoi(s)
	if err != nil || n < int(Java1) {
		return 0, fmt.Errorf("%w %q", errLevelSyntax, orig)
	}
	return Level(n), nil
}

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

// Package ktab reads and writes keyword table files.
//
// A keyword table file is a line-oriented text file.  It starts with a
// "StartKeywordTable" line and ends with an "EndKeywordTable" line.  In
// between, each "Keyword" line lists one reserved word, optionally followed
// by the compliance level from which on the word is reserved:
//
//	StartKeywordTable 1.0
//	Comment keywords of the Java language
//	Keyword abstract
//	Keyword enum 5
//	EndKeywordTable
//
// Words without a level are reserved at every level.  Lines with other
// keys are ignored.
package ktab

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"seehuhn.de/go/javaname"
)

const version = "1.0"

var (
	errNoHeader = errors.New("missing StartKeywordTable")
	errNoEnd    = errors.New("missing EndKeywordTable")
)

// Read reads a keyword table file.
func Read(r io.Reader) (*javaname.KeywordTable, error) {
	var base []string
	gated := make(map[string]javaname.Level)

	started := false
	lineNo := 0
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lineNo++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		if !started {
			if fields[0] != "StartKeywordTable" {
				return nil, errNoHeader
			}
			started = true
			continue
		}

		switch fields[0] {
		case "EndKeywordTable":
			return javaname.NewKeywordTable(base, gated), nil
		case "Keyword":
			if len(fields) < 2 || len(fields) > 3 {
				return nil, fmt.Errorf("line %d: malformed Keyword line", lineNo)
			}
			word := fields[1]
			if !isWord(word) {
				return nil, fmt.Errorf("line %d: invalid keyword %q", lineNo, word)
			}
			if len(fields) == 2 {
				base = append(base, word)
				continue
			}
			x, err := strconv.Atoi(fields[2])
			if err != nil || x < 0 {
				return nil, fmt.Errorf("line %d: invalid level %q", lineNo, fields[2])
			}
			level := javaname.Level(x)
			if old, seen := gated[word]; !seen || level < old {
				gated[word] = level
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	if !started {
		return nil, errNoHeader
	}
	return nil, errNoEnd
}

// Write writes the keyword table t to w.
func Write(w io.Writer, t *javaname.KeywordTable) error {
	write := func(format string, a ...interface{}) error {
		_, err := fmt.Fprintf(w, format+"\n", a...)
		return err
	}

	if err := write("StartKeywordTable %s", version); err != nil {
		return err
	}
	if err := write("Comment %d reserved words", t.Len()); err != nil {
		return err
	}
	for _, e := range t.Entries() {
		var err error
		if e.Since == javaname.Always {
			err = write("Keyword %s", e.Word)
		} else {
			err = write("Keyword %s %d", e.Word, int(e.Since))
		}
		if err != nil {
			return err
		}
	}
	return write("EndKeywordTable")
}

// isWord checks whether s has the shape of an identifier.
func isWord(s string) bool {
	first, size := utf8.DecodeRuneInString(s)
	if !javaname.IsIdentStart(first) {
		return false
	}
	for _, r := range s[size:] {
		if !javaname.IsIdentPart(r) {
			return false
		}
	}
	return true
}

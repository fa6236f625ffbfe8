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

package main

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"seehuhn.de/go/javaname"
	"seehuhn.de/go/javaname/ktab"
)

// config is the contents of a javaname configuration file.
type config struct {
	// Level is the compliance level, in any form accepted by
	// javaname.ParseLevel.
	Level string

	// KeywordFile names a keyword table file which replaces the built-in
	// table of reserved words.
	KeywordFile string

	Keywords keywordConf
}

// keywordConf adjusts the table of reserved words.
type keywordConf struct {
	Reserve      []string
	ReserveLevel int
	Unreserve    []string
}

// loadConfigFile loads a configuration in TOML format.  It is an error if
// the file contains keys which are not understood.
func loadConfigFile(fileName string) (*config, error) {
	return loadConfig(fileName, true)
}

// loadConfigString is like loadConfigFile but reads the configuration from
// a string.
func loadConfigString(conf string) (*config, error) {
	return loadConfig(conf, false)
}

func loadConfig(conf string, isFileName bool) (*config, error) {
	c := &config{}
	var md toml.MetaData
	var err error
	if isFileName {
		md, err = toml.DecodeFile(conf, c)
	} else {
		md, err = toml.Decode(conf, c)
	}
	if err != nil {
		return nil, err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("undecoded fields in configuration: %v", undecoded)
	}
	if c.Keywords.ReserveLevel < 0 {
		return nil, fmt.Errorf("invalid Keywords.ReserveLevel %d", c.Keywords.ReserveLevel)
	}
	return c, nil
}

// validator returns the Validator described by the configuration.  If
// levelFlag is not empty, it takes precedence over the configured level.
func (c *config) validator(levelFlag string) (*javaname.Validator, error) {
	level := javaname.DefaultLevel
	for _, s := range []string{c.Level, levelFlag} {
		if s == "" {
			continue
		}
		var err error
		level, err = javaname.ParseLevel(s)
		if err != nil {
			return nil, err
		}
	}

	kw := javaname.DefaultKeywords
	if c.KeywordFile != "" {
		fd, err := os.Open(c.KeywordFile)
		if err != nil {
			return nil, err
		}
		kw, err = ktab.Read(fd)
		fd.Close()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", c.KeywordFile, err)
		}
	}
	if len(c.Keywords.Reserve) > 0 {
		kw = kw.Reserve(javaname.Level(c.Keywords.ReserveLevel), c.Keywords.Reserve...)
	}
	if len(c.Keywords.Unreserve) > 0 {
		kw = kw.Unreserve(c.Keywords.Unreserve...)
	}

	return &javaname.Validator{Level: level, Keywords: kw}, nil
}

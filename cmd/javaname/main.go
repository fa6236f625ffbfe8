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

// Javaname checks whether names of Java program elements are valid at a
// given compliance level.
//
// Usage:
//
//	javaname check [--level L] [--config FILE] [-f FILE] [NAME...]
//	javaname keywords [--level L] [--table]
package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"seehuhn.de/go/javaname"
	"seehuhn.de/go/javaname/ktab"
)

var errInvalidNames = errors.New("invalid names found")

type options struct {
	level  string
	config string
	debug  bool
}

func main() {
	err := newRootCmd().Execute()
	if err != nil {
		if !errors.Is(err, errInvalidNames) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:           "javaname",
		Short:         "Validate simple names of Java program elements",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVarP(&opts.level, "level", "l", "", "Java compliance level, e.g. 8 or 1.4")
	rootCmd.PersistentFlags().StringVarP(&opts.config, "config", "c", "", "Path to a TOML configuration file")
	rootCmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "Enable debug output")

	rootCmd.AddCommand(newCheckCmd(opts), newKeywordsCmd(opts))
	return rootCmd
}

func newCheckCmd(opts *options) *cobra.Command {
	var (
		file  string
		quiet bool
	)
	cmd := &cobra.Command{
		Use:   "check [name...]",
		Short: "Check names given as arguments, or one per line from a file",
		RunE: func(cmd *cobra.Command, args []string) error {
			v, logger, err := setup(cmd, opts)
			if err != nil {
				return err
			}

			names := args
			if len(names) == 0 || file != "" {
				more, err := readNames(cmd, file)
				if err != nil {
					return err
				}
				names = append(names, more...)
			}

			out := cmd.OutOrStdout()
			invalid := 0
			for _, name := range names {
				err := v.Validate(name)
				if err != nil {
					fmt.Fprintln(out, err)
					invalid++
				} else if !quiet {
					fmt.Fprintf(out, "ok  %s\n", name)
				}
			}
			logger.Debug("names checked", "total", len(names), "invalid", invalid)

			if invalid > 0 {
				return fmt.Errorf("%d of %d: %w", invalid, len(names), errInvalidNames)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "Read names from a file, one per line (- for stdin)")
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Only report invalid names")
	return cmd
}

func newKeywordsCmd(opts *options) *cobra.Command {
	var table bool
	cmd := &cobra.Command{
		Use:   "keywords",
		Short: "List the words reserved at the compliance level",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			v, _, err := setup(cmd, opts)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if table {
				return ktab.Write(out, v.Keywords)
			}
			for _, word := range v.Keywords.Words(v.Level) {
				fmt.Fprintln(out, word)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&table, "table", false, "Print the complete table in keyword table format")
	return cmd
}

// setup builds the logger and the validator from the command line options.
func setup(cmd *cobra.Command, opts *options) (*javaname.Validator, hclog.Logger, error) {
	logLevel := hclog.Info
	if opts.debug {
		logLevel = hclog.Debug
	}
	logger := hclog.New(&hclog.LoggerOptions{
		Name:   "javaname",
		Level:  logLevel,
		Output: cmd.ErrOrStderr(),
	})

	conf := &config{}
	if opts.config != "" {
		var err error
		conf, err = loadConfigFile(opts.config)
		if err != nil {
			return nil, nil, fmt.Errorf("%s: %w", opts.config, err)
		}
		logger.Debug("configuration loaded", "file", opts.config)
	}

	v, err := conf.validator(opts.level)
	if err != nil {
		return nil, nil, err
	}
	logger.Debug("validator ready", "level", v.Level.String(), "keywords", v.Keywords.Len())
	return v, logger, nil
}

// readNames reads one name per line.  Blank lines are skipped.
func readNames(cmd *cobra.Command, file string) ([]string, error) {
	var r io.Reader
	if file == "" || file == "-" {
		r = cmd.InOrStdin()
	} else {
		fd, err := os.Open(file)
		if err != nil {
			return nil, err
		}
		defer fd.Close()
		r = fd
	}

	var names []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		name := strings.TrimSpace(scanner.Text())
		if name == "" {
			continue
		}
		names = append(names, name)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return names, nil
}

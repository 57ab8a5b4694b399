// This file is part of Frag.
//
// Frag is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Frag is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Frag.  If not, see <https://www.gnu.org/licenses/>.

package modalflag

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
)

const modeSeparator = "/"

// Modes provides an easy way of handling command line arguments. The Output
// field should be specified before calling Parse() or you will not see any
// help messages.
type Modes struct {
	// where to print output (help messages etc). defaults to os.Stdout
	Output io.Writer

	// the underlying flag structure. a new flagset is created on every call
	// to NewArgs() and NewMode()
	flags *flag.FlagSet

	// the argument list as specified by the NewArgs() function
	args    []string
	argsIdx int

	// non-flag arguments found by the most recent call to Parse()
	remaining []string

	// the most recent list of sub-modes specified with the NewMode() function
	subModes []string

	// path is the series of sub-modes that have been found during subsequent
	// calls to Parse(). we never reset this variable
	path []string

	// summary of the non-flag arguments expected by the current mode. shown
	// on the first line of the help message
	usage string

	// some modes will benefit from a verbose explanation
	additionalHelp string

	// alternative flag names and the flag they stand for
	aliases map[string]string
}

func (md *Modes) String() string {
	return md.Path()
}

// Mode returns the last mode to be encountered.
func (md *Modes) Mode() string {
	if len(md.path) == 0 {
		return ""
	}
	return md.path[len(md.path)-1]
}

// Path returns a string of all the modes encountered during parsing.
func (md *Modes) Path() string {
	return strings.Join(md.path, modeSeparator)
}

// NewArgs with a string of arguments (from the command line for example).
func (md *Modes) NewArgs(args []string) {
	md.args = args
	md.argsIdx = 0

	// by definition, a newly initialised Modes struct begins with a new mode
	md.NewMode()
}

// NewMode indicates that further arguments should be considered part of a
// new mode.
func (md *Modes) NewMode() {
	md.subModes = []string{}
	md.remaining = []string{}
	md.usage = ""
	md.additionalHelp = ""
	md.flags = flag.NewFlagSet("", flag.ContinueOnError)
	md.aliases = make(map[string]string)
}

// Usage sets the summary of non-flag arguments shown on the first line of
// the help message. For example "<source>".
func (md *Modes) Usage(usage string) {
	md.usage = usage
}

// AdditionalHelp allows a mode to add additional help text that is printed
// after the flag and sub-mode information.
func (md *Modes) AdditionalHelp(help string) {
	md.additionalHelp = help
}

// ParseResult is returned from the Parse() function.
type ParseResult int

// a list of valid ParseResult values.
const (
	// Continue with command line processing. If sub-modes were specified in
	// the preceding call to NewMode() then the Mode() function should be
	// checked.
	ParseContinue ParseResult = iota

	// Help was requested and has been printed.
	ParseHelp

	// an error has occurred and is returned as the second return value.
	ParseError
)

func (md *Modes) output() io.Writer {
	if md.Output == nil {
		return os.Stdout
	}
	return md.Output
}

// Parse the top level layer of arguments. Returns a value of ParseResult.
// The idiomatic usage is as follows:
//
//	p, err := md.Parse()
//	switch p {
//	case modalflag.ParseHelp:
//		// help message has already been printed
//		return
//	case modalflag.ParseError:
//		printError(err)
//		return
//	}
//
// Help messages are handled automatically by the function. The return value
// ParseHelp is to help you guide your program appropriately.
func (md *Modes) Parse() (ParseResult, error) {
	// set output of flags.Parse() to an instance of helpWriter
	hw := &helpWriter{}
	md.flags.SetOutput(hw)

	if len(md.subModes) > 0 {
		return md.parseSubModes()
	}

	args := md.args[md.argsIdx:]

	for {
		err := md.flags.Parse(args)
		if err != nil {
			if errors.Is(err, flag.ErrHelp) {
				hw.Help(md.output(), md.usage, md.Path(), md.subModes, md.additionalHelp)
				hw.Clear()
				return ParseHelp, nil
			}
			return ParseError, err
		}

		rest := md.flags.Args()
		if len(rest) == 0 {
			break
		}

		// the flag package stops at "--" and consumes it. everything after it
		// is a non-flag argument
		consumed := len(args) - len(rest)
		if consumed > 0 && args[consumed-1] == "--" {
			md.remaining = append(md.remaining, rest...)
			break
		}

		// keep the non-flag argument and continue parsing flags after it
		md.remaining = append(md.remaining, rest[0])
		args = rest[1:]
	}

	return ParseContinue, nil
}

// parse arguments when sub-modes have been defined. only the first argument
// is of interest. flags and anything after the mode selector are left for the
// next call to Parse()
func (md *Modes) parseSubModes() (ParseResult, error) {
	mode := md.subModes[0]

	err := md.flags.Parse(md.args[md.argsIdx:])
	if err == nil {
		arg := strings.ToUpper(md.flags.Arg(0))
		for i := range md.subModes {
			if md.subModes[i] == arg {
				mode = arg
				md.argsIdx++
				break // for loop
			}
		}
	}

	// flags that are not recognised (including the help flag) are left for
	// the default mode to deal with
	md.path = append(md.path, mode)
	md.remaining = md.args[md.argsIdx:]

	return ParseContinue, nil
}

// RemainingArgs after a call to Parse() ie. arguments that aren't flags or a
// listed sub-mode.
func (md *Modes) RemainingArgs() []string {
	return md.remaining
}

// GetArg returns the numbered argument that isn't a flag or listed sub-mode.
// Returns the empty string if there is no such argument.
func (md *Modes) GetArg(i int) string {
	if i < 0 || i >= len(md.remaining) {
		return ""
	}
	return md.remaining[i]
}

// AddSubModes to list of submodes for next parse. The first sub-mode in the
// list is considered to be the default sub-mode. If you need more control over
// this, AddDefaultSubMode() can be used.
//
// Note that sub-mode comparisons are case insensitive.
func (md *Modes) AddSubModes(submodes ...string) {
	for _, s := range submodes {
		md.subModes = append(md.subModes, strings.ToUpper(s))
	}
}

// AddDefaultSubMode to list of sub-modes.
func (md *Modes) AddDefaultSubMode(defSubMode string) {
	md.subModes = append([]string{strings.ToUpper(defSubMode)}, md.subModes...)
}

// AddBool flag for next call to Parse().
func (md *Modes) AddBool(name string, value bool, usage string) *bool {
	return md.flags.Bool(name, value, usage)
}

// AddString flag for next call to Parse().
func (md *Modes) AddString(name string, value string, usage string) *string {
	return md.flags.String(name, value, usage)
}

// AddAlias adds an alternative name for a flag that has already been added.
// Both names set the same value.
func (md *Modes) AddAlias(alias string, name string) {
	f := md.flags.Lookup(name)
	if f == nil {
		return
	}
	md.flags.Var(f.Value, alias, fmt.Sprintf("same as -%s", name))
	md.aliases[alias] = name
}

// Visit visits the flags that have been set, calling fn for each. A flag set
// by an alias is reported by its original name.
func (md *Modes) Visit(fn func(flag string)) {
	md.flags.Visit(func(f *flag.Flag) {
		if name, ok := md.aliases[f.Name]; ok {
			fn(name)
			return
		}
		fn(f.Name)
	})
}

// IsSet returns true if the named flag, or one of its aliases, was given on
// the command line.
func (md *Modes) IsSet(name string) bool {
	var set bool
	md.Visit(func(f string) {
		if f == name {
			set = true
		}
	})
	return set
}

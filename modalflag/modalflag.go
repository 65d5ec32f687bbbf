// This file is part of Scanterm.
//
// Scanterm is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Scanterm is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Scanterm.  If not, see <https://www.gnu.org/licenses/>.

package modalflag

import (
	"flag"
	"io"
	"strings"
	"time"
)

// Modes layers sub-mode selection on top of the flag package. Arguments are
// parsed one mode at a time: flags before the mode word belong to the outer
// mode, flags after it to the inner mode.
//
// The Output field should be set before calling Parse() or help messages go
// nowhere.
type Modes struct {
	Output io.Writer

	flags *flag.FlagSet

	args    []string
	argsIdx int

	// sub-modes valid for the next Parse(). the first entry is the default
	subModes []string

	// the modes encountered over successive calls to Parse()
	path []string
}

func (md *Modes) String() string {
	return md.Path()
}

// Mode returns the most recently selected sub-mode.
func (md *Modes) Mode() string {
	if len(md.path) == 0 {
		return ""
	}
	return md.path[len(md.path)-1]
}

// Path returns every mode selected so far, separated by slashes.
func (md *Modes) Path() string {
	return strings.Join(md.path, "/")
}

// NewArgs initialises the Modes with an argument list, typically
// os.Args[1:].
func (md *Modes) NewArgs(args []string) {
	md.args = args
	md.argsIdx = 0
	md.NewMode()
}

// NewMode begins a fresh flag set for the next call to Parse().
func (md *Modes) NewMode() {
	md.subModes = md.subModes[:0]
	md.flags = flag.NewFlagSet("", flag.ContinueOnError)
}

// AddSubModes lists the valid sub-modes for the next Parse(). The first named
// sub-mode is the default. Comparison is case insensitive.
func (md *Modes) AddSubModes(subModes ...string) {
	for _, m := range subModes {
		md.subModes = append(md.subModes, strings.ToUpper(m))
	}
}

// ParseResult is returned by Parse() alongside any error.
type ParseResult int

const (
	// ParseContinue means the mode's flags have been read and, if sub-modes
	// were registered, Mode() names the selected one.
	ParseContinue ParseResult = iota

	// ParseHelp means help was requested and has been printed.
	ParseHelp

	// ParseError means an argument could not be understood.
	ParseError
)

// Parse the next layer of arguments.
func (md *Modes) Parse() (ParseResult, error) {
	// capture the flag package's own output so that help can be reshaped
	var buf strings.Builder
	md.flags.SetOutput(&buf)

	err := md.flags.Parse(md.args[md.argsIdx:])
	if err != nil {
		if err == flag.ErrHelp {
			md.help(buf.String())
			return ParseHelp, nil
		}
		return ParseError, err
	}

	if len(md.subModes) > 0 {
		// the sub-mode is the first non-flag argument, if it matches. an
		// unmatched argument selects the default sub-mode and is left for
		// that mode to interpret
		mode := md.subModes[0]
		arg := strings.ToUpper(md.flags.Arg(0))
		for _, m := range md.subModes {
			if m == arg {
				mode = arg
				md.argsIdx++
				break // for loop
			}
		}
		md.path = append(md.path, mode)
	}

	return ParseContinue, nil
}

func (md *Modes) help(flagHelp string) {
	if md.Output == nil {
		return
	}

	if md.Path() == "" {
		io.WriteString(md.Output, "Usage:\n")
	} else {
		io.WriteString(md.Output, "Usage of "+md.Path()+" mode:\n")
	}

	// drop the flag package's own "Usage:" line
	if i := strings.Index(flagHelp, "\n"); i >= 0 {
		io.WriteString(md.Output, flagHelp[i+1:])
	}

	if len(md.subModes) > 0 {
		io.WriteString(md.Output, "  available sub-modes: "+strings.Join(md.subModes, ", ")+"\n")
		io.WriteString(md.Output, "    default: "+md.subModes[0]+"\n")
	}
}

// RemainingArgs returns the arguments left over after Parse(), excluding any
// selected sub-mode.
func (md *Modes) RemainingArgs() []string {
	return md.flags.Args()
}

// GetArg returns the indexed leftover argument.
func (md *Modes) GetArg(i int) string {
	return md.flags.Arg(i)
}

// AddBool flag for next call to Parse().
func (md *Modes) AddBool(name string, value bool, usage string) *bool {
	return md.flags.Bool(name, value, usage)
}

// AddInt flag for next call to Parse().
func (md *Modes) AddInt(name string, value int, usage string) *int {
	return md.flags.Int(name, value, usage)
}

// AddString flag for next call to Parse().
func (md *Modes) AddString(name string, value string, usage string) *string {
	return md.flags.String(name, value, usage)
}

// AddDuration flag for next call to Parse().
func (md *Modes) AddDuration(name string, value time.Duration, usage string) *time.Duration {
	return md.flags.Duration(name, value, usage)
}

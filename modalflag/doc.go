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

// Package modalflag is a thin wrapper for the flag package in the Go standard
// library. It adds the idea of program modes: a special command line argument
// that selects a different mode of operation, each mode with its own flags,
// in the manner of the go command's build, test, etc.
//
// Initialise with the argument list and register the valid modes, then
// Parse():
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("run", "performance")
//	p, err := md.Parse()
//
// A ParseHelp result means a help message has already been printed. After a
// ParseContinue result, Mode() names the selected mode (the first registered
// mode if none was given on the command line). Call NewMode(), register the
// mode's own flags and Parse() again to process the rest of the line:
//
//	switch md.Mode() {
//	case "RUN":
//		md.NewMode()
//		verbose := md.AddBool("verbose", false, "echo log to stdout")
//		p, err := md.Parse()
//		...
//	}
//
// Modes can nest as deep as required. Arguments that are neither flags nor a
// registered mode are available through RemainingArgs() and GetArg().
package modalflag

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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It provides a convenient method of handling program modes (and
// sub-modes) and allows different flags for each mode.
//
// At it's simplest it can be used as a replacement for the flag package, with
// some differences. Whereas, with flag.FlagSet you call Parse() with the array of
// strings as the only argument, with modalflag you first call NewArgs() with
// the array of arguments and then Parse() with no arguments.
//
//	md = Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	_, _ = md.Parse()
//
// Once the arguments have been parsed, non-flag arguments can be retrieved
// with the RemainingArgs() or GetArg() function. Unlike the flag package,
// flags may follow non-flag arguments when no sub-modes have been defined.
// So these two command lines are equivalent:
//
//	frag -fps 30 plasma.frag
//	frag plasma.frag -fps 30
//
// The special argument "--" ends flag processing in the normal way.
//
// The most important difference between the standard flag package and the
// modalflag package is the ability of the latter to handle "modes". A mode is
// a special command line argument that when specified, puts the program into
// a different mode of operation. Frag uses modes to choose between running a
// shader, checking that it compiles and printing the effective settings.
//
//	md.AddSubModes("RUN", "CHECK", "SETTINGS")
//
// All sub-mode comparisons are case insensitive. The first sub-mode in the
// list is the default mode. If the first argument is not one of the listed
// modes then the default mode is selected and the argument is left in place
// for the next call to NewMode() and Parse().
//
// After a mode has been selected, flags specific to that mode are added after
// a call to NewMode():
//
//	md.NewMode()
//	scale := md.AddString("scale", "1.0", "display scale")
//	p, err := md.Parse()
//
// A -help (or --help) flag is handled automatically. Parse() returns
// ParseHelp after writing the help message to the Output writer. If the help
// flag is seen while sub-modes are being selected then the default mode is
// chosen so that the help for that mode is shown.
package modalflag

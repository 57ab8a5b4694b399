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

// Package logger is the central log repository for Frag. Log entries are
// tagged with a short string naming the area of the program that made them
// (eg. "glsl" or "scene") and a detail string.
//
// Consecutive entries with the same tag and detail are collapsed into a
// single entry with a repeat count. This keeps the log readable when the
// render loop produces the same message every frame.
//
// The log is bounded. Old entries are discarded as new entries arrive.
//
// Every logging call takes a Permission argument. Code that is always allowed
// to log uses logger.Allow. The permission is useful when logging from a
// context that should be quiet some of the time.
//
// Log entries can be echoed to an io.Writer as they are created. The main
// package sets the echo to os.Stdout when the -log flag is given.
package logger

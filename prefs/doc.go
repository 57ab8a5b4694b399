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

// Package prefs facilitates the storage of preferential values. Frag uses it
// to remember the default display settings between runs.
//
// Preference values are typed (Bool, String, Int, Float) and accept values of
// the native type or a string representation of it. Generic is a preference
// type with user supplied set and get functions, useful for compound values
// such as the canvas size.
//
// Preferences are associated with a file on disk by the Disk type.
//
//	dsk, err := prefs.NewDisk(pth)
//
//	var fps prefs.Float
//	err = dsk.Add("display.fps", &fps)
//
//	err = dsk.Load()
//	err = fps.Set(30.0)
//	err = dsk.Save()
//
// The file is a plain text file, one preference per line in the form:
//
//	key :: value
//
// Saving a Disk instance does not clobber preferences in the file that the
// instance does not know about.
package prefs

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

// Package source loads fragment shader source files and watches them for
// changes.
//
// The Load() function reads the entire file into memory. The buffer is always
// terminated with a nul byte so that it can be handed to the GL without
// copying.
//
// A Watcher reports modifications to a single file. Because many editors
// save a file by writing a new file and renaming it over the old one, the
// Watcher watches the directory containing the file and filters events by
// name.
package source

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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. This is similar to
// the Errorf() function in the fmt package. It takes a formatting pattern,
// placeholder values and returns an error. The pattern is remembered so that
// the kind of error can be tested later, independently of the values.
//
//	e := curated.Errorf("source: %v", err)
//
//	if curated.Is(e, "source: %v") {
//		fmt.Println("true")
//	}
//
// The Has() function is similar but checks if a pattern occurs somewhere in
// the error chain.
//
//	f := curated.Errorf("scene: %v", e)
//
//	if curated.Has(f, "source: %v") {
//		fmt.Println("true")
//	}
//
// The Error() function implementation for curated errors ensures that the
// error chain is normalised. Specifically, that the chain does not contain
// duplicate adjacent parts. So wrapping an error with the same prefix it
// already carries does not lead to messages like "glsl: glsl: failed".
//
// Curated errors also implement Unwrap(). The first error value given to
// Errorf() is returned, so the errors.As() function in the standard library
// can reach a typed error (for example the compiler log carried by a
// glsl.ShaderError) through any number of curated layers.
package curated

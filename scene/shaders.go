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

package scene

// the quad covering the clip-space square drawn as a triangle strip.
var quad = []float32{
	-1, -1,
	1, -1,
	-1, 1,
	1, 1,
}

// names of the vertex attributes and fragment outputs of both programs. the
// location of each is its index.
var (
	attribs = []string{"vertex"}
	outputs = []string{"fragColor"}
)

const vertexShader = `#version 330

in vec2 vertex;

void main() {
	gl_Position = vec4(vertex, 0.0, 1.0);
}
`

// the view shader samples the canvas at normalised screen coordinates
const viewShader = `#version 330

uniform vec2 resolution;
uniform sampler2D sampler;

out vec4 fragColor;

void main() {
	fragColor = texture(sampler, gl_FragCoord.xy / resolution);
}
`

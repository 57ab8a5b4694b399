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
	"fmt"
	"io"
	"strings"
)

// helpWriter collects the output of the flag package's usage function and
// reformats it, adding information about modes and any additional help.
type helpWriter struct {
	buffer []byte
}

func (hw *helpWriter) Clear() {
	hw.buffer = []byte{}
}

func (hw *helpWriter) Write(p []byte) (n int, err error) {
	hw.buffer = append(hw.buffer, p...)
	return len(p), nil
}

func (hw *helpWriter) Help(output io.Writer, usage string, path string, subModes []string, additionalHelp string) {
	s := string(hw.buffer)
	helpLines := strings.Split(s, "\n")

	// output "no help available" message if there is no flag information, no
	// sub-modes and nothing else to say
	if s == "Usage:\n" && len(subModes) == 0 && usage == "" && additionalHelp == "" {
		io.WriteString(output, "No help available")
		if path != "" {
			io.WriteString(output, fmt.Sprintf(" for %s mode", path))
		}
		io.WriteString(output, "\n")
		return
	}

	banner := helpLines[0]
	if usage != "" {
		banner = fmt.Sprintf("%s %s", strings.TrimSuffix(banner, ":"), usage)
		banner = strings.Replace(banner, "Usage", "Usage:", 1)
	}
	if path != "" {
		banner = fmt.Sprintf("%s (%s mode)", banner, path)
	}
	io.WriteString(output, banner)
	io.WriteString(output, "\n")

	// add help message produced by flag package
	if len(helpLines) > 1 {
		io.WriteString(output, strings.Join(helpLines[1:], "\n"))
	}

	// add sub-mode information
	if len(subModes) > 0 {
		// add an additional new line if we've already printed flag information
		if len(helpLines) > 2 {
			io.WriteString(output, "\n")
		}

		io.WriteString(output, fmt.Sprintf("  available sub-modes: %s\n", strings.Join(subModes, ", ")))
		io.WriteString(output, fmt.Sprintf("    default: %s\n", subModes[0]))
	}

	if additionalHelp != "" {
		io.WriteString(output, "\n")
		io.WriteString(output, additionalHelp)
		io.WriteString(output, "\n")
	}
}

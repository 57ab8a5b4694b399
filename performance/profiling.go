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

package performance

import (
	"os"
	"runtime"
	"runtime/pprof"

	"github.com/jetsetilly/frag/curated"
	"github.com/jetsetilly/frag/logger"
)

// ProfileError is returned when a profile cannot be created.
const ProfileError = "performance: %v"

// Profile specifies which profiles to generate.
type Profile struct {
	// filename of the CPU profile. no profile is generated if empty
	CPU string

	// filename of the memory profile. no profile is generated if empty
	Mem string
}

// RunProfiler runs the function and writes the requested profiles. The error
// returned by the run function takes precedence over any profiling error.
func RunProfiler(profile Profile, run func() error) error {
	if profile.CPU != "" {
		f, err := os.Create(profile.CPU)
		if err != nil {
			return curated.Errorf(ProfileError, err)
		}
		defer f.Close()

		err = pprof.StartCPUProfile(f)
		if err != nil {
			return curated.Errorf(ProfileError, err)
		}
		defer pprof.StopCPUProfile()

		logger.Logf(logger.Allow, "performance", "cpu profile: %s", profile.CPU)
	}

	err := run()
	if err != nil {
		return err
	}

	return memProfile(profile.Mem)
}

func memProfile(outFile string) error {
	if outFile == "" {
		return nil
	}

	f, err := os.Create(outFile)
	if err != nil {
		return curated.Errorf(ProfileError, err)
	}
	defer f.Close()

	runtime.GC()
	err = pprof.WriteHeapProfile(f)
	if err != nil {
		return curated.Errorf(ProfileError, err)
	}

	logger.Logf(logger.Allow, "performance", "memory profile: %s", outFile)

	return nil
}

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

package settings

import (
	"fmt"

	"github.com/jetsetilly/frag/curated"
	"github.com/jetsetilly/frag/paths"
	"github.com/jetsetilly/frag/prefs"
)

// PrefsError is returned by the Preferences type.
const PrefsError = "settings: preferences: %v"

// Preferences are the settings that are saved between runs. Shader specific
// values (filename, title, watch) are not saved.
type Preferences struct {
	dsk *prefs.Disk

	width     int
	height    int
	Scale     prefs.Float
	FPS       prefs.Float
	Wrap      prefs.String
	Bits      prefs.Int
	Resizable prefs.Bool
	Backend   prefs.String
}

// NewPreferences loads preferences from the default location in the
// resource directory.
func NewPreferences() (*Preferences, error) {
	pth, err := paths.ResourcePath("", prefs.DefaultPrefsFile)
	if err != nil {
		return nil, curated.Errorf(PrefsError, err)
	}
	return NewPreferencesFromFile(pth)
}

// NewPreferencesFromFile loads preferences from the named file. A missing
// file is not an error and results in the default values.
func NewPreferencesFromFile(pth string) (*Preferences, error) {
	p := &Preferences{
		width:  DefaultWidth,
		height: DefaultHeight,
	}

	var err error

	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, curated.Errorf(PrefsError, err)
	}

	size := prefs.NewGeneric(
		func(s string) error {
			w, h, err := ParseSize(s)
			if err != nil {
				return err
			}
			p.width, p.height = w, h
			return nil
		},
		func() string {
			return fmt.Sprintf("%d,%d", p.width, p.height)
		},
	)

	// validate string values as they are loaded
	p.Wrap.SetHookPost(func(v prefs.Value) error {
		_, err := ParseWrap(v.(string))
		return err
	})
	p.Backend.SetHookPost(func(v prefs.Value) error {
		_, err := ParseBackend(v.(string))
		return err
	})
	p.Bits.SetHookPost(func(v prefs.Value) error {
		_, err := ParseBits(fmt.Sprintf("%d", v.(int)))
		return err
	})

	d := NewSettings()
	if err := p.set(d); err != nil {
		return nil, curated.Errorf(PrefsError, err)
	}

	for _, e := range []struct {
		key string
		p   interface {
			fmt.Stringer
			Set(prefs.Value) error
			Get() prefs.Value
		}
	}{
		{key: "display.size", p: size},
		{key: "display.scale", p: &p.Scale},
		{key: "display.fps", p: &p.FPS},
		{key: "canvas.wrap", p: &p.Wrap},
		{key: "canvas.bits", p: &p.Bits},
		{key: "window.resizable", p: &p.Resizable},
		{key: "window.backend", p: &p.Backend},
	} {
		if err := p.dsk.Add(e.key, e.p); err != nil {
			return nil, curated.Errorf(PrefsError, err)
		}
	}

	if err := p.dsk.Load(); err != nil {
		return nil, curated.Errorf(PrefsError, err)
	}

	return p, nil
}

// copy values from settings into the preference values
func (p *Preferences) set(s *Settings) error {
	p.width, p.height = s.Width, s.Height
	if err := p.Scale.Set(s.Scale); err != nil {
		return err
	}
	if err := p.FPS.Set(s.FPS); err != nil {
		return err
	}
	if err := p.Wrap.Set(s.Wrap.String()); err != nil {
		return err
	}
	if err := p.Bits.Set(s.Bits); err != nil {
		return err
	}
	if err := p.Resizable.Set(s.Resizable); err != nil {
		return err
	}
	return p.Backend.Set(string(s.Backend))
}

// Apply the preference values to the settings.
func (p *Preferences) Apply(s *Settings) error {
	var err error

	s.Width, s.Height = p.width, p.height
	s.Scale = p.Scale.Get().(float64)
	s.FPS = p.FPS.Get().(float64)
	s.Bits = p.Bits.Get().(int)
	s.Resizable = p.Resizable.Get().(bool)

	s.Wrap, err = ParseWrap(p.Wrap.String())
	if err != nil {
		return curated.Errorf(PrefsError, err)
	}

	s.Backend, err = ParseBackend(p.Backend.String())
	if err != nil {
		return curated.Errorf(PrefsError, err)
	}

	return nil
}

// Save the settings as the new preferences.
func (p *Preferences) Save(s *Settings) error {
	if err := p.set(s); err != nil {
		return curated.Errorf(PrefsError, err)
	}
	if err := p.dsk.Save(); err != nil {
		return curated.Errorf(PrefsError, err)
	}
	return nil
}

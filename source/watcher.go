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

package source

import (
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/jetsetilly/frag/curated"
	"github.com/jetsetilly/frag/logger"
)

// Watcher reports changes to a single file.
type Watcher struct {
	watcher *fsnotify.Watcher
	name    string

	// Changed receives a value whenever the watched file has been written,
	// created or renamed into place. Consecutive changes that have not been
	// consumed are merged into a single notification.
	Changed chan struct{}

	done chan struct{}
}

// NewWatcher starts watching the named file.
func NewWatcher(filename string) (*Watcher, error) {
	abs, err := filepath.Abs(filename)
	if err != nil {
		return nil, curated.Errorf(WatchError, err)
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, curated.Errorf(WatchError, err)
	}

	err = w.Add(filepath.Dir(abs))
	if err != nil {
		w.Close()
		return nil, curated.Errorf(WatchError, err)
	}

	wtc := &Watcher{
		watcher: w,
		name:    filepath.Base(abs),
		Changed: make(chan struct{}, 1),
		done:    make(chan struct{}),
	}

	go wtc.service()

	return wtc, nil
}

func (wtc *Watcher) service() {
	defer close(wtc.done)

	for {
		select {
		case ev, ok := <-wtc.watcher.Events:
			if !ok {
				return
			}
			if filepath.Base(ev.Name) != wtc.name {
				continue // for loop
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue // for loop
			}
			select {
			case wtc.Changed <- struct{}{}:
			default:
			}

		case err, ok := <-wtc.watcher.Errors:
			if !ok {
				return
			}
			logger.Log(logger.Allow, "source", err)
		}
	}
}

// Close stops the watcher. The Changed channel is not closed.
func (wtc *Watcher) Close() error {
	err := wtc.watcher.Close()
	<-wtc.done
	if err != nil {
		return curated.Errorf(WatchError, err)
	}
	return nil
}

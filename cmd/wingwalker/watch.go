/*
Copyright © 2024 the WingWalker authors.
This file is part of WingWalker.

WingWalker is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

WingWalker is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with WingWalker.  If not, see <http://www.gnu.org/licenses/>.
*/

package main

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/sirupsen/logrus"
)

// debounce is how long a request file must stay unchanged before the wing
// is rebuilt. Editors often write a file in several steps.
const debounce = 100 * time.Millisecond

// watchRequest calls regenerate each time the file at path is written or
// replaced, until ctx is done. Failures of regenerate are logged, not
// returned, so that a bad edit can be fixed without restarting.
func watchRequest(ctx context.Context, path string, regenerate func() error, log logrus.FieldLogger) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("wingwalker: watching %s: %w", path, err)
	}
	defer fw.Close()

	// Watch the directory; editors that save by rename drop a watch on
	// the file itself.
	target := filepath.Clean(path)
	if err := fw.Add(filepath.Dir(target)); err != nil {
		return fmt.Errorf("wingwalker: watching %s: %w", path, err)
	}
	log.WithField("request", path).Info("watching for changes")

	timer := time.NewTimer(debounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
				timer.Reset(debounce)
			}
		case <-timer.C:
			log.WithField("request", path).Info("request changed, regenerating")
			if err := regenerate(); err != nil {
				log.WithError(err).Error("generating wing")
			}
		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			log.WithError(err).Warn("watch error")
		}
	}
}

// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"context"
	"log/slog"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watch calls fn with the configuration at the given path, and again
// every time the file is written or replaced, until ctx is done.
// A file that fails to parse calls fn with the error.
// The directory is watched rather than the file so that
// editors that save by renaming are followed.
func Watch(ctx context.Context, filename string, fn func(c *Config, err error)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	filename = filepath.Clean(filename)
	if err := watcher.Add(filepath.Dir(filename)); err != nil {
		return err
	}
	fn(Open(filename))

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != filename {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
				slog.Debug("config changed", "file", filename, "op", event.Op.String())
				fn(Open(filename))
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			slog.Error("config watcher error: " + err.Error())
		}
	}
}

package main

import (
	"os"
	"os/signal"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	log "github.com/sirupsen/logrus"
)

// watchAndRun keeps re-applying the pipeline to files as they change on disk,
// until interrupted. Watches are placed on the parent directories because
// many editors replace files instead of writing them in place.
func watchAndRun(paths []string, run func(changed []string) error) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	watched := make(map[string]bool, len(paths))
	dirs := map[string]bool{}
	for _, p := range paths {
		watched[p] = true
		dirs[filepath.Dir(p)] = true
	}
	for d := range dirs {
		if err := watcher.Add(d); err != nil {
			return err
		}
	}

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt)
	defer signal.Stop(interrupt)

	log.Infof("watching %d files", len(paths))
	for {
		select {
		case ev := <-watcher.Events:
			if ev.Op&(fsnotify.Write|fsnotify.Create) == 0 || !watched[ev.Name] {
				continue
			}
			if err := run([]string{ev.Name}); err != nil {
				// A broken build keeps the watch alive; the next change may fix it.
				log.Error(err)
			}
		case err := <-watcher.Errors:
			log.Error(err)
		case <-interrupt:
			return nil
		}
	}
}

package stream

import (
	"context"
	"log"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// WatchConfig re-reads the config file whenever it changes and sends every config whose
// style validates. Only the style is applied live, so the rest of the file is not checked.
// The channel closes when ctx is done.
func WatchConfig(ctx context.Context, path string) (<-chan Config, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	// Editors often replace the file, so watch the directory rather than the file.
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		watcher.Close()
		return nil, err
	}

	target := filepath.Clean(path)
	out := make(chan Config, 1)

	go func() {
		defer close(out)
		defer watcher.Close()

		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != target {
					continue
				}
				if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
					continue
				}

				c, err := decodeConfig(path)
				if err == nil {
					err = c.Style.Validate()
				}
				if err != nil {
					log.Printf("Config reload failed: %v", err)
					continue
				}

				select {
				case out <- c:
				case <-ctx.Done():
					return
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				log.Printf("Config watcher: %v", err)
			}
		}
	}()

	return out, nil
}

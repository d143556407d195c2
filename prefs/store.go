// Package prefs reads the host-managed string preferences the switcher
// consults at initialization and on change notification: the keyboard layout
// theme and the settings-key mode. Preferences live in a flat TOML file the
// host owns; Watch delivers change notifications keyed by preference name.
package prefs

import (
	"context"
	"os"
	"path/filepath"
	"sync"

	"github.com/BurntSushi/toml"
	"github.com/fsnotify/fsnotify"
	"github.com/pkg/errors"
	"gopkg.in/guregu/null.v3"

	"github.com/softkbd/softkbd/log"
)

// Preference keys.
const (
	KeyKeyboardLayout  = "keyboard_layout"
	KeySettingsKeyMode = "settings_key_mode"
)

// DefaultLayoutID is the theme used when the preference is absent.
const DefaultLayoutID = "5"

// Listener receives the names of preferences whose values changed.
type Listener func(changed []string)

// Store is a TOML-backed preference store.
type Store struct {
	path   string
	logger *log.Logger

	mu        sync.RWMutex
	values    map[string]string
	listeners []Listener

	watcher *fsnotify.Watcher
	done    chan struct{}
}

// Open loads the preference file at path. A missing file is not an error;
// the store starts empty and fills in when the host writes it.
func Open(path string, logger *log.Logger) (*Store, error) {
	if logger == nil {
		logger = log.NewNullLogger()
	}
	s := &Store{
		path:   path,
		logger: logger,
		values: make(map[string]string),
	}
	if err := s.reload(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}
	return s, nil
}

// String returns the value for key; the null wrapper distinguishes an absent
// preference from an empty one.
func (s *Store) String(key string) null.String {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.values[key]
	return null.NewString(v, ok)
}

// StringOr returns the value for key, or def when the key is absent.
func (s *Store) StringOr(key, def string) string {
	v := s.String(key)
	if !v.Valid {
		return def
	}
	return v.String
}

// Subscribe registers a listener for preference changes. Listeners run on
// the watcher goroutine; keep them short and repost real work to the host
// event thread.
func (s *Store) Subscribe(l Listener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, l)
}

// Watch reloads the file and notifies listeners whenever the host rewrites
// it. It returns once the watcher is installed; watching stops when ctx is
// done or Close is called.
func (s *Store) Watch(ctx context.Context) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.Wrap(err, "creating preference watcher")
	}
	// Watch the directory: hosts typically replace the file by rename,
	// which drops a watch on the file itself.
	if err := w.Add(filepath.Dir(s.path)); err != nil {
		_ = w.Close()
		return errors.Wrapf(err, "watching %s", filepath.Dir(s.path))
	}

	s.mu.Lock()
	s.watcher = w
	s.done = make(chan struct{})
	s.mu.Unlock()

	go s.watchLoop(ctx, w)
	return nil
}

func (s *Store) watchLoop(ctx context.Context, w *fsnotify.Watcher) {
	defer close(s.done)
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-w.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != filepath.Clean(s.path) {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}
			changed, err := s.reloadDiff()
			if err != nil {
				s.logger.Warnf("Prefs:watch", "reloading %s: %v", s.path, err)
				continue
			}
			if len(changed) == 0 {
				continue
			}
			s.logger.Debugf("Prefs:watch", "changed keys: %v", changed)
			s.notify(changed)
		case err, ok := <-w.Errors:
			if !ok {
				return
			}
			s.logger.Warnf("Prefs:watch", "watcher error: %v", err)
		}
	}
}

// Close stops the watcher, if one is running.
func (s *Store) Close() error {
	s.mu.Lock()
	w, done := s.watcher, s.done
	s.watcher = nil
	s.mu.Unlock()
	if w == nil {
		return nil
	}
	err := w.Close()
	<-done
	return err
}

func (s *Store) reload() error {
	values := make(map[string]string)
	if _, err := toml.DecodeFile(s.path, &values); err != nil {
		if os.IsNotExist(err) {
			return errors.Wrap(os.ErrNotExist, s.path)
		}
		return errors.Wrapf(err, "decoding %s", s.path)
	}
	s.mu.Lock()
	s.values = values
	s.mu.Unlock()
	return nil
}

func (s *Store) reloadDiff() ([]string, error) {
	values := make(map[string]string)
	if _, err := toml.DecodeFile(s.path, &values); err != nil {
		return nil, errors.Wrapf(err, "decoding %s", s.path)
	}

	s.mu.Lock()
	var changed []string
	for k, v := range values {
		if old, ok := s.values[k]; !ok || old != v {
			changed = append(changed, k)
		}
	}
	for k := range s.values {
		if _, ok := values[k]; !ok {
			changed = append(changed, k)
		}
	}
	s.values = values
	s.mu.Unlock()
	return changed, nil
}

func (s *Store) notify(changed []string) {
	s.mu.RLock()
	listeners := make([]Listener, len(s.listeners))
	copy(listeners, s.listeners)
	s.mu.RUnlock()
	for _, l := range listeners {
		l(changed)
	}
}

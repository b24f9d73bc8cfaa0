// Package session holds the locally linked shop account. The order
// history view reads the client identifier from here and re-fetches
// when the linked account changes underneath it.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// Profile is the stored link between this installation and a shop
// client account.
type Profile struct {
	ClientID string `json:"client_id"`
	Eligible bool   `json:"eligible"`
}

type Store struct {
	path  string
	sugar *zap.SugaredLogger
}

func NewStore(path string, logger *zap.SugaredLogger) *Store {
	return &Store{
		path:  path,
		sugar: logger,
	}
}

func (s *Store) Load() (*Profile, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, err
	}

	var p Profile
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parse session file: %w", err)
	}

	return &p, nil
}

func (s *Store) Save(p *Profile) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(s.path, data, 0o600)
}

// ClientID reports the linked client identifier. A missing or unlinked
// profile is reported as absence, never as an error: the view shows an
// empty order history for un-onboarded users.
func (s *Store) ClientID() (string, bool) {
	p, err := s.Load()
	if err != nil || p.ClientID == "" {
		return "", false
	}
	return p.ClientID, true
}

// Eligible reports whether the linked account may see the order history
// at all.
func (s *Store) Eligible() bool {
	p, err := s.Load()
	if err != nil {
		// No profile yet: let the view in, it renders the empty state.
		return errors.Is(err, os.ErrNotExist)
	}
	return p.Eligible
}

// Fallback is what the gate shows instead of the view.
func (s *Store) Fallback() string {
	return "Order history is not available for this account yet."
}

// Watch notifies on every change of the session file until ctx is
// cancelled. Watches the directory, not the file, so atomic re-writes
// and fresh creates are both seen.
func (s *Store) Watch(ctx context.Context, changes chan<- struct{}) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		watcher.Close()
		return err
	}
	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return err
	}

	go func() {
		defer watcher.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if event.Name != s.path {
					continue
				}
				if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
					continue
				}
				s.sugar.Debugf("session file changed: %s", event.Op)
				select {
				case changes <- struct{}{}:
				default:
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				s.sugar.Errorf("session watch error: %v", err)
			}
		}
	}()

	return nil
}

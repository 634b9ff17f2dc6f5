// Package store persists every document kind as one human-editable JSON file
// on disk. Reads deserialize the whole file fresh on every call and writes
// replace the whole file; there is no caching layer. A per-kind mutex
// serializes read-modify-write cycles so concurrent admin requests cannot
// interleave on the same document.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/ashleyjkell/craftidad-landing/internal/models"
)

// Backing file per document kind, under the store's data directory.
const (
	linksFile   = "links.json"
	themeFile   = "theme.json"
	profileFile = "profile.json"
	authFile    = "auth.json"
	configFile  = "config.json"
)

type Store interface {
	GetLinks(ctx context.Context) ([]models.Link, error)
	AddLink(ctx context.Context, req models.CreateLinkRequest) (models.Link, error)
	UpdateLink(ctx context.Context, id string, req models.UpdateLinkRequest) (models.Link, error)
	DeleteLink(ctx context.Context, id string) error
	ReorderLinks(ctx context.Context, linkIDs []string) ([]models.Link, error)
	GetTheme(ctx context.Context) (models.Theme, error)
	UpdateTheme(ctx context.Context, upd models.ThemeUpdate) (models.Theme, error)
	GetProfile(ctx context.Context) (models.Profile, error)
	UpdateProfile(ctx context.Context, upd models.ProfileUpdate) (models.Profile, error)
	GetAuth(ctx context.Context) (models.AuthRecord, error)
	SetCredentials(ctx context.Context, username, passwordHash string) error
	GetConfig(ctx context.Context) (models.Config, error)
	UpdateConfig(ctx context.Context, upd models.ConfigUpdate) (models.Config, error)
	EnsureDefaults(ctx context.Context) error
}

type fileStore struct {
	dir string

	linksMu   sync.Mutex
	themeMu   sync.Mutex
	profileMu sync.Mutex
	authMu    sync.Mutex
	configMu  sync.Mutex
}

// New opens a store rooted at dir, creating the directory if needed.
func New(dir string) (Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data directory %s: %w", dir, err)
	}
	return &fileStore{dir: dir}, nil
}

// readDoc deserializes the named file into v. The file's absence and invalid
// JSON map onto the package sentinels so callers can tell them apart.
func (s *fileStore) readDoc(name string, v any) error {
	data, err := os.ReadFile(filepath.Join(s.dir, name))
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	if err != nil {
		return fmt.Errorf("read %s: %w", name, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrCorrupt, name, err)
	}
	return nil
}

// writeDoc replaces the named file with v serialized as indented JSON. The
// files are meant to be hand-editable, so formatting stays stable.
func (s *fileStore) writeDoc(name string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal %s: %w", name, err)
	}
	data = append(data, '\n')
	if err := os.WriteFile(filepath.Join(s.dir, name), data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	return nil
}

func (s *fileStore) GetTheme(ctx context.Context) (models.Theme, error) {
	var t models.Theme
	err := s.readDoc(themeFile, &t)
	return t, err
}

func (s *fileStore) UpdateTheme(ctx context.Context, upd models.ThemeUpdate) (models.Theme, error) {
	s.themeMu.Lock()
	defer s.themeMu.Unlock()

	var t models.Theme
	if err := s.readDoc(themeFile, &t); err != nil {
		return models.Theme{}, err
	}
	if upd.BackgroundColor != nil {
		t.BackgroundColor = *upd.BackgroundColor
	}
	if upd.BackgroundImageURL != nil {
		t.BackgroundImageURL = *upd.BackgroundImageURL
	}
	if upd.TextColor != nil {
		t.TextColor = *upd.TextColor
	}
	if upd.ButtonColor != nil {
		t.ButtonColor = *upd.ButtonColor
	}
	if upd.ButtonTextColor != nil {
		t.ButtonTextColor = *upd.ButtonTextColor
	}
	if err := s.writeDoc(themeFile, t); err != nil {
		return models.Theme{}, err
	}
	return t, nil
}

func (s *fileStore) GetProfile(ctx context.Context) (models.Profile, error) {
	var p models.Profile
	err := s.readDoc(profileFile, &p)
	return p, err
}

func (s *fileStore) UpdateProfile(ctx context.Context, upd models.ProfileUpdate) (models.Profile, error) {
	s.profileMu.Lock()
	defer s.profileMu.Unlock()

	var p models.Profile
	if err := s.readDoc(profileFile, &p); err != nil {
		return models.Profile{}, err
	}
	if upd.PhotoURL != nil {
		p.PhotoURL = *upd.PhotoURL
	}
	if upd.Bio != nil {
		p.Bio = *upd.Bio
	}
	if err := s.writeDoc(profileFile, p); err != nil {
		return models.Profile{}, err
	}
	return p, nil
}

func (s *fileStore) GetAuth(ctx context.Context) (models.AuthRecord, error) {
	var a models.AuthRecord
	err := s.readDoc(authFile, &a)
	return a, err
}

func (s *fileStore) SetCredentials(ctx context.Context, username, passwordHash string) error {
	s.authMu.Lock()
	defer s.authMu.Unlock()

	return s.writeDoc(authFile, models.AuthRecord{
		Username:     username,
		PasswordHash: passwordHash,
	})
}

func (s *fileStore) GetConfig(ctx context.Context) (models.Config, error) {
	var c models.Config
	err := s.readDoc(configFile, &c)
	return c, err
}

func (s *fileStore) UpdateConfig(ctx context.Context, upd models.ConfigUpdate) (models.Config, error) {
	s.configMu.Lock()
	defer s.configMu.Unlock()

	var c models.Config
	if err := s.readDoc(configFile, &c); err != nil {
		return models.Config{}, err
	}
	if upd.NounProjectAPIKey != nil {
		c.NounProjectAPIKey = *upd.NounProjectAPIKey
	}
	if upd.NounProjectAPISecret != nil {
		c.NounProjectAPISecret = *upd.NounProjectAPISecret
	}
	if err := s.writeDoc(configFile, c); err != nil {
		return models.Config{}, err
	}
	return c, nil
}

// EnsureDefaults seeds every missing document except auth so a fresh data
// directory serves immediately. Credentials are written only through
// SetCredentials, never invented here.
func (s *fileStore) EnsureDefaults(ctx context.Context) error {
	s.linksMu.Lock()
	var links []models.Link
	err := s.readDoc(linksFile, &links)
	if errors.Is(err, ErrNotFound) {
		err = s.writeDoc(linksFile, []models.Link{})
	}
	s.linksMu.Unlock()
	if err != nil {
		return err
	}

	s.themeMu.Lock()
	var theme models.Theme
	err = s.readDoc(themeFile, &theme)
	if errors.Is(err, ErrNotFound) {
		err = s.writeDoc(themeFile, models.DefaultTheme())
	}
	s.themeMu.Unlock()
	if err != nil {
		return err
	}

	s.profileMu.Lock()
	var profile models.Profile
	err = s.readDoc(profileFile, &profile)
	if errors.Is(err, ErrNotFound) {
		err = s.writeDoc(profileFile, models.Profile{})
	}
	s.profileMu.Unlock()
	if err != nil {
		return err
	}

	s.configMu.Lock()
	var cfg models.Config
	err = s.readDoc(configFile, &cfg)
	if errors.Is(err, ErrNotFound) {
		err = s.writeDoc(configFile, models.Config{})
	}
	s.configMu.Unlock()
	return err
}

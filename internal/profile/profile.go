// Package profile persists game launch profiles: an index file per profile
// under Profiles/ and a game-consumed settings file under
// Profiles/Settings/. The settings files are read by the game client
// itself, so their field names and layout are a contract.
package profile

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/openuo-online/openuo-launcher/internal/config"
	"github.com/openuo-online/openuo-launcher/internal/logger"
)

// Index is the per-profile index file (Profiles/{uuid}.json).
type Index struct {
	Name              string `json:"Name"`
	SettingsFile      string `json:"SettingsFile"`
	FileName          string `json:"FileName"`
	LastCharacterName string `json:"LastCharacterName"`
	AdditionalArgs    string `json:"AdditionalArgs"`
}

// Profile pairs an index entry with its game settings.
type Profile struct {
	Index    Index
	Settings Settings
}

// New returns a fresh profile with default settings and unique file names.
func New(name string) Profile {
	return Profile{
		Index: Index{
			Name:         name,
			SettingsFile: uuid.NewString(),
			FileName:     uuid.NewString(),
		},
		Settings: DefaultSettings(),
	}
}

// Duplicate returns a copy of p under new file names.
func Duplicate(p Profile) Profile {
	out := p
	out.Index.Name = p.Index.Name + " - Copy"
	out.Index.SettingsFile = uuid.NewString()
	out.Index.FileName = uuid.NewString()
	return out
}

// Store reads and writes profiles under one launcher base directory.
type Store struct {
	profilesDir string
	settingsDir string
}

// NewStore returns a store rooted at the launcher base directory.
func NewStore(baseDir string) *Store {
	return &Store{
		profilesDir: config.ProfilesDir(baseDir),
		settingsDir: config.SettingsDir(baseDir),
	}
}

// IndexPath returns the index file path for p.
func (s *Store) IndexPath(p *Profile) string {
	return filepath.Join(s.profilesDir, p.Index.FileName+".json")
}

// SettingsPath returns the game settings file path for p.
func (s *Store) SettingsPath(p *Profile) string {
	return filepath.Join(s.settingsDir, p.Index.SettingsFile+".json")
}

// LoadAll loads every profile found under the profiles directory. When none
// exist a default profile is created and saved so the launcher always has
// something to launch with.
func (s *Store) LoadAll() ([]Profile, error) {
	if err := os.MkdirAll(s.profilesDir, 0o755); err != nil {
		return nil, err
	}

	var profiles []Profile
	entries, err := os.ReadDir(s.profilesDir)
	if err != nil {
		return nil, err
	}
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		p, err := s.loadOne(filepath.Join(s.profilesDir, e.Name()))
		if err != nil {
			logger.Warn("skipping unreadable profile %s: %v", e.Name(), err)
			continue
		}
		profiles = append(profiles, p)
	}

	if len(profiles) == 0 {
		def := New("Default")
		if err := s.Save(&def); err != nil {
			return nil, fmt.Errorf("failed to create default profile: %w", err)
		}
		profiles = append(profiles, def)
	}
	return profiles, nil
}

func (s *Store) loadOne(indexPath string) (Profile, error) {
	raw, err := os.ReadFile(indexPath)
	if err != nil {
		return Profile{}, err
	}
	var idx Index
	if err := json.Unmarshal(raw, &idx); err != nil {
		return Profile{}, err
	}
	logger.Debug("loaded profile %s", idx.Name)

	p := Profile{Index: idx, Settings: DefaultSettings()}

	settingsPath := s.SettingsPath(&p)
	data, err := os.ReadFile(settingsPath)
	if err != nil {
		if !os.IsNotExist(err) {
			logger.Warn("failed to read settings for profile %s: %v", idx.Name, err)
		}
		return p, nil
	}
	warnIfPermissiveSettings(settingsPath)
	if err := json.Unmarshal(data, &p.Settings); err != nil {
		logger.Warn("failed to parse settings for profile %s: %v", idx.Name, err)
		p.Settings = DefaultSettings()
	}
	return p, nil
}

// Save writes the index and settings files atomically (tmp + rename).
// Fields the game itself updates in the settings file (window placement and
// the like) are preserved: only launcher-managed fields are overwritten.
func (s *Store) Save(p *Profile) error {
	if err := os.MkdirAll(s.profilesDir, 0o755); err != nil {
		return err
	}
	if err := os.MkdirAll(s.settingsDir, 0o755); err != nil {
		return err
	}

	indexJSON, err := json.MarshalIndent(p.Index, "", "  ")
	if err != nil {
		return err
	}
	if err := atomicWrite(s.IndexPath(p), indexJSON, 0o644); err != nil {
		return fmt.Errorf("failed to save profile index: %w", err)
	}

	merged, err := s.mergeSettings(p)
	if err != nil {
		return err
	}
	settingsJSON, err := json.MarshalIndent(merged, "", "  ")
	if err != nil {
		return err
	}
	// Settings may hold credentials; keep them out of other users' reach.
	if err := atomicWrite(s.SettingsPath(p), settingsJSON, 0o600); err != nil {
		return fmt.Errorf("failed to save profile settings: %w", err)
	}
	return nil
}

// mergeSettings folds the launcher-managed fields into whatever the game
// last wrote, or into a fresh full settings document when none exists yet.
func (s *Store) mergeSettings(p *Profile) (map[string]any, error) {
	doc := map[string]any{}
	if data, err := os.ReadFile(s.SettingsPath(p)); err == nil {
		if err := json.Unmarshal(data, &doc); err != nil {
			doc = map[string]any{}
		}
	}
	if len(doc) == 0 {
		full, err := json.Marshal(p.Settings)
		if err != nil {
			return nil, err
		}
		if err := json.Unmarshal(full, &doc); err != nil {
			return nil, err
		}
	}

	set := p.Settings
	doc["username"] = set.Username
	doc["password"] = set.Password
	doc["ip"] = set.IP
	doc["port"] = set.Port
	doc["ultimaonlinedirectory"] = set.UltimaOnlineDirectory
	doc["saveaccount"] = set.SaveAccount
	doc["autologin"] = set.AutoLogin
	doc["reconnect"] = set.Reconnect

	// The game resolves its own profile storage when this is empty.
	doc["profilespath"] = ""
	doc["last_server_name"] = set.IP

	if !set.SaveAccount {
		doc["username"] = ""
		doc["password"] = ""
	}
	return doc, nil
}

// Delete removes both files for p. Missing files are not an error.
func (s *Store) Delete(p *Profile) error {
	for _, path := range []string{s.IndexPath(p), s.SettingsPath(p)} {
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			return err
		}
	}
	return nil
}

func atomicWrite(path string, data []byte, mode os.FileMode) error {
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, mode); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

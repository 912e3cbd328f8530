package profile

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func TestNewProfileDefaults(t *testing.T) {
	p := New("Atlantic")
	if p.Index.Name != "Atlantic" {
		t.Errorf("Name = %q, want %q", p.Index.Name, "Atlantic")
	}
	if p.Index.FileName == "" || p.Index.SettingsFile == "" {
		t.Error("expected generated file names")
	}
	if p.Index.FileName == p.Index.SettingsFile {
		t.Error("index and settings file names should differ")
	}
	if p.Settings.IP != "openuo.online" || p.Settings.Port != 2593 {
		t.Errorf("unexpected default server %s:%d", p.Settings.IP, p.Settings.Port)
	}
	if !p.Settings.AutoLogin || !p.Settings.SaveAccount {
		t.Error("expected auto login and save account on by default")
	}
}

func TestSaveAndLoadAllRoundTrip(t *testing.T) {
	base := t.TempDir()
	store := NewStore(base)

	p := New("Main")
	p.Index.LastCharacterName = "Gandalf"
	p.Index.AdditionalArgs = "-debug"
	p.Settings.Username = "frodo"
	p.Settings.Password = "shire"
	p.Settings.UltimaOnlineDirectory = "/data/uo"

	if err := store.Save(&p); err != nil {
		t.Fatalf("Save: %v", err)
	}

	profiles, err := store.LoadAll()
	if err != nil {
		t.Fatalf("LoadAll: %v", err)
	}
	if len(profiles) != 1 {
		t.Fatalf("got %d profiles, want 1", len(profiles))
	}
	got := profiles[0]
	if got.Index != p.Index {
		t.Errorf("index = %+v, want %+v", got.Index, p.Index)
	}
	if got.Settings.Username != "frodo" || got.Settings.Password != "shire" {
		t.Errorf("credentials not persisted: %+v", got.Settings)
	}
	if got.Settings.UltimaOnlineDirectory != "/data/uo" {
		t.Errorf("ultima online directory = %q", got.Settings.UltimaOnlineDirectory)
	}
	if got.Settings.LastServerName != "openuo.online" {
		t.Errorf("last server name = %q, want ip", got.Settings.LastServerName)
	}
}

func TestLoadAllCreatesDefaultProfile(t *testing.T) {
	base := t.TempDir()
	store := NewStore(base)

	profiles, err := store.LoadAll()
	if err != nil {
		t.Fatalf("LoadAll: %v", err)
	}
	if len(profiles) != 1 {
		t.Fatalf("got %d profiles, want 1 default", len(profiles))
	}
	if profiles[0].Index.Name != "Default" {
		t.Errorf("name = %q, want Default", profiles[0].Index.Name)
	}
	if _, err := os.Stat(store.IndexPath(&profiles[0])); err != nil {
		t.Errorf("default profile index not written: %v", err)
	}
}

func TestSavePreservesGameWrittenFields(t *testing.T) {
	base := t.TempDir()
	store := NewStore(base)

	p := New("Main")
	if err := store.Save(&p); err != nil {
		t.Fatalf("Save: %v", err)
	}

	// Simulate the game updating its own fields between launches.
	path := store.SettingsPath(&p)
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	doc["window_position"] = map[string]any{"X": 120, "Y": 45}
	doc["fps"] = 144
	data, _ = json.Marshal(doc)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	p.Settings.Username = "frodo"
	if err := store.Save(&p); err != nil {
		t.Fatalf("Save: %v", err)
	}

	data, _ = os.ReadFile(path)
	doc = map[string]any{}
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("Unmarshal after save: %v", err)
	}
	if doc["username"] != "frodo" {
		t.Errorf("username = %v, want frodo", doc["username"])
	}
	if doc["fps"] != float64(144) {
		t.Errorf("fps = %v, game-written value lost", doc["fps"])
	}
	pos, ok := doc["window_position"].(map[string]any)
	if !ok || pos["X"] != float64(120) {
		t.Errorf("window_position = %v, game-written value lost", doc["window_position"])
	}
}

func TestSaveAccountOffClearsCredentials(t *testing.T) {
	base := t.TempDir()
	store := NewStore(base)

	p := New("Main")
	p.Settings.Username = "frodo"
	p.Settings.Password = "shire"
	p.Settings.SaveAccount = false
	if err := store.Save(&p); err != nil {
		t.Fatalf("Save: %v", err)
	}

	data, err := os.ReadFile(store.SettingsPath(&p))
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if doc["username"] != "" || doc["password"] != "" {
		t.Errorf("credentials written despite saveaccount=false: %v / %v",
			doc["username"], doc["password"])
	}
}

func TestDeleteRemovesBothFiles(t *testing.T) {
	base := t.TempDir()
	store := NewStore(base)

	p := New("Main")
	if err := store.Save(&p); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := store.Delete(&p); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	for _, path := range []string{store.IndexPath(&p), store.SettingsPath(&p)} {
		if _, err := os.Stat(path); !os.IsNotExist(err) {
			t.Errorf("%s still exists after delete", filepath.Base(path))
		}
	}
	// A second delete is a no-op.
	if err := store.Delete(&p); err != nil {
		t.Errorf("Delete of missing profile: %v", err)
	}
}

func TestDuplicateUsesFreshFileNames(t *testing.T) {
	p := New("Main")
	p.Settings.Username = "frodo"

	d := Duplicate(p)
	if d.Index.Name != "Main - Copy" {
		t.Errorf("name = %q", d.Index.Name)
	}
	if d.Index.FileName == p.Index.FileName || d.Index.SettingsFile == p.Index.SettingsFile {
		t.Error("duplicate shares file names with original")
	}
	if d.Settings.Username != "frodo" {
		t.Error("duplicate should carry the original settings")
	}
}

func TestLoadAllSkipsUnreadableProfile(t *testing.T) {
	base := t.TempDir()
	store := NewStore(base)

	p := New("Main")
	if err := store.Save(&p); err != nil {
		t.Fatalf("Save: %v", err)
	}
	junk := filepath.Join(store.profilesDir, "broken.json")
	if err := os.WriteFile(junk, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	profiles, err := store.LoadAll()
	if err != nil {
		t.Fatalf("LoadAll: %v", err)
	}
	if len(profiles) != 1 || profiles[0].Index.Name != "Main" {
		t.Fatalf("profiles = %+v, want just Main", profiles)
	}
}

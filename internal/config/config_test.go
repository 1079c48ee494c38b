package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Seed.Source != "default" {
		t.Errorf("default seed source = %q, want %q", cfg.Seed.Source, "default")
	}
	if cfg.Search.MaxDistance != 2 {
		t.Errorf("default max distance = %d, want 2", cfg.Search.MaxDistance)
	}
	if !cfg.Display.AltScreen {
		t.Error("default alt screen should be enabled")
	}
	if cfg.Display.Plain {
		t.Error("default plain should be disabled")
	}
	if cfg.Log.File != "" {
		t.Errorf("default log file = %q, want empty", cfg.Log.File)
	}
}

func TestLoad_ValidFile(t *testing.T) {
	cfgPath := writeConfig(t, t.TempDir(), `
seed:
  source: /tmp/team.yaml
display:
  plain: true
  alt_screen: false
log:
  file: /tmp/contactbook.log
search:
  max_distance: 4
`)

	cfg, err := Load(cfgPath)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Seed.Source != "/tmp/team.yaml" {
		t.Errorf("seed source = %q, want %q", cfg.Seed.Source, "/tmp/team.yaml")
	}
	if !cfg.Display.Plain {
		t.Error("plain = false, want true")
	}
	if cfg.Display.AltScreen {
		t.Error("alt screen = true, want false")
	}
	if cfg.Log.File != "/tmp/contactbook.log" {
		t.Errorf("log file = %q, want %q", cfg.Log.File, "/tmp/contactbook.log")
	}
	if cfg.Search.MaxDistance != 4 {
		t.Errorf("max distance = %d, want 4", cfg.Search.MaxDistance)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	cfg, err := Load("/nonexistent/config.yaml")
	if err != nil {
		t.Fatalf("Load() should return defaults for missing file, got error: %v", err)
	}
	want := DefaultConfig()
	if *cfg != want {
		t.Errorf("Load(missing) = %+v, want defaults %+v", *cfg, want)
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	cfgPath := writeConfig(t, t.TempDir(), "{{invalid yaml")

	_, err := Load(cfgPath)
	if err == nil {
		t.Fatal("Load(invalid YAML) should return error")
	}
}

func TestLoad_PartialConfig(t *testing.T) {
	cfgPath := writeConfig(t, t.TempDir(), `
seed:
  source: empty
`)

	cfg, err := Load(cfgPath)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Seed.Source != "empty" {
		t.Errorf("seed source = %q, want %q", cfg.Seed.Source, "empty")
	}
	// Unset fields should retain defaults.
	if cfg.Search.MaxDistance != 2 {
		t.Errorf("max distance = %d, want default 2", cfg.Search.MaxDistance)
	}
}

func TestLoad_LayeredPriority(t *testing.T) {
	// Setup: user config sets seed and distance, project config overrides distance.
	userCfg := writeConfig(t, t.TempDir(), `
seed:
  source: /home/me/people.yaml
search:
  max_distance: 1
`)
	projectCfg := writeConfig(t, t.TempDir(), `
search:
  max_distance: 3
display:
  alt_screen: false
`)

	cfg, err := LoadLayered(userCfg, projectCfg)
	if err != nil {
		t.Fatalf("LoadLayered() error = %v", err)
	}
	// Seed from user config (project doesn't set it).
	if cfg.Seed.Source != "/home/me/people.yaml" {
		t.Errorf("seed source = %q, want %q", cfg.Seed.Source, "/home/me/people.yaml")
	}
	// Distance from project config (overrides user).
	if cfg.Search.MaxDistance != 3 {
		t.Errorf("max distance = %d, want 3", cfg.Search.MaxDistance)
	}
	// An explicit false overrides a true default.
	if cfg.Display.AltScreen {
		t.Error("alt screen = true, want false from project layer")
	}
	// Log file retains default when neither layer sets it.
	if cfg.Log.File != "" {
		t.Errorf("log file = %q, want default empty", cfg.Log.File)
	}
}

func TestLoadLayered_InvalidLayer(t *testing.T) {
	good := writeConfig(t, t.TempDir(), "seed:\n  source: empty\n")
	bad := writeConfig(t, t.TempDir(), "seed:\n  sauce: empty\n")

	if _, err := LoadLayered(good, bad); err == nil {
		t.Fatal("LoadLayered() should reject unknown field in any layer")
	}
}

func TestApplyEnv(t *testing.T) {
	tests := []struct {
		name    string
		envs    map[string]string
		wantErr bool
		check   func(*testing.T, Config)
	}{
		{
			name: "CONTACTBOOK_SEED overrides seed source",
			envs: map[string]string{"CONTACTBOOK_SEED": "empty"},
			check: func(t *testing.T, c Config) {
				if c.Seed.Source != "empty" {
					t.Errorf("seed source = %q, want %q", c.Seed.Source, "empty")
				}
			},
		},
		{
			name: "CONTACTBOOK_LOG_FILE overrides log file",
			envs: map[string]string{"CONTACTBOOK_LOG_FILE": "/var/log/contactbook.log"},
			check: func(t *testing.T, c Config) {
				if c.Log.File != "/var/log/contactbook.log" {
					t.Errorf("log file = %q, want %q", c.Log.File, "/var/log/contactbook.log")
				}
			},
		},
		{
			name: "CONTACTBOOK_SEARCH_MAX_DISTANCE overrides distance",
			envs: map[string]string{"CONTACTBOOK_SEARCH_MAX_DISTANCE": "0"},
			check: func(t *testing.T, c Config) {
				if c.Search.MaxDistance != 0 {
					t.Errorf("max distance = %d, want 0", c.Search.MaxDistance)
				}
			},
		},
		{
			name:    "invalid CONTACTBOOK_SEARCH_MAX_DISTANCE returns error",
			envs:    map[string]string{"CONTACTBOOK_SEARCH_MAX_DISTANCE": "far"},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.envs {
				t.Setenv(k, v)
			}
			cfg := DefaultConfig()
			err := cfg.ApplyEnv()

			if tt.wantErr {
				if err == nil {
					t.Fatal("ApplyEnv() should return error")
				}
				return
			}
			if err != nil {
				t.Fatalf("ApplyEnv() error = %v", err)
			}
			tt.check(t, cfg)
		})
	}
}

func TestLoad_UnknownField(t *testing.T) {
	cfgPath := writeConfig(t, t.TempDir(), `
search:
  max_distnace: 3
`)

	_, err := Load(cfgPath)
	if err == nil {
		t.Fatal("Load() should return error for unknown field 'max_distnace'")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr bool
	}{
		{
			name:   "defaults are valid",
			modify: func(*Config) {},
		},
		{
			name:    "empty seed source",
			modify:  func(c *Config) { c.Seed.Source = "" },
			wantErr: true,
		},
		{
			name:    "negative max distance",
			modify:  func(c *Config) { c.Search.MaxDistance = -1 },
			wantErr: true,
		},
		{
			name:   "zero max distance",
			modify: func(c *Config) { c.Search.MaxDistance = 0 },
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoad_CommentOnlyFile(t *testing.T) {
	cfgPath := writeConfig(t, t.TempDir(), "# just a comment\n")

	cfg, err := Load(cfgPath)
	if err != nil {
		t.Fatalf("Load(comment-only) error = %v", err)
	}
	want := DefaultConfig()
	if *cfg != want {
		t.Errorf("Load(comment-only) = %+v, want defaults %+v", *cfg, want)
	}
}

func TestLoadLayered_AllMissing(t *testing.T) {
	cfg, err := LoadLayered("/no/user.yaml", "/no/project.yaml")
	if err != nil {
		t.Fatalf("LoadLayered(all missing) error = %v", err)
	}
	want := DefaultConfig()
	if *cfg != want {
		t.Errorf("got %+v, want defaults %+v", *cfg, want)
	}
}

func TestLoad_EmptyFile(t *testing.T) {
	cfgPath := writeConfig(t, t.TempDir(), "")

	cfg, err := Load(cfgPath)
	if err != nil {
		t.Fatalf("Load(empty) error = %v", err)
	}
	want := DefaultConfig()
	if *cfg != want {
		t.Errorf("Load(empty) = %+v, want defaults %+v", *cfg, want)
	}
}

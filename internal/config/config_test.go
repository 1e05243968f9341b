package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	t.Setenv(EnvTheme, "")
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg != Default() {
		t.Fatalf("cfg = %+v, want defaults", cfg)
	}
}

func TestLoadFile(t *testing.T) {
	t.Setenv(EnvTheme, "")
	path := writeConfig(t, `
theme = "Neon"
no_color = true
button_color = "#00ff88"

[log]
level = "debug"
file = "/tmp/tareas.log"
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Theme != "neon" || !cfg.NoColor || cfg.ButtonColor != "#00ff88" {
		t.Fatalf("cfg = %+v", cfg)
	}
	if cfg.Log.Level != "debug" || cfg.Log.File != "/tmp/tareas.log" {
		t.Fatalf("log = %+v", cfg.Log)
	}
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	t.Setenv(EnvTheme, "")
	cfg, err := Load(writeConfig(t, `no_color = true`))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Theme != "classic" || cfg.Log.Level != "info" {
		t.Fatalf("defaults lost: %+v", cfg)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv(EnvTheme, "MONO")
	cfg, err := Load(writeConfig(t, `theme = "neon"`))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Theme != "mono" {
		t.Fatalf("theme = %q, want mono", cfg.Theme)
	}
}

func TestLoadErrors(t *testing.T) {
	t.Setenv(EnvTheme, "")
	tests := []struct {
		name string
		body string
		want string
	}{
		{"bad theme", `theme = "solarized"`, `invalid theme "solarized"`},
		{"bad color", `button_color = "pink"`, `invalid buttoncolor "pink"`},
		{"bad level", "[log]\nlevel = \"trace\"", `invalid level "trace"`},
		{"unknown key", `colour = "red"`, `unknown key "colour"`},
		{"syntax", `theme = `, "config: read"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("err = %v, want containing %q", err, tt.want)
			}
		})
	}
}

func TestPath(t *testing.T) {
	if p := Path(); !strings.HasSuffix(p, filepath.Join("tareas", "config.toml")) {
		t.Fatalf("Path() = %q", p)
	}
}

package config

import (
	"errors"
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseSceneConfig(t *testing.T) {
	tests := []struct {
		name        string
		yamlContent string
		wantErr     bool
		errContains string
		validate    func(*testing.T, *SceneConfig)
	}{
		{
			name: "valid config",
			yamlContent: `
image: images/pond.png
fallbackColor: "#102030"
window:
  width: 800
  height: 600
  title: Pond
emitters:
  - { x: 0.40488, y: 0.79203, r: 49 }
  - { x: 0.1314, y: 0.79375, r: 7 }
`,
			validate: func(t *testing.T, cfg *SceneConfig) {
				if cfg.Image != "images/pond.png" {
					t.Errorf("Image: got %q, want images/pond.png", cfg.Image)
				}
				if len(cfg.Emitters) != 2 {
					t.Fatalf("expected 2 emitters, got %d", len(cfg.Emitters))
				}
				if cfg.Emitters[0].R != 49 {
					t.Errorf("expected first emitter r = 49, got %v", cfg.Emitters[0].R)
				}
				if cfg.Window.Title != "Pond" {
					t.Errorf("Window.Title: got %q, want Pond", cfg.Window.Title)
				}
				want := color.RGBA{R: 0x10, G: 0x20, B: 0x30, A: 255}
				if got := cfg.FallbackRGBA(); got != want {
					t.Errorf("FallbackRGBA: got %v, want %v", got, want)
				}
			},
		},
		{
			name: "missing fields keep defaults",
			yamlContent: `
emitters:
  - { x: 0.5, y: 0.5, r: 20 }
`,
			validate: func(t *testing.T, cfg *SceneConfig) {
				def := DefaultSceneConfig()
				if cfg.Image != def.Image {
					t.Errorf("Image: got %q, want %q", cfg.Image, def.Image)
				}
				if cfg.Window.Width != def.Window.Width {
					t.Errorf("Window.Width: got %d, want %d", cfg.Window.Width, def.Window.Width)
				}
				if !cfg.PauseWhenUnfocused {
					t.Error("PauseWhenUnfocused: got false, want true")
				}
			},
		},
		{
			name:        "empty emitters",
			yamlContent: "emitters: []\n",
			wantErr:     true,
			errContains: "emitters cannot be empty",
		},
		{
			name: "position outside unit square",
			yamlContent: `
emitters:
  - { x: 1.2, y: 0.5, r: 20 }
`,
			wantErr:     true,
			errContains: "outside [0,1]",
		},
		{
			name: "radius class below range",
			yamlContent: `
emitters:
  - { x: 0.5, y: 0.5, r: 3 }
`,
			wantErr:     true,
			errContains: "radius class",
		},
		{
			name: "bad fallback color",
			yamlContent: `
fallbackColor: "blue"
emitters:
  - { x: 0.5, y: 0.5, r: 20 }
`,
			wantErr:     true,
			errContains: "fallbackColor",
		},
		{
			name:        "malformed yaml",
			yamlContent: "emitters: [",
			wantErr:     true,
			errContains: "failed to parse scene YAML",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := ParseSceneConfig([]byte(tt.yamlContent))
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error containing %q, got nil", tt.errContains)
				}
				if !strings.Contains(err.Error(), tt.errContains) {
					t.Errorf("expected error containing %q, got %q", tt.errContains, err.Error())
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.validate != nil {
				tt.validate(t, cfg)
			}
		})
	}
}

func TestSceneConfigValidationIsSentinel(t *testing.T) {
	_, err := ParseSceneConfig([]byte("emitters: []\n"))
	if !errors.Is(err, ErrInvalidScene) {
		t.Errorf("expected errors.Is(err, ErrInvalidScene), got %v", err)
	}
}

func TestLoadSceneConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scene.yaml")
	content := "emitters:\n  - { x: 0.25, y: 0.75, r: 30 }\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write temp scene: %v", err)
	}

	cfg, err := LoadSceneConfig(path)
	if err != nil {
		t.Fatalf("LoadSceneConfig() error: %v", err)
	}
	if cfg.Emitters[0].X != 0.25 || cfg.Emitters[0].Y != 0.75 {
		t.Errorf("emitter position: got (%v, %v), want (0.25, 0.75)", cfg.Emitters[0].X, cfg.Emitters[0].Y)
	}

	if _, err := LoadSceneConfig(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing scene file")
	}
}

// TestDefaultSceneFile 校验仓库内置的场景文件
func TestDefaultSceneFile(t *testing.T) {
	cfg, err := LoadSceneConfig(filepath.Join("..", "..", DefaultScenePath))
	if err != nil {
		t.Fatalf("failed to load %s: %v", DefaultScenePath, err)
	}
	if len(cfg.Emitters) != 40 {
		t.Errorf("expected 40 seed emitters, got %d", len(cfg.Emitters))
	}
	if cfg.Emitters[0].R != RadiusClassMax {
		t.Errorf("first seed emitter r: got %v, want %v", cfg.Emitters[0].R, RadiusClassMax)
	}
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		in      string
		want    color.RGBA
		wantErr bool
	}{
		{"#ffffff", color.RGBA{255, 255, 255, 255}, false},
		{"000000", color.RGBA{0, 0, 0, 255}, false},
		{" #0B1A24 ", color.RGBA{0x0b, 0x1a, 0x24, 255}, false},
		{"#fff", color.RGBA{}, true},
		{"#gggggg", color.RGBA{}, true},
	}

	for _, tt := range tests {
		got, err := ParseHexColor(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseHexColor(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("ParseHexColor(%q): got %v, want %v", tt.in, got, tt.want)
		}
	}
}

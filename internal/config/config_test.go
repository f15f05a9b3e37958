package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNormalizeRoot(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"no trailing slash", "/data/photos", "/data/photos"},
		{"single trailing slash", "/data/photos/", "/data/photos"},
		{"multiple trailing slashes", "/data/photos///", "/data/photos"},
		{"root path", "/", "/"},
		{"relative path", "photos", "photos"},
		{"relative with slash", "photos/", "photos"},
		{"empty string", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeRoot(tt.in)
			if got != tt.want {
				t.Errorf("NormalizeRoot(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseColorMode(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    ColorMode
		wantErr bool
	}{
		{"auto", "auto", ColorAuto, false},
		{"always", "always", ColorAlways, false},
		{"never", "never", ColorNever, false},
		{"uppercase", "NEVER", ColorNever, false},
		{"padded", " auto ", ColorAuto, false},
		{"unknown", "rainbow", "", true},
		{"empty", "", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseColorMode(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseColorMode(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseColorMode(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestValidate_PrefixBytes(t *testing.T) {
	tests := []struct {
		name    string
		n       int
		wantErr bool
	}{
		{"default is valid", DefaultPrefixBytes, false},
		{"one is valid", 1, false},
		{"zero is invalid", 0, true},
		{"negative is invalid", -4, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.Roots = []string{"/data"}
			cfg.PrefixBytes = tt.n
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidate_YesRequiresDelete(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Roots = []string{"/data"}
	cfg.AssumeYes = true

	if err := cfg.Validate(); err == nil {
		t.Error("Validate() should reject --yes without --delete")
	}

	cfg.Delete = true
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() unexpected error: %v", err)
	}
}

func TestValidate_RequiresRoots(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err == nil {
		t.Error("Validate() should fail with no roots")
	}
}

func TestLoadFile_Overlay(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "dupsweep.yaml")
	data := "prefix_bytes: 16\ncolor: never\nprogress: false\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg := DefaultConfig()
	if err := LoadFile(path, &cfg); err != nil {
		t.Fatalf("LoadFile: %v", err)
	}

	if cfg.PrefixBytes != 16 {
		t.Errorf("PrefixBytes = %d, want 16", cfg.PrefixBytes)
	}
	if cfg.ColorMode != ColorNever {
		t.Errorf("ColorMode = %q, want %q", cfg.ColorMode, ColorNever)
	}
	if cfg.ShowProgress {
		t.Error("ShowProgress should be false")
	}
	// Fields the file does not name keep their defaults.
	if !cfg.Recursive {
		t.Error("Recursive should keep its default (true)")
	}
}

func TestLoadFile_BadColor(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "dupsweep.yaml")
	if err := os.WriteFile(path, []byte("color: sometimes\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg := DefaultConfig()
	if err := LoadFile(path, &cfg); err == nil {
		t.Error("LoadFile should reject an invalid color mode")
	}
}

func TestLoadFile_Missing(t *testing.T) {
	cfg := DefaultConfig()
	if err := LoadFile(filepath.Join(t.TempDir(), "absent.yaml"), &cfg); err == nil {
		t.Error("LoadFile should fail for a missing file")
	}
}

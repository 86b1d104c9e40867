package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-test/deep"
)

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{
			name:   "defaults are valid",
			mutate: func(c *Config) {},
		},
		{
			name:   "platform normalized",
			mutate: func(c *Config) { c.Format.Platform = " GitHub " },
		},
		{
			name:    "unknown platform",
			mutate:  func(c *Config) { c.Format.Platform = "teamcity" },
			wantErr: "unsupported --platform",
		},
		{
			name:   "emit comma list",
			mutate: func(c *Config) { c.Output.Emit = []string{"json,ndjson"} },
		},
		{
			name:    "bad emit value",
			mutate:  func(c *Config) { c.Output.Emit = []string{"yaml"} },
			wantErr: "unsupported --emit",
		},
		{
			name:    "bad color value",
			mutate:  func(c *Config) { c.Output.Color = "sometimes" },
			wantErr: "unsupported --color",
		},
		{
			name:    "no-console without other sinks",
			mutate:  func(c *Config) { c.Output.NoConsole = true },
			wantErr: "--no-console requires",
		},
		{
			name: "no-console with emit",
			mutate: func(c *Config) {
				c.Output.NoConsole = true
				c.Output.Emit = []string{"ndjson"}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New()
			tt.mutate(c)
			err := c.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("Validate() error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("Validate() error = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestConfig_ValidateNormalizesEnums(t *testing.T) {
	c := New()
	c.Format.Platform = "GITLAB"
	c.Output.Color = " Never "
	c.Output.Emit = []string{" ndjson "}
	if err := c.Validate(); err != nil {
		t.Fatal(err)
	}
	if c.Format.Platform != "gitlab" {
		t.Errorf("platform = %q", c.Format.Platform)
	}
	if c.Output.Color != "never" {
		t.Errorf("color = %q", c.Output.Color)
	}
	if diff := deep.Equal(c.Output.Emit, []string{"ndjson"}); diff != nil {
		t.Errorf("emit mismatch: %v", diff)
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cifmt.toml")
	content := `platform = "gitlab"
color = "never"
out = "build.log"
emit = ["ndjson"]
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	f, err := LoadFile(path, true)
	if err != nil {
		t.Fatal(err)
	}
	want := &File{Platform: "gitlab", Color: "never", Out: "build.log", Emit: []string{"ndjson"}}
	if diff := deep.Equal(f, want); diff != nil {
		t.Errorf("LoadFile mismatch: %v", diff)
	}
}

func TestLoadFile_Missing(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope.toml")

	f, err := LoadFile(missing, false)
	if err != nil || f != nil {
		t.Errorf("implicit missing file: got %v, %v; want nil, nil", f, err)
	}
	if _, err := LoadFile(missing, true); err == nil {
		t.Error("explicit missing file did not fail")
	}
}

func TestLoadFile_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.toml")
	if err := os.WriteFile(path, []byte("platform = ["), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFile(path, true); err == nil {
		t.Error("invalid TOML did not fail")
	}
}

package sorter

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const template = `{
	"date_format": "%Y-%m-%d %Hh%Mm%Ss",
	"date_type": "m",
	"exclude_type": ["png"],
	"only_type": ["json", "py"],
	"preserve_name": false
}`

func TestParseSettings(t *testing.T) {
	s, err := ParseSettings([]byte(template))
	if err != nil {
		t.Fatal(err)
	}
	if s.DateFormat != "%Y-%m-%d %Hh%Mm%Ss" || s.DateType != "m" || s.PreserveName {
		t.Errorf("unexpected settings: %+v", s)
	}
	if !sliceEqual(s.ExcludeType, []string{"png"}) || !sliceEqual(s.OnlyType, []string{"json", "py"}) {
		t.Errorf("unexpected extension lists: %+v", s)
	}

	cfg, err := s.Config("src", "dst")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.SourceRoot != "src" || cfg.TargetRoot != "dst" || cfg.DateKind != Modified {
		t.Errorf("unexpected config: %+v", cfg)
	}
}

func TestParseSettingsErrors(t *testing.T) {
	tests := map[string]string{
		"malformed":     `{"date_format": `,
		"bad type":      `{"date_format": "%Y", "date_type": "x", "exclude_type": [], "only_type": [], "preserve_name": false}`,
		"wrong shape":   `{"date_format": "%Y", "date_type": "m", "exclude_type": "png", "only_type": [], "preserve_name": false}`,
		"not an object": `[1, 2]`,
	}
	for name, payload := range tests {
		t.Run(name, func(t *testing.T) {
			if _, err := ParseSettings([]byte(payload)); !errors.Is(err, ErrConfigParse) {
				t.Errorf("err = %v, want ErrConfigParse", err)
			}
		})
	}
}

func TestParseSettingsRequiresEveryKey(t *testing.T) {
	tests := map[string]string{
		"empty object":      `{}`,
		"null":              `null`,
		"no date_format":    `{"date_type": "m", "exclude_type": [], "only_type": [], "preserve_name": false}`,
		"null exclude_type": `{"date_format": "%Y", "date_type": "m", "exclude_type": null, "only_type": [], "preserve_name": false}`,
		"no preserve_name":  `{"date_format": "%Y", "date_type": "m", "exclude_type": [], "only_type": []}`,
	}
	for name, payload := range tests {
		t.Run(name, func(t *testing.T) {
			s, err := ParseSettings([]byte(payload))
			if !errors.Is(err, ErrConfigParse) {
				t.Errorf("ParseSettings = %+v, %v; want ErrConfigParse", s, err)
			}
		})
	}

	_, err := ParseSettings([]byte(`{"date_type": "m", "exclude_type": [], "only_type": [], "preserve_name": false}`))
	if err == nil || !strings.Contains(err.Error(), "date_format") {
		t.Errorf("error does not name the missing key: %v", err)
	}
}

func TestParseSettingsEmptyLists(t *testing.T) {
	s, err := ParseSettings([]byte(`{"date_format": "%Y", "date_type": "a", "exclude_type": [], "only_type": [], "preserve_name": true}`))
	if err != nil {
		t.Fatal(err)
	}
	if s.DateType != "a" || !s.PreserveName || len(s.ExcludeType) != 0 || len(s.OnlyType) != 0 {
		t.Errorf("settings = %+v", s)
	}
}

func TestLoadSettings(t *testing.T) {
	p := filepath.Join(t.TempDir(), "template.json")
	if err := os.WriteFile(p, []byte(template), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadSettings(p); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadSettings(p + ".missing"); !errors.Is(err, ErrConfigParse) {
		t.Errorf("missing file err = %v, want ErrConfigParse", err)
	}
}

func TestNewValidatesConfig(t *testing.T) {
	_, err := New(Config{DateFormat: "%Y", DateKind: "z"})
	if !errors.Is(err, ErrConfigParse) {
		t.Errorf("bad kind err = %v", err)
	}
	_, err = New(Config{DateFormat: "%Q", DateKind: Modified})
	if !errors.Is(err, ErrConfigParse) {
		t.Errorf("bad format err = %v", err)
	}
}

func TestDateKindString(t *testing.T) {
	if Created.String() != "created" || Accessed.String() != "accessed" || Modified.String() != "modified" {
		t.Error("unexpected DateKind names")
	}
}

package sorter

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// DateKind selects which file timestamp names the file.
type DateKind string

const (
	Accessed DateKind = "a"
	Created  DateKind = "c"
	Modified DateKind = "m"
)

func (k DateKind) String() string {
	switch k {
	case Accessed:
		return "accessed"
	case Created:
		return "created"
	case Modified:
		return "modified"
	}
	return string(k)
}

// ParseDateKind accepts the literals used by the JSON payload: "a", "c" or "m".
func ParseDateKind(s string) (DateKind, error) {
	switch k := DateKind(s); k {
	case Accessed, Created, Modified:
		return k, nil
	}
	return "", fmt.Errorf("%w: date_type must be one of \"a\", \"c\", \"m\", got %q", ErrConfigParse, s)
}

// Config drives one sorting run.
type Config struct {
	SourceRoot string
	TargetRoot string

	// DateFormat is a strftime pattern, e.g. "%Y-%m-%d %Hh%Mm%Ss".
	DateFormat   string
	DateKind     DateKind
	PreserveName bool

	// Extensions are compared verbatim, without the leading dot. A non-empty
	// OnlyExtensions makes ExcludeExtensions irrelevant.
	ExcludeExtensions []string
	OnlyExtensions    []string
}

// Settings is the JSON configuration payload. Source and target directories
// are never part of it.
type Settings struct {
	DateFormat   string   `json:"date_format"`
	DateType     string   `json:"date_type"`
	ExcludeType  []string `json:"exclude_type"`
	OnlyType     []string `json:"only_type"`
	PreserveName bool     `json:"preserve_name"`
}

// DefaultSettings is what the CLI uses when no settings file is given.
func DefaultSettings() *Settings {
	return &Settings{
		DateFormat:  "%Y-%m-%d %Hh%Mm%Ss",
		DateType:    string(Modified),
		ExcludeType: []string{},
		OnlyType:    []string{},
	}
}

// settingsPayload mirrors Settings with pointers so absent keys can be told
// apart from zero values.
type settingsPayload struct {
	DateFormat   *string   `json:"date_format"`
	DateType     *string   `json:"date_type"`
	ExcludeType  *[]string `json:"exclude_type"`
	OnlyType     *[]string `json:"only_type"`
	PreserveName *bool     `json:"preserve_name"`
}

// ParseSettings decodes a JSON payload. Every key is required; a missing or
// null one is ErrConfigParse.
func ParseSettings(data []byte) (*Settings, error) {
	var p settingsPayload
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}
	var missing []string
	if p.DateFormat == nil {
		missing = append(missing, "date_format")
	}
	if p.DateType == nil {
		missing = append(missing, "date_type")
	}
	if p.ExcludeType == nil {
		missing = append(missing, "exclude_type")
	}
	if p.OnlyType == nil {
		missing = append(missing, "only_type")
	}
	if p.PreserveName == nil {
		missing = append(missing, "preserve_name")
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: missing %s", ErrConfigParse, strings.Join(missing, ", "))
	}
	s := &Settings{
		DateFormat:   *p.DateFormat,
		DateType:     *p.DateType,
		ExcludeType:  *p.ExcludeType,
		OnlyType:     *p.OnlyType,
		PreserveName: *p.PreserveName,
	}
	if _, err := ParseDateKind(s.DateType); err != nil {
		return nil, err
	}
	return s, nil
}

func LoadSettings(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: reading %s: %v", ErrConfigParse, path, err)
	}
	s, err := ParseSettings(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Config combines the payload with the directories supplied by the caller.
func (s *Settings) Config(source, target string) (Config, error) {
	kind, err := ParseDateKind(s.DateType)
	if err != nil {
		return Config{}, err
	}
	return Config{
		SourceRoot:        source,
		TargetRoot:        target,
		DateFormat:        s.DateFormat,
		DateKind:          kind,
		PreserveName:      s.PreserveName,
		ExcludeExtensions: s.ExcludeType,
		OnlyExtensions:    s.OnlyType,
	}, nil
}

package sorter

import "testing"

func TestExtensionAndStem(t *testing.T) {
	tests := []struct {
		path, ext, stem string
	}{
		{"test.jpg", "jpg", "test"},
		{"dir/test", "", "test"},
		{"archive.tar.gz", "gz", "archive.tar"},
		{"Photo.JPG", "JPG", "Photo"},
		{"trailing.", "", "trailing"},
		{".bashrc", "", ".bashrc"},
		{"a/b.c/file", "", "file"},
	}
	for _, tt := range tests {
		if got := Extension(tt.path); got != tt.ext {
			t.Errorf("Extension(%q) = %q, want %q", tt.path, got, tt.ext)
		}
		if got := Stem(tt.path); got != tt.stem {
			t.Errorf("Stem(%q) = %q, want %q", tt.path, got, tt.stem)
		}
	}
}

func TestFilterEligible(t *testing.T) {
	tests := []struct {
		name          string
		exclude, only []string
		path          string
		want          bool
	}{
		{"no rules", nil, nil, "a.txt", true},
		{"excluded", []string{"txt"}, nil, "a.txt", false},
		{"not excluded", []string{"txt"}, nil, "a.jpg", true},
		{"case sensitive", []string{"txt"}, nil, "a.TXT", true},
		{"only match", nil, []string{"jpg"}, "a.jpg", true},
		{"only miss", nil, []string{"jpg"}, "a.png", false},
		{"only overrides exclude", []string{"jpg"}, []string{"jpg"}, "a.jpg", true},
		{"exclude ignored with only", []string{"png"}, []string{"jpg"}, "a.png", false},
		{"exclude ignored with only, other ext", []string{"txt"}, []string{"jpg"}, "a.txt", false},
		{"empty entry matches no extension", []string{""}, nil, "README", false},
		{"empty only entry", nil, []string{""}, "README", true},
		{"no extension kept by default", []string{"txt"}, nil, "README", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewFilter(tt.exclude, tt.only)
			if got := f.Eligible(tt.path); got != tt.want {
				t.Errorf("Eligible(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestFilterString(t *testing.T) {
	if got := NewFilter([]string{"b", "a"}, nil).String(); got != "excluding [a, b]" {
		t.Errorf("got %q", got)
	}
	if got := NewFilter([]string{"b"}, []string{"png", "jpg"}).String(); got != "only [jpg, png]" {
		t.Errorf("got %q", got)
	}
	if got := NewFilter(nil, nil).String(); got != "all files" {
		t.Errorf("got %q", got)
	}
}

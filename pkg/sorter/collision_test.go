package sorter

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSuffixed(t *testing.T) {
	tests := []struct {
		path string
		n    int
		want string
	}{
		{"t/2022/01/2022 test.jpg", 2, "t/2022/01/2022 test_2.jpg"},
		{"t/2022/01/2022 test.", 2, "t/2022/01/2022 test_2."},
		{"t/2022.01/2022.01.05.png", 3, "t/2022.01/2022.01.05_3.png"},
		{"t/noext", 4, "t/noext_4"},
	}
	for _, tt := range tests {
		in := filepath.FromSlash(tt.path)
		want := filepath.FromSlash(tt.want)
		if got := Suffixed(in, tt.n); got != want {
			t.Errorf("Suffixed(%q, %d) = %q, want %q", in, tt.n, got, want)
		}
	}
}

func TestClaimNumbersRepeatsFromTwo(t *testing.T) {
	a := NewAssignments(false)
	var got []string
	for i := 0; i < 4; i++ {
		got = append(got, a.Claim("out/2022 x.jpg"))
	}
	want := []string{"out/2022 x.jpg", "out/2022 x_2.jpg", "out/2022 x_3.jpg", "out/2022 x_4.jpg"}
	if !sliceEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
	if a.Len() != 4 {
		t.Errorf("Len = %d, want 4", a.Len())
	}
}

func TestClaimSkipsNaturallyTakenSuffix(t *testing.T) {
	a := NewAssignments(false)
	a.Claim("o/x.jpg")
	a.Claim("o/x_2.jpg")
	if got := a.Claim("o/x.jpg"); got != "o/x_3.jpg" {
		t.Errorf("got %q, want o/x_3.jpg", got)
	}
}

func TestClaimDistinctCandidatesUnchanged(t *testing.T) {
	a := NewAssignments(false)
	for _, c := range []string{"o/a.jpg", "o/a.png", "o/a.", "o/b.jpg"} {
		if got := a.Claim(c); got != c {
			t.Errorf("Claim(%q) = %q", c, got)
		}
	}
}

func TestClaimOnDisk(t *testing.T) {
	dir := t.TempDir()
	existing := filepath.Join(dir, "2022 x.jpg")
	if err := os.WriteFile(existing, nil, 0644); err != nil {
		t.Fatal(err)
	}

	if got := NewAssignments(false).Claim(existing); got != existing {
		t.Errorf("in-plan only: got %q, want %q", got, existing)
	}
	want := filepath.Join(dir, "2022 x_2.jpg")
	if got := NewAssignments(true).Claim(existing); got != want {
		t.Errorf("on disk: got %q, want %q", got, want)
	}
}

package source

import "testing"

func TestNewLocNormalizesFilename(t *testing.T) {
	tests := []struct {
		filename string
		want     string
	}{
		{"./foo/bar.h", "foo/bar.h"},
		{"foo/bar.h", "foo/bar.h"},
		{".hidden/bar.h", ".hidden/bar.h"},
	}

	for _, tt := range tests {
		loc := NewLoc(tt.filename, 1, 1)
		if loc.Filename != tt.want {
			t.Errorf("NewLoc(%q).Filename = %q, want %q", tt.filename, loc.Filename, tt.want)
		}
	}
}

func TestLocInvalid(t *testing.T) {
	if !(Loc{}).Invalid() {
		t.Errorf("zero Loc should be invalid")
	}
	if NewLoc("a.h", 1, 1).Invalid() {
		t.Errorf("Loc with position should not be invalid")
	}
}

func TestLocString(t *testing.T) {
	loc := NewLoc("foo.h", 3, 7)
	if got, want := loc.String(), "foo.h:3:7"; got != want {
		t.Errorf("Loc.String() = %q, want %q", got, want)
	}
}

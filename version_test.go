package tablefield

import "testing"

func TestVersion_EmbeddedFileIsSemver(t *testing.T) {
	if !VersionIsSemver() {
		t.Fatalf("VERSION must hold a semver release: got %q", Version())
	}
}

func TestVersionLine(t *testing.T) {
	if got, want := VersionTag(), "v"+Version(); got != want {
		t.Fatalf("tag: got %q, want %q", got, want)
	}
	if got, want := VersionLine(), "tablefield v"+Version(); got != want {
		t.Fatalf("line: got %q, want %q", got, want)
	}
}

func TestIsSemver(t *testing.T) {
	for v, want := range map[string]bool{
		"0.1.0":         true,
		" 0.1.0\n":      true,
		"1.2.3-alpha.1": true,
		"2.0.0+build.7": true,
		"v1.2.3":        false,
		"1.2":           false,
		"01.2.3":        false,
		"":              false,
	} {
		if got := IsSemver(v); got != want {
			t.Fatalf("IsSemver(%q): got %v, want %v", v, got, want)
		}
	}
}

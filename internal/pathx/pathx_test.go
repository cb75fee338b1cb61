package pathx

import (
	"path/filepath"
	"testing"
)

func TestIsURL(t *testing.T) {
	tests := []struct {
		p    string
		want bool
	}{
		{"http://example.com/a.js", true},
		{"https://example.com/a.js", true},
		{"webpack://src/index.js", true},
		{"file:///tmp/a.js", true},
		{"src/a.js", false},
		{"../a.js", false},
		{"/abs/a.js", false},
		{"C:/windows/style.css", false},
		{"", false},
	}
	for _, test := range tests {
		if got := IsURL(test.p); got != test.want {
			t.Errorf("Got: IsURL(%q) = %v. Want: %v.", test.p, got, test.want)
		}
	}
}

func TestRel(t *testing.T) {
	from := filepath.FromSlash("/work/out")
	to := filepath.FromSlash("/work/src/a.js")
	if got, want := Rel(from, to), "../src/a.js"; got != want {
		t.Errorf("Got: %q. Want: %q.", got, want)
	}
}

func TestResolve(t *testing.T) {
	base := filepath.FromSlash("/work")
	got := Resolve(base, "", "src", "../lib/a.js")
	want := filepath.FromSlash("/work/lib/a.js")
	if got != want {
		t.Errorf("Got: %q. Want: %q.", got, want)
	}

	if got, want := Resolve(base), base; got != want {
		t.Errorf("Got: %q. Want: base unchanged, %q.", got, want)
	}
}

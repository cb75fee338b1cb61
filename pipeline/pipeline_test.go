package pipeline

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

type fakeStage struct {
	name string
	fn   func(f *File) ([]*File, error)
}

func (s *fakeStage) Name() string { return s.name }

func (s *fakeStage) Transform(f *File) ([]*File, error) { return s.fn(f) }

func TestFileRelative(t *testing.T) {
	base := filepath.FromSlash("/work/src")
	f := &File{Path: filepath.Join(base, "a", "b.js"), Base: base}
	if got, want := f.Relative(), "a/b.js"; got != want {
		t.Errorf("Got: relative path %q. Want: %q.", got, want)
	}
}

func TestFileBuffered(t *testing.T) {
	f := &File{Contents: Buffer("abc")}
	b, ok := f.Buffered()
	if !ok || string(b) != "abc" {
		t.Errorf("Got: %q, %v. Want: buffered content %q.", b, ok, "abc")
	}

	f = &File{Contents: Stream{}}
	if _, ok := f.Buffered(); ok {
		t.Error("Got: streamed content reported as buffered. Want: not buffered.")
	}

	f = &File{}
	if _, ok := f.Buffered(); ok {
		t.Error("Got: absent content reported as buffered. Want: not buffered.")
	}
}

func TestRunChainsStages(t *testing.T) {
	upper := &fakeStage{name: "upper", fn: func(f *File) ([]*File, error) {
		b, _ := f.Buffered()
		f.Contents = Buffer(strings.ToUpper(string(b)))
		return []*File{f}, nil
	}}
	fanout := &fakeStage{name: "fanout", fn: func(f *File) ([]*File, error) {
		twin := &File{Path: f.Path + ".map", Base: f.Base, Contents: Buffer("{}")}
		return []*File{f, twin}, nil
	}}

	out, err := Run([]*File{{Path: "/a.js", Base: "/", Contents: Buffer("hi")}}, upper, fanout)
	if err != nil {
		t.Fatalf("Got: unexpected error: %s. Want: no error.", err)
	}
	var paths []string
	for _, f := range out {
		paths = append(paths, f.Path)
	}
	if diff := cmp.Diff([]string{"/a.js", "/a.js.map"}, paths); diff != "" {
		t.Errorf("Emitted paths differ from expected (-want,+got):\n%s", diff)
	}
	b, _ := out[0].Buffered()
	if got, want := string(b), "HI"; got != want {
		t.Errorf("Got: content %q. Want: %q.", got, want)
	}
}

func TestRunIsolatesFailingFiles(t *testing.T) {
	boom := errors.New("boom")
	flaky := &fakeStage{name: "flaky", fn: func(f *File) ([]*File, error) {
		if f.Path == "/bad.js" {
			return nil, boom
		}
		return []*File{f}, nil
	}}

	files := []*File{
		{Path: "/good.js", Base: "/", Contents: Buffer("a")},
		{Path: "/bad.js", Base: "/", Contents: Buffer("b")},
		{Path: "/fine.js", Base: "/", Contents: Buffer("c")},
	}
	out, err := Run(files, flaky)
	if err == nil {
		t.Fatal("Got: no error. Want: the bad file's error surfaced.")
	}
	if !errors.Is(err, boom) {
		t.Errorf("Got: error %q. Want: it to wrap the original failure.", err)
	}
	if len(out) != 2 {
		t.Errorf("Got: %d emitted files. Want: 2 (the files that did not fail).", len(out))
	}
}

func TestSourceMapClone(t *testing.T) {
	content := "text"
	m := &SourceMap{
		Version:        3,
		File:           "a.js",
		Sources:        []string{"a.js", "http://example.com/b.js"},
		SourcesContent: []*string{&content, nil},
		Names:          []string{"x"},
		Mappings:       "AAAA",
	}
	c := m.Clone()
	if diff := cmp.Diff(m, c); diff != "" {
		t.Fatalf("Clone differs from original (-want,+got):\n%s", diff)
	}
	*c.SourcesContent[0] = "changed"
	c.Sources[0] = "changed.js"
	if *m.SourcesContent[0] != "text" || m.Sources[0] != "a.js" {
		t.Error("Got: mutation of the clone visible in the original. Want: deep copy.")
	}
}

func ExampleRun() {
	rename := &fakeStage{name: "rename", fn: func(f *File) ([]*File, error) {
		f.Path = f.Path + ".out"
		return []*File{f}, nil
	}}
	out, _ := Run([]*File{{Path: "/x", Base: "/", Contents: Buffer("")}}, rename)
	fmt.Println(out[0].Path)
	// Output: /x.out
}

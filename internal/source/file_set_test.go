package source

import (
	"testing"
)

func TestResolveLineCol(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("CMakeLists.txt", []byte("project(Foo)\nadd_library(bar\n    STATIC)\n"))
	f := fs.Get(id)

	tests := []struct {
		off  uint32
		line uint32
		col  uint32
	}{
		{0, 1, 1},   // 'p'
		{8, 1, 9},   // 'F'
		{13, 2, 1},  // 'a'
		{25, 2, 13}, // 'b'
		{29, 3, 1},  // leading space
		{33, 3, 5},  // 'S'
	}
	for _, tt := range tests {
		got := toLineCol(f.Content, f.LineIdx, tt.off)
		if got.Line != tt.line || got.Col != tt.col {
			t.Errorf("offset %d: got %d:%d, want %d:%d", tt.off, got.Line, got.Col, tt.line, tt.col)
		}
	}
}

func TestResolveColumnsCountCharacters(t *testing.T) {
	fs := NewFileSet()
	// 'é' is two bytes; the arguments start at byte 5 but column 5 too.
	id := fs.AddVirtual("CMakeLists.txt", []byte("set(é FOO)\n"))
	f := fs.Get(id)

	got := toLineCol(f.Content, f.LineIdx, 7) // byte offset of 'F'
	if got.Line != 1 || got.Col != 7 {
		t.Errorf("got %d:%d, want 1:7", got.Line, got.Col)
	}
	start, end := fs.Resolve(Span{File: id, Start: 7, End: 10})
	if start.Col != 7 || end.Col != 10 {
		t.Errorf("span cols = %d-%d, want 7-10", start.Col, end.Col)
	}
}

func TestGetLine(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("test.cmake", []byte("first\nsecond\nthird"))
	f := fs.Get(id)

	if got := f.GetLine(1); got != "first" {
		t.Errorf("line 1: got %q", got)
	}
	if got := f.GetLine(2); got != "second" {
		t.Errorf("line 2: got %q", got)
	}
	if got := f.GetLine(3); got != "third" {
		t.Errorf("line 3: got %q", got)
	}
	if got := f.GetLine(4); got != "" {
		t.Errorf("line 4: got %q, want empty", got)
	}
	if got := f.GetLine(0); got != "" {
		t.Errorf("line 0: got %q, want empty", got)
	}
}

func TestLineCount(t *testing.T) {
	fs := NewFileSet()
	withNL := fs.Get(fs.AddVirtual("a.cmake", []byte("one\ntwo\n")))
	if got := withNL.LineCount(); got != 2 {
		t.Errorf("trailing newline: got %d lines, want 2", got)
	}
	withoutNL := fs.Get(fs.AddVirtual("b.cmake", []byte("one\ntwo")))
	if got := withoutNL.LineCount(); got != 2 {
		t.Errorf("no trailing newline: got %d lines, want 2", got)
	}
	empty := fs.Get(fs.AddVirtual("c.cmake", nil))
	if got := empty.LineCount(); got != 1 {
		t.Errorf("empty file: got %d lines, want 1", got)
	}
}

func TestNormalizeNewlines(t *testing.T) {
	// CRLF and lone CR both become \n.
	out, changed := normalizeNewlines([]byte("a\r\nb\rc\n"))
	if !changed {
		t.Fatal("expected change flag")
	}
	if string(out) != "a\nb\nc\n" {
		t.Errorf("got %q", out)
	}

	out, changed = normalizeNewlines([]byte("plain\n"))
	if changed {
		t.Fatal("unexpected change flag")
	}
	if string(out) != "plain\n" {
		t.Errorf("got %q", out)
	}
}

func TestLoneCRLineIndex(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("mac.cmake", []byte("one\rtwo\rthree"))
	f := fs.Get(id)
	if got := f.LineCount(); got != 3 {
		t.Fatalf("lines = %d, want 3", got)
	}
	if got := f.GetLine(2); got != "two" {
		t.Errorf("line 2 = %q", got)
	}
}

func TestSpanCover(t *testing.T) {
	a := Span{File: 1, Start: 5, End: 10}
	b := Span{File: 1, Start: 2, End: 7}
	c := a.Cover(b)
	if c.Start != 2 || c.End != 10 {
		t.Errorf("cover: got %v", c)
	}
	other := Span{File: 2, Start: 0, End: 100}
	if got := a.Cover(other); got != a {
		t.Errorf("cross-file cover changed span: %v", got)
	}
}

func TestDecodeUTF16(t *testing.T) {
	// "ok" in UTF-16 LE with BOM.
	le := []byte{0xFF, 0xFE, 'o', 0x00, 'k', 0x00}
	out, was, err := decodeUTF16(le)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !was {
		t.Fatal("expected UTF-16 detection")
	}
	if string(out) != "ok" {
		t.Errorf("got %q", out)
	}

	plain := []byte("project(Foo)")
	out, was, err = decodeUTF16(plain)
	if err != nil || was {
		t.Fatalf("plain input misdetected: %v %v", was, err)
	}
	if string(out) != "project(Foo)" {
		t.Errorf("got %q", out)
	}
}

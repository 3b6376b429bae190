package diag

import (
	"strings"
	"testing"

	"cmakecheck/internal/source"
)

func mkDiag(file source.FileID, start, end uint32, code Code, msg string) Diagnostic {
	return Diagnostic{
		Severity: SevError,
		Code:     code,
		Message:  msg,
		Primary:  source.Span{File: file, Start: start, End: end},
	}
}

func TestBagLimit(t *testing.T) {
	b := NewBag(2)
	if !b.Add(mkDiag(0, 0, 1, LntMinimumVersion, "a")) {
		t.Fatal("first add should be stored")
	}
	if !b.Add(mkDiag(0, 1, 2, LntProjectVersion, "b")) {
		t.Fatal("second add should be stored")
	}
	if b.Add(mkDiag(0, 2, 3, LntTargetScope, "c")) {
		t.Fatal("third add should be dropped")
	}
	if b.Len() != 2 {
		t.Fatalf("Len = %d, want 2", b.Len())
	}
	if b.Total() != 3 {
		t.Fatalf("Total = %d, want 3", b.Total())
	}
	if !b.Truncated() {
		t.Fatal("expected Truncated")
	}
}

func TestBagUnlimited(t *testing.T) {
	b := NewBag(0)
	for i := uint32(0); i < 100; i++ {
		b.Add(mkDiag(0, i, i+1, LntRpath, "x"))
	}
	if b.Len() != 100 || b.Total() != 100 || b.Truncated() {
		t.Fatalf("Len=%d Total=%d Truncated=%v", b.Len(), b.Total(), b.Truncated())
	}
}

func TestBagMergeHonorsLimit(t *testing.T) {
	dst := NewBag(3)
	dst.Add(mkDiag(0, 0, 1, LntPIC, "a"))

	src := NewBag(0)
	src.Add(mkDiag(1, 0, 1, LntPIC, "b"))
	src.Add(mkDiag(1, 1, 2, LntPIC, "c"))
	src.Add(mkDiag(1, 2, 3, LntPIC, "d"))

	dst.Merge(src)
	if dst.Len() != 3 {
		t.Fatalf("Len = %d, want 3", dst.Len())
	}
	if dst.Total() != 4 {
		t.Fatalf("Total = %d, want 4", dst.Total())
	}
}

func TestBagSortOrder(t *testing.T) {
	b := NewBag(0)
	b.Add(mkDiag(1, 5, 6, LntRpath, "later file"))
	b.Add(mkDiag(0, 9, 10, LntRpath, "first file, later offset"))
	b.Add(mkDiag(0, 2, 4, LntProjectVersion, "first file, early offset"))
	b.Sort()

	got := b.Items()
	if got[0].Message != "first file, early offset" {
		t.Fatalf("got[0] = %q", got[0].Message)
	}
	if got[1].Message != "first file, later offset" {
		t.Fatalf("got[1] = %q", got[1].Message)
	}
	if got[2].Message != "later file" {
		t.Fatalf("got[2] = %q", got[2].Message)
	}
}

func TestBagFilter(t *testing.T) {
	b := NewBag(0)
	b.Add(mkDiag(0, 0, 1, LntRpath, "keep"))
	b.Add(mkDiag(0, 5, 6, LntPIC, "drop"))
	removed := b.Filter(func(d *Diagnostic) bool { return d.Code != LntPIC })
	if removed != 1 || b.Len() != 1 {
		t.Fatalf("removed=%d Len=%d", removed, b.Len())
	}
	if b.Items()[0].Message != "keep" {
		t.Fatalf("kept %q", b.Items()[0].Message)
	}
}

func TestFormatShort(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("CMakeLists.txt", []byte("set(CMAKE_CXX_STANDARD 17)\n"))

	d := mkDiag(id, 4, 22, LntLanguageStandard, "avoid setting the language standard directly")
	out := FormatShortDiagnostics(fs, []Diagnostic{d})
	want := "error LNT3007 CMakeLists.txt:1:5 avoid setting the language standard directly\n"
	if out != want {
		t.Fatalf("short format:\n got %q\nwant %q", out, want)
	}
}

func TestCodeIDs(t *testing.T) {
	cases := []struct {
		code Code
		id   string
	}{
		{LexUnterminatedString, "LEX1001"},
		{SynUnbalancedParen, "SYN2001"},
		{LntLanguageStandard, "LNT3007"},
		{IOLoadFileError, "IO4001"},
	}
	for _, tc := range cases {
		if got := tc.code.ID(); got != tc.id {
			t.Errorf("ID(%d) = %q, want %q", tc.code, got, tc.id)
		}
	}
	if !LexUnterminatedString.IsParseError() {
		t.Error("LEX1001 should be a parse error")
	}
	if LntRpath.IsParseError() {
		t.Error("LNT3004 is not a parse error")
	}
}

func TestLinkDescription(t *testing.T) {
	cases := []struct {
		uri  string
		desc string
	}{
		{"https://cmake.org/cmake/help/latest/command/target_include_directories.html", "target_include_directories()"},
		{"https://cmake.org/cmake/help/latest/command/project.html", "project()"},
		{"https://cmake.org/cmake/help/latest/variable/CMAKE_CXX_STANDARD.html", "CMAKE_CXX_STANDARD"},
		{"https://example.com/page", ""},
	}
	for _, tc := range cases {
		l := NewLink(tc.uri)
		if l.Description != tc.desc {
			t.Errorf("NewLink(%q).Description = %q, want %q", tc.uri, l.Description, tc.desc)
		}
	}
	if s := NewLinkDesc("https://x.test/a", "thing").String(); !strings.HasPrefix(s, "thing: ") {
		t.Errorf("String() = %q", s)
	}
}

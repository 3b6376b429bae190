package source

import (
	"crypto/sha256"
	"fmt"
	"os"
	"path/filepath"

	"fortio.org/safecast"
)

// FileSet manages a collection of source files and resolves spans to
// line/column positions.
type FileSet struct {
	files   []File
	index   map[string]FileID // path -> id
	baseDir string            // base directory for relative path display
}

// NewFileSet creates a new empty FileSet.
func NewFileSet() *FileSet {
	return &FileSet{
		files: make([]File, 0),
		index: make(map[string]FileID),
	}
}

// NewFileSetWithBase creates a FileSet with the given base directory.
func NewFileSetWithBase(baseDir string) *FileSet {
	return &FileSet{
		files:   make([]File, 0),
		index:   make(map[string]FileID),
		baseDir: baseDir,
	}
}

// BaseDir returns the base directory, falling back to the working directory.
func (fileSet *FileSet) BaseDir() string {
	if fileSet.baseDir == "" {
		if wd, err := os.Getwd(); err == nil {
			return wd
		}
	}
	return fileSet.baseDir
}

// Add stores a file from normalized bytes, computes LineIdx and Hash, and
// returns a new FileID.
func (fileSet *FileSet) Add(path string, content []byte, flags FileFlags) FileID {
	hash := sha256.Sum256(content)
	lineIdx := buildLineIndex(content)
	normalizedPath := normalizePath(path)

	lenFiles, err := safecast.Conv[uint32](len(fileSet.files))
	if err != nil {
		panic(fmt.Errorf("len files overflow: %w", err))
	}
	id := FileID(lenFiles)
	fileSet.files = append(fileSet.files, File{
		ID:      id,
		Path:    normalizedPath,
		Content: content,
		LineIdx: lineIdx,
		Hash:    hash,
		Flags:   flags,
	})
	fileSet.index[normalizedPath] = id
	return id
}

// Load reads a script from disk, normalizes encoding (UTF-16 BOM, UTF-8 BOM,
// CRLF), and calls Add.
func (fileSet *FileSet) Load(path string) (FileID, error) {
	// #nosec G304 -- path is provided by the caller
	content, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}

	flags := FileFlags(0)
	content, wasUTF16, err := decodeUTF16(content)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", path, err)
	}
	if wasUTF16 {
		flags |= FileDecodedUTF16
	}

	content, hadBOM := removeBOM(content)
	content, hadCRLF := normalizeNewlines(content)

	if hadBOM {
		flags |= FileHadBOM
	}
	if hadCRLF {
		flags |= FileNormalizedCRLF
	}
	return fileSet.Add(path, content, flags), nil
}

// AddVirtual adds an in-memory file (test, stdin) with the FileVirtual flag.
func (fileSet *FileSet) AddVirtual(name string, content []byte) FileID {
	content, hadCRLF := normalizeNewlines(content)
	flags := FileVirtual
	if hadCRLF {
		flags |= FileNormalizedCRLF
	}
	return fileSet.Add(name, content, flags)
}

// Get returns the file metadata for the given ID.
func (fileSet *FileSet) Get(id FileID) *File {
	return &fileSet.files[id]
}

// GetByPath returns the file for a path, if it was loaded into this FileSet.
func (fileSet *FileSet) GetByPath(path string) (*File, bool) {
	if id, ok := fileSet.index[normalizePath(path)]; ok {
		return &fileSet.files[id], true
	}
	return nil, false
}

// Len returns the number of files in the set.
func (fileSet *FileSet) Len() int {
	return len(fileSet.files)
}

// Resolve converts a span into start and end line/column positions.
// Columns are 1-based character counts within the line.
func (fileSet *FileSet) Resolve(span Span) (start, end LineCol) {
	f := fileSet.files[span.File]
	return toLineCol(f.Content, f.LineIdx, span.Start), toLineCol(f.Content, f.LineIdx, span.End)
}

// LineCount returns the number of physical lines in the file.
func (f *File) LineCount() uint32 {
	lenIdx, err := safecast.Conv[uint32](len(f.LineIdx))
	if err != nil {
		panic(fmt.Errorf("line index length overflow: %w", err))
	}
	if len(f.Content) == 0 {
		return 1
	}
	if f.Content[len(f.Content)-1] == '\n' {
		return lenIdx
	}
	return lenIdx + 1
}

// GetLine returns the line with the given 1-based number, without its
// trailing newline. Missing lines yield "".
func (f *File) GetLine(lineNum uint32) string {
	if lineNum == 0 {
		return ""
	}

	var start, end, lenLineIdx, lenContent uint32
	var err error
	lenLineIdx, err = safecast.Conv[uint32](len(f.LineIdx))
	if err != nil {
		panic(fmt.Errorf("line index length overflow: %w", err))
	}
	lenContent, err = safecast.Conv[uint32](len(f.Content))
	if err != nil {
		panic(fmt.Errorf("content length overflow: %w", err))
	}

	switch {
	case lineNum == 1:
		start = 0
	case (lineNum - 2) < lenLineIdx:
		start = f.LineIdx[lineNum-2] + 1
	default:
		return ""
	}

	if (lineNum - 1) < lenLineIdx {
		end = f.LineIdx[lineNum-1]
	} else {
		end = lenContent
	}

	if start >= lenContent {
		return ""
	}
	if end > lenContent {
		end = lenContent
	}

	return string(f.Content[start:end])
}

// FormatPath formats the file path for display.
// mode: "absolute", "relative", "basename", "auto"
func (f *File) FormatPath(mode, baseDir string) string {
	switch mode {
	case "absolute":
		if abs, err := filepath.Abs(f.Path); err == nil {
			return filepath.ToSlash(abs)
		}
		return f.Path

	case "relative":
		if baseDir == "" {
			if wd, err := os.Getwd(); err == nil {
				baseDir = wd
			}
		}
		if rel, err := filepath.Rel(baseDir, f.Path); err == nil {
			return filepath.ToSlash(rel)
		}
		return f.Path

	case "basename":
		return filepath.Base(f.Path)

	case "auto":
		// Short or relative paths as-is, otherwise basename.
		if len(f.Path) < 40 || !filepath.IsAbs(f.Path) {
			return f.Path
		}
		return filepath.Base(f.Path)

	default:
		return f.Path
	}
}

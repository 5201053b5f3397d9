package source

import (
	"crypto/sha256"
	"fmt"
	"os"
	"path/filepath"

	"fortio.org/safecast"
)

// FileSet owns every file of a compilation and resolves spans into
// line/column positions.
type FileSet struct {
	files   []File
	index   map[string]FileID
	baseDir string
}

// NewFileSet creates an empty FileSet whose relative paths are computed
// against the working directory.
func NewFileSet() *FileSet {
	return NewFileSetWithBase("")
}

// NewFileSetWithBase creates an empty FileSet rooted at baseDir.
func NewFileSetWithBase(baseDir string) *FileSet {
	return &FileSet{
		files:   make([]File, 0, 4),
		index:   make(map[string]FileID),
		baseDir: baseDir,
	}
}

// BaseDir returns the directory used for relative paths.
func (fileSet *FileSet) BaseDir() string {
	if fileSet.baseDir == "" {
		if wd, err := os.Getwd(); err == nil {
			return wd
		}
	}
	return fileSet.baseDir
}

// Len reports how many files were added.
func (fileSet *FileSet) Len() int {
	return len(fileSet.files)
}

// Add stores already normalized content and returns a fresh FileID.
// Adding the same path twice creates a new version; GetLatest returns it.
func (fileSet *FileSet) Add(path string, content []byte, flags FileFlags) FileID {
	n, err := safecast.Conv[uint32](len(fileSet.files))
	if err != nil {
		panic(fmt.Errorf("file count overflow: %w", err))
	}
	if _, err := safecast.Conv[uint32](len(content)); err != nil {
		panic(fmt.Errorf("file %s is too large: %w", path, err))
	}
	id := FileID(n)
	p := normalizePath(path)
	fileSet.files = append(fileSet.files, File{
		ID:      id,
		Path:    p,
		Content: content,
		LineIdx: buildLineIndex(content),
		Hash:    sha256.Sum256(content),
		Flags:   flags,
	})
	fileSet.index[p] = id
	return id
}

// Load reads path from disk and normalizes BOM, CRLF and Unicode
// composition before adding it.
func (fileSet *FileSet) Load(path string) (FileID, error) {
	// #nosec G304 -- path is provided by the caller
	content, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}
	content, flags := Normalize(content)
	return fileSet.Add(path, content, flags), nil
}

// AddVirtual adds in-memory content (tests, stdin) after normalizing it
// the same way Load does.
func (fileSet *FileSet) AddVirtual(name string, content []byte) FileID {
	content, flags := Normalize(content)
	return fileSet.Add(name, content, flags|FileVirtual)
}

// Normalize strips a UTF-8 BOM, folds CRLF to LF and composes the text
// to NFC. The returned flags describe what changed.
func Normalize(content []byte) ([]byte, FileFlags) {
	var flags FileFlags
	content, hadBOM := removeBOM(content)
	if hadBOM {
		flags |= FileHadBOM
	}
	content, hadCRLF := normalizeCRLF(content)
	if hadCRLF {
		flags |= FileNormalizedCRLF
	}
	content, changed := normalizeNFC(content)
	if changed {
		flags |= FileNormalizedNFC
	}
	return content, flags
}

// Get returns the file with the given id. The id must come from this set.
func (fileSet *FileSet) Get(id FileID) *File {
	return &fileSet.files[id]
}

// GetLatest returns the newest id registered for path.
func (fileSet *FileSet) GetLatest(path string) (FileID, bool) {
	id, ok := fileSet.index[normalizePath(path)]
	return id, ok
}

// Resolve converts both ends of span into line/column pairs.
func (fileSet *FileSet) Resolve(span Span) (start, end LineCol) {
	f := &fileSet.files[span.File]
	return toLineCol(f.LineIdx, span.Start), toLineCol(f.LineIdx, span.End)
}

// Line returns the 1-based line number of the span start.
func (fileSet *FileSet) Line(span Span) int {
	start, _ := fileSet.Resolve(span)
	return int(start.Line)
}

// GetLine returns the text of line lineNum (1-based) without its newline.
func (f *File) GetLine(lineNum uint32) string {
	if lineNum == 0 {
		return ""
	}
	size, err := safecast.Conv[uint32](len(f.Content))
	if err != nil {
		panic(fmt.Errorf("content length overflow: %w", err))
	}
	lines := uint32(len(f.LineIdx))
	if lineNum > lines+1 {
		return ""
	}
	var start uint32
	if lineNum > 1 {
		start = f.LineIdx[lineNum-2] + 1
	}
	end := size
	if lineNum <= lines {
		end = f.LineIdx[lineNum-1]
	}
	if start > size {
		return ""
	}
	return string(f.Content[start:end])
}

// FormatPath renders the file path. mode is one of "absolute",
// "relative", "basename" or "auto".
func (f *File) FormatPath(mode, baseDir string) string {
	switch mode {
	case "absolute":
		if abs, err := filepath.Abs(f.Path); err == nil {
			return normalizePath(abs)
		}
	case "relative":
		if f.Flags&FileVirtual != 0 {
			return f.Path
		}
		if baseDir == "" {
			if wd, err := os.Getwd(); err == nil {
				baseDir = wd
			}
		}
		if rel, err := RelativePath(f.Path, baseDir); err == nil {
			return rel
		}
	case "basename":
		return filepath.Base(f.Path)
	case "auto":
		if len(f.Path) >= 40 && filepath.IsAbs(f.Path) {
			return filepath.Base(f.Path)
		}
	}
	return f.Path
}

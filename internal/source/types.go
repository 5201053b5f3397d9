package source

type (
	// FileID uniquely identifies a source file within a FileSet.
	FileID uint32
	// FileFlags records how the content of a file was normalized on load.
	FileFlags uint8
)

const (
	// FileVirtual marks content that did not come from disk (tests, stdin).
	FileVirtual FileFlags = 1 << iota
	FileHadBOM
	FileNormalizedCRLF
	FileNormalizedNFC
)

// File is a single loaded source text with its line index.
type File struct {
	ID      FileID
	Path    string
	Content []byte
	// LineIdx holds the byte offset of every '\n' in Content.
	LineIdx []uint32
	Hash    [32]byte
	Flags   FileFlags
}

// LineCol is a 1-based human position.
type LineCol struct {
	Line uint32
	Col  uint32
}

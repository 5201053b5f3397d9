package source

import (
	"bytes"
	"path/filepath"

	"golang.org/x/text/unicode/norm"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// normalizeCRLF rewrites every "\r\n" to "\n". Lone '\r' bytes are kept.
func normalizeCRLF(content []byte) ([]byte, bool) {
	if !bytes.Contains(content, []byte("\r\n")) {
		return content, false
	}
	return bytes.ReplaceAll(content, []byte("\r\n"), []byte("\n")), true
}

func removeBOM(content []byte) ([]byte, bool) {
	if bytes.HasPrefix(content, utf8BOM) {
		return content[len(utf8BOM):], true
	}
	return content, false
}

// normalizeNFC composes the text so that identical identifiers typed with
// different combining sequences produce identical bytes.
func normalizeNFC(content []byte) ([]byte, bool) {
	if norm.NFC.IsNormal(content) {
		return content, false
	}
	return norm.NFC.Bytes(content), true
}

func buildLineIndex(content []byte) []uint32 {
	out := make([]uint32, 0, bytes.Count(content, []byte{'\n'}))
	for i, b := range content {
		if b == '\n' {
			out = append(out, uint32(i))
		}
	}
	return out
}

func toLineCol(lineIdx []uint32, off uint32) LineCol {
	// number of newlines strictly before off
	lo, hi := 0, len(lineIdx)
	for lo < hi {
		mid := (lo + hi) >> 1
		if lineIdx[mid] < off {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	var lineStart uint32
	if lo > 0 {
		lineStart = lineIdx[lo-1] + 1
	}
	return LineCol{Line: uint32(lo + 1), Col: off - lineStart + 1}
}

func normalizePath(p string) string {
	return filepath.ToSlash(filepath.Clean(p))
}

// RelativePath returns target relative to base. When target lies outside
// base the absolute path is returned instead of a "../" chain.
func RelativePath(target, base string) (string, error) {
	absTarget, err := filepath.Abs(target)
	if err != nil {
		return "", err
	}
	absBase, err := filepath.Abs(base)
	if err != nil {
		return "", err
	}
	rel, err := filepath.Rel(absBase, absTarget)
	if err != nil {
		return "", err
	}
	if rel == ".." || len(rel) > 2 && rel[:3] == ".."+string(filepath.Separator) {
		return normalizePath(absTarget), nil
	}
	return normalizePath(rel), nil
}

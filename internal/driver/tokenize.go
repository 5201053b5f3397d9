package driver

import "context"

// Tokenize lexes the file at path. Lexical errors land in the bag and make
// the returned error wrap ErrDiagnostics.
func Tokenize(path string, maxDiagnostics int) (*Result, error) {
	return Compile(context.Background(), path, Options{Stage: StageTokenize, MaxDiagnostics: maxDiagnostics})
}

// Parse lexes and parses the file at path.
func Parse(path string, maxDiagnostics int) (*Result, error) {
	return Compile(context.Background(), path, Options{Stage: StageParse, MaxDiagnostics: maxDiagnostics})
}

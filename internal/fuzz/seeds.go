package fuzztests

import (
	"path/filepath"
	"sort"
	"testing"

	"tinyjava/internal/testkit"
)

const maxSeedBytes = 64 << 10

// languageSeeds cover each statement form once.
var languageSeeds = []string{
	"",
	"int x = 1;\n",
	"int x;\nboolean b;\nx = 2;\n",
	"boolean b = 1 + 2 * 3 == 7;\n",
	"int x = 1;\nif (x == 1) { x = 2; } else if (x != 3) { x = 4; } else { x = 5; }\n",
	"public int add(int a, int b) { int s = a + b; return s; }\nint r = add(1, 2);\n",
	"public boolean t() { return true; }\nboolean v = t();\n",
	"int x = (1 + 2) * (3 - 4) / 5;\n",
	"if (a) if (b) { } else { }\n",
	"int x = 99999999999999999999;\n",
	"int x = 1 @ 2;\n",
	"public int f( { return 1; }\n",
	"{ int x = 1 }",
}

// addCorpusSeeds adds the inputs of the driver's markdown corpus and the
// fixed language seeds.
func addCorpusSeeds(f *testing.F) {
	for _, s := range languageSeeds {
		f.Add([]byte(s))
	}
	corpus, err := testkit.LoadCorpus(filepath.Join("..", "driver", "testdata", "*.md"))
	if err != nil {
		return
	}
	names := make([]string, 0, len(corpus))
	for name := range corpus {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		for _, tc := range corpus[name] {
			f.Add(clampSeed([]byte(tc.Input)))
		}
	}
}

func clampSeed(src []byte) []byte {
	if len(src) <= maxSeedBytes {
		return append([]byte(nil), src...)
	}
	return append([]byte(nil), src[:maxSeedBytes]...)
}

package fuzztests

import "testing"

const maxSeedBytes = 64 << 10 // 64 KiB, ограничение для корпуса

var seeds = []string{
	"",
	"function f(x) {\n    if (x) {\n        return 1;\n    }\n}\n",
	"if (a)\n    b();\nelse\n    c();\n",
	"const s = `a ${ {b: 1}.b } c`;\n{\n",
	"x = 'unterminated\n{\n",
	"/* open comment\n  {\n",
	"re = /[}{]/g; y = a / b / c;\n",
	"call(a,\n     b,\n",
	"\tif (tabs) {\n\t\tx();\n\t}\n",
	"#!/usr/bin/env node\nlet s = \"日本語\";\n",
	"}}}))]]\n",
	"a\r\nb\r\n",
}

func addCorpusSeeds(f *testing.F) {
	for _, s := range seeds {
		f.Add(clampSeed([]byte(s)))
	}
}

func clampSeed(src []byte) []byte {
	if len(src) <= maxSeedBytes {
		return append([]byte(nil), src...)
	}
	return append([]byte(nil), src[:maxSeedBytes]...)
}

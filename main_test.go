package main

import (
	"path/filepath"
	"testing"

	"golang.org/x/tools/go/analysis/analysistest"
)

func TestNamespaceAnalyzer(t *testing.T) {
	testdata := analysistest.TestData()

	// Namespace depth is measured from the project root; in the fixture tree
	// that is the GOPATH src directory, not the repository's own go.mod.
	if err := NamespaceAnalyzer.Flags.Set("project-root", filepath.Join(testdata, "src")); err != nil {
		t.Fatal(err)
	}

	analysistest.Run(t, testdata, NamespaceAnalyzer, "nscase/inner")
	analysistest.RunWithSuggestedFixes(t, testdata, NamespaceAnalyzer, "nscase")
}

func TestAttrAnalyzer(t *testing.T) {
	analysistest.Run(t, analysistest.TestData(), AttrAnalyzer, "attrcase", "attrdep")
}

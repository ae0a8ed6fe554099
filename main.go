package main

import (
	"golang.org/x/tools/go/analysis/multichecker"
)

func main() {
	multichecker.Main(NamespaceAnalyzer, AttrAnalyzer)
}

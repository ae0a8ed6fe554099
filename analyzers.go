package main

import (
	"context"
	"go/token"
	"os"
	"path/filepath"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"

	"github.com/convlint/convlint/internal/attrreq"
	"github.com/convlint/convlint/internal/config"
	"github.com/convlint/convlint/internal/nscheck"
	"github.com/convlint/convlint/internal/report"
	"github.com/convlint/convlint/internal/scrap"
)

const nsDoc = `convns checks that the namespace each file declares with a convlint:namespace
directive matches the value derived from the project folder structure`

const attrDoc = `convattr checks that the compile-time types bound at call sites carry the
marker attributes required by convlint:require directives on the target`

// NamespaceAnalyzer is the entry point of the namespace rule.
var NamespaceAnalyzer = &analysis.Analyzer{
	Name: "convns",
	Doc:  nsDoc,
	Run:  runNamespace,
}

// AttrAnalyzer is the entry point of the attribute requirement rule.
var AttrAnalyzer = &analysis.Analyzer{
	Name:      "convattr",
	Doc:       attrDoc,
	Requires:  []*analysis.Analyzer{inspect.Analyzer},
	FactTypes: []analysis.Fact{(*scrap.AttrFact)(nil), (*scrap.ReqFact)(nil)},
	Run:       runAttr,
}

var (
	flagProjectRoot string
	flagConfigDir   string
	flagSummary     bool
)

func init() {
	NamespaceAnalyzer.Flags.StringVar(&flagProjectRoot, "project-root", "",
		"project root directory; defaults to the nearest go.mod")
	NamespaceAnalyzer.Flags.StringVar(&flagConfigDir, "config-dir", "",
		"directory holding convlint.yaml; defaults to an upward search")
	NamespaceAnalyzer.Flags.BoolVar(&flagSummary, "summary", false,
		"write a per-package summary of findings with severities to stderr")
	AttrAnalyzer.Flags.StringVar(&flagConfigDir, "config-dir", "",
		"directory holding convlint.yaml; defaults to an upward search")
	AttrAnalyzer.Flags.BoolVar(&flagSummary, "summary", false,
		"write a per-package summary of findings with severities to stderr")
}

func runNamespace(pass *analysis.Pass) (any, error) {
	if len(pass.Files) == 0 {
		return nil, nil
	}

	eng := scrap.New(pass)
	dir := packageDir(pass)
	fileCfg := loadFileConfig(dir)

	// A package directive wins over the config file. Absent both, or with a
	// blank root, the rule is disabled for this package.
	cfg, ok := eng.ConfigDirective()
	if !ok {
		if fileCfg == nil {
			return nil, nil
		}
		cfg = fileCfg.NamespaceConfig()
	}

	projectRoot := flagProjectRoot
	if projectRoot == "" {
		projectRoot = config.FindProjectRoot(dir)
	}

	sink := report.NewEngine(buildRegistry(fileCfg))
	checker := nscheck.New(cfg, projectRoot, token.IsKeyword, sink)
	if !checker.Enabled() {
		return nil, nil
	}

	decls, files := eng.Namespaces()
	checker.Check(context.Background(), decls, files)

	flush(pass, sink)
	return nil, nil
}

func runAttr(pass *analysis.Pass) (any, error) {
	pector := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)

	eng := scrap.New(pass)

	// Facts first: same-package call targets must already carry theirs.
	eng.ExportFacts()

	sites := eng.CallSites(pector)
	if len(sites) == 0 {
		return nil, nil
	}

	sink := report.NewEngine(buildRegistry(loadFileConfig(packageDir(pass))))
	attrreq.Scan(eng.Oracle(), sites, sink)

	flush(pass, sink)
	return nil, nil
}

func packageDir(pass *analysis.Pass) string {
	if len(pass.Files) == 0 {
		return ""
	}

	return filepath.Dir(pass.Fset.Position(pass.Files[0].Package).Filename)
}

// loadFileConfig finds and loads convlint.yaml. Any failure — absent file,
// unreadable content — yields nil: configuration problems disable checks,
// they never fail analysis.
func loadFileConfig(dir string) *config.File {
	root := flagConfigDir
	if root == "" {
		root = config.FindConfigRoot(dir)
	}
	if root == "" {
		return nil
	}

	cfg, err := config.LoadFromDir(root)
	if err != nil {
		return nil
	}

	return cfg
}

// buildRegistry builds the read-only descriptor registry once per pass, with
// severity overrides and disabled rules taken from the config file.
func buildRegistry(cfg *config.File) *report.Registry {
	if cfg == nil {
		return report.NewRegistry(nil, nil)
	}

	// Overrides are partial on malformed values: the valid entries apply and
	// the malformed ones keep their default severity.
	overrides, _ := cfg.SeverityOverrides()

	return report.NewRegistry(overrides, cfg.Disabled)
}

// flush hands the collected findings to the host, translating suggested
// fixes into the analysis framework's edit format.
func flush(pass *analysis.Pass, sink *report.Engine) {
	for _, d := range sink.Diagnostics() {
		diag := analysis.Diagnostic{
			Pos:      d.Pos,
			Category: d.Rule.Code(),
			Message:  d.Message,
		}

		if d.Fix != nil {
			edits := make([]analysis.TextEdit, 0, len(d.Fix.Edits))
			for _, e := range d.Fix.Edits {
				edits = append(edits, analysis.TextEdit{
					Pos:     e.Pos,
					End:     e.End,
					NewText: []byte(e.NewText),
				})
			}

			diag.SuggestedFixes = []analysis.SuggestedFix{{
				Message:   d.Fix.Description,
				TextEdits: edits,
			}}
		}

		pass.Report(diag)
	}

	if flagSummary {
		sink.PrintSummary(os.Stderr, pass.Fset)
	}
}

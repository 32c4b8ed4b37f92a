package main

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"assetgen/internal/catalog"
	"assetgen/internal/domain"
	"assetgen/internal/providers/image"
)

var rule = strings.Repeat("=", 60)

var upper = cases.Upper(language.Und)

func printReport(w io.Writer, rep catalog.Report) {
	for _, g := range rep.Groups {
		fmt.Fprintf(w, "\n%s\n  %s (%d assets)\n%s\n", rule, upper.String(g.Name), len(g.Entries), rule)
		for _, e := range g.Entries {
			status := "[NEW]"
			if e.Exists {
				status = "[EXISTS]"
			}
			fmt.Fprintf(w, "  %-8s %-45s %spx\n", status, e.OutputPath, e.Dimensions)
		}
	}
	fmt.Fprintf(w, "\n%s\n", rule)
	fmt.Fprintf(w, "  TOTAL: %d assets\n", rep.Total)
	fmt.Fprintf(w, "  Existing: %d | To generate: %d\n", rep.Existing, rep.Missing)
	fmt.Fprintln(w, rule)
}

func printDryRun(w io.Writer, s *domain.RunSummary) {
	fmt.Fprint(w, "=== DRY RUN - Would generate: ===\n\n")
	paths := s.PlannedPaths()
	for _, p := range paths {
		fmt.Fprintf(w, "  %s\n", p)
	}
	fmt.Fprintf(w, "\nWould generate %d assets.\n", len(paths))
}

func printBanner(w io.Writer, gen image.Generator) {
	fmt.Fprintln(w, rule)
	fmt.Fprintln(w, "  ASSET GENERATOR")
	if m, ok := gen.(interface{ Model() string }); ok {
		fmt.Fprintf(w, "  Model: %s\n", m.Model())
	}
	fmt.Fprintln(w, rule)
}

func printSummary(w io.Writer, s *domain.RunSummary) {
	title := "GENERATION COMPLETE"
	if s.Interrupted {
		title = "GENERATION INTERRUPTED"
	}
	fmt.Fprintf(w, "\n%s\n  %s\n%s\n", rule, title, rule)
	fmt.Fprintf(w, "  Generated: %d\n", s.Generated())
	fmt.Fprintf(w, "  Skipped:   %d\n", s.Skipped())
	fmt.Fprintf(w, "  Failed:    %d\n", s.Failed())
	fmt.Fprintf(w, "  Total:     %d\n", s.Total())
	fmt.Fprintln(w, rule)

	failed := s.Failed()
	if failed == 0 && !s.Interrupted {
		return
	}
	for _, o := range s.Outcomes {
		if o.Status == domain.OutcomeFailed {
			fmt.Fprintf(w, "  FAILED: %s (%s)\n", o.OutputPath, o.Reason)
		}
	}
	if failed > 0 {
		fmt.Fprintf(w, "\n  %d assets failed. Re-run the same command to retry.\n", failed)
	}
	fmt.Fprintln(w, "  (Only missing assets will be generated)")
}

package main

import (
	"fmt"

	"github.com/duxbuse/townsmith/pkg/catalog"
	"github.com/duxbuse/townsmith/pkg/settle"
	"github.com/duxbuse/townsmith/pkg/validation"
)

func printValidationReport(r *validation.Report) {
	if len(r.Errors) > 0 {
		fmt.Printf("ERRORS (%d):\n", len(r.Errors))
		for _, e := range r.Errors {
			fmt.Printf("  [%s] %s\n", e.Level, e.Message)
			if e.Path != "" {
				fmt.Printf("    -> %s = %v\n", e.Path, e.ActualValue)
			}
			if e.Expected != "" {
				fmt.Printf("    expected: %s\n", e.Expected)
			}
			for _, s := range e.Suggestions {
				fmt.Printf("    * %s\n", s)
			}
		}
		fmt.Println()
	}

	if len(r.Warnings) > 0 {
		fmt.Printf("WARNINGS (%d):\n", len(r.Warnings))
		for _, w := range r.Warnings {
			fmt.Printf("  [%s] %s\n", w.Level, w.Message)
			if w.Path != "" {
				fmt.Printf("    -> %s = %v\n", w.Path, w.ActualValue)
			}
			if w.Expected != "" {
				fmt.Printf("    expected: %s\n", w.Expected)
			}
			for _, s := range w.Suggestions {
				fmt.Printf("    * %s\n", s)
			}
		}
		fmt.Println()
	}

	if len(r.Info) > 0 {
		fmt.Printf("INFO (%d):\n", len(r.Info))
		for _, i := range r.Info {
			fmt.Printf("  [%s] %s\n", i.Level, i.Message)
		}
		fmt.Println()
	}

	if r.Valid {
		fmt.Printf("Result: VALID (%s)\n", r.Summary)
	} else {
		fmt.Printf("Result: INVALID (%s)\n", r.Summary)
	}
}

func printMapSummary(sum settle.Summary) {
	fmt.Println("Map Summary")
	fmt.Println("===========")
	fmt.Printf("  Settlements: %d\n", sum.Settlements)
	fmt.Printf("  Buildings:   %d\n", sum.Buildings)
	fmt.Printf("  Streets:     %d\n", sum.Streets)
	if sum.Dropped > 0 {
		fmt.Printf("  Dropped:     %d\n", sum.Dropped)
	}

	fmt.Println()
	fmt.Printf("%-16s %8s\n", "Size", "Count")
	for _, size := range catalog.SizeClasses {
		if n := sum.BySize[size]; n > 0 {
			fmt.Printf("%-16s %8d\n", size, n)
		}
	}

	fmt.Println()
	fmt.Printf("%-16s %8s\n", "Category", "Count")
	for _, c := range catalog.Categories {
		if n := sum.ByCategory[c]; n > 0 {
			fmt.Printf("%-16s %8d\n", c, n)
		}
	}
}

package main

import (
	"fmt"
	"os"
	"runtime"
	"sort"
	"sync"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"
	"golang.org/x/sync/errgroup"

	"github.com/dhamidi/remod/fix"
	"github.com/dhamidi/remod/format"
	"github.com/dhamidi/remod/lint"
	"github.com/dhamidi/remod/project"
)

func newCheckCmd() *cobra.Command {
	var outputFormat string

	cmd := &cobra.Command{
		Use:   "check [path...]",
		Short: "Report redundant modifiers without changing anything",
		RunE: func(cmd *cobra.Command, args []string) error {
			files, err := resolveFiles(args)
			if err != nil {
				return err
			}

			cfg, err := loadConfig(".")
			if err != nil {
				return err
			}
			opts := cfg.LintOptions()
			if outputFormat == "" {
				outputFormat = cfg.Output.Format
			}
			switch cfg.Output.Color {
			case "always":
				color.NoColor = false
			case "never":
				color.NoColor = true
			}

			log := commonlog.GetLogger("remod.check")
			log.Debugf("checking %d files", len(files))

			results, err := analyzeFiles(files, opts)
			if err != nil {
				return err
			}

			var encoder format.Encoder
			switch outputFormat {
			case "text":
				encoder = format.NewTextEncoder(cmd.OutOrStdout())
			case "json":
				encoder = format.NewJSONEncoder(cmd.OutOrStdout())
			default:
				return fmt.Errorf("unknown format: %s", outputFormat)
			}
			if err := encoder.Encode(results); err != nil {
				return fmt.Errorf("encode: %w", err)
			}

			var total int
			for _, r := range results {
				total += len(r.Diagnostics)
			}
			if total > 0 {
				return fmt.Errorf("found %d problems", total)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "", "output format (text, json)")

	return cmd
}

// resolveFiles turns command arguments into a sorted list of .java
// files. With no arguments the current directory is treated as a
// project root.
func resolveFiles(args []string) ([]string, error) {
	if len(args) == 0 {
		proj, err := project.Load()
		if err != nil {
			return nil, err
		}
		return proj.JavaFiles()
	}
	return project.FindJavaFiles(args)
}

// analyzeFiles lints every file in parallel and returns the non-empty
// results ordered by path.
func analyzeFiles(files []string, opts lint.Options) ([]format.FileDiagnostics, error) {
	var (
		mu      sync.Mutex
		results []format.FileDiagnostics
	)
	g := new(errgroup.Group)
	g.SetLimit(runtime.NumCPU())
	for _, file := range files {
		file := file
		g.Go(func() error {
			source, err := os.ReadFile(file)
			if err != nil {
				return err
			}
			doc := fix.NewDocument(file, source)
			diags := lint.Analyze(doc.Root, opts)
			if len(diags) == 0 {
				return nil
			}
			mu.Lock()
			results = append(results, format.FileDiagnostics{Path: file, Diagnostics: diags})
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	sort.Slice(results, func(i, j int) bool { return results[i].Path < results[j].Path })
	return results, nil
}

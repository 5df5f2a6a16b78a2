package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"
	"golang.org/x/sync/errgroup"

	"github.com/dhamidi/remod/fix"
	"github.com/dhamidi/remod/lint"
)

func newFixCmd() *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "fix [path...]",
		Short: "Remove redundant modifiers in place",
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
			if cfg.Fix.DryRun {
				dryRun = true
			}

			log := commonlog.GetLogger("remod.fix")

			results, err := fixFiles(files, opts)
			if err != nil {
				return err
			}

			var fixed int
			for i, file := range files {
				result := results[i]
				if !result.Changed() {
					continue
				}
				fixed++
				if dryRun {
					fmt.Fprintf(cmd.OutOrStdout(), "--- %s (%d fixes)\n", file, result.Applied)
					fmt.Fprint(cmd.OutOrStdout(), result.Text)
					continue
				}
				if err := writeFile(file, []byte(result.Text)); err != nil {
					return err
				}
				log.Infof("%s: applied %d fixes", file, result.Applied)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "fixed %d of %d files\n", fixed, len(files))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&dryRun, "dry-run", "n", false, "print rewritten files instead of writing them")

	return cmd
}

// fixFiles lints and rewrites every file in parallel. Results come back
// indexed like files, so output and writes keep the discovery order.
func fixFiles(files []string, opts lint.Options) ([]fix.Result, error) {
	results := make([]fix.Result, len(files))
	g := new(errgroup.Group)
	g.SetLimit(runtime.NumCPU())
	for i, file := range files {
		i, file := i, file
		g.Go(func() error {
			source, err := os.ReadFile(file)
			if err != nil {
				return err
			}
			doc := fix.NewDocument(file, source)
			diags := lint.Analyze(doc.Root, opts)
			results[i] = fix.ApplyAll(doc, diags)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// writeFile replaces path's contents keeping its permission bits.
func writeFile(path string, data []byte) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, info.Mode().Perm())
}

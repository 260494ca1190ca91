package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/jonathan/career-insights/internal/config"
	"github.com/jonathan/career-insights/internal/ingestion"
	"github.com/jonathan/career-insights/internal/observability"
	"github.com/jonathan/career-insights/internal/resume"
	"github.com/jonathan/career-insights/internal/schemas"
	"github.com/jonathan/career-insights/internal/types"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var analyzeResumeCmd = &cobra.Command{
	Use:   "analyze-resume",
	Short: "Score one or more resume files",
	Long:  "Extract text from resume files (.txt, .md, .pdf, .docx), score them and print the reports or write them as JSON.",
	RunE:  runAnalyzeResume,
}

var (
	resumeInputs  []string
	resumeOutDir  string
	resumeSeed    int64
	resumeJSON    bool
	resumeNoColor bool
)

func init() {
	analyzeResumeCmd.Flags().StringSliceVarP(&resumeInputs, "in", "i", nil, "Resume file to analyze (repeatable)")
	analyzeResumeCmd.Flags().StringVarP(&resumeOutDir, "out", "o", "", "Directory to write <name>.report.json files to")
	analyzeResumeCmd.Flags().Int64Var(&resumeSeed, "seed", 0, "Seed for reproducible scores")
	analyzeResumeCmd.Flags().BoolVar(&resumeJSON, "json", false, "Print reports as JSON")
	analyzeResumeCmd.Flags().BoolVar(&resumeNoColor, "no-color", false, "Disable colored output")

	_ = analyzeResumeCmd.MarkFlagRequired("in")

	rootCmd.AddCommand(analyzeResumeCmd)
}

// resumeResult is the scored report of one input file.
type resumeResult struct {
	Path   string
	Report *types.ResumeReport
	JSON   []byte
}

// outputOptions selects how reports are emitted. Out is a directory for
// resume batches and a file path for a single interview report.
type outputOptions struct {
	Out     string
	JSON    bool
	NoColor bool
}

func runAnalyzeResume(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	seed := cfg.Seed
	if cmd.Flags().Changed("seed") {
		seed = &resumeSeed
	}

	results, err := analyzeResumeFiles(cmd.Context(), resumeInputs, seed)
	if err != nil {
		return err
	}
	return writeResumeResults(os.Stdout, results, outputOptions{
		Out:     resumeOutDir,
		JSON:    resumeJSON,
		NoColor: resumeNoColor,
	})
}

// analyzeResumeFiles scores every file concurrently. Results keep the order
// of paths; the first failure cancels the rest.
func analyzeResumeFiles(ctx context.Context, paths []string, seed *int64) ([]resumeResult, error) {
	if len(paths) == 0 {
		return nil, fmt.Errorf("at least one --in file is required")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	analyzer := resume.NewAnalyzer(resume.Options{Seed: seed})
	results := make([]resumeResult, len(paths))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, path := range paths {
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			result, err := analyzeResumeFile(analyzer, path)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			results[i] = *result
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func analyzeResumeFile(analyzer *resume.Analyzer, path string) (*resumeResult, error) {
	doc, err := ingestion.ExtractFile(path)
	if err != nil {
		return nil, err
	}

	report, err := analyzer.ScoreResume(doc.Text)
	if err != nil {
		return nil, err
	}

	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal report: %w", err)
	}
	if err := schemas.ValidateResumeReport(data); err != nil {
		return nil, fmt.Errorf("report failed schema validation: %w", err)
	}

	return &resumeResult{Path: path, Report: report, JSON: data}, nil
}

func writeResumeResults(w io.Writer, results []resumeResult, opts outputOptions) error {
	switch {
	case opts.Out != "":
		if err := os.MkdirAll(opts.Out, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
		for _, r := range results {
			path := filepath.Join(opts.Out, reportFilename(r.Path))
			if err := os.WriteFile(path, r.JSON, 0o644); err != nil {
				return fmt.Errorf("failed to write report: %w", err)
			}
			fmt.Fprintf(w, "Wrote %s\n", path)
		}
	case opts.JSON:
		return writeJSONResults(w, results)
	default:
		printer := newPrinter(w, opts.NoColor)
		for _, r := range results {
			fmt.Fprintf(w, "%s\n", r.Path)
			printer.PrintResumeReport(r.Report)
		}
	}
	return nil
}

// writeJSONResults prints a single report as an object and several as an
// array.
func writeJSONResults(w io.Writer, results []resumeResult) error {
	if len(results) == 1 {
		_, err := fmt.Fprintf(w, "%s\n", results[0].JSON)
		return err
	}
	reports := make([]*types.ResumeReport, len(results))
	for i, r := range results {
		reports[i] = r.Report
	}
	data, err := json.MarshalIndent(reports, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal reports: %w", err)
	}
	_, err = fmt.Fprintf(w, "%s\n", data)
	return err
}

// reportFilename maps resume.pdf to resume.report.json.
func reportFilename(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base)) + ".report.json"
}

func newPrinter(w io.Writer, noColor bool) *observability.Printer {
	if noColor {
		return observability.NewPrinter(w)
	}
	return observability.NewColorPrinter(w)
}

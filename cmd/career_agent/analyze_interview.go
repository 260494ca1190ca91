package main

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jonathan/career-insights/internal/ingestion"
	"github.com/jonathan/career-insights/internal/interview"
	"github.com/jonathan/career-insights/internal/schemas"
	"github.com/jonathan/career-insights/internal/textanalysis"
	"github.com/jonathan/career-insights/internal/types"
	"github.com/spf13/cobra"
)

var analyzeInterviewCmd = &cobra.Command{
	Use:   "analyze-interview",
	Short: "Score a mock-interview transcript",
	Long:  "Score a mock-interview transcript against the prompts it answered. Prompts are read from a JSON array file or one prompt per line.",
	RunE:  runAnalyzeInterview,
}

var (
	interviewInput   string
	interviewPrompts string
	interviewSession string
	interviewOut     string
	interviewJSON    bool
	interviewNoColor bool
)

func init() {
	analyzeInterviewCmd.Flags().StringVarP(&interviewInput, "in", "i", "", "Transcript file (.txt, .md, .pdf, .docx)")
	analyzeInterviewCmd.Flags().StringVarP(&interviewPrompts, "prompts", "p", "", "Prompt list file (JSON array or one per line)")
	analyzeInterviewCmd.Flags().StringVar(&interviewSession, "session", "", "Session ID to stamp on the report")
	analyzeInterviewCmd.Flags().StringVarP(&interviewOut, "out", "o", "", "File to write the JSON report to")
	analyzeInterviewCmd.Flags().BoolVar(&interviewJSON, "json", false, "Print the report as JSON")
	analyzeInterviewCmd.Flags().BoolVar(&interviewNoColor, "no-color", false, "Disable colored output")

	_ = analyzeInterviewCmd.MarkFlagRequired("in")

	rootCmd.AddCommand(analyzeInterviewCmd)
}

func runAnalyzeInterview(_ *cobra.Command, _ []string) error {
	var prompts []string
	if interviewPrompts != "" {
		var err error
		prompts, err = loadPrompts(interviewPrompts)
		if err != nil {
			return err
		}
	}

	report, data, err := analyzeInterviewFile(interviewInput, prompts, interviewSession)
	if err != nil {
		return err
	}

	return writeInterviewReport(os.Stdout, report, data, outputOptions{
		Out:     interviewOut,
		JSON:    interviewJSON,
		NoColor: interviewNoColor,
	})
}

// analyzeInterviewFile scores the transcript at path and returns the report
// with its schema-checked JSON encoding.
func analyzeInterviewFile(path string, prompts []string, sessionID string) (*types.InterviewReport, []byte, error) {
	doc, err := ingestion.ExtractFile(path)
	if err != nil {
		return nil, nil, err
	}

	report := interview.NewAnalyzer(interview.Options{}).ScoreInterview(doc.Text, prompts)
	if sessionID != "" {
		report.SessionID = sessionID
	}

	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to marshal report: %w", err)
	}
	if err := schemas.ValidateInterviewReport(data); err != nil {
		return nil, nil, fmt.Errorf("report failed schema validation: %w", err)
	}
	return report, data, nil
}

// loadPrompts reads a prompt file. Content starting with '[' must be a JSON
// array of strings; anything else is one prompt per non-blank line.
func loadPrompts(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read prompts: %w", err)
	}
	return parsePrompts(data)
}

func parsePrompts(data []byte) ([]string, error) {
	trimmed := bytes.TrimSpace(data)
	if bytes.HasPrefix(trimmed, []byte("[")) {
		return textanalysis.DecodePrompts(trimmed)
	}

	var prompts []string
	scanner := bufio.NewScanner(bytes.NewReader(trimmed))
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			prompts = append(prompts, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read prompts: %w", err)
	}
	return prompts, nil
}

// writeInterviewReport emits the report. For interviews, opts.Out names
// the output file rather than a directory.
func writeInterviewReport(w io.Writer, report *types.InterviewReport, data []byte, opts outputOptions) error {
	switch {
	case opts.Out != "":
		if err := os.WriteFile(opts.Out, data, 0o644); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
		fmt.Fprintf(w, "Wrote %s\n", opts.Out)
	case opts.JSON:
		_, err := fmt.Fprintf(w, "%s\n", data)
		return err
	default:
		newPrinter(w, opts.NoColor).PrintInterviewReport(report)
	}
	return nil
}

// Package observability provides formatted output utilities for the CLI.
package observability

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/fatih/color"
	"github.com/jonathan/career-insights/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
	// barWidth is the number of cells in a score bar
	barWidth = 20
)

// Printer renders analysis reports for terminal output.
type Printer struct {
	out          io.Writer
	colorEnabled bool
}

// NewPrinter creates a new Printer that writes plain text to the given writer.
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// NewColorPrinter creates a Printer that highlights headings and scores.
func NewColorPrinter(out io.Writer) *Printer {
	return &Printer{out: out, colorEnabled: true}
}

// colorize applies color to text if color is enabled
func (p *Printer) colorize(text string, attributes ...color.Attribute) string {
	if !p.colorEnabled {
		return text
	}
	return color.New(attributes...).Sprint(text)
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %s%s │\n", p.colorize(title, color.FgCyan, color.Bold), padding(title))
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(strings.TrimRight(content, "\n"), "\n") {
		line = truncate(line, boxWidth-4)
		fmt.Fprintf(p.out, "│ %s%s │\n", line, padding(line))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

func truncate(line string, width int) string {
	if utf8.RuneCountInString(line) <= width {
		return line
	}
	runes := []rune(line)
	return string(runes[:width-3]) + "..."
}

func padding(text string) string {
	n := boxWidth - 4 - utf8.RuneCountInString(text)
	if n <= 0 {
		return ""
	}
	return strings.Repeat(" ", n)
}

// scoreBar renders value as a fixed-width bar relative to scale.
func scoreBar(value, scale int) string {
	if scale <= 0 {
		return ""
	}
	filled := value * barWidth / scale
	filled = min(max(filled, 0), barWidth)
	return strings.Repeat("█", filled) + strings.Repeat("░", barWidth-filled)
}

// scoreColor picks a color for value relative to scale.
func scoreColor(value, scale int) color.Attribute {
	if scale <= 0 {
		return color.FgRed
	}
	switch pct := value * 100 / scale; {
	case pct >= 75:
		return color.FgGreen
	case pct >= 50:
		return color.FgYellow
	default:
		return color.FgRed
	}
}

//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printScore(label string, value, scale int) {
	fmt.Fprintf(p.out, "%-14s %3d/%-3d %s\n",
		label, value, scale, p.colorize(scoreBar(value, scale), scoreColor(value, scale)))
}

func writeList(sb *strings.Builder, heading string, items []string) {
	if len(items) == 0 {
		return
	}
	sb.WriteString(heading + ":\n")
	count := min(len(items), maxItemsToShow)
	for i := 0; i < count; i++ {
		sb.WriteString(fmt.Sprintf("  • %s\n", items[i]))
	}
	if len(items) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(items)-maxItemsToShow))
	}
	sb.WriteString("\n")
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

// PrintResumeReport outputs a human-readable summary of a resume report.
func (p *Printer) PrintResumeReport(report *types.ResumeReport) {
	if report == nil {
		return
	}

	p.printBox("RESUME ANALYSIS", fmt.Sprintf("Report:   %s\nAnalyzed: %s",
		report.ID, report.AnalysisDate.Format("2006-01-02 15:04:05")))
	p.printScore("ATS", report.ATSScore, 100)
	p.printScore("Format", report.FormatScore, 100)
	p.printScore("Content", report.ContentScore, 100)
	p.printScore("Keywords", report.KeywordScore, 100)
	fmt.Fprintln(p.out) //nolint:errcheck // writing to stdout

	var sb strings.Builder
	analysis := report.DetailedAnalysis
	sb.WriteString(fmt.Sprintf("Words:       %d\n", analysis.WordCount))
	sb.WriteString(fmt.Sprintf("Complexity:  %s\n", analysis.SentenceComplexity))
	sb.WriteString(fmt.Sprintf("Contact:     email=%s phone=%s linkedin=%s github=%s\n",
		yesNo(analysis.ContactInfo.Email), yesNo(analysis.ContactInfo.Phone),
		yesNo(analysis.ContactInfo.LinkedIn), yesNo(analysis.ContactInfo.GitHub)))
	sb.WriteString(fmt.Sprintf("Sections:    summary=%s experience=%s education=%s skills=%s\n",
		yesNo(analysis.Sections.Summary), yesNo(analysis.Sections.Experience),
		yesNo(analysis.Sections.Education), yesNo(analysis.Sections.Skills)))
	if len(analysis.TechnicalSkills) > 0 {
		sb.WriteString(fmt.Sprintf("Tech skills: %s\n", strings.Join(analysis.TechnicalSkills, ", ")))
	}
	if analysis.Summary != "" {
		sb.WriteString("\n" + analysis.Summary + "\n")
	}
	sb.WriteString("\n")

	writeList(&sb, "Strengths", report.Strengths)
	writeList(&sb, "Improvements", report.Improvements)
	writeList(&sb, "Recommendations", report.Recommendations)
	writeList(&sb, "Industry Insights", report.IndustryInsights)

	fmt.Fprint(p.out, sb.String()) //nolint:errcheck // writing to stdout
}

// PrintInterviewReport outputs a human-readable summary of an interview report.
func (p *Printer) PrintInterviewReport(report *types.InterviewReport) {
	if report == nil {
		return
	}

	header := fmt.Sprintf("Report:   %s\nAnalyzed: %s",
		report.ID, report.AnalysisDate.Format("2006-01-02 15:04:05"))
	if report.SessionID != "" {
		header += "\nSession:  " + report.SessionID
	}
	p.printBox("INTERVIEW ANALYSIS", header)
	p.printScore("Overall", report.OverallScore, 10)
	p.printScore("Communication", report.Communication, 10)
	p.printScore("Confidence", report.Confidence, 10)
	p.printScore("Content", report.Content, 10)
	p.printScore("Delivery", report.Delivery, 10)
	fmt.Fprintln(p.out) //nolint:errcheck // writing to stdout

	var sb strings.Builder
	m := report.Metrics
	sb.WriteString(fmt.Sprintf("Words:          %d (%d sentences)\n", m.WordCount, m.SentenceCount))
	sb.WriteString(fmt.Sprintf("Filler words:   %d (%.1f%%)\n", m.FillerWordCount, m.FillerRatio*100))
	if m.SpeakingPace != "" {
		sb.WriteString(fmt.Sprintf("Pace:           %s\n", m.SpeakingPace))
	}
	if m.Clarity != "" {
		sb.WriteString(fmt.Sprintf("Clarity:        %s\n", m.Clarity))
	}
	if m.StarUsage != "" {
		sb.WriteString(fmt.Sprintf("STAR usage:     %s\n", m.StarUsage))
	}
	sb.WriteString("\n")
	sb.WriteString(report.Feedback)
	sb.WriteString("\n")

	fmt.Fprint(p.out, sb.String()) //nolint:errcheck // writing to stdout
}

// Package main provides the career_agent CLI: the career-insights HTTP API
// server plus offline resume and interview analysis.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "career_agent",
	Short: "Career Insights resume and interview analysis",
	Long:  "Career Insights scores resumes and mock-interview transcripts with explainable heuristics, serves the results over a REST API and searches job postings.",
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to a JSON or YAML config file")
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/jonathan/career-insights/internal/config"
	"github.com/jonathan/career-insights/internal/jobsearch"
	"github.com/spf13/cobra"
)

var searchJobsCmd = &cobra.Command{
	Use:   "search-jobs",
	Short: "Search job postings",
	Long:  "Query the configured job search API (JOB_SEARCH_API_KEY) and list matching postings.",
	RunE:  runSearchJobs,
}

var (
	jobsQuery    string
	jobsLocation string
	jobsPage     int
	jobsJSON     bool
)

func init() {
	searchJobsCmd.Flags().StringVarP(&jobsQuery, "query", "q", "", "Search terms, e.g. \"golang developer\"")
	searchJobsCmd.Flags().StringVarP(&jobsLocation, "location", "l", "", "Location to search in")
	searchJobsCmd.Flags().IntVar(&jobsPage, "page", 1, "Result page (1-based)")
	searchJobsCmd.Flags().BoolVar(&jobsJSON, "json", false, "Print postings as JSON")

	_ = searchJobsCmd.MarkFlagRequired("query")

	rootCmd.AddCommand(searchJobsCmd)
}

func runSearchJobs(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if !cfg.JobSearchEnabled() {
		return fmt.Errorf("JOB_SEARCH_API_KEY is required for job search")
	}

	client, err := jobsearch.NewClient(*jobSearchConfig(cfg))
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return searchJobs(ctx, client, os.Stdout, jobsQuery, jobsLocation, jobsPage, jobsJSON)
}

// jobSource is the part of the job search client the command uses.
type jobSource interface {
	Search(ctx context.Context, query, location string, page int) ([]jobsearch.Posting, error)
}

func searchJobs(ctx context.Context, source jobSource, w io.Writer, query, location string, page int, asJSON bool) error {
	if page < 1 {
		return fmt.Errorf("page must be at least 1, got %d", page)
	}

	postings, err := source.Search(ctx, query, location, page)
	if err != nil {
		return fmt.Errorf("job search failed: %w", err)
	}

	if asJSON {
		data, err := json.MarshalIndent(postings, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal postings: %w", err)
		}
		_, err = fmt.Fprintf(w, "%s\n", data)
		return err
	}

	if len(postings) == 0 {
		fmt.Fprintf(w, "No postings found for %q\n", query)
		return nil
	}
	for i, p := range postings {
		fmt.Fprintf(w, "%d. %s at %s\n", i+1, p.Title, p.Company)
		if p.Location != "" {
			fmt.Fprintf(w, "   Location: %s\n", p.Location)
		}
		if p.Remote {
			fmt.Fprintf(w, "   Remote\n")
		}
		if p.ApplyURL != "" {
			fmt.Fprintf(w, "   Apply: %s\n", p.ApplyURL)
		}
	}
	return nil
}

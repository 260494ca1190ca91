package main

import (
	"fmt"
	"io"
	"os"

	"github.com/jonathan/career-insights/internal/config"
	"github.com/jonathan/career-insights/internal/server"
	"github.com/spf13/cobra"
)

var issueTokenCmd = &cobra.Command{
	Use:   "issue-token",
	Short: "Issue a bearer token for a user",
	Long:  "Sign a JWT for the given user ID with JWT_SECRET, for calling the authenticated report endpoints.",
	RunE:  runIssueToken,
}

var tokenUser string

func init() {
	issueTokenCmd.Flags().StringVarP(&tokenUser, "user", "u", "", "User ID to put in the token subject")

	_ = issueTokenCmd.MarkFlagRequired("user")

	rootCmd.AddCommand(issueTokenCmd)
}

func runIssueToken(_ *cobra.Command, _ []string) error {
	jwtCfg, err := config.NewJWTConfig()
	if err != nil {
		return err
	}
	return issueToken(os.Stdout, jwtCfg, tokenUser)
}

func issueToken(w io.Writer, cfg *config.JWTConfig, userID string) error {
	token, err := server.NewJWTService(cfg).GenerateToken(userID)
	if err != nil {
		return fmt.Errorf("failed to issue token: %w", err)
	}
	_, err = fmt.Fprintln(w, token)
	return err
}

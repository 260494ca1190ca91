package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/jonathan/career-insights/internal/config"
	"github.com/jonathan/career-insights/internal/server"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueToken(t *testing.T) {
	cfg := &config.JWTConfig{Secret: "test-secret", Issuer: config.DefaultJWTIssuer, ExpirationHours: 1}

	var buf bytes.Buffer
	require.NoError(t, issueToken(&buf, cfg, "user-123"))

	token := strings.TrimSpace(buf.String())
	claims, err := server.NewJWTService(cfg).ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", claims.GetUserID())
}

func TestIssueToken_BlankUser(t *testing.T) {
	cfg := &config.JWTConfig{Secret: "test-secret", Issuer: config.DefaultJWTIssuer, ExpirationHours: 1}

	var buf bytes.Buffer
	err := issueToken(&buf, cfg, "  ")
	require.Error(t, err)
	assert.Empty(t, buf.String())
}

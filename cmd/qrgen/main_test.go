package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/handiism/qrgen/internal/config"
)

// chdirClean runs the test inside an empty directory with the configuration
// variables cleared.
func chdirClean(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(prev) })
	for _, key := range []string{config.EnvOutputDir, config.EnvFillColor, config.EnvBackColor, config.EnvDefaultURL, config.EnvLogLevel} {
		t.Setenv(key, "")
	}
	return dir
}

func pngFiles(t *testing.T, dir string) []string {
	t.Helper()
	matches, err := filepath.Glob(filepath.Join(dir, "QRCode_*.png"))
	require.NoError(t, err)
	return matches
}

func TestRun_Success(t *testing.T) {
	dir := chdirClean(t)
	var stdout, stderr bytes.Buffer

	code := run(context.Background(), []string{"--url", "https://example.com/hello"}, &stdout, &stderr)
	assert.Equal(t, 0, code)

	files := pngFiles(t, filepath.Join(dir, "qr_codes"))
	require.Len(t, files, 1)
	assert.Regexp(t, regexp.MustCompile(`QRCode_\d{14}\.png$`), files[0])

	assert.Contains(t, stdout.String(), "QR code successfully saved to")
	assert.Contains(t, stdout.String(), "level=info")
	assert.Empty(t, stderr.String())
}

func TestRun_DefaultURLFromEnv(t *testing.T) {
	dir := chdirClean(t)
	t.Setenv(config.EnvDefaultURL, "https://example.org/from-env")
	t.Setenv(config.EnvOutputDir, "custom")

	var stdout, stderr bytes.Buffer
	code := run(context.Background(), nil, &stdout, &stderr)
	assert.Equal(t, 0, code)

	assert.Len(t, pngFiles(t, filepath.Join(dir, "custom")), 1)
	assert.Contains(t, stdout.String(), "https://example.org/from-env")
}

func TestRun_DotEnvFile(t *testing.T) {
	dir := chdirClean(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("QR_CODE_DIR=from_dotenv\n"), 0644))

	var stdout, stderr bytes.Buffer
	code := run(context.Background(), []string{"--url", "https://example.com"}, &stdout, &stderr)
	assert.Equal(t, 0, code)
	assert.Len(t, pngFiles(t, filepath.Join(dir, "from_dotenv")), 1)
}

func TestRun_InvalidURL(t *testing.T) {
	for _, input := range []string{"ftp:/broken", ""} {
		t.Run(input, func(t *testing.T) {
			dir := chdirClean(t)
			var stdout, stderr bytes.Buffer

			code := run(context.Background(), []string{"--url=" + input}, &stdout, &stderr)
			assert.Equal(t, 0, code)

			assert.Empty(t, pngFiles(t, filepath.Join(dir, "qr_codes")))
			assert.Contains(t, stdout.String(), "level=error")
			assert.Contains(t, stdout.String(), "Invalid URL provided: "+input)
		})
	}
}

func TestRun_DirectoryFailure(t *testing.T) {
	dir := chdirClean(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "qr_codes"), []byte("in the way"), 0644))

	var stdout, stderr bytes.Buffer
	code := run(context.Background(), []string{"--url", "https://example.com"}, &stdout, &stderr)
	assert.Equal(t, 1, code)

	assert.Contains(t, stdout.String(), "Failed to create directory")
	assert.Contains(t, stdout.String(), "not a directory")
}

func TestRun_RenderFailureStillExitsZero(t *testing.T) {
	dir := chdirClean(t)
	t.Setenv(config.EnvFillColor, "blurple")

	var stdout, stderr bytes.Buffer
	code := run(context.Background(), []string{"--url", "https://example.com"}, &stdout, &stderr)
	assert.Equal(t, 0, code)

	assert.Empty(t, pngFiles(t, filepath.Join(dir, "qr_codes")))
	assert.Contains(t, stdout.String(), "An error occurred while generating or saving the QR code")
	assert.Contains(t, stdout.String(), "blurple")
}

func TestRun_UnknownFlag(t *testing.T) {
	chdirClean(t)
	var stdout, stderr bytes.Buffer

	code := run(context.Background(), []string{"--size", "3"}, &stdout, &stderr)
	assert.Equal(t, 2, code)
	assert.Contains(t, stderr.String(), "unknown flag")
}

func TestRun_DebugLevelLogsStateChanges(t *testing.T) {
	chdirClean(t)
	t.Setenv(config.EnvLogLevel, "debug")

	var stdout, stderr bytes.Buffer
	code := run(context.Background(), []string{"--url", "https://example.com"}, &stdout, &stderr)
	assert.Equal(t, 0, code)

	out := stdout.String()
	assert.Contains(t, out, "level=debug")
	assert.Contains(t, out, "State changed")
	assert.Contains(t, out, "state=rendering")
}

func TestRun_DefaultLevelHidesStateChanges(t *testing.T) {
	chdirClean(t)

	var stdout, stderr bytes.Buffer
	code := run(context.Background(), []string{"--url", "https://example.com"}, &stdout, &stderr)
	assert.Equal(t, 0, code)
	assert.NotContains(t, stdout.String(), "State changed")
}

func TestRun_UnknownLogLevel(t *testing.T) {
	chdirClean(t)
	t.Setenv(config.EnvLogLevel, "chatty")

	var stdout, stderr bytes.Buffer
	code := run(context.Background(), []string{"--url", "https://example.com"}, &stdout, &stderr)
	assert.Equal(t, 0, code)

	assert.Contains(t, stdout.String(), "level=warning")
	assert.Contains(t, stdout.String(), "Ignoring LOG_LEVEL")
	assert.Contains(t, stdout.String(), "QR code successfully saved to")
}

func TestRun_WorkingDirectoryGone(t *testing.T) {
	dir := chdirClean(t)
	require.NoError(t, os.Remove(dir))

	var stdout, stderr bytes.Buffer
	code := run(context.Background(), []string{"--url", "https://example.com"}, &stdout, &stderr)
	assert.Equal(t, 1, code)

	assert.Contains(t, stdout.String(), "level=error")
	assert.Contains(t, stdout.String(), "Failed to resolve working directory")
	assert.Empty(t, stderr.String())
}

func TestRun_CancelledContext(t *testing.T) {
	dir := chdirClean(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var stdout, stderr bytes.Buffer
	code := run(ctx, []string{"--url", "https://example.com"}, &stdout, &stderr)
	assert.Equal(t, 0, code)

	assert.Empty(t, pngFiles(t, filepath.Join(dir, "qr_codes")))
	assert.Contains(t, stdout.String(), "context canceled")
}

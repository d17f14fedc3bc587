package data

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writePriceFile(t *testing.T, dir, asset, content string) {
	t.Helper()
	err := os.WriteFile(filepath.Join(dir, asset+".csv"), []byte(content), 0644)
	require.NoError(t, err)
}

// TestCSVProvider_Fetch tests loading a well-formed price file
func TestCSVProvider_Fetch(t *testing.T) {
	dir := t.TempDir()
	writePriceFile(t, dir, "ACME", "Date,Close\n2020-01-02,100.5\n2020-01-03,101.25\n2020-01-06,99.8\n")

	provider := NewCSVProvider(dir)
	series, err := provider.Fetch("ACME", time.Time{})
	require.NoError(t, err)

	assert.Equal(t, "ACME", series.Asset)
	require.Equal(t, 3, series.Len())
	assert.Equal(t, 100.5, series.Price(0))
	assert.Equal(t, 99.8, series.Price(2))
}

// TestCSVProvider_SkipsBadRows tests that malformed rows are dropped, not fatal
func TestCSVProvider_SkipsBadRows(t *testing.T) {
	dir := t.TempDir()
	writePriceFile(t, dir, "ACME",
		"Date,Close\n2020-01-02,100\nnot-a-date,50\n2020-01-03,abc\n2020-01-06,-4\n2020-01-07,102\n")

	provider := NewCSVProvider(dir)
	series, err := provider.Fetch("ACME", time.Time{})
	require.NoError(t, err)

	require.Equal(t, 2, series.Len())
	assert.Equal(t, 100.0, series.Price(0))
	assert.Equal(t, 102.0, series.Price(1))
}

// TestCSVProvider_Since tests the start-date cutoff
func TestCSVProvider_Since(t *testing.T) {
	dir := t.TempDir()
	writePriceFile(t, dir, "ACME", "Date,Close\n2020-01-02,100\n2020-06-01,110\n2021-01-04,120\n")

	provider := NewCSVProvider(dir)
	series, err := provider.Fetch("ACME", time.Date(2020, 6, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	require.Equal(t, 2, series.Len())
	assert.Equal(t, 110.0, series.Price(0))
}

// TestCSVProvider_MissingFile tests the missing-asset failure
func TestCSVProvider_MissingFile(t *testing.T) {
	provider := NewCSVProvider(t.TempDir())
	_, err := provider.Fetch("NOPE", time.Time{})
	assert.Error(t, err)
}

// TestCachedProvider tests that a second fetch is served from cache
func TestCachedProvider(t *testing.T) {
	dir := t.TempDir()
	writePriceFile(t, dir, "ACME", "Date,Close\n2020-01-02,100\n2020-01-03,101\n")

	cached := NewCachedProvider(NewCSVProvider(dir))

	first, err := cached.Fetch("ACME", time.Time{})
	require.NoError(t, err)

	// Removing the file proves the second hit never touches disk.
	require.NoError(t, os.Remove(filepath.Join(dir, "ACME.csv")))

	second, err := cached.Fetch("ACME", time.Time{})
	require.NoError(t, err)
	assert.Equal(t, first, second)

	cached.ClearCache()
	_, err = cached.Fetch("ACME", time.Time{})
	assert.Error(t, err)
}

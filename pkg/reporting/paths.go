package reporting

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// DefaultPathManager implements output path management.
type DefaultPathManager struct{}

// NewDefaultPathManager creates a new path manager.
func NewDefaultPathManager() *DefaultPathManager {
	return &DefaultPathManager{}
}

// GetDefaultOutputDir returns the default output directory for an asset.
func (p *DefaultPathManager) GetDefaultOutputDir(asset string) string {
	a := strings.ToUpper(strings.TrimSpace(asset))
	if a == "" {
		a = "UNKNOWN"
	}
	return filepath.Join("results", a)
}

// EnsureDirectoryExists creates the parent directory of a path if needed.
func (p *DefaultPathManager) EnsureDirectoryExists(path string) error {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		return os.MkdirAll(dir, 0755)
	}
	return nil
}

// DefaultOutputDir is a package-level convenience wrapper.
func DefaultOutputDir(asset string) string {
	return NewDefaultPathManager().GetDefaultOutputDir(asset)
}

// ChartFileName builds a chart file name for an asset and chart kind.
func ChartFileName(asset, kind string) string {
	return fmt.Sprintf("%s_%s.png", strings.ToLower(strings.TrimSpace(asset)), kind)
}

package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/waypoint/pkg/cache"
)

const (
	appName = "waypoint"

	// svgTTL bounds how long a rendered diagram is reused.
	svgTTL = 7 * 24 * time.Hour
)

// cacheDir returns the cache directory, following XDG (~/.cache/waypoint/).
func cacheDir() (string, error) {
	if home := os.Getenv("XDG_CACHE_HOME"); home != "" {
		return filepath.Join(home, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}

// newCache returns the render cache, or a no-op cache when disabled or when
// no cache directory is available.
func (c *CLI) newCache(disabled bool) cache.Cache {
	if disabled {
		return cache.Null{}
	}
	dir, err := cacheDir()
	if err != nil {
		c.Logger.Debug("render cache disabled", "err", err)
		return cache.Null{}
	}
	fc, err := cache.NewFileCache(dir)
	if err != nil {
		c.Logger.Debug("render cache disabled", "err", err)
		return cache.Null{}
	}
	return fc
}

// cacheCommand manages the render cache.
func (c *CLI) cacheCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage the rendered diagram cache",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "clear",
		Short: "Delete all cached diagrams",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := cacheDir()
			if err != nil {
				return fmt.Errorf("get cache dir: %w", err)
			}
			if _, err := os.Stat(dir); os.IsNotExist(err) {
				printInfo("Cache is empty")
				return nil
			}
			fc, err := cache.NewFileCache(dir)
			if err != nil {
				return err
			}
			if err := fc.Clear(); err != nil {
				return err
			}
			printSuccess("Cleared render cache")
			printDetail("Directory: %s", dir)
			return nil
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Print the cache directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := cacheDir()
			if err != nil {
				return fmt.Errorf("get cache dir: %w", err)
			}
			fmt.Fprintln(out, dir)
			return nil
		},
	})
	return cmd
}

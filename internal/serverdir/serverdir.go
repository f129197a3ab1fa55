// Package serverdir resolves the on-disk layout of a Minecraft server
// directory.
package serverdir

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// EnvServerDir is the environment variable name for specifying the server
// directory.
const EnvServerDir = "MC_SERVER_DIR"

// DefaultServerDir is the conventional install location checked last.
const DefaultServerDir = "/opt/minecraft"

// ErrServerDirNotFound is returned when no candidate resolves to an existing
// directory.
var ErrServerDirNotFound = errors.New("server directory not found")

// Layout holds the resolved paths inside a server directory.
type Layout struct {
	Root          string
	LogFile       string // logs/latest.log
	StatsDir      string // world/stats
	UsercacheFile string // usercache.json
}

// For returns the conventional layout rooted at dir without checking that
// any of the paths exist; the log may not have been written yet and the
// stats directory appears only after the first player joins.
func For(dir string) Layout {
	return Layout{
		Root:          dir,
		LogFile:       filepath.Join(dir, "logs", "latest.log"),
		StatsDir:      filepath.Join(dir, "world", "stats"),
		UsercacheFile: filepath.Join(dir, "usercache.json"),
	}
}

// Find resolves the server directory and returns its layout.
//
// Priority:
//  1. explicit (if non-empty)
//  2. MC_SERVER_DIR environment variable
//  3. DefaultServerDir
//
// Returns ErrServerDirNotFound if no candidate is an existing directory.
func Find(explicit string) (Layout, error) {
	if explicit != "" {
		if isDir(explicit) {
			return For(explicit), nil
		}
		return Layout{}, fmt.Errorf("%w: %s is not a directory", ErrServerDirNotFound, explicit)
	}

	if envDir := os.Getenv(EnvServerDir); envDir != "" {
		if isDir(envDir) {
			return For(envDir), nil
		}
		return Layout{}, fmt.Errorf("%w: %s points to an invalid directory", ErrServerDirNotFound, EnvServerDir)
	}

	if isDir(DefaultServerDir) {
		return For(DefaultServerDir), nil
	}

	return Layout{}, ErrServerDirNotFound
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/viper"

	"github.com/werneraleeb-pixel/Beleg-Renamer/internal/config"
	"github.com/werneraleeb-pixel/Beleg-Renamer/internal/engine"
	"github.com/werneraleeb-pixel/Beleg-Renamer/internal/service"
	"github.com/werneraleeb-pixel/Beleg-Renamer/internal/storage"
	"github.com/werneraleeb-pixel/Beleg-Renamer/internal/textsource"
)

// initStorage initializes the storage service with proper path expansion.
func initStorage(ctx context.Context) (service.Storage, error) {
	// Get database path from config
	dbPath := viper.GetString("database.path")
	if dbPath == "" {
		dbPath = config.DefaultDatabasePath()
	}

	// Expand tilde and environment variables
	dbPath = config.ExpandPath(dbPath)

	// Initialize storage
	store, err := storage.NewSQLiteStorage(dbPath)
	if err != nil {
		return nil, err
	}

	// Run migrations
	if err := store.Migrate(ctx); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return store, nil
}

// initEngine wires storage, text extraction and the worker pool. A
// positive workers value overrides the configured rename.workers.
func initEngine(store service.Storage, workers int) *engine.Engine {
	if workers <= 0 {
		workers = viper.GetInt("rename.workers")
	}
	return engine.New(store, textsource.NewFileSource(), workers)
}

// collectReceiptFiles expands the given arguments into a flat, sorted list
// of processable files. Directory arguments are read one level deep; files
// already carrying a backup directory path are skipped.
func collectReceiptFiles(args []string) ([]string, error) {
	var paths []string
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, fmt.Errorf("cannot access %s: %w", arg, err)
		}

		if !info.IsDir() {
			paths = append(paths, arg)
			continue
		}

		entries, err := os.ReadDir(arg)
		if err != nil {
			return nil, fmt.Errorf("cannot read directory %s: %w", arg, err)
		}
		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}
			if !isProcessableFile(entry.Name()) {
				continue
			}
			paths = append(paths, filepath.Join(arg, entry.Name()))
		}
	}

	sort.Strings(paths)
	return paths, nil
}

func isProcessableFile(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".pdf", ".txt":
		return true
	}
	return false
}

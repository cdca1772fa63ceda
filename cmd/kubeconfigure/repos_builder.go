package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/kompox/kubeconfigure/adapters/store/inmem"
	"github.com/kompox/kubeconfigure/adapters/store/rdb"
	"github.com/kompox/kubeconfigure/domain"
)

// repos bundles the endpoint repository and the endpoint cache.
type repos struct {
	Endpoint domain.EndpointRepository
	Cache    domain.EndpointCache
}

// buildRepos creates repositories based on db-url.
// If db-url starts with "file:", the endpoint file is loaded into a memory store
// and written back after every change. A missing file starts an empty inventory.
func buildRepos(cmd *cobra.Command) (*repos, error) {
	dbURL := settingsFromCmd(cmd).DBURL
	ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
	defer cancel()

	switch {
	case strings.HasPrefix(dbURL, "file:"):
		filePath := strings.TrimPrefix(dbURL, "file:")
		if filePath == "" {
			return nil, fmt.Errorf("file path is required for file: URL")
		}
		store := inmem.NewStore()
		if _, err := os.Stat(filePath); err == nil {
			if err := store.LoadFromFile(ctx, filePath); err != nil {
				return nil, fmt.Errorf("failed to load config from %s: %w", filePath, err)
			}
		} else if !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
		return &repos{Endpoint: store.FileBacked(filePath), Cache: store.EndpointCache}, nil

	case strings.HasPrefix(dbURL, "sqlite:") || strings.HasPrefix(dbURL, "sqlite3:"):
		db, err := rdb.OpenFromURL(dbURL)
		if err != nil {
			return nil, err
		}
		if err := rdb.AutoMigrate(db); err != nil {
			return nil, err
		}
		repo := rdb.NewEndpointRepository(db)
		items, err := repo.List(ctx)
		if err != nil {
			return nil, err
		}
		cache := inmem.NewEndpointCache()
		cache.SetEndpoints(items)
		return &repos{Endpoint: repo, Cache: cache}, nil

	default:
		return nil, fmt.Errorf("unsupported db scheme: %s", dbURL)
	}
}

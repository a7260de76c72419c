package app

import (
	"context"

	"github.com/llehouerou/onestop/internal/catalog"
)

// CatalogSource fetches the song catalog and cover images.
type CatalogSource interface {
	catalog.Provider
	FetchCover(ctx context.Context, url string) ([]byte, error)
}

// Compile-time check that the HTTP client is a CatalogSource.
var _ CatalogSource = (*catalog.Client)(nil)

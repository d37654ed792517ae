package session

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/HardMax71/ResuMariner-sub001/internal/catalog"
)

// CatalogFetcher is the backend surface bootstrap needs.
type CatalogFetcher interface {
	FilterOptions(ctx context.Context) (catalog.FilterOptions, error)
}

// BootstrapResult is what a session starts from: the hydrated session and
// the filter catalog. CatalogErr is set when the catalog fetch failed and
// Catalog is the degraded empty value; the session still works, the caller
// surfaces the error as a banner.
type BootstrapResult struct {
	Session    *Session
	Catalog    catalog.FilterOptions
	CatalogErr error
}

// Bootstrap hydrates the session state and fetches the filter catalog
// concurrently. Only a store failure is fatal.
func Bootstrap(ctx context.Context, store Store, backend CatalogFetcher, id string) (*BootstrapResult, error) {
	var (
		state State
		found bool
		res   BootstrapResult
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		state, found, err = store.Load(gctx, id)
		return err
	})
	g.Go(func() error {
		// Degraded catalog is not fatal; capture the error aside.
		res.Catalog, res.CatalogErr = backend.FilterOptions(gctx)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if !found {
		state = NewState(id)
	}
	res.Session = New(state, store)
	return &res, nil
}

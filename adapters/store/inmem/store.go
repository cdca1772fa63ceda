package inmem

import (
	"context"
	"fmt"

	"github.com/kompox/kubeconfigure/config/endpointcfg"
	"github.com/kompox/kubeconfigure/domain"
	"github.com/kompox/kubeconfigure/domain/model"
)

// Store provides a unified interface for all in-memory repositories.
type Store struct {
	EndpointRepository *EndpointRepository
	EndpointCache      *EndpointCache
	// ConfigRoot is the configuration the store was loaded from, if any.
	ConfigRoot *endpointcfg.Root
}

// NewStore creates a new in-memory store with all repositories.
func NewStore() *Store {
	return &Store{
		EndpointRepository: NewEndpointRepository(),
		EndpointCache:      NewEndpointCache(),
	}
}

// LoadFromConfig loads a kubeconfigure.yml configuration into the memory store
// and primes the endpoint cache.
func (s *Store) LoadFromConfig(ctx context.Context, cfg *endpointcfg.Root) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	for _, e := range cfg.ToModels() {
		if err := s.EndpointRepository.Create(ctx, e); err != nil {
			return fmt.Errorf("load endpoint %q: %w", e.Name, err)
		}
	}
	s.ConfigRoot = cfg
	return s.RefreshCache(ctx)
}

// LoadFromFile loads a kubeconfigure.yml file into the memory store.
func (s *Store) LoadFromFile(ctx context.Context, path string) error {
	cfg, err := endpointcfg.Load(path)
	if err != nil {
		return err
	}
	return s.LoadFromConfig(ctx, cfg)
}

// SaveToFile writes the current endpoints back to a kubeconfigure.yml file.
func (s *Store) SaveToFile(ctx context.Context, path string) error {
	items, err := s.EndpointRepository.List(ctx)
	if err != nil {
		return err
	}
	return endpointcfg.Save(path, endpointcfg.FromModels(items))
}

// RefreshCache reloads the endpoint cache from the repository.
func (s *Store) RefreshCache(ctx context.Context) error {
	items, err := s.EndpointRepository.List(ctx)
	if err != nil {
		return err
	}
	s.EndpointCache.SetEndpoints(items)
	return nil
}

// FileBacked returns the endpoint repository of the store wrapped so that every
// successful Create, Update or Delete writes the inventory to path before it
// returns. A failed write is returned as the error of the change.
func (s *Store) FileBacked(path string) domain.EndpointRepository {
	return &fileEndpointRepository{EndpointRepository: s.EndpointRepository, store: s, path: path}
}

type fileEndpointRepository struct {
	*EndpointRepository
	store *Store
	path  string
}

func (r *fileEndpointRepository) save(ctx context.Context) error {
	if err := r.store.SaveToFile(ctx, r.path); err != nil {
		return fmt.Errorf("save endpoints to %s: %w", r.path, err)
	}
	return nil
}

func (r *fileEndpointRepository) Create(ctx context.Context, e *model.Endpoint) error {
	if err := r.EndpointRepository.Create(ctx, e); err != nil {
		return err
	}
	return r.save(ctx)
}

func (r *fileEndpointRepository) Update(ctx context.Context, e *model.Endpoint) error {
	if err := r.EndpointRepository.Update(ctx, e); err != nil {
		return err
	}
	return r.save(ctx)
}

func (r *fileEndpointRepository) Delete(ctx context.Context, id string) error {
	if err := r.EndpointRepository.Delete(ctx, id); err != nil {
		return err
	}
	return r.save(ctx)
}

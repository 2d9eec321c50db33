package usecase

import (
	"context"
	"errors"
	"strings"

	"fotoeventos/internal/domain/entities"
	"fotoeventos/internal/usecase/interfaces"
)

var (
	ErrCatalogServiceInvalidID = errors.New("invalid catalog service id")
)

// ICatalogUseCase exposes the read-only service catalog.

type ICatalogUseCase interface {
	ListServices(ctx context.Context) ([]entities.CatalogService, error)
	GetServiceByID(ctx context.Context, id string) (entities.CatalogService, error)
}

type CatalogUseCase struct {
	repo interfaces.IServiceCatalogRepository
}

var _ ICatalogUseCase = (*CatalogUseCase)(nil)

func NewCatalogUseCase(repo interfaces.IServiceCatalogRepository) *CatalogUseCase {
	return &CatalogUseCase{repo: repo}
}

// ListServices returns active services only. Retired entries stay in the
// table so old quotes still resolve, but they are not offered for new ones.
func (u *CatalogUseCase) ListServices(ctx context.Context) ([]entities.CatalogService, error) {
	all, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	active := make([]entities.CatalogService, 0, len(all))
	for _, svc := range all {
		if svc.Active {
			active = append(active, svc)
		}
	}
	return active, nil
}

func (u *CatalogUseCase) GetServiceByID(ctx context.Context, id string) (entities.CatalogService, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.CatalogService{}, ErrCatalogServiceInvalidID
	}

	svc, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.CatalogService{}, err
	}
	if svc.ID == "" {
		return entities.CatalogService{}, ErrCatalogServiceNotFound
	}
	return svc, nil
}

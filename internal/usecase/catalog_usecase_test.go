package usecase

import (
	"context"
	"errors"
	"testing"

	"fotoeventos/internal/domain/entities"
	mock_interfaces "fotoeventos/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestCatalogUseCase_ListServices(t *testing.T) {
	t.Run("repo error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIServiceCatalogRepository(ctrl)
		uc := NewCatalogUseCase(repo)
		repo.EXPECT().List(gomock.Any()).Return(nil, errors.New("db"))

		_, err := uc.ListServices(context.Background())
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("filters retired services", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIServiceCatalogRepository(ctrl)
		uc := NewCatalogUseCase(repo)
		repo.EXPECT().List(gomock.Any()).Return([]entities.CatalogService{
			{ID: "svc-1", Name: "Cobertura fotográfica", Active: true},
			{ID: "svc-2", Name: "Filmagem com drone", Active: false},
			{ID: "svc-3", Name: "Álbum impresso", Active: true},
		}, nil)

		res, err := uc.ListServices(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(res) != 2 || res[0].ID != "svc-1" || res[1].ID != "svc-3" {
			t.Fatalf("unexpected result: %+v", res)
		}
	})
}

func TestCatalogUseCase_GetServiceByID(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewCatalogUseCase(nil)
		_, err := uc.GetServiceByID(context.Background(), " ")
		if !errors.Is(err, ErrCatalogServiceInvalidID) {
			t.Fatalf("expected ErrCatalogServiceInvalidID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIServiceCatalogRepository(ctrl)
		uc := NewCatalogUseCase(repo)
		repo.EXPECT().GetByID(gomock.Any(), "svc-1").Return(entities.CatalogService{}, nil)

		_, err := uc.GetServiceByID(context.Background(), "svc-1")
		if !errors.Is(err, ErrCatalogServiceNotFound) {
			t.Fatalf("expected ErrCatalogServiceNotFound, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIServiceCatalogRepository(ctrl)
		uc := NewCatalogUseCase(repo)
		repo.EXPECT().GetByID(gomock.Any(), "svc-1").Return(entities.CatalogService{ID: "svc-1"}, nil)

		res, err := uc.GetServiceByID(context.Background(), " svc-1 ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ID != "svc-1" {
			t.Fatalf("unexpected result: %+v", res)
		}
	})
}

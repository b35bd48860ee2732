package usecase

import (
	"context"
	"testing"

	"quote_desk/internal/domain/entities"
	mock_interfaces "quote_desk/internal/usecase/interfaces/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestCategoryUseCase(t *testing.T) {
	ctx := context.Background()

	t.Run("create assigns id and timestamps", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockICategoryRepository(ctrl)
		uc := NewCategoryUseCase(repo)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, c entities.Category) (entities.Category, error) {
			return c, nil
		})

		got, err := uc.Create(ctx, entities.Category{Name: "Hotel"})
		require.NoError(t, err)
		assert.NotEmpty(t, got.ID)
		assert.False(t, got.CreatedAt.IsZero())
		assert.Equal(t, got.CreatedAt, got.UpdatedAt)
	})

	t.Run("lookups", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockICategoryRepository(ctrl)
		uc := NewCategoryUseCase(repo)

		_, err := uc.GetByID(ctx, " ")
		assert.ErrorIs(t, err, ErrInvalidCategoryID)
		_, err = uc.GetByName(ctx, "")
		assert.ErrorIs(t, err, ErrInvalidCategoryName)

		repo.EXPECT().GetByName(gomock.Any(), "hotel").Return(entities.Category{ID: "1", Name: "Hotel"}, nil)
		got, err := uc.GetByName(ctx, " hotel ")
		require.NoError(t, err)
		assert.Equal(t, "Hotel", got.Name)

		repo.EXPECT().GetByID(gomock.Any(), "2").Return(entities.Category{}, nil)
		_, err = uc.GetByID(ctx, "2")
		assert.ErrorIs(t, err, ErrCategoryNotFound)
	})

	t.Run("update and delete", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockICategoryRepository(ctrl)
		uc := NewCategoryUseCase(repo)

		name := "Hotels"
		repo.EXPECT().Update(gomock.Any(), "9", gomock.Any()).Return(entities.Category{}, nil)
		_, err := uc.Update(ctx, "9", entities.CategoryPatch{Name: &name})
		assert.ErrorIs(t, err, ErrCategoryNotFound)

		repo.EXPECT().Delete(gomock.Any(), "9").Return(nil)
		assert.NoError(t, uc.Delete(ctx, "9"))
		assert.ErrorIs(t, uc.Delete(ctx, ""), ErrInvalidCategoryID)
	})
}

func TestCustomerUseCase(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	repo := mock_interfaces.NewMockICustomerRepository(ctrl)
	uc := NewCustomerUseCase(repo)

	repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, c entities.Customer) (entities.Customer, error) {
		return c, nil
	})
	created, err := uc.Create(ctx, entities.Customer{Name: "Viajes Sol", Email: " info@sol.mx "})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "info@sol.mx", created.Email)

	repo.EXPECT().GetByID(gomock.Any(), "x").Return(entities.Customer{}, nil)
	_, err = uc.GetByID(ctx, "x")
	assert.ErrorIs(t, err, ErrCustomerNotFound)

	flag := true
	repo.EXPECT().Update(gomock.Any(), "c1", entities.CustomerPatch{CustomPricing: &flag}).Return(entities.Customer{ID: "c1", CustomPricing: true}, nil)
	updated, err := uc.Update(ctx, "c1", entities.CustomerPatch{CustomPricing: &flag})
	require.NoError(t, err)
	assert.True(t, updated.CustomPricing)
}

func TestServiceUseCase(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	repo := mock_interfaces.NewMockIServiceRepository(ctrl)
	uc := NewServiceUseCase(repo)

	_, err := uc.GetByID(ctx, "")
	assert.ErrorIs(t, err, ErrInvalidServiceID)

	price := 75.0
	repo.EXPECT().Update(gomock.Any(), "s1", gomock.Any()).Return(entities.Service{}, nil)
	_, err = uc.Update(ctx, "s1", entities.ServicePatch{BasePrice: &price})
	assert.ErrorIs(t, err, ErrServiceNotFound)

	repo.EXPECT().List(gomock.Any()).Return([]entities.Service{{ID: "s1"}}, nil)
	all, err := uc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

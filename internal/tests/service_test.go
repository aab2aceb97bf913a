package tests

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"menu-svc/internal/domain"
	"menu-svc/internal/mocks"
	"menu-svc/internal/service"
	"menu-svc/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func catalogFixture(t *testing.T) (*service.CatalogService, *mocks.CatalogRepository, *mocks.MenuCache, *mocks.EventPublisher) {
	repository := mocks.NewCatalogRepository(t)
	cache := mocks.NewMenuCache(t)
	publisher := mocks.NewEventPublisher(t)
	return service.NewCatalogService(repository, cache, publisher), repository, cache, publisher
}

func expectChangeNotification(cache *mocks.MenuCache, publisher *mocks.EventPublisher) {
	cache.On("Invalidate", mock.Anything).Return(nil).Once()
	publisher.On("Publish", mock.Anything, mock.Anything).Return(nil).Once()
}

func TestCatalogService_CreateDepartment(t *testing.T) {
	svc, repository, cache, publisher := catalogFixture(t)
	ctx := context.Background()

	title := domain.LocalizedText{CA: "Entrants", ES: "Entrantes"}

	var created *domain.Department
	repository.On("CreateDepartment", mock.Anything).Run(func(args mock.Arguments) {
		created = args.Get(0).(*domain.Department)
	}).Return(nil).Once()
	expectChangeNotification(cache, publisher)

	id, err := svc.CreateDepartment(ctx, domain.DepartmentPayload{Title: &title})
	assert.NoError(t, err)
	assert.NotEmpty(t, id)
	assert.Equal(t, id, created.ID)
	assert.Equal(t, title, created.Title)
}

func TestCatalogService_DeleteDepartment(t *testing.T) {
	svc, repository, cache, publisher := catalogFixture(t)
	ctx := context.Background()

	tests := []struct {
		name          string
		prepareMocks  func()
		expectedError error
	}{
		{
			name: "success",
			prepareMocks: func() {
				repository.On("DeleteDepartment", "dept-1").Return(int64(1), nil).Once()
				expectChangeNotification(cache, publisher)
			},
			expectedError: nil,
		},
		{
			name: "not_found",
			prepareMocks: func() {
				repository.On("DeleteDepartment", "dept-1").Return(int64(0), nil).Once()
			},
			expectedError: service.ErrNotFound,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			testCase.prepareMocks()
			err := svc.DeleteDepartment(ctx, "dept-1")
			assert.ErrorIs(t, err, testCase.expectedError)
		})
	}
}

func TestCatalogService_ReorderDepartments(t *testing.T) {
	svc, repository, cache, publisher := catalogFixture(t)
	ctx := context.Background()

	tests := []struct {
		name          string
		ids           []string
		prepareMocks  func(ids []string)
		expectedError error
	}{
		{
			// Positions follow array index: submitting [b, a] makes b first.
			name: "swap",
			ids:  []string{"b", "a"},
			prepareMocks: func(ids []string) {
				repository.On("ReorderDepartments", ids).Return(nil).Once()
				expectChangeNotification(cache, publisher)
			},
			expectedError: nil,
		},
		{
			name: "unknown_id_aborts",
			ids:  []string{"a", "ghost"},
			prepareMocks: func(ids []string) {
				repository.On("ReorderDepartments", ids).Return(sql.ErrNoRows).Once()
			},
			expectedError: service.ErrNotFound,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			testCase.prepareMocks(testCase.ids)
			err := svc.ReorderDepartments(ctx, testCase.ids)
			assert.ErrorIs(t, err, testCase.expectedError)
		})
	}
}

func TestCatalogService_CreateItem_MapsDuplicate(t *testing.T) {
	svc, repository, _, _ := catalogFixture(t)
	ctx := context.Background()

	departmentID := "dept-1"
	title := domain.LocalizedText{CA: "Pa", ES: "Pan"}
	price := 2.5

	repository.On("CreateItem", mock.Anything).Return(storage.ErrDuplicate).Once()

	_, err := svc.CreateItem(ctx, domain.ItemPayload{
		DepartmentID: &departmentID, Title: &title, Price: &price,
	})
	assert.ErrorIs(t, err, service.ErrCodeExists)
}

func TestCatalogService_MoveItem_CrossDepartment(t *testing.T) {
	svc, repository, cache, publisher := catalogFixture(t)
	ctx := context.Background()

	// Item x moves from dept-a into dept-c at index 0, in front of y.
	zero := 0
	repository.On("GetItemDepartment", "x").Return("dept-a", nil).Once()
	repository.On("ListItemIDs", "dept-a").Return([]string{"x", "a2"}, nil).Once()
	repository.On("ListItemIDs", "dept-c").Return([]string{"y"}, nil).Once()
	repository.On("ReorderItems", "dept-c", []string{"x", "y"}).Return(nil).Once()
	repository.On("ReorderItems", "dept-a", []string{"a2"}).Return(nil).Once()
	expectChangeNotification(cache, publisher)

	err := svc.MoveItem(ctx, domain.MovePayload{ID: "x", Index: &zero, DepartmentID: "dept-c"})
	assert.NoError(t, err)
}

func TestCatalogService_MoveItem_SameDepartmentBeforeID(t *testing.T) {
	svc, repository, cache, publisher := catalogFixture(t)
	ctx := context.Background()

	beforeID := "a"
	repository.On("GetItemDepartment", "c").Return("dept-1", nil).Once()
	repository.On("ListItemIDs", "dept-1").Return([]string{"a", "b", "c"}, nil).Once()
	repository.On("ReorderItems", "dept-1", []string{"c", "a", "b"}).Return(nil).Once()
	expectChangeNotification(cache, publisher)

	err := svc.MoveItem(ctx, domain.MovePayload{ID: "c", BeforeID: &beforeID, DepartmentID: "dept-1"})
	assert.NoError(t, err)
}

func TestCatalogService_MoveItem_MissingBeforeIDAppends(t *testing.T) {
	svc, repository, cache, publisher := catalogFixture(t)
	ctx := context.Background()

	beforeID := "ghost"
	repository.On("GetItemDepartment", "a").Return("dept-1", nil).Once()
	repository.On("ListItemIDs", "dept-1").Return([]string{"a", "b"}, nil).Once()
	repository.On("ReorderItems", "dept-1", []string{"b", "a"}).Return(nil).Once()
	expectChangeNotification(cache, publisher)

	err := svc.MoveItem(ctx, domain.MovePayload{ID: "a", BeforeID: &beforeID, DepartmentID: "dept-1"})
	assert.NoError(t, err)
}

func TestCatalogService_MoveItem_UnknownItem(t *testing.T) {
	svc, repository, _, _ := catalogFixture(t)
	ctx := context.Background()

	repository.On("GetItemDepartment", "ghost").Return("", sql.ErrNoRows).Once()

	err := svc.MoveItem(ctx, domain.MovePayload{ID: "ghost", DepartmentID: "dept-1"})
	assert.ErrorIs(t, err, service.ErrNotFound)
}

func TestCatalogService_CreateAllergen_NormalizesCode(t *testing.T) {
	svc, repository, cache, publisher := catalogFixture(t)
	ctx := context.Background()

	var created *domain.Allergen
	repository.On("CreateAllergen", mock.Anything).Run(func(args mock.Arguments) {
		created = args.Get(0).(*domain.Allergen)
	}).Return(nil).Once()
	expectChangeNotification(cache, publisher)

	_, err := svc.CreateAllergen(ctx, domain.AllergenPayload{
		Code:  " fs ",
		Label: domain.LocalizedText{CA: "Fruits secs", ES: "Frutos secos"},
	})
	assert.NoError(t, err)
	assert.Equal(t, "FS", created.Code)
}

func TestCatalogService_CreateAllergen_DuplicateCode(t *testing.T) {
	svc, repository, _, _ := catalogFixture(t)
	ctx := context.Background()

	repository.On("CreateAllergen", mock.Anything).Return(storage.ErrDuplicate).Once()

	_, err := svc.CreateAllergen(ctx, domain.AllergenPayload{Code: "G"})
	assert.ErrorIs(t, err, service.ErrCodeExists)
}

func TestCatalogService_DeleteAllergen(t *testing.T) {
	svc, repository, cache, publisher := catalogFixture(t)
	ctx := context.Background()

	t.Run("in_use", func(t *testing.T) {
		repository.On("CountAllergenRefs", "alg-1").Return(3, 1, nil).Once()

		err := svc.DeleteAllergen(ctx, "alg-1")

		var inUse *service.AllergenInUseError
		assert.ErrorAs(t, err, &inUse)
		assert.Equal(t, 3, inUse.ItemsUsing)
		assert.Equal(t, 1, inUse.SupplementsUsing)
	})

	t.Run("unreferenced", func(t *testing.T) {
		repository.On("CountAllergenRefs", "alg-1").Return(0, 0, nil).Once()
		repository.On("DeleteAllergen", "alg-1").Return(int64(1), nil).Once()
		expectChangeNotification(cache, publisher)

		err := svc.DeleteAllergen(ctx, "alg-1")
		assert.NoError(t, err)
	})
}

func TestCatalogService_NotificationsAreBestEffort(t *testing.T) {
	svc, repository, cache, publisher := catalogFixture(t)
	ctx := context.Background()

	repository.On("DeleteItem", "it-1").Return(int64(1), nil).Once()
	cache.On("Invalidate", mock.Anything).Return(errors.New("redis down")).Once()
	publisher.On("Publish", mock.Anything, mock.Anything).Return(errors.New("kafka down")).Once()

	// Cache and event failures never surface to the admin request.
	err := svc.DeleteItem(ctx, "it-1")
	assert.NoError(t, err)
}

func TestMenuService_CacheAside(t *testing.T) {
	repository := mocks.NewMenuRepository(t)
	cache := mocks.NewMenuCache(t)
	svc := service.NewMenuService(repository, cache)
	ctx := context.Background()

	snapshot := &domain.MenuSnapshot{
		Departments:      []domain.DepartmentMenu{},
		SupplementGroups: []domain.SupplementGroupMenu{},
		Allergens:        []domain.Allergen{},
	}

	t.Run("miss_loads_and_caches", func(t *testing.T) {
		cache.On("Get", mock.Anything).Return(nil, nil).Once()
		repository.On("GetMenu").Return(snapshot, nil).Once()
		cache.On("Set", mock.Anything, snapshot).Return(nil).Once()

		got, err := svc.Menu(ctx)
		assert.NoError(t, err)
		assert.Equal(t, snapshot, got)
	})

	t.Run("hit_skips_repository", func(t *testing.T) {
		cache.On("Get", mock.Anything).Return(snapshot, nil).Once()

		got, err := svc.Menu(ctx)
		assert.NoError(t, err)
		assert.Equal(t, snapshot, got)
	})
}

package service

import (
	"context"
	"time"

	"menu-svc/internal/domain"
)

type MenuServiceInterface interface {
	Menu(ctx context.Context) (*domain.MenuSnapshot, error)
}

type CatalogServiceInterface interface {
	ListDepartments() ([]domain.Department, error)
	CreateDepartment(ctx context.Context, p domain.DepartmentPayload) (string, error)
	UpdateDepartment(ctx context.Context, id string, p domain.DepartmentPayload) error
	DeleteDepartment(ctx context.Context, id string) error
	ReorderDepartments(ctx context.Context, ids []string) error

	CreateItem(ctx context.Context, p domain.ItemPayload) (string, error)
	UpdateItem(ctx context.Context, id string, p domain.ItemPayload) error
	DeleteItem(ctx context.Context, id string) error
	ReorderItems(ctx context.Context, departmentID string, ids []string) error
	MoveItem(ctx context.Context, p domain.MovePayload) error

	CreateSupplementGroup(ctx context.Context, p domain.SupplementGroupPayload) (string, error)
	UpdateSupplementGroup(ctx context.Context, id string, p domain.SupplementGroupPayload) error
	DeleteSupplementGroup(ctx context.Context, id string) error
	ReorderSupplementGroups(ctx context.Context, ids []string) error

	CreateSupplementItem(ctx context.Context, p domain.SupplementItemPayload) (string, error)
	UpdateSupplementItem(ctx context.Context, id string, p domain.SupplementItemPayload) error
	DeleteSupplementItem(ctx context.Context, id string) error
	ReorderSupplementItems(ctx context.Context, groupID string, ids []string) error
	MoveSupplementItem(ctx context.Context, p domain.MovePayload) error

	ListAllergens() ([]domain.Allergen, error)
	CreateAllergen(ctx context.Context, p domain.AllergenPayload) (string, error)
	DeleteAllergen(ctx context.Context, id string) error
}

type SuggestionServiceInterface interface {
	Current() (*domain.SheetView, error)
	ListSheets() ([]domain.SuggestionSheet, error)
	CreateSheet(ctx context.Context, dateFrom, dateTo time.Time, isActive bool) (string, error)
	UpdateSheet(ctx context.Context, id string, dateFrom, dateTo *time.Time, isActive *bool) error
	DeleteSheet(ctx context.Context, id string) error

	CreateItem(ctx context.Context, p domain.SuggestionItemPayload) (string, error)
	UpdateItem(ctx context.Context, id string, p domain.SuggestionItemPayload) error
	DeleteItem(ctx context.Context, id string) error
	Reorder(ctx context.Context, sheetID, section string, ids []string) error
	MoveItem(ctx context.Context, p domain.MovePayload) error
}

type AuthServiceInterface interface {
	Login(username, password string) (string, error)
	Verify(token string) (*AdminClaims, error)
}

type MenuRepository interface {
	GetMenu() (*domain.MenuSnapshot, error)
}

type CatalogRepository interface {
	ListDepartments() ([]domain.Department, error)
	CreateDepartment(d *domain.Department) error
	UpdateDepartment(id string, p domain.DepartmentPayload) error
	DeleteDepartment(id string) (int64, error)
	ReorderDepartments(ids []string) error

	CreateItem(it *domain.Item) error
	UpdateItem(id string, p domain.ItemPayload) error
	DeleteItem(id string) (int64, error)
	GetItemDepartment(id string) (string, error)
	ListItemIDs(departmentID string) ([]string, error)
	ReorderItems(departmentID string, ids []string) error

	CreateSupplementGroup(g *domain.SupplementGroup) error
	UpdateSupplementGroup(id string, p domain.SupplementGroupPayload) error
	DeleteSupplementGroup(id string) (int64, error)
	ReorderSupplementGroups(ids []string) error

	CreateSupplementItem(it *domain.SupplementItem) error
	UpdateSupplementItem(id string, p domain.SupplementItemPayload) error
	DeleteSupplementItem(id string) (int64, error)
	GetSupplementItemGroup(id string) (string, error)
	ListSupplementItemIDs(groupID string) ([]string, error)
	ReorderSupplementItems(groupID string, ids []string) error

	ListAllergens() ([]domain.Allergen, error)
	CreateAllergen(a *domain.Allergen) error
	CountAllergenRefs(id string) (int, int, error)
	DeleteAllergen(id string) (int64, error)
}

type SuggestionRepository interface {
	ListSheets() ([]domain.SuggestionSheet, error)
	CreateSheet(s *domain.SuggestionSheet) error
	UpdateSheet(id string, dateFrom, dateTo *time.Time, isActive *bool) error
	DeleteSheet(id string) (int64, error)
	GetActiveSheet() (*domain.SuggestionSheet, []domain.SuggestionItem, error)

	CreateSuggestionItem(it *domain.SuggestionItem, position *int) error
	UpdateSuggestionItem(id string, p domain.SuggestionItemPayload) error
	DeleteSuggestionItem(id string) (int64, error)
	GetSuggestionItemScope(id string) (string, string, error)
	ListSuggestionItemIDs(sheetID, section string) ([]string, error)
	ReorderSuggestionItems(sheetID, section string, ids []string) error
}

type MenuCache interface {
	Get(ctx context.Context) (*domain.MenuSnapshot, error)
	Set(ctx context.Context, snapshot *domain.MenuSnapshot) error
	Invalidate(ctx context.Context) error
}

type EventPublisher interface {
	Publish(ctx context.Context, event domain.MenuEvent) error
}

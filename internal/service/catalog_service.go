package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"menu-svc/internal/domain"
	"menu-svc/internal/ordering"
	"menu-svc/internal/storage"

	"github.com/google/uuid"
)

var (
	ErrNotFound   = errors.New("record not found")
	ErrCodeExists = errors.New("allergen code already exists")
)

// AllergenInUseError refuses a deletion while items or supplement items still
// reference the allergen.
type AllergenInUseError struct {
	ItemsUsing       int `json:"itemsUsing"`
	SupplementsUsing int `json:"supplementsUsing"`
}

func (e *AllergenInUseError) Error() string {
	return fmt.Sprintf("allergen in use by %d items and %d supplements", e.ItemsUsing, e.SupplementsUsing)
}

func mapStoreError(err error) error {
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return ErrNotFound
	case errors.Is(err, storage.ErrDuplicate):
		return ErrCodeExists
	}
	return err
}

// CatalogService covers the admin side of the menu: departments, items,
// supplement groups/items and allergens, including the reorder and move
// operations. Every successful mutation invalidates the menu snapshot and
// emits a change event.
type CatalogService struct {
	repo      CatalogRepository
	cache     MenuCache
	publisher EventPublisher
}

func NewCatalogService(repo CatalogRepository, cache MenuCache, publisher EventPublisher) *CatalogService {
	return &CatalogService{repo: repo, cache: cache, publisher: publisher}
}

// notifyChange is best-effort: a stale cache or a lost event never fails the
// admin request.
func (s *CatalogService) notifyChange(ctx context.Context, entity, id, eventType string) {
	if s.cache != nil {
		if err := s.cache.Invalidate(ctx); err != nil {
			log.Printf("Warning: failed to invalidate menu cache: %v", err)
		}
	}
	if s.publisher != nil {
		err := s.publisher.Publish(ctx, domain.MenuEvent{
			Type:      eventType,
			Entity:    entity,
			ID:        id,
			Timestamp: time.Now(),
		})
		if err != nil {
			log.Printf("Warning: failed to publish menu event: %v", err)
		}
	}
}

func (s *CatalogService) ListDepartments() ([]domain.Department, error) {
	return s.repo.ListDepartments()
}

func (s *CatalogService) CreateDepartment(ctx context.Context, p domain.DepartmentPayload) (string, error) {
	d := &domain.Department{ID: uuid.NewString()}
	if p.Title != nil {
		d.Title = *p.Title
	}
	if p.Order != nil {
		d.Order = *p.Order
	}
	if err := s.repo.CreateDepartment(d); err != nil {
		return "", mapStoreError(err)
	}
	s.notifyChange(ctx, "department", d.ID, "created")
	return d.ID, nil
}

func (s *CatalogService) UpdateDepartment(ctx context.Context, id string, p domain.DepartmentPayload) error {
	if err := s.repo.UpdateDepartment(id, p); err != nil {
		return mapStoreError(err)
	}
	s.notifyChange(ctx, "department", id, "updated")
	return nil
}

func (s *CatalogService) DeleteDepartment(ctx context.Context, id string) error {
	n, err := s.repo.DeleteDepartment(id)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	s.notifyChange(ctx, "department", id, "deleted")
	return nil
}

func (s *CatalogService) ReorderDepartments(ctx context.Context, ids []string) error {
	if err := s.repo.ReorderDepartments(ids); err != nil {
		return mapStoreError(err)
	}
	s.notifyChange(ctx, "department", "", "reordered")
	return nil
}

func (s *CatalogService) CreateItem(ctx context.Context, p domain.ItemPayload) (string, error) {
	it := &domain.Item{ID: uuid.NewString(), Allergens: []string{}}
	if p.DepartmentID != nil {
		it.DepartmentID = *p.DepartmentID
	}
	if p.Title != nil {
		it.Title = *p.Title
	}
	if p.Price != nil {
		it.Price = *p.Price
	}
	if p.Allergens != nil {
		it.Allergens = *p.Allergens
	}
	if p.Order != nil {
		it.Order = *p.Order
	}
	if err := s.repo.CreateItem(it); err != nil {
		return "", mapStoreError(err)
	}
	s.notifyChange(ctx, "item", it.ID, "created")
	return it.ID, nil
}

func (s *CatalogService) UpdateItem(ctx context.Context, id string, p domain.ItemPayload) error {
	if err := s.repo.UpdateItem(id, p); err != nil {
		return mapStoreError(err)
	}
	s.notifyChange(ctx, "item", id, "updated")
	return nil
}

func (s *CatalogService) DeleteItem(ctx context.Context, id string) error {
	n, err := s.repo.DeleteItem(id)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	s.notifyChange(ctx, "item", id, "deleted")
	return nil
}

func (s *CatalogService) ReorderItems(ctx context.Context, departmentID string, ids []string) error {
	if err := s.repo.ReorderItems(departmentID, ids); err != nil {
		return mapStoreError(err)
	}
	s.notifyChange(ctx, "item", "", "reordered")
	return nil
}

// MoveItem relocates an item into a department at a given index, renumbering
// the destination and, for cross-department moves, the source. The two
// reorders are independent transactions; a failure of the second leaves the
// destination committed, recovered by reloading server truth.
func (s *CatalogService) MoveItem(ctx context.Context, p domain.MovePayload) error {
	src, err := s.repo.GetItemDepartment(p.ID)
	if err != nil {
		return mapStoreError(err)
	}

	var srcIDs []string
	if src != p.DepartmentID {
		if srcIDs, err = s.repo.ListItemIDs(src); err != nil {
			return err
		}
	}
	dstIDs, err := s.repo.ListItemIDs(p.DepartmentID)
	if err != nil {
		return err
	}

	newSrc, newDst := splice(srcIDs, dstIDs, p)

	if err := s.repo.ReorderItems(p.DepartmentID, newDst); err != nil {
		return mapStoreError(err)
	}
	if src != p.DepartmentID {
		if err := s.repo.ReorderItems(src, newSrc); err != nil {
			return mapStoreError(err)
		}
	}
	s.notifyChange(ctx, "item", p.ID, "moved")
	return nil
}

// splice computes the post-move orderings for both scopes. A beforeId that is
// not in the destination, a past-end index, or no position at all each fall
// back to appending.
func splice(srcIDs, dstIDs []string, p domain.MovePayload) (newSrc, newDst []string) {
	if p.BeforeID != nil {
		newSrc, _ = ordering.Remove(srcIDs, p.ID)
		stripped, _ := ordering.Remove(dstIDs, p.ID)
		newDst = ordering.InsertBefore(stripped, p.ID, *p.BeforeID)
		return newSrc, newDst
	}
	index := -1
	if p.Index != nil {
		index = *p.Index
	}
	return ordering.Move(srcIDs, dstIDs, p.ID, index)
}

func (s *CatalogService) CreateSupplementGroup(ctx context.Context, p domain.SupplementGroupPayload) (string, error) {
	g := &domain.SupplementGroup{ID: uuid.NewString()}
	if p.Title != nil {
		g.Title = *p.Title
	}
	if p.Order != nil {
		g.Order = *p.Order
	}
	if err := s.repo.CreateSupplementGroup(g); err != nil {
		return "", mapStoreError(err)
	}
	s.notifyChange(ctx, "supplement_group", g.ID, "created")
	return g.ID, nil
}

func (s *CatalogService) UpdateSupplementGroup(ctx context.Context, id string, p domain.SupplementGroupPayload) error {
	if err := s.repo.UpdateSupplementGroup(id, p); err != nil {
		return mapStoreError(err)
	}
	s.notifyChange(ctx, "supplement_group", id, "updated")
	return nil
}

func (s *CatalogService) DeleteSupplementGroup(ctx context.Context, id string) error {
	n, err := s.repo.DeleteSupplementGroup(id)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	s.notifyChange(ctx, "supplement_group", id, "deleted")
	return nil
}

func (s *CatalogService) ReorderSupplementGroups(ctx context.Context, ids []string) error {
	if err := s.repo.ReorderSupplementGroups(ids); err != nil {
		return mapStoreError(err)
	}
	s.notifyChange(ctx, "supplement_group", "", "reordered")
	return nil
}

func (s *CatalogService) CreateSupplementItem(ctx context.Context, p domain.SupplementItemPayload) (string, error) {
	it := &domain.SupplementItem{ID: uuid.NewString(), Allergens: []string{}}
	if p.GroupID != nil {
		it.GroupID = *p.GroupID
	}
	if p.Title != nil {
		it.Title = *p.Title
	}
	if p.Price != nil {
		it.Price = *p.Price
	}
	if p.Allergens != nil {
		it.Allergens = *p.Allergens
	}
	if p.Order != nil {
		it.Order = *p.Order
	}
	if err := s.repo.CreateSupplementItem(it); err != nil {
		return "", mapStoreError(err)
	}
	s.notifyChange(ctx, "supplement_item", it.ID, "created")
	return it.ID, nil
}

func (s *CatalogService) UpdateSupplementItem(ctx context.Context, id string, p domain.SupplementItemPayload) error {
	if err := s.repo.UpdateSupplementItem(id, p); err != nil {
		return mapStoreError(err)
	}
	s.notifyChange(ctx, "supplement_item", id, "updated")
	return nil
}

func (s *CatalogService) DeleteSupplementItem(ctx context.Context, id string) error {
	n, err := s.repo.DeleteSupplementItem(id)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	s.notifyChange(ctx, "supplement_item", id, "deleted")
	return nil
}

func (s *CatalogService) ReorderSupplementItems(ctx context.Context, groupID string, ids []string) error {
	if err := s.repo.ReorderSupplementItems(groupID, ids); err != nil {
		return mapStoreError(err)
	}
	s.notifyChange(ctx, "supplement_item", "", "reordered")
	return nil
}

func (s *CatalogService) MoveSupplementItem(ctx context.Context, p domain.MovePayload) error {
	src, err := s.repo.GetSupplementItemGroup(p.ID)
	if err != nil {
		return mapStoreError(err)
	}

	var srcIDs []string
	if src != p.GroupID {
		if srcIDs, err = s.repo.ListSupplementItemIDs(src); err != nil {
			return err
		}
	}
	dstIDs, err := s.repo.ListSupplementItemIDs(p.GroupID)
	if err != nil {
		return err
	}

	newSrc, newDst := splice(srcIDs, dstIDs, p)

	if err := s.repo.ReorderSupplementItems(p.GroupID, newDst); err != nil {
		return mapStoreError(err)
	}
	if src != p.GroupID {
		if err := s.repo.ReorderSupplementItems(src, newSrc); err != nil {
			return mapStoreError(err)
		}
	}
	s.notifyChange(ctx, "supplement_item", p.ID, "moved")
	return nil
}

func (s *CatalogService) ListAllergens() ([]domain.Allergen, error) {
	return s.repo.ListAllergens()
}

func (s *CatalogService) CreateAllergen(ctx context.Context, p domain.AllergenPayload) (string, error) {
	a := &domain.Allergen{
		ID:    uuid.NewString(),
		Code:  strings.ToUpper(strings.TrimSpace(p.Code)),
		Label: p.Label,
	}
	if err := s.repo.CreateAllergen(a); err != nil {
		return "", mapStoreError(err)
	}
	s.notifyChange(ctx, "allergen", a.ID, "created")
	return a.ID, nil
}

// DeleteAllergen counts references first; any remaining usage turns the
// deletion into a conflict carrying both counts.
func (s *CatalogService) DeleteAllergen(ctx context.Context, id string) error {
	items, supplements, err := s.repo.CountAllergenRefs(id)
	if err != nil {
		return err
	}
	if items+supplements > 0 {
		return &AllergenInUseError{ItemsUsing: items, SupplementsUsing: supplements}
	}

	n, err := s.repo.DeleteAllergen(id)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	s.notifyChange(ctx, "allergen", id, "deleted")
	return nil
}

var _ CatalogServiceInterface = (*CatalogService)(nil)

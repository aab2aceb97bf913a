package service

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"time"

	"menu-svc/internal/domain"

	"github.com/google/uuid"
)

// SuggestionService manages the weekly suggestion sheets and their sectioned
// items. Activation is exclusive: at most one sheet is active at a time.
type SuggestionService struct {
	repo      SuggestionRepository
	publisher EventPublisher
}

func NewSuggestionService(repo SuggestionRepository, publisher EventPublisher) *SuggestionService {
	return &SuggestionService{repo: repo, publisher: publisher}
}

func (s *SuggestionService) notifyChange(ctx context.Context, entity, id, eventType string) {
	if s.publisher == nil {
		return
	}
	err := s.publisher.Publish(ctx, domain.MenuEvent{
		Type:      eventType,
		Entity:    entity,
		ID:        id,
		Timestamp: time.Now(),
	})
	if err != nil {
		log.Printf("Warning: failed to publish suggestion event: %v", err)
	}
}

// Current returns the active sheet with items grouped by section; (nil, nil)
// when no sheet is active. An expired sheet stays current until an admin
// deactivates or replaces it.
func (s *SuggestionService) Current() (*domain.SheetView, error) {
	sheet, items, err := s.repo.GetActiveSheet()
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	view := &domain.SheetView{
		ID:       sheet.ID,
		DateFrom: sheet.DateFrom,
		DateTo:   sheet.DateTo,
		IsActive: sheet.IsActive,
		Sections: domain.SheetSections{
			Food:     []domain.SuggestionItem{},
			Desserts: []domain.SuggestionItem{},
			Other:    []domain.SuggestionItem{},
		},
	}
	for _, it := range items {
		switch it.Section {
		case domain.SectionFood:
			view.Sections.Food = append(view.Sections.Food, it)
		case domain.SectionDessert:
			view.Sections.Desserts = append(view.Sections.Desserts, it)
		case domain.SectionOther:
			view.Sections.Other = append(view.Sections.Other, it)
		}
	}
	return view, nil
}

func (s *SuggestionService) ListSheets() ([]domain.SuggestionSheet, error) {
	return s.repo.ListSheets()
}

func (s *SuggestionService) CreateSheet(ctx context.Context, dateFrom, dateTo time.Time, isActive bool) (string, error) {
	sheet := &domain.SuggestionSheet{
		ID:       uuid.NewString(),
		DateFrom: dateFrom,
		DateTo:   dateTo,
		IsActive: isActive,
	}
	if err := s.repo.CreateSheet(sheet); err != nil {
		return "", mapStoreError(err)
	}
	s.notifyChange(ctx, "suggestion_sheet", sheet.ID, "created")
	return sheet.ID, nil
}

func (s *SuggestionService) UpdateSheet(ctx context.Context, id string, dateFrom, dateTo *time.Time, isActive *bool) error {
	if err := s.repo.UpdateSheet(id, dateFrom, dateTo, isActive); err != nil {
		return mapStoreError(err)
	}
	s.notifyChange(ctx, "suggestion_sheet", id, "updated")
	return nil
}

func (s *SuggestionService) DeleteSheet(ctx context.Context, id string) error {
	n, err := s.repo.DeleteSheet(id)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	s.notifyChange(ctx, "suggestion_sheet", id, "deleted")
	return nil
}

func (s *SuggestionService) CreateItem(ctx context.Context, p domain.SuggestionItemPayload) (string, error) {
	it := &domain.SuggestionItem{ID: uuid.NewString()}
	if p.SheetID != nil {
		it.SheetID = *p.SheetID
	}
	if p.Section != nil {
		it.Section = *p.Section
	}
	if p.Title != nil {
		it.Title = *p.Title
	}
	if p.Price != nil {
		it.Price = *p.Price
	}
	if err := s.repo.CreateSuggestionItem(it, p.Order); err != nil {
		return "", mapStoreError(err)
	}
	s.notifyChange(ctx, "suggestion_item", it.ID, "created")
	return it.ID, nil
}

func (s *SuggestionService) UpdateItem(ctx context.Context, id string, p domain.SuggestionItemPayload) error {
	if err := s.repo.UpdateSuggestionItem(id, p); err != nil {
		return mapStoreError(err)
	}
	s.notifyChange(ctx, "suggestion_item", id, "updated")
	return nil
}

func (s *SuggestionService) DeleteItem(ctx context.Context, id string) error {
	n, err := s.repo.DeleteSuggestionItem(id)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	s.notifyChange(ctx, "suggestion_item", id, "deleted")
	return nil
}

func (s *SuggestionService) Reorder(ctx context.Context, sheetID, section string, ids []string) error {
	if err := s.repo.ReorderSuggestionItems(sheetID, section, ids); err != nil {
		return mapStoreError(err)
	}
	s.notifyChange(ctx, "suggestion_item", "", "reordered")
	return nil
}

func (s *SuggestionService) MoveItem(ctx context.Context, p domain.MovePayload) error {
	srcSheet, srcSection, err := s.repo.GetSuggestionItemScope(p.ID)
	if err != nil {
		return mapStoreError(err)
	}

	sameScope := srcSheet == p.SheetID && srcSection == p.Section

	var srcIDs []string
	if !sameScope {
		if srcIDs, err = s.repo.ListSuggestionItemIDs(srcSheet, srcSection); err != nil {
			return err
		}
	}
	dstIDs, err := s.repo.ListSuggestionItemIDs(p.SheetID, p.Section)
	if err != nil {
		return err
	}

	newSrc, newDst := splice(srcIDs, dstIDs, p)

	if err := s.repo.ReorderSuggestionItems(p.SheetID, p.Section, newDst); err != nil {
		return mapStoreError(err)
	}
	if !sameScope {
		if err := s.repo.ReorderSuggestionItems(srcSheet, srcSection, newSrc); err != nil {
			return mapStoreError(err)
		}
	}
	s.notifyChange(ctx, "suggestion_item", p.ID, "moved")
	return nil
}

var _ SuggestionServiceInterface = (*SuggestionService)(nil)

package service

import (
	"context"
	"log"

	"menu-svc/internal/domain"
)

// MenuService serves the public menu projection with a cache-aside Redis
// snapshot. A nil cache disables caching entirely.
type MenuService struct {
	repo  MenuRepository
	cache MenuCache
}

func NewMenuService(repo MenuRepository, cache MenuCache) *MenuService {
	return &MenuService{repo: repo, cache: cache}
}

func (s *MenuService) Menu(ctx context.Context) (*domain.MenuSnapshot, error) {
	if s.cache != nil {
		if snapshot, err := s.cache.Get(ctx); err == nil && snapshot != nil {
			return snapshot, nil
		}
	}

	snapshot, err := s.repo.GetMenu()
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, snapshot); err != nil {
			log.Printf("Warning: failed to cache menu snapshot: %v", err)
		}
	}
	return snapshot, nil
}

var _ MenuServiceInterface = (*MenuService)(nil)

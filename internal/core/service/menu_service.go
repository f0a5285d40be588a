package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/quickbite/food-ordering-api/internal/core/domain"
	"github.com/quickbite/food-ordering-api/internal/core/ports"
)

const (
	menuImageFolder  = "menu"
	menuListCacheKey = "catalog:menus"
)

// MenuService manages storefront menu boards.
type MenuService struct {
	menus  ports.MenuRepository
	images ports.ImageStore
	cache  ports.CatalogCache
	log    zerolog.Logger
}

func NewMenuService(menus ports.MenuRepository, images ports.ImageStore, cache ports.CatalogCache, log zerolog.Logger) *MenuService {
	return &MenuService{menus: menus, images: images, cache: cache, log: log}
}

func (s *MenuService) Create(ctx context.Context, in ports.CreateMenuInput) (*domain.Menu, error) {
	imageURL, err := s.images.Upload(ctx, in.Image.Data, in.Image.Filename, menuImageFolder)
	if err != nil {
		return nil, err
	}

	menu, err := s.menus.Create(ctx, &domain.Menu{
		Title:       in.Title,
		ImageURL:    imageURL,
		Description: in.Description,
		ColorCode:   in.ColorCode,
		Status:      true,
	})
	if err != nil {
		return nil, err
	}

	s.invalidateListing(ctx)
	return menu, nil
}

func (s *MenuService) List(ctx context.Context) ([]*domain.Menu, error) {
	var cached []*domain.Menu
	hit, err := s.cache.Get(ctx, menuListCacheKey, &cached)
	if err != nil {
		s.log.Warn().Err(err).Msg("menu cache lookup failed")
	} else if hit {
		return cached, nil
	}

	menus, err := s.menus.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, menuListCacheKey, menus); err != nil {
		s.log.Warn().Err(err).Msg("failed to populate menu cache")
	}
	return menus, nil
}

func (s *MenuService) Get(ctx context.Context, id int64) (*domain.Menu, error) {
	return s.menus.FindByID(ctx, id)
}

func (s *MenuService) Update(ctx context.Context, id int64, in ports.UpdateMenuInput) (*domain.Menu, error) {
	menu, err := s.menus.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Image != nil {
		if menu.ImageURL != "" {
			if err := s.images.Delete(ctx, menu.ImageURL); err != nil {
				s.log.Warn().Err(err).Int64("menu_id", id).Msg("failed to delete previous menu image")
			}
		}
		url, err := s.images.Upload(ctx, in.Image.Data, in.Image.Filename, menuImageFolder)
		if err != nil {
			return nil, err
		}
		menu.ImageURL = url
	}

	if in.Title != nil {
		menu.Title = *in.Title
	}
	if in.Description != nil {
		menu.Description = *in.Description
	}
	if in.ColorCode != nil {
		menu.ColorCode = *in.ColorCode
	}
	if in.Status != nil {
		menu.Status = *in.Status
	}

	if err := s.menus.Update(ctx, menu); err != nil {
		return nil, err
	}

	s.invalidateListing(ctx)
	return menu, nil
}

func (s *MenuService) Delete(ctx context.Context, id int64) error {
	menu, err := s.menus.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if menu.ImageURL != "" {
		if err := s.images.Delete(ctx, menu.ImageURL); err != nil {
			s.log.Warn().Err(err).Int64("menu_id", id).Msg("failed to delete menu image")
		}
	}

	if err := s.menus.Delete(ctx, id); err != nil {
		return err
	}

	s.invalidateListing(ctx)
	return nil
}

func (s *MenuService) invalidateListing(ctx context.Context) {
	if err := s.cache.Invalidate(ctx, menuListCacheKey); err != nil {
		s.log.Warn().Err(err).Msg("failed to invalidate menu cache")
	}
}

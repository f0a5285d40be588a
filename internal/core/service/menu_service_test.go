package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/quickbite/food-ordering-api/internal/core/domain"
	"github.com/quickbite/food-ordering-api/internal/core/ports"
)

type stubMenuRepo struct {
	menus  map[int64]*domain.Menu
	nextID int64
	listed int
}

func newStubMenuRepo() *stubMenuRepo {
	return &stubMenuRepo{menus: make(map[int64]*domain.Menu), nextID: 1}
}

func (r *stubMenuRepo) Create(_ context.Context, menu *domain.Menu) (*domain.Menu, error) {
	m := *menu
	m.ID = r.nextID
	r.nextID++
	r.menus[m.ID] = &m
	return &m, nil
}

func (r *stubMenuRepo) FindByID(_ context.Context, id int64) (*domain.Menu, error) {
	m, ok := r.menus[id]
	if !ok {
		return nil, domain.ErrMenuNotFound
	}
	clone := *m
	return &clone, nil
}

func (r *stubMenuRepo) ListActive(_ context.Context) ([]*domain.Menu, error) {
	r.listed++
	out := []*domain.Menu{}
	for _, m := range r.menus {
		if m.Status {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r *stubMenuRepo) Update(_ context.Context, menu *domain.Menu) error {
	if _, ok := r.menus[menu.ID]; !ok {
		return domain.ErrMenuNotFound
	}
	clone := *menu
	r.menus[menu.ID] = &clone
	return nil
}

func (r *stubMenuRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.menus[id]; !ok {
		return domain.ErrMenuNotFound
	}
	delete(r.menus, id)
	return nil
}

func newMenuFixture() (*MenuService, *stubMenuRepo, *stubImageStore, *stubCache) {
	repo := newStubMenuRepo()
	images := &stubImageStore{}
	cache := newStubCache()
	return NewMenuService(repo, images, cache, zerolog.Nop()), repo, images, cache
}

func TestMenuService_Create_StartsActive(t *testing.T) {
	svc, _, _, _ := newMenuFixture()

	menu, err := svc.Create(context.Background(), ports.CreateMenuInput{
		Title:     "Breakfast",
		ColorCode: "#ffcc00",
		Image:     ports.ImageUpload{Data: []byte("img"), Filename: "breakfast.jpg"},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if !menu.Status {
		t.Fatalf("new menus must start active")
	}
	if menu.ImageURL != "https://img.test/menu/breakfast.jpg" {
		t.Fatalf("unexpected image url: %s", menu.ImageURL)
	}
}

func TestMenuService_List_OnlyActiveAndCached(t *testing.T) {
	svc, repo, _, _ := newMenuFixture()

	active, err := svc.Create(context.Background(), ports.CreateMenuInput{
		Title: "Breakfast",
		Image: ports.ImageUpload{Data: []byte("img"), Filename: "b.jpg"},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	hidden, err := svc.Create(context.Background(), ports.CreateMenuInput{
		Title: "Seasonal",
		Image: ports.ImageUpload{Data: []byte("img"), Filename: "s.jpg"},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	off := false
	if _, err := svc.Update(context.Background(), hidden.ID, ports.UpdateMenuInput{Status: &off}); err != nil {
		t.Fatalf("deactivate: %v", err)
	}

	menus, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(menus) != 1 || menus[0].ID != active.ID {
		t.Fatalf("expected only the active menu, got %+v", menus)
	}

	// Second listing is served from cache.
	if _, err := svc.List(context.Background()); err != nil {
		t.Fatalf("second list: %v", err)
	}
	if repo.listed != 1 {
		t.Fatalf("expected cache hit, repo listed %d times", repo.listed)
	}
}

func TestMenuService_Delete_RemovesImageAndInvalidates(t *testing.T) {
	svc, repo, images, cache := newMenuFixture()

	menu, err := svc.Create(context.Background(), ports.CreateMenuInput{
		Title: "Combos",
		Image: ports.ImageUpload{Data: []byte("img"), Filename: "c.jpg"},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := svc.List(context.Background()); err != nil {
		t.Fatalf("list: %v", err)
	}

	if err := svc.Delete(context.Background(), menu.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	if len(images.deleted) != 1 || images.deleted[0] != menu.ImageURL {
		t.Fatalf("menu image not removed: %v", images.deleted)
	}
	if _, ok := cache.values[menuListCacheKey]; ok {
		t.Fatalf("listing cache not invalidated")
	}
	if _, err := repo.FindByID(context.Background(), menu.ID); !errors.Is(err, domain.ErrMenuNotFound) {
		t.Fatalf("menu row still present")
	}
}

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/quickbite/food-ordering-api/internal/core/domain"
	"github.com/quickbite/food-ordering-api/internal/core/ports"
)

type sideOptionFixture struct {
	svc      *SideOptionService
	sides    *stubSideOptionRepo
	products *stubProductRepo
	images   *stubImageStore
}

func newSideOptionFixture() *sideOptionFixture {
	f := &sideOptionFixture{
		sides:    newStubSideOptionRepo(),
		products: newStubProductRepo(),
		images:   &stubImageStore{},
	}
	f.svc = NewSideOptionService(f.sides, f.products, f.images, zerolog.Nop())
	return f
}

func TestSideOptionService_Create_Success(t *testing.T) {
	f := newSideOptionFixture()
	product, err := f.products.Create(context.Background(), &domain.Product{Name: "Burger", CategoryID: 1})
	if err != nil {
		t.Fatalf("seed product: %v", err)
	}

	side, err := f.svc.Create(context.Background(), product.ID, ports.CreateOptionInput{
		Name:  "Fries",
		Price: 2.50,
		Image: ports.ImageUpload{Data: []byte("img"), Filename: "fries.jpg"},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if side.ImageURL != "https://img.test/side-option/fries.jpg" {
		t.Fatalf("unexpected image url: %s", side.ImageURL)
	}
	if !side.Available {
		t.Fatalf("new side options start available")
	}
}

func TestSideOptionService_Create_DuplicateNameInProduct(t *testing.T) {
	f := newSideOptionFixture()
	product, err := f.products.Create(context.Background(), &domain.Product{Name: "Burger", CategoryID: 1})
	if err != nil {
		t.Fatalf("seed product: %v", err)
	}

	in := ports.CreateOptionInput{
		Name: "Fries", Price: 2.50,
		Image: ports.ImageUpload{Data: []byte("img"), Filename: "f.jpg"},
	}
	if _, err := f.svc.Create(context.Background(), product.ID, in); err != nil {
		t.Fatalf("first create: %v", err)
	}

	in.Name = "fries"
	if _, err := f.svc.Create(context.Background(), product.ID, in); !errors.Is(err, domain.ErrSideOptionExists) {
		t.Fatalf("expected ErrSideOptionExists, got %v", err)
	}
}

func TestSideOptionService_Create_MissingProduct(t *testing.T) {
	f := newSideOptionFixture()

	_, err := f.svc.Create(context.Background(), 99, ports.CreateOptionInput{
		Name: "Fries", Price: 2.50,
		Image: ports.ImageUpload{Data: []byte("img"), Filename: "f.jpg"},
	})
	if !errors.Is(err, domain.ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
}

func TestSideOptionService_Delete_RemovesImage(t *testing.T) {
	f := newSideOptionFixture()
	product, err := f.products.Create(context.Background(), &domain.Product{Name: "Burger", CategoryID: 1})
	if err != nil {
		t.Fatalf("seed product: %v", err)
	}
	side, err := f.svc.Create(context.Background(), product.ID, ports.CreateOptionInput{
		Name: "Fries", Price: 2.50,
		Image: ports.ImageUpload{Data: []byte("img"), Filename: "fries.jpg"},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := f.svc.Delete(context.Background(), side.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	if len(f.images.deleted) != 1 || f.images.deleted[0] != side.ImageURL {
		t.Fatalf("side option image not removed: %v", f.images.deleted)
	}
	if _, err := f.sides.FindByID(context.Background(), side.ID); !errors.Is(err, domain.ErrSideOptionNotFound) {
		t.Fatalf("side option row still present: %v", err)
	}
}

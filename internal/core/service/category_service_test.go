package service

import (
	"context"
	"errors"
	"testing"

	"github.com/quickbite/food-ordering-api/internal/core/domain"
)

func TestCategoryService_Create_Success(t *testing.T) {
	repo := newStubCategoryRepo()
	svc := NewCategoryService(repo)

	category, err := svc.Create(context.Background(), "Burgers")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if category.ID == 0 || category.Name != "Burgers" {
		t.Fatalf("unexpected category: %+v", category)
	}
}

func TestCategoryService_Create_DuplicateCaseInsensitive(t *testing.T) {
	repo := newStubCategoryRepo()
	svc := NewCategoryService(repo)

	if _, err := svc.Create(context.Background(), "Burgers"); err != nil {
		t.Fatalf("first create: %v", err)
	}
	if _, err := svc.Create(context.Background(), "bUrGeRs"); !errors.Is(err, domain.ErrCategoryExists) {
		t.Fatalf("expected ErrCategoryExists, got %v", err)
	}
}

func TestCategoryService_Update(t *testing.T) {
	repo := newStubCategoryRepo()
	svc := NewCategoryService(repo)

	created, err := svc.Create(context.Background(), "Burgers")
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	updated, err := svc.Update(context.Background(), created.ID, "Smash Burgers")
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Name != "Smash Burgers" {
		t.Fatalf("name not updated: %+v", updated)
	}

	if _, err := svc.Update(context.Background(), 999, "Ghost"); !errors.Is(err, domain.ErrCategoryNotFound) {
		t.Fatalf("expected ErrCategoryNotFound, got %v", err)
	}
}

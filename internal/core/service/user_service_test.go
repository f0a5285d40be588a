package service

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/quickbite/food-ordering-api/internal/core/domain"
	"github.com/quickbite/food-ordering-api/internal/core/ports"
)

type stubAddressRepo struct {
	addresses map[int64]*domain.Address
	nextID    int64
}

func newStubAddressRepo() *stubAddressRepo {
	return &stubAddressRepo{addresses: make(map[int64]*domain.Address), nextID: 1}
}

func (r *stubAddressRepo) Create(_ context.Context, address *domain.Address) (*domain.Address, error) {
	a := *address
	a.ID = r.nextID
	r.nextID++
	r.addresses[a.ID] = &a
	return &a, nil
}

func (r *stubAddressRepo) FindByID(_ context.Context, id int64) (*domain.Address, error) {
	a, ok := r.addresses[id]
	if !ok {
		return nil, domain.ErrAddressNotFound
	}
	clone := *a
	return &clone, nil
}

func (r *stubAddressRepo) Update(_ context.Context, address *domain.Address) error {
	if _, ok := r.addresses[address.ID]; !ok {
		return domain.ErrAddressNotFound
	}
	clone := *address
	r.addresses[address.ID] = &clone
	return nil
}

func newUserFixture(t *testing.T) (*UserService, *stubUserRepo, *stubAddressRepo, *stubImageStore) {
	t.Helper()
	users := newStubUserRepo()
	addresses := newStubAddressRepo()
	images := &stubImageStore{}
	svc := NewUserService(users, addresses, images, zerolog.Nop())

	if _, err := users.Create(context.Background(), &domain.User{
		FullName: "Alice", Email: "alice@example.com",
		PasswordHash: "$2a$10$hash", Role: domain.RoleUser,
	}); err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return svc, users, addresses, images
}

func TestUserService_GetProfile_NeverLeaksSecrets(t *testing.T) {
	svc, users, _, _ := newUserFixture(t)
	users.users[1].RefreshToken = "fingerprint"

	user, err := svc.GetProfile(context.Background(), 1)
	if err != nil {
		t.Fatalf("get profile: %v", err)
	}

	raw, err := json.Marshal(user)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	body := string(raw)
	if strings.Contains(body, "$2a$10$hash") || strings.Contains(body, "fingerprint") {
		t.Fatalf("profile JSON leaks credentials: %s", body)
	}
}

func TestUserService_UpdateProfile_PartialAndImage(t *testing.T) {
	svc, users, _, images := newUserFixture(t)
	users.users[1].ImageURL = "https://img.test/user/old.jpg"

	name := "Alice Cooper"
	user, err := svc.UpdateProfile(context.Background(), 1, ports.UpdateProfileInput{
		FullName: &name,
		Image:    &ports.ImageUpload{Data: []byte("img"), Filename: "new.png"},
	})
	if err != nil {
		t.Fatalf("update profile: %v", err)
	}

	if user.FullName != "Alice Cooper" {
		t.Fatalf("full name not updated: %+v", user)
	}
	if user.Email != "alice@example.com" {
		t.Fatalf("untouched field changed: %+v", user)
	}
	if user.ImageURL != "https://img.test/user/new.png" {
		t.Fatalf("image not replaced: %s", user.ImageURL)
	}
	if len(images.deleted) != 1 || images.deleted[0] != "https://img.test/user/old.jpg" {
		t.Fatalf("previous image not removed: %v", images.deleted)
	}
}

func TestUserService_AddAddress(t *testing.T) {
	svc, _, _, _ := newUserFixture(t)

	address, err := svc.AddAddress(context.Background(), 1, ports.AddAddressInput{
		Type: "home", House: "42B", Area: "Baker Street", Latitude: 51.52, Longitude: -0.15,
	})
	if err != nil {
		t.Fatalf("add address: %v", err)
	}
	if address.ID == 0 || address.UserID != 1 || address.Type != domain.AddressHome {
		t.Fatalf("unexpected address: %+v", address)
	}

	if _, err := svc.AddAddress(context.Background(), 99, ports.AddAddressInput{Type: "home"}); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUserService_UpdateAddress_OwnershipEnforced(t *testing.T) {
	svc, users, _, _ := newUserFixture(t)
	if _, err := users.Create(context.Background(), &domain.User{
		FullName: "Mallory", Email: "mallory@example.com", Role: domain.RoleUser,
	}); err != nil {
		t.Fatalf("seed second user: %v", err)
	}

	address, err := svc.AddAddress(context.Background(), 1, ports.AddAddressInput{
		Type: "work", House: "1", Area: "Downtown",
	})
	if err != nil {
		t.Fatalf("add address: %v", err)
	}

	// Another account probing the address sees "not found", not "forbidden".
	house := "13"
	if _, err := svc.UpdateAddress(context.Background(), address.ID, 2, ports.UpdateAddressInput{House: &house}); !errors.Is(err, domain.ErrAddressNotFound) {
		t.Fatalf("expected ErrAddressNotFound, got %v", err)
	}

	updated, err := svc.UpdateAddress(context.Background(), address.ID, 1, ports.UpdateAddressInput{House: &house})
	if err != nil {
		t.Fatalf("update address: %v", err)
	}
	if updated.House != "13" || updated.Area != "Downtown" {
		t.Fatalf("partial update wrong: %+v", updated)
	}
}

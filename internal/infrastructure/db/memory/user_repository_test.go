package memory

import (
	"context"
	"errors"
	"testing"

	"github.com/christian-constantin/commandit/internal/core/domain"
	"github.com/christian-constantin/commandit/internal/core/ports"
)

func TestUserRepository_Seeded(t *testing.T) {
	repo := NewUserRepository(SeedUsers())

	users, err := repo.List(context.Background(), ports.UserFilter{})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(users) != 5 {
		t.Fatalf("expected 5 seeded users, got %d", len(users))
	}
}

func TestUserRepository_ListFilters(t *testing.T) {
	repo := NewUserRepository(SeedUsers())

	byDept, err := repo.List(context.Background(), ports.UserFilter{Department: "RH"})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(byDept) != 1 || byDept[0].Email != "marie.martin@christian-constantin.ch" {
		t.Fatalf("unexpected department filter result: %+v", byDept)
	}

	inactive := false
	byActive, err := repo.List(context.Background(), ports.UserFilter{Active: &inactive})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(byActive) != 1 || byActive[0].Email != "pierre.blanc@christian-constantin.ch" {
		t.Fatalf("unexpected active filter result: %+v", byActive)
	}
}

func TestUserRepository_FindByEmail_CaseInsensitive(t *testing.T) {
	repo := NewUserRepository(SeedUsers())

	user, err := repo.FindByEmail(context.Background(), "Jean.Dupont@Christian-Constantin.CH")
	if err != nil {
		t.Fatalf("find failed: %v", err)
	}
	if user.ID != "2" {
		t.Fatalf("unexpected user: %+v", user)
	}
}

func TestUserRepository_Create_DuplicateEmail(t *testing.T) {
	repo := NewUserRepository(SeedUsers())

	_, err := repo.Create(context.Background(), &domain.User{ID: "99", Email: "ADMIN@christian-constantin.ch"})
	if !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestUserRepository_Delete(t *testing.T) {
	repo := NewUserRepository(SeedUsers())

	if err := repo.Delete(context.Background(), "3"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, err := repo.FindByID(context.Background(), "3"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected user to be gone, got %v", err)
	}
	if err := repo.Delete(context.Background(), "3"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound on second delete, got %v", err)
	}
}

func TestUserRepository_ReturnsCopies(t *testing.T) {
	repo := NewUserRepository(SeedUsers())

	user, err := repo.FindByID(context.Background(), "2")
	if err != nil {
		t.Fatalf("find failed: %v", err)
	}
	user.Name = "Tampered"

	fresh, _ := repo.FindByID(context.Background(), "2")
	if fresh.Name != "Jean Dupont" {
		t.Fatalf("mutating a returned user must not affect the store, got %q", fresh.Name)
	}
}

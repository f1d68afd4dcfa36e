package db

import (
	"testing"
	"time"

	"github.com/terraincognita07/mealtrail/internal/models"
)

func TestUserEmailUniqueIndex(t *testing.T) {
	database := openTestDatabase(t)
	repo := NewUserRepository(database)

	createTestUser(t, database, "user-1", "ana@x.com", "session-1")

	duplicate := models.User{
		ID:        "user-2",
		Name:      "Other",
		Email:     "ana@x.com",
		SessionID: "session-2",
		CreatedAt: time.Now().UTC(),
	}
	if err := repo.Create(&duplicate); err == nil {
		t.Fatal("expected unique index violation for duplicate email")
	}
}

func TestUserSessionUniqueIndex(t *testing.T) {
	database := openTestDatabase(t)
	repo := NewUserRepository(database)

	createTestUser(t, database, "user-1", "ana@x.com", "session-1")

	duplicate := models.User{
		ID:        "user-2",
		Name:      "Other",
		Email:     "bob@x.com",
		SessionID: "session-1",
		CreatedAt: time.Now().UTC(),
	}
	if err := repo.Create(&duplicate); err == nil {
		t.Fatal("expected unique index violation for duplicate session")
	}
}

func TestFindBySessionID(t *testing.T) {
	database := openTestDatabase(t)
	repo := NewUserRepository(database)

	created := createTestUser(t, database, "user-1", "ana@x.com", "session-1")

	user, found, err := repo.FindBySessionID("session-1")
	if err != nil {
		t.Fatalf("FindBySessionID() unexpected error: %v", err)
	}
	if !found {
		t.Fatal("expected linked user to be found")
	}
	if user.ID != created.ID || user.Email != "ana@x.com" {
		t.Fatalf("expected user-1, got %+v", user)
	}

	_, found, err = repo.FindBySessionID("session-unknown")
	if err != nil {
		t.Fatalf("FindBySessionID() unexpected error: %v", err)
	}
	if found {
		t.Fatal("expected no user for unknown session")
	}
}

func TestExistsByNormalizedEmail(t *testing.T) {
	database := openTestDatabase(t)
	repo := NewUserRepository(database)

	createTestUser(t, database, "user-1", "ana@x.com", "session-1")

	taken, err := repo.ExistsByNormalizedEmail("ana@x.com")
	if err != nil {
		t.Fatalf("ExistsByNormalizedEmail() unexpected error: %v", err)
	}
	if !taken {
		t.Fatal("expected stored email to be reported taken")
	}

	free, err := repo.ExistsByNormalizedEmail("bob@x.com")
	if err != nil {
		t.Fatalf("ExistsByNormalizedEmail() unexpected error: %v", err)
	}
	if free {
		t.Fatal("expected unused email to be reported free")
	}
}

func TestExistsBySessionID(t *testing.T) {
	database := openTestDatabase(t)
	repo := NewUserRepository(database)

	createTestUser(t, database, "user-1", "ana@x.com", "session-1")

	linked, err := repo.ExistsBySessionID("session-1")
	if err != nil {
		t.Fatalf("ExistsBySessionID() unexpected error: %v", err)
	}
	if !linked {
		t.Fatal("expected session-1 to be linked")
	}

	unlinked, err := repo.ExistsBySessionID("session-2")
	if err != nil {
		t.Fatalf("ExistsBySessionID() unexpected error: %v", err)
	}
	if unlinked {
		t.Fatal("expected session-2 to be unlinked")
	}
}

package services

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/streamcast/user-service/internal/common"
	usersrepo "github.com/streamcast/user-service/internal/server/repositories/users"
	"github.com/streamcast/user-service/internal/server/security"
)

func newUserService(t *testing.T, users *fakeUsersRepo) *UserService {
	t.Helper()
	db, _ := newSQLMockDB(t)
	t.Cleanup(func() { db.Close() })
	rm := &fakeRepoManager{u: users, r: newFakeRefreshRepo()}
	return NewUserService(db, rm, testConfig())
}

func validRegisterInput() RegisterInput {
	return RegisterInput{
		Email:    "new@x.com",
		UserName: "newbie",
		Password: "longpass1",
	}
}

func TestRegister_Success(t *testing.T) {
	users := newFakeUsersRepo()
	s := newUserService(t, users)

	created, err := s.Register(context.Background(), validRegisterInput())
	if err != nil {
		t.Fatalf("Register error: %v", err)
	}
	if created.ID == 0 {
		t.Fatal("expected an assigned id")
	}
	if created.StreamKey == "" {
		t.Fatal("expected a stream key to be issued at creation")
	}
	if !created.IsActive {
		t.Fatal("new accounts must start active")
	}
	if created.PasswordHash == "longpass1" {
		t.Fatal("password must not be stored in plain text")
	}
	if !security.VerifyPassword("longpass1", created.PasswordHash) {
		t.Fatal("stored hash must verify the original password")
	}
}

func TestRegister_Validation(t *testing.T) {
	s := newUserService(t, newFakeUsersRepo())

	tests := []struct {
		name string
		mut  func(*RegisterInput)
	}{
		{"empty email", func(in *RegisterInput) { in.Email = "" }},
		{"empty username", func(in *RegisterInput) { in.UserName = "" }},
		{"short password", func(in *RegisterInput) { in.Password = "short1" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validRegisterInput()
			tt.mut(&in)
			if _, err := s.Register(context.Background(), in); !errors.Is(err, common.ErrInvalidInput) {
				t.Fatalf("expected ErrInvalidInput, got %v", err)
			}
		})
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	users := newFakeUsersRepo()
	existing := activeUser(t, 1, "longpass1")
	existing.Email = "new@x.com"
	users.add(existing)
	s := newUserService(t, users)

	_, err := s.Register(context.Background(), validRegisterInput())
	if !errors.Is(err, common.ErrUserAlreadyExists) {
		t.Fatalf("expected ErrUserAlreadyExists, got %v", err)
	}
}

func TestRegister_DuplicateUsername(t *testing.T) {
	users := newFakeUsersRepo()
	existing := activeUser(t, 1, "longpass1")
	existing.UserName = "newbie"
	users.add(existing)
	s := newUserService(t, users)

	_, err := s.Register(context.Background(), validRegisterInput())
	if !errors.Is(err, common.ErrUserAlreadyExists) {
		t.Fatalf("expected ErrUserAlreadyExists, got %v", err)
	}
}

func TestRegister_UniqueViolationRace(t *testing.T) {
	// the lookup misses but the insert hits the database constraint
	users := newFakeUsersRepo()
	users.createErr = &pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"}
	s := newUserService(t, users)

	_, err := s.Register(context.Background(), validRegisterInput())
	if !errors.Is(err, common.ErrUserAlreadyExists) {
		t.Fatalf("expected ErrUserAlreadyExists, got %v", err)
	}
}

func TestGetByID_NotFound(t *testing.T) {
	s := newUserService(t, newFakeUsersRepo())

	if _, err := s.GetByID(context.Background(), 42); !errors.Is(err, common.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUpdate_Profile(t *testing.T) {
	users := newFakeUsersRepo()
	users.add(activeUser(t, 1, "longpass1"))
	s := newUserService(t, users)

	bio := "streams on weekends"
	updated, err := s.Update(context.Background(), 1, &usersrepo.ProfileUpdate{Bio: &bio})
	if err != nil {
		t.Fatalf("Update error: %v", err)
	}
	if updated.Bio != bio {
		t.Fatalf("expected bio %q, got %q", bio, updated.Bio)
	}

	if _, err := s.Update(context.Background(), 42, &usersrepo.ProfileUpdate{Bio: &bio}); !errors.Is(err, common.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestDelete(t *testing.T) {
	users := newFakeUsersRepo()
	users.add(activeUser(t, 1, "longpass1"))
	s := newUserService(t, users)

	if err := s.Delete(context.Background(), 1); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
	if err := s.Delete(context.Background(), 1); !errors.Is(err, common.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestChangePassword_Success(t *testing.T) {
	users := newFakeUsersRepo()
	users.add(activeUser(t, 1, "oldpass11"))
	s := newUserService(t, users)

	if err := s.ChangePassword(context.Background(), 1, "oldpass11", "newpass11"); err != nil {
		t.Fatalf("ChangePassword error: %v", err)
	}
	if !security.VerifyPassword("newpass11", users.passwords[1]) {
		t.Fatal("persisted hash must verify the new password")
	}
}

func TestChangePassword_WrongCurrent(t *testing.T) {
	users := newFakeUsersRepo()
	users.add(activeUser(t, 1, "oldpass11"))
	s := newUserService(t, users)

	err := s.ChangePassword(context.Background(), 1, "wrongpass", "newpass11")
	if !errors.Is(err, common.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if _, written := users.passwords[1]; written {
		t.Fatal("stored hash must be left untouched on a failed change")
	}
}

func TestChangePassword_ShortNew(t *testing.T) {
	users := newFakeUsersRepo()
	users.add(activeUser(t, 1, "oldpass11"))
	s := newUserService(t, users)

	err := s.ChangePassword(context.Background(), 1, "oldpass11", "short1")
	if !errors.Is(err, common.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestChangePassword_UnknownUser(t *testing.T) {
	s := newUserService(t, newFakeUsersRepo())

	err := s.ChangePassword(context.Background(), 42, "oldpass11", "newpass11")
	if !errors.Is(err, common.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestRegenerateStreamKey(t *testing.T) {
	users := newFakeUsersRepo()
	user := activeUser(t, 1, "longpass1")
	users.add(user)
	s := newUserService(t, users)

	key, err := s.RegenerateStreamKey(context.Background(), 1)
	if err != nil {
		t.Fatalf("RegenerateStreamKey error: %v", err)
	}
	if key == "" || key == user.StreamKey {
		t.Fatal("expected a fresh stream key")
	}
	if users.streamKeys[1] != key {
		t.Fatal("expected the new key to be persisted")
	}

	if _, err := s.RegenerateStreamKey(context.Background(), 42); !errors.Is(err, common.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestValidateStreamKey(t *testing.T) {
	users := newFakeUsersRepo()
	user := activeUser(t, 1, "longpass1")
	users.add(user)
	s := newUserService(t, users)

	got, err := s.ValidateStreamKey(context.Background(), "sk-1")
	if err != nil {
		t.Fatalf("ValidateStreamKey error: %v", err)
	}
	if got.ID != 1 {
		t.Fatalf("expected user 1, got %d", got.ID)
	}

	if _, err := s.ValidateStreamKey(context.Background(), "sk-unknown"); !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("expected ErrorNotFound, got %v", err)
	}

	user.IsActive = false
	if _, err := s.ValidateStreamKey(context.Background(), "sk-1"); !errors.Is(err, common.ErrInactiveUser) {
		t.Fatalf("expected ErrInactiveUser, got %v", err)
	}
}

func TestSetActive(t *testing.T) {
	users := newFakeUsersRepo()
	users.add(activeUser(t, 1, "longpass1"))
	s := newUserService(t, users)

	if err := s.SetActive(context.Background(), 1, false); err != nil {
		t.Fatalf("SetActive error: %v", err)
	}
	if users.activeStates[1] {
		t.Fatal("expected the account to be deactivated")
	}

	if err := s.SetActive(context.Background(), 42, true); !errors.Is(err, common.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

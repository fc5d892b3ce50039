package service_test

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mkarlen/fitlog/internal/domain"
	"github.com/mkarlen/fitlog/internal/repository/sqlite"
	"github.com/mkarlen/fitlog/internal/service"
)

const testJWTSecret = "test-secret-key-for-unit-tests"

func newTestDB(t *testing.T) *sqlite.DB {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	db, err := sqlite.New(dbPath)
	if err != nil {
		t.Fatalf("New DB: %v", err)
	}
	if err := db.Migrate(context.Background()); err != nil {
		t.Fatalf("Migrate: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func newTestAuthService(t *testing.T) (*service.AuthService, *sqlite.DB) {
	t.Helper()
	db := newTestDB(t)
	// Use cost 4 for fast tests.
	auth := service.NewAuthService(db.Users(), testJWTSecret, 4)
	return auth, db
}

func validInput(email string) service.RegisterInput {
	return service.RegisterInput{
		Email:       email,
		DisplayName: "Test User",
		Password:    "password123",
		Gender:      domain.GenderMale,
		HeightCm:    180,
		WeightKg:    75,
		Age:         28,
	}
}

func TestAuthService_Register_Success(t *testing.T) {
	auth, _ := newTestAuthService(t)
	ctx := context.Background()

	user, err := auth.Register(ctx, validInput("new@example.com"))
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	if user.ID == 0 {
		t.Fatal("expected user ID to be set")
	}
	if user.Email != "new@example.com" {
		t.Fatalf("expected email new@example.com, got %s", user.Email)
	}
}

func TestAuthService_Register_PasswordNeverStoredPlaintext(t *testing.T) {
	auth, db := newTestAuthService(t)
	ctx := context.Background()

	input := validInput("hash@example.com")
	if _, err := auth.Register(ctx, input); err != nil {
		t.Fatalf("Register: %v", err)
	}

	stored, err := db.Users().GetByEmail(ctx, input.Email)
	if err != nil {
		t.Fatalf("GetByEmail: %v", err)
	}
	if stored.PasswordHash == input.Password {
		t.Fatal("password stored in plaintext")
	}
	if !strings.HasPrefix(stored.PasswordHash, "$2") {
		t.Fatalf("expected a bcrypt hash, got %q", stored.PasswordHash)
	}
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	auth, _ := newTestAuthService(t)
	ctx := context.Background()

	if _, err := auth.Register(ctx, validInput("dup@example.com")); err != nil {
		t.Fatalf("first register: %v", err)
	}

	_, err := auth.Register(ctx, validInput("dup@example.com"))
	if !errors.Is(err, domain.ErrDuplicateEmail) {
		t.Fatalf("expected ErrDuplicateEmail, got %v", err)
	}
}

func TestAuthService_Register_FieldValidation(t *testing.T) {
	auth, _ := newTestAuthService(t)
	ctx := context.Background()

	tests := []struct {
		name   string
		mutate func(*service.RegisterInput)
	}{
		{"bad email", func(in *service.RegisterInput) { in.Email = "not-an-email" }},
		{"empty display name", func(in *service.RegisterInput) { in.DisplayName = "" }},
		{"short password", func(in *service.RegisterInput) { in.Password = "short" }},
		{"unknown gender", func(in *service.RegisterInput) { in.Gender = "other" }},
		{"height too low", func(in *service.RegisterInput) { in.HeightCm = 49 }},
		{"weight too low", func(in *service.RegisterInput) { in.WeightKg = 19 }},
		{"age too low", func(in *service.RegisterInput) { in.Age = 0 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			in := validInput("field@example.com")
			tc.mutate(&in)
			_, err := auth.Register(ctx, in)
			if !errors.Is(err, domain.ErrInvalidInput) {
				t.Fatalf("expected ErrInvalidInput, got %v", err)
			}
		})
	}
}

func TestAuthService_Register_AggregatesAllFieldErrors(t *testing.T) {
	auth, _ := newTestAuthService(t)
	ctx := context.Background()

	in := validInput("agg@example.com")
	in.Password = "short"
	in.HeightCm = 10
	in.Age = 0

	_, err := auth.Register(ctx, in)
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}

	msg := err.Error()
	for _, want := range []string{"password", "height", "age"} {
		if !strings.Contains(msg, want) {
			t.Fatalf("expected aggregated message to mention %q, got %q", want, msg)
		}
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	auth, _ := newTestAuthService(t)
	ctx := context.Background()

	if _, err := auth.Register(ctx, validInput("login@example.com")); err != nil {
		t.Fatalf("Register: %v", err)
	}

	token, err := auth.Login(ctx, "login@example.com", "password123")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if token == "" {
		t.Fatal("expected non-empty token")
	}
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	auth, _ := newTestAuthService(t)
	ctx := context.Background()

	if _, err := auth.Register(ctx, validInput("wrongpw@example.com")); err != nil {
		t.Fatalf("Register: %v", err)
	}

	_, err := auth.Login(ctx, "wrongpw@example.com", "wrongpassword")
	if !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	auth, _ := newTestAuthService(t)

	_, err := auth.Login(context.Background(), "nobody@example.com", "password123")
	if !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestAuthService_Login_ErrorsAreIndistinguishable(t *testing.T) {
	auth, _ := newTestAuthService(t)
	ctx := context.Background()

	if _, err := auth.Register(ctx, validInput("enum@example.com")); err != nil {
		t.Fatalf("Register: %v", err)
	}

	_, errWrongPassword := auth.Login(ctx, "enum@example.com", "wrongpassword")
	_, errUnknownEmail := auth.Login(ctx, "missing@example.com", "password123")

	if errWrongPassword.Error() != errUnknownEmail.Error() {
		t.Fatalf("login failures must be identical: %q vs %q", errWrongPassword, errUnknownEmail)
	}
}

func TestAuthService_JWT_GenerateAndValidate(t *testing.T) {
	auth, _ := newTestAuthService(t)
	ctx := context.Background()

	user, err := auth.Register(ctx, validInput("jwt@example.com"))
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	token, err := auth.Login(ctx, "jwt@example.com", "password123")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}

	userID, err := auth.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}

	if userID != user.ID {
		t.Fatalf("expected user ID %d, got %d", user.ID, userID)
	}
}

func TestAuthService_JWT_InvalidToken(t *testing.T) {
	auth, _ := newTestAuthService(t)

	_, err := auth.ValidateToken("not-a-valid-jwt")
	if !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestAuthService_JWT_TamperedToken(t *testing.T) {
	auth, _ := newTestAuthService(t)
	ctx := context.Background()

	if _, err := auth.Register(ctx, validInput("tamper@example.com")); err != nil {
		t.Fatalf("Register: %v", err)
	}

	token, err := auth.Login(ctx, "tamper@example.com", "password123")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}

	// Tamper with the token by flipping several characters in the signature.
	tampered := token[:len(token)-5] + "XXXXX"
	_, err = auth.ValidateToken(tampered)
	if !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized for tampered token, got %v", err)
	}
}

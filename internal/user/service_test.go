package user

import (
	"context"
	"errors"
	"testing"

	"github.com/kndri/selah-journaling/internal/auth"
)

type fakeUserRepo struct {
	byEmail map[string]*User
	byID    map[string]*User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byEmail: map[string]*User{}, byID: map[string]*User{}}
}

func (f *fakeUserRepo) Create(u *User) error {
	f.byEmail[u.Email] = u
	f.byID[u.ID.String()] = u
	return nil
}

func (f *fakeUserRepo) GetByID(id string) (*User, error) {
	return f.byID[id], nil
}

func (f *fakeUserRepo) GetByEmail(email string) (*User, error) {
	return f.byEmail[email], nil
}

func TestUserService(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	auth.Init()
	ctx := context.Background()

	register := func(t *testing.T, svc UserService) *UserResponse {
		t.Helper()
		u, err := svc.Register(ctx, RegisterDTO{
			Email:    "Grace@Example.com",
			Name:     "Grace",
			Password: "correct horse",
		})
		if err != nil {
			t.Fatal(err)
		}
		return u
	}

	t.Run("RegisterNormalizesEmail", func(t *testing.T) {
		svc := NewService(newFakeUserRepo())
		u := register(t, svc)
		if u.Email != "grace@example.com" {
			t.Errorf("email = %q", u.Email)
		}
	})

	t.Run("RegisterRejectsDuplicate", func(t *testing.T) {
		svc := NewService(newFakeUserRepo())
		register(t, svc)

		_, err := svc.Register(ctx, RegisterDTO{Email: "grace@example.com", Password: "another pass"})
		if !errors.Is(err, ErrEmailTaken) {
			t.Errorf("expected ErrEmailTaken, got %v", err)
		}
	})

	t.Run("RegisterRejectsShortPassword", func(t *testing.T) {
		svc := NewService(newFakeUserRepo())

		_, err := svc.Register(ctx, RegisterDTO{Email: "a@b.com", Password: "short"})
		if !errors.Is(err, ErrWeakPassword) {
			t.Errorf("expected ErrWeakPassword, got %v", err)
		}
	})

	t.Run("RegisterRejectsBlankEmail", func(t *testing.T) {
		svc := NewService(newFakeUserRepo())

		_, err := svc.Register(ctx, RegisterDTO{Email: "   ", Password: "long enough"})
		if !errors.Is(err, ErrInvalidEmail) {
			t.Errorf("expected ErrInvalidEmail, got %v", err)
		}
	})

	t.Run("LoginIssuesBothTokens", func(t *testing.T) {
		repo := newFakeUserRepo()
		svc := NewService(repo)
		register(t, svc)

		tokens, err := svc.Login(ctx, LoginDTO{Email: "grace@example.com", Password: "correct horse"})
		if err != nil {
			t.Fatal(err)
		}
		if tokens.Token == "" || tokens.RefreshToken == "" {
			t.Error("expected access and refresh tokens")
		}

		claims, err := auth.ValidateJWT(tokens.Token)
		if err != nil {
			t.Fatal(err)
		}
		if claims.Role != "user" {
			t.Errorf("role = %q", claims.Role)
		}
	})

	t.Run("LoginRejectsWrongPassword", func(t *testing.T) {
		svc := NewService(newFakeUserRepo())
		register(t, svc)

		_, err := svc.Login(ctx, LoginDTO{Email: "grace@example.com", Password: "wrong pass"})
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Errorf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("LoginRejectsUnknownEmail", func(t *testing.T) {
		svc := NewService(newFakeUserRepo())

		_, err := svc.Login(ctx, LoginDTO{Email: "ghost@example.com", Password: "whatever1"})
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Errorf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("RefreshIssuesNewAccessToken", func(t *testing.T) {
		svc := NewService(newFakeUserRepo())
		register(t, svc)

		tokens, err := svc.Login(ctx, LoginDTO{Email: "grace@example.com", Password: "correct horse"})
		if err != nil {
			t.Fatal(err)
		}

		refreshed, err := svc.Refresh(ctx, tokens.RefreshToken)
		if err != nil {
			t.Fatal(err)
		}
		if refreshed.Token == "" {
			t.Error("expected a fresh access token")
		}
	})

	t.Run("RefreshRejectsGarbage", func(t *testing.T) {
		svc := NewService(newFakeUserRepo())

		if _, err := svc.Refresh(ctx, "not.a.token"); !errors.Is(err, ErrInvalidCredentials) {
			t.Errorf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("GetByIDUnknownUser", func(t *testing.T) {
		svc := NewService(newFakeUserRepo())

		if _, err := svc.GetByID(ctx, "00000000-0000-0000-0000-000000000000"); !errors.Is(err, ErrUserNotFound) {
			t.Errorf("expected ErrUserNotFound, got %v", err)
		}
	})
}

package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/habitflow/backend/internal/application/adapter"
	"github.com/habitflow/backend/internal/domain/entity"
	domainerror "github.com/habitflow/backend/internal/domain/error"
)

type fakeUserRepo struct {
	users map[string]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*entity.User)}
}

func (r *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	r.users[user.Email] = user
	return nil
}

func (r *fakeUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, domainerror.ErrUserNotFound
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	if u, ok := r.users[email]; ok {
		return u, nil
	}
	return nil, domainerror.ErrUserNotFound
}

func (r *fakeUserRepo) FindAll(_ context.Context) ([]*entity.User, error) {
	var users []*entity.User
	for _, u := range r.users {
		users = append(users, u)
	}
	return users, nil
}

func (r *fakeUserRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	_, ok := r.users[email]
	return ok, nil
}

// fakePasswordService "hashes" by prefixing, enough to assert the plain
// password is never stored.
type fakePasswordService struct{}

func (fakePasswordService) HashPassword(password string) (string, error) {
	return "hashed:" + password, nil
}

func (fakePasswordService) VerifyPassword(hashedPassword, password string) error {
	if hashedPassword != "hashed:"+password {
		return errors.New("mismatch")
	}
	return nil
}

func (fakePasswordService) ValidatePasswordStrength(password string) error {
	if len(password) < 8 {
		return errors.New("too short")
	}
	return nil
}

type fakeTokenService struct{}

func (fakeTokenService) GenerateAccessToken(_ context.Context, userID uuid.UUID, _ string) (string, time.Time, error) {
	return "token-" + userID.String(), time.Now().Add(time.Hour), nil
}

func (fakeTokenService) ValidateAccessToken(_ context.Context, _ string) (*adapter.TokenClaims, error) {
	return nil, errors.New("not implemented")
}

func TestRegisterUser(t *testing.T) {
	repo := newFakeUserRepo()
	uc := NewRegisterUserUseCase(repo, fakePasswordService{}, fakeTokenService{})

	out, err := uc.Execute(context.Background(), RegisterUserInput{
		Email:    "  Ana@Example.COM ",
		Name:     "Ana",
		Password: "correcthorse",
	})
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if out.User.Email != "ana@example.com" {
		t.Errorf("Email = %q, want normalized lowercase", out.User.Email)
	}
	if out.User.PasswordHash == "correcthorse" {
		t.Error("plain password stored")
	}
	if out.AccessToken == "" {
		t.Error("no access token issued")
	}
	if !out.User.WeeklyReports {
		t.Error("weekly reports should default on")
	}

	// Duplicate email rejected.
	_, err = uc.Execute(context.Background(), RegisterUserInput{
		Email: "ana@example.com", Name: "Ana", Password: "correcthorse",
	})
	var authErr *domainerror.AuthError
	if !errors.As(err, &authErr) || authErr.Code != domainerror.ErrCodeEmailExists {
		t.Errorf("duplicate email error = %v", err)
	}

	// Weak password rejected.
	_, err = uc.Execute(context.Background(), RegisterUserInput{
		Email: "bob@example.com", Name: "Bob", Password: "short",
	})
	if !errors.As(err, &authErr) || authErr.Code != domainerror.ErrCodeWeakPassword {
		t.Errorf("weak password error = %v", err)
	}

	// Malformed email rejected.
	_, err = uc.Execute(context.Background(), RegisterUserInput{
		Email: "not-an-email", Name: "Bob", Password: "correcthorse",
	})
	if !errors.As(err, &authErr) || authErr.Code != domainerror.ErrCodeInvalidEmail {
		t.Errorf("malformed email error = %v", err)
	}
}

func TestLoginUser(t *testing.T) {
	repo := newFakeUserRepo()
	register := NewRegisterUserUseCase(repo, fakePasswordService{}, fakeTokenService{})
	login := NewLoginUserUseCase(repo, fakePasswordService{}, fakeTokenService{})

	if _, err := register.Execute(context.Background(), RegisterUserInput{
		Email: "ana@example.com", Name: "Ana", Password: "correcthorse",
	}); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	out, err := login.Execute(context.Background(), LoginUserInput{
		Email: "ANA@example.com", Password: "correcthorse",
	})
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if out.AccessToken == "" {
		t.Error("no access token issued")
	}

	// Wrong password and unknown email map to the same error code.
	var authErr *domainerror.AuthError
	_, err = login.Execute(context.Background(), LoginUserInput{Email: "ana@example.com", Password: "wrong"})
	if !errors.As(err, &authErr) || authErr.Code != domainerror.ErrCodeInvalidCredentials {
		t.Errorf("wrong password error = %v", err)
	}
	_, err = login.Execute(context.Background(), LoginUserInput{Email: "ghost@example.com", Password: "correcthorse"})
	if !errors.As(err, &authErr) || authErr.Code != domainerror.ErrCodeInvalidCredentials {
		t.Errorf("unknown email error = %v", err)
	}
}

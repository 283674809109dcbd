package auth

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"fixel/models"
	"fixel/utils"
)

type memUserRepo struct {
	users map[string]models.UserProfile
	seq   int
}

func (r *memUserRepo) Insert(ctx context.Context, profile models.UserProfile) (*models.UserProfile, error) {
	if profile.ID == "" {
		r.seq++
		profile.ID = fmt.Sprintf("user-%d", r.seq)
	}
	r.users[profile.ID] = profile
	return &profile, nil
}

func (r *memUserRepo) GetByID(ctx context.Context, id string) (*models.UserProfile, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (r *memUserRepo) GetByEmail(ctx context.Context, email string) (*models.UserProfile, error) {
	for _, u := range r.users {
		if u.Email == email {
			uu := u
			return &uu, nil
		}
	}
	return nil, nil
}

func (r *memUserRepo) UpdateFCMToken(ctx context.Context, id, token string) error { return nil }

type memTechRepo struct {
	technicians map[string]models.Technician
}

func (r *memTechRepo) Insert(ctx context.Context, tech models.Technician) (*models.Technician, error) {
	r.technicians[tech.ID] = tech
	return &tech, nil
}

func (r *memTechRepo) GetByID(ctx context.Context, id string) (*models.Technician, error) {
	t, ok := r.technicians[id]
	if !ok {
		return nil, nil
	}
	return &t, nil
}

func (r *memTechRepo) GetByEmail(ctx context.Context, email string) (*models.Technician, error) {
	for _, t := range r.technicians {
		if t.Email == email {
			tt := t
			return &tt, nil
		}
	}
	return nil, nil
}

func (r *memTechRepo) GetByProviderRole(ctx context.Context, role string) ([]models.Technician, error) {
	return nil, nil
}

func (r *memTechRepo) UpdateFCMToken(ctx context.Context, id, token string) error { return nil }

func (r *memTechRepo) Delete(ctx context.Context, id string) error { return nil }

func newGuard() (*Guard, *memUserRepo, *memTechRepo) {
	users := &memUserRepo{users: map[string]models.UserProfile{}}
	techs := &memTechRepo{technicians: map[string]models.Technician{}}
	return &Guard{Verifier: JWTVerifier{}, Users: users, Technicians: techs}, users, techs
}

func TestGuardRejectsInvalidToken(t *testing.T) {
	t.Parallel()
	guard, _, _ := newGuard()

	_, err := guard.VerifyUser(context.Background(), "not-a-jwt")
	var unauthorized *utils.UnauthorizedError
	if !errors.As(err, &unauthorized) {
		t.Fatalf("err = %v, want UnauthorizedError", err)
	}
}

func TestGuardForbidsTokenWithoutProfile(t *testing.T) {
	t.Parallel()
	guard, _, _ := newGuard()

	// Authenticated but never registered.
	token, err := utils.GenerateToken("ghost", "user", tokenLifetime)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	_, err = guard.VerifyUser(context.Background(), token)
	var forbidden *utils.ForbiddenError
	if !errors.As(err, &forbidden) {
		t.Fatalf("err = %v, want ForbiddenError", err)
	}
}

func TestGuardVerifyUser(t *testing.T) {
	t.Parallel()
	guard, users, _ := newGuard()
	users.users["user-1"] = models.UserProfile{ID: "user-1", Name: "Ada"}

	token, err := utils.GenerateToken("user-1", "user", tokenLifetime)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	id, err := guard.VerifyUser(context.Background(), token)
	if err != nil {
		t.Fatalf("VerifyUser: %v", err)
	}
	if id != "user-1" {
		t.Fatalf("principal = %s, want user-1", id)
	}
}

func TestGuardVerifyTechnician(t *testing.T) {
	t.Parallel()
	guard, _, techs := newGuard()
	techs.technicians["t1"] = models.Technician{ID: "t1", Name: "Bob"}

	token, err := utils.GenerateToken("t1", "technician", tokenLifetime)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	id, err := guard.VerifyTechnician(context.Background(), token)
	if err != nil {
		t.Fatalf("VerifyTechnician: %v", err)
	}
	if id != "t1" {
		t.Fatalf("principal = %s, want t1", id)
	}

	// A user token whose subject has no technician row is not enough.
	userToken, err := utils.GenerateToken("user-1", "user", tokenLifetime)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	_, err = guard.VerifyTechnician(context.Background(), userToken)
	var forbidden *utils.ForbiddenError
	if !errors.As(err, &forbidden) {
		t.Fatalf("err = %v, want ForbiddenError", err)
	}
}

func TestRegisterThenLogin(t *testing.T) {
	t.Parallel()
	_, users, techs := newGuard()
	accounts := &AccountService{Users: users, Technicians: techs}

	session, err := accounts.RegisterUser(context.Background(), RegisterUserRequest{
		Name: "Ada", Email: "ada@example.com", Password: "correct horse",
	})
	if err != nil {
		t.Fatalf("RegisterUser: %v", err)
	}
	if session.Token == "" || session.ProfileID == "" {
		t.Fatalf("session = %+v, want token and profile id", session)
	}

	login, err := accounts.LoginUser(context.Background(), "ada@example.com", "correct horse")
	if err != nil {
		t.Fatalf("LoginUser: %v", err)
	}
	if login.ProfileID != session.ProfileID {
		t.Fatalf("login profile = %s, want %s", login.ProfileID, session.ProfileID)
	}

	_, err = accounts.LoginUser(context.Background(), "ada@example.com", "wrong password")
	var unauthorized *utils.UnauthorizedError
	if !errors.As(err, &unauthorized) {
		t.Fatalf("err = %v, want UnauthorizedError", err)
	}

	_, err = accounts.RegisterUser(context.Background(), RegisterUserRequest{
		Name: "Imposter", Email: "ada@example.com", Password: "something else",
	})
	var invalid *utils.InvalidStateError
	if !errors.As(err, &invalid) {
		t.Fatalf("err = %v, want InvalidStateError", err)
	}
}

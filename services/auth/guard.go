package auth

import (
	"context"

	"fixel/database/repository"
	"fixel/utils"
)

// IdentityVerifier resolves a bearer token to a principal identity. The
// default implementation validates locally issued JWTs; swapping in a
// hosted auth provider only requires another implementation.
type IdentityVerifier interface {
	Verify(token string) (principalID string, err error)
}

// JWTVerifier validates HS256 tokens issued by this service.
type JWTVerifier struct{}

func (JWTVerifier) Verify(token string) (string, error) {
	id, err := utils.ExtractIDFromToken(token)
	if err != nil {
		return "", &utils.UnauthorizedError{Reason: "invalid token"}
	}
	return id, nil
}

// Guard gates mutating operations behind principal resolution plus a
// registration check. Both checks are side-effect-free reads.
type Guard struct {
	Verifier    IdentityVerifier
	Users       repository.UserRepository
	Technicians repository.TechnicianRepository
}

// VerifyUser resolves the token and requires a matching customer
// profile. A valid token without a profile row is authenticated but not
// registered, which is a distinct failure.
func (g *Guard) VerifyUser(ctx context.Context, token string) (string, error) {
	id, err := g.Verifier.Verify(token)
	if err != nil {
		return "", err
	}
	profile, err := g.Users.GetByID(ctx, id)
	if err != nil {
		return "", &utils.DependencyError{Op: "verifyUser", Err: err}
	}
	if profile == nil {
		return "", &utils.ForbiddenError{Reason: "user profile not found, please register"}
	}
	return id, nil
}

// VerifyTechnician resolves the token and requires a matching technician row.
func (g *Guard) VerifyTechnician(ctx context.Context, token string) (string, error) {
	id, err := g.Verifier.Verify(token)
	if err != nil {
		return "", err
	}
	tech, err := g.Technicians.GetByID(ctx, id)
	if err != nil {
		return "", &utils.DependencyError{Op: "verifyTechnician", Err: err}
	}
	if tech == nil {
		return "", &utils.ForbiddenError{Reason: "technician profile not found"}
	}
	return id, nil
}

package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/onamfest/scorekeeper/models"
	"github.com/onamfest/scorekeeper/repositories"
	"golang.org/x/crypto/bcrypt"
)

type AuthService interface {
	// Login verifies the credentials and returns the matching admin.
	// Unknown usernames and wrong passwords are indistinguishable to the
	// caller, so the response cannot be used for username enumeration.
	Login(ctx context.Context, input LoginInput) (*models.Admin, error)
	// EnsureDefaultAdmin provisions the bootstrap admin when no identity
	// exists yet. It reports whether an admin was created.
	EnsureDefaultAdmin(ctx context.Context, username, password string) (bool, error)
}

type LoginInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type authService struct {
	adminRepo repositories.AdminRepository
}

func NewAuthService(adminRepo repositories.AdminRepository) AuthService {
	return &authService{adminRepo: adminRepo}
}

func (s *authService) Login(ctx context.Context, input LoginInput) (*models.Admin, error) {
	admin, err := s.adminRepo.GetByUsername(ctx, input.Username)
	if err != nil {
		if errors.Is(err, repositories.ErrAdminNotFound) {
			return nil, ErrAuthInvalidCredentials
		}
		return nil, fmt.Errorf("failed to find admin by username: %w", err)
	}

	err = bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(input.Password))
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return nil, ErrAuthInvalidCredentials
		}
		return nil, fmt.Errorf("failed to compare password hash: %w", err)
	}

	admin.PasswordHash = ""

	return admin, nil
}

func (s *authService) EnsureDefaultAdmin(ctx context.Context, username, password string) (bool, error) {
	count, err := s.adminRepo.Count(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to count admins: %w", err)
	}
	if count > 0 {
		return false, nil
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return false, fmt.Errorf("failed to hash admin password: %w", err)
	}

	admin := &models.Admin{
		Username:     username,
		PasswordHash: string(hashedPassword),
	}
	if err := s.adminRepo.Create(ctx, admin); err != nil {
		// Another instance may have provisioned the admin between the count
		// and the insert, which is fine.
		if errors.Is(err, repositories.ErrAdminConflict) {
			return false, nil
		}
		return false, fmt.Errorf("failed to create default admin: %w", err)
	}
	return true, nil
}

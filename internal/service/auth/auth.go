// internal/service/auth/auth.go
package auth

import (
	"context"
	"fmt"

	"impactlink-service/internal/domain/auth"
	xerrors "impactlink-service/internal/pkg/errors"
	"impactlink-service/internal/pkg/jwt"
	"impactlink-service/internal/pkg/session"
	"impactlink-service/internal/repository/postgres"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type AuthService struct {
	users       *postgres.DashboardUserRepository
	companies   *postgres.CompanyRepository
	jwtManager  *jwt.Manager
	rateLimiter *session.RateLimiter
	logger      *zap.Logger
}

func NewAuthService(
	users *postgres.DashboardUserRepository,
	companies *postgres.CompanyRepository,
	jwtManager *jwt.Manager,
	rateLimiter *session.RateLimiter,
	logger *zap.Logger,
) *AuthService {
	return &AuthService{
		users:       users,
		companies:   companies,
		jwtManager:  jwtManager,
		rateLimiter: rateLimiter,
		logger:      logger,
	}
}

// Login verifies dashboard credentials and issues a signed token.
func (s *AuthService) Login(ctx context.Context, req *auth.LoginRequest) (*auth.LoginResponse, error) {
	// Rate limiting
	allowed, remaining, err := s.rateLimiter.CheckLoginAttempt(ctx, req.IPAddress, req.Email)
	if err != nil {
		return nil, fmt.Errorf("rate limiter error: %w", err)
	}
	if !allowed {
		return nil, fmt.Errorf("too many login attempts, please try again in 15 minutes: %w", xerrors.ErrRateLimited)
	}

	user, err := s.users.FindByEmail(ctx, req.Email)
	if err != nil {
		if xerrors.Is(err, xerrors.ErrNotFound) {
			return nil, fmt.Errorf("invalid credentials: %w", xerrors.ErrUnauthorized)
		}
		return nil, fmt.Errorf("login failed: %w", err)
	}

	if !user.IsActive {
		return nil, fmt.Errorf("invalid credentials: %w", xerrors.ErrUnauthorized)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, fmt.Errorf("invalid credentials (attempts remaining: %d): %w", remaining, xerrors.ErrUnauthorized)
	}

	if err := s.rateLimiter.ResetLoginAttempts(ctx, req.IPAddress, req.Email); err != nil {
		s.logger.Warn("failed to reset login attempts", zap.Error(err))
	}

	profile := s.profileWithCompany(ctx, user)

	token, err := s.jwtManager.Generate(user.ID, user.Role, user.CompanyID)
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}

	s.logger.Info("dashboard login",
		zap.String("user_id", user.ID),
		zap.String("role", user.Role),
	)

	return &auth.LoginResponse{Token: token, User: profile}, nil
}

// Me reloads the authenticated user's profile with company enrichment.
func (s *AuthService) Me(ctx context.Context, userID string) (*auth.UserProfile, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if xerrors.Is(err, xerrors.ErrNotFound) {
			return nil, fmt.Errorf("profile not found: %w", xerrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}

	profile := s.profileWithCompany(ctx, user)
	return &profile, nil
}

// ValidateToken verifies a bearer token and returns its claims.
func (s *AuthService) ValidateToken(token string) (*jwt.Claims, error) {
	return s.jwtManager.Verify(token)
}

// profileWithCompany enriches a user payload with their company's name,
// slug, and campaign referral code. Company lookup failures are logged
// and leave the fields empty; they never fail the request.
func (s *AuthService) profileWithCompany(ctx context.Context, user *auth.DashboardUser) auth.UserProfile {
	profile := auth.UserProfile{
		ID:        user.ID,
		Email:     user.Email,
		FullName:  user.FullName,
		Role:      user.Role,
		CompanyID: user.CompanyID,
	}

	if user.CompanyID == nil {
		return profile
	}

	company, err := s.companies.FindByID(ctx, *user.CompanyID)
	if err != nil {
		if !xerrors.Is(err, xerrors.ErrNotFound) {
			s.logger.Warn("failed to load company for user",
				zap.String("user_id", user.ID),
				zap.Error(err),
			)
		}
		return profile
	}

	profile.ReferralCode = company.ReferralCode
	profile.CompanySlug = company.Slug
	profile.CompanyName = &company.Name
	return profile
}

package services

import (
	"errors"
	"strings"

	"onlyfame_backend/internal/auth"
	"onlyfame_backend/internal/guard"
	"onlyfame_backend/internal/logger"
	"onlyfame_backend/internal/models"
	"onlyfame_backend/internal/repositories"
	"onlyfame_backend/internal/services/dto"
	"onlyfame_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type AuthService interface {
	Register(db *gorm.DB, req *dto.RegisterRequest) (*dto.AuthResponse, error)
	Login(db *gorm.DB, req *dto.LoginRequest) (*dto.AuthResponse, error)
	// ResolveSession проверяет токен и подгружает роль из Profile
	ResolveSession(db *gorm.DB, token string) (*guard.Session, error)
}

type AuthServiceImpl struct {
	userRepo    repositories.UserRepository
	profileRepo repositories.ProfileRepository
	tokens      *auth.TokenManager
	now         Clock
}

func NewAuthService(
	userRepo repositories.UserRepository,
	profileRepo repositories.ProfileRepository,
	tokens *auth.TokenManager,
) AuthService {
	return &AuthServiceImpl{
		userRepo:    userRepo,
		profileRepo: profileRepo,
		tokens:      tokens,
		now:         defaultClock,
	}
}

// Register - регистрация: User + Profile + профиль роли одной транзакцией
func (s *AuthServiceImpl) Register(db *gorm.DB, req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	if err := auth.ValidatePassword(req.Password); err != nil {
		return nil, apperrors.ErrWeakPassword
	}
	if !req.Role.IsValid() {
		return nil, apperrors.ErrInvalidUserRole
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	fullName := strings.TrimSpace(req.FullName)
	user := &models.User{
		Email:        req.Email,
		PasswordHash: hash,
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := s.userRepo.Create(tx, user); err != nil {
			return err
		}

		profile := &models.Profile{
			BaseModel: models.BaseModel{ID: user.ID},
			Role:      req.Role,
			FullName:  fullName,
			Email:     user.Email,
		}
		if err := s.profileRepo.CreateProfile(tx, profile); err != nil {
			return err
		}

		switch req.Role {
		case models.UserRoleActor:
			return s.profileRepo.CreateActorProfile(tx, &models.ActorProfile{UserID: user.ID})
		case models.UserRoleCaster:
			return s.profileRepo.CreateCastingProfile(tx, &models.CastingProfile{
				UserID:      user.ID,
				CompanyName: fullName,
			})
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		return nil, apperrors.DatabaseError(err)
	}

	logger.Info("User registered", "user_id", user.ID, "role", req.Role)

	return s.issue(user, fullName, req.Role)
}

// Login - аутентификация по email и паролю
func (s *AuthServiceImpl) Login(db *gorm.DB, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.userRepo.FindByEmail(db, req.Email)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.DatabaseError(err)
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	if err := s.userRepo.UpdateLastLogin(db, user.ID, s.now()); err != nil {
		logger.CtxWarn(db.Statement.Context, "Failed to update last login", "user_id", user.ID, "error", err.Error())
	}

	// Профиля может еще не быть: тогда guard покажет экран ожидания
	role := models.UserRoleActor
	fullName := ""
	profile, err := s.profileRepo.FindProfileByID(db, user.ID)
	switch {
	case err == nil:
		role = profile.Role
		fullName = profile.FullName
	case !errors.Is(err, repositories.ErrProfileNotFound):
		return nil, apperrors.DatabaseError(err)
	}

	resp, err := s.issue(user, fullName, role)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		resp.User.Role = ""
	}
	return resp, nil
}

func (s *AuthServiceImpl) ResolveSession(db *gorm.DB, token string) (*guard.Session, error) {
	claims, err := s.tokens.Parse(token)
	if err != nil {
		return nil, apperrors.ErrInvalidToken
	}

	user, err := s.userRepo.FindByID(db, claims.UserID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidToken
		}
		return nil, apperrors.DatabaseError(err)
	}

	session := &guard.Session{UserID: user.ID, Email: user.Email}

	profile, err := s.profileRepo.FindProfileByID(db, user.ID)
	switch {
	case err == nil:
		session.Role = profile.Role
		session.FullName = profile.FullName
	case !errors.Is(err, repositories.ErrProfileNotFound):
		return nil, apperrors.DatabaseError(err)
	}

	return session, nil
}

func (s *AuthServiceImpl) issue(user *models.User, fullName string, role models.UserRole) (*dto.AuthResponse, error) {
	token, expiresAt, err := s.tokens.Generate(user.ID, user.Email)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.AuthResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		Redirect:  role.Dashboard(),
		User: dto.UserSummary{
			ID:       user.ID,
			Email:    user.Email,
			FullName: fullName,
			Role:     role,
		},
	}, nil
}

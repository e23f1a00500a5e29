package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"recipehub/internal/auth"
	"recipehub/internal/dto"
	apperrors "recipehub/internal/errors"
	"recipehub/internal/model"
	"recipehub/internal/repository"
)

const (
	msgDuplicateLoginID  = "중복된 아이디가 존재합니다."
	msgDuplicateEmail    = "중복된 이메일이 존재합니다."
	msgSignupSuccess     = "회원가입에 성공하였습니다."
	msgCurrentPwMismatch = "입력한 현재 비밀번호가 일치하지 않습니다."
	msgProfileUpdated    = "프로필 정보를 성공적으로 수정하였습니다."
	msgPasswordMismatch  = "비밀번호가 일치하지 않습니다."
	msgWithdrawn         = "회원 탈퇴가 성공적으로 완료되었습니다."
)

// UserService exposes account lifecycle operations.
type UserService interface {
	Signup(ctx context.Context, req dto.SignupRequest) (*dto.Response, error)
	GetProfile(ctx context.Context, id uint) (*dto.UserProfile, error)
	UpdateProfile(ctx context.Context, userID uint, req dto.ProfileUpdateRequest) (*dto.Response, error)
	Withdraw(ctx context.Context, userID uint, password string, access *auth.Claims) (*dto.Response, error)
}

type userService struct {
	repo       repository.UserRepository
	hasher     auth.PasswordHasher
	tokenStore auth.TokenStoreInterface
	jwtService *auth.JWTService
	recorder   ActivityRecorder
	now        func() time.Time
}

// NewUserService builds a UserService.
func NewUserService(
	repo repository.UserRepository,
	hasher auth.PasswordHasher,
	tokenStore auth.TokenStoreInterface,
	jwtService *auth.JWTService,
	recorder ActivityRecorder,
) UserService {
	return &userService{
		repo:       repo,
		hasher:     hasher,
		tokenStore: tokenStore,
		jwtService: jwtService,
		recorder:   recorder,
		now:        time.Now,
	}
}

// Signup registers a new ACTIVE user. Duplicates are reported as a 400
// Response, not an error.
func (s *userService) Signup(ctx context.Context, req dto.SignupRequest) (*dto.Response, error) {
	taken, err := s.exists(ctx, s.repo.FindByLoginID, req.UserID)
	if err != nil {
		return nil, fmt.Errorf("check login id: %w", err)
	}
	if taken {
		return dto.BadRequest(msgDuplicateLoginID), nil
	}

	taken, err = s.exists(ctx, s.repo.FindByEmail, req.Email)
	if err != nil {
		return nil, fmt.Errorf("check email: %w", err)
	}
	if taken {
		return dto.BadRequest(msgDuplicateEmail), nil
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, err
	}

	user := model.NewUser(req.UserID, hash, req.Name, req.Email, req.Description)
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	log.Info().Uint("user_id", user.ID).Str("login_id", user.LoginID).Msg("user signed up")
	s.recorder.Record(user.ID, model.ActivityUserSignup, model.TargetUser, user.ID)
	return dto.OK(msgSignupSuccess), nil
}

func (s *userService) exists(ctx context.Context, find func(context.Context, string) (*model.User, error), key string) (bool, error) {
	_, err := find(ctx, key)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, apperrors.ErrUserNotFound):
		return false, nil
	default:
		return false, err
	}
}

func (s *userService) GetProfile(ctx context.Context, id uint) (*dto.UserProfile, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return dto.NewUserProfile(user), nil
}

// UpdateProfile replaces name and description after the current password
// is confirmed, and rotates the password when a different one is given.
func (s *userService) UpdateProfile(ctx context.Context, userID uint, req dto.ProfileUpdateRequest) (*dto.Response, error) {
	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if !s.hasher.Matches(req.CurrentPassword, user.PasswordHash) {
		return dto.BadRequest(msgCurrentPwMismatch), nil
	}

	if newPassword, ok := req.NewPassword.Get(); ok && !s.hasher.Matches(newPassword, user.PasswordHash) {
		hash, err := s.hasher.Hash(newPassword)
		if err != nil {
			return nil, err
		}
		user.UpdatePassword(hash)
	}
	user.UpdateProfile(req.Name, req.Description)

	if err := s.repo.Save(ctx, user); err != nil {
		return nil, fmt.Errorf("save user %d: %w", user.ID, err)
	}

	s.recorder.Record(user.ID, model.ActivityUserProfileUpdate, model.TargetUser, user.ID)
	return dto.OK(msgProfileUpdated), nil
}

// Withdraw moves the user to WITHDRAWN and revokes the presented access token.
func (s *userService) Withdraw(ctx context.Context, userID uint, password string, access *auth.Claims) (*dto.Response, error) {
	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if !s.hasher.Matches(password, user.PasswordHash) {
		return dto.BadRequest(msgPasswordMismatch), nil
	}

	if err := user.Withdraw(s.now()); err != nil {
		return nil, err
	}
	if err := s.repo.Save(ctx, user); err != nil {
		return nil, fmt.Errorf("save user %d: %w", user.ID, err)
	}
	revokeAccessToken(ctx, s.tokenStore, s.jwtService, access)

	log.Info().Uint("user_id", user.ID).Msg("user withdrawn")
	s.recorder.Record(user.ID, model.ActivityUserWithdraw, model.TargetUser, user.ID)
	return dto.OK(msgWithdrawn), nil
}

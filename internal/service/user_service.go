package service

import (
	"Inkstone/internal/api/dto"
	"Inkstone/internal/model"
	"Inkstone/internal/pkg/consts"
	"Inkstone/internal/pkg/redis"
	"Inkstone/internal/pkg/security"
	"Inkstone/internal/repository"
	"context"
	"errors"
	"time"

	"github.com/jinzhu/copier"
)

type UserService interface {
	Register(ctx context.Context, req *dto.RegisterDTO) error
	Login(ctx context.Context, req *dto.CredentialDTO) (string, error)
	Logout(ctx context.Context, token string) error
	GetUserInfo(ctx context.Context, userID uint64) (*dto.UserDTO, error)
	UpdateUserInfo(ctx context.Context, userID uint64, req *dto.UserUpdateDTO) (string, error)
}

type UserServiceImpl struct {
	userRepo repository.UserRepo
}

func NewUserService(userRepo repository.UserRepo) UserService {
	return &UserServiceImpl{userRepo: userRepo}
}

// Register 用户注册
func (s *UserServiceImpl) Register(ctx context.Context, req *dto.RegisterDTO) error {
	hashed, err := security.HashPassword(req.Password)
	if err != nil {
		return err
	}

	user := &model.User{
		Username: req.Username,
		Email:    req.Email,
		Password: hashed,
		Nickname: req.Nickname,
	}
	err = s.userRepo.CreateUser(ctx, user)
	if errors.Is(err, repository.ErrDuplicateKey) {
		return ErrUserUsernameExist
	}
	return err
}

// Login 用户名密码登录，返回 JWT
func (s *UserServiceImpl) Login(ctx context.Context, req *dto.CredentialDTO) (string, error) {
	user, err := s.userRepo.GetUserByUsername(ctx, req.Username)
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", ErrUserNotFound
	}
	if err := security.CheckPasswordHash(req.Password, user.Password); err != nil {
		return "", ErrPasswordIncorrect
	}
	return security.GenerateToken(user.ID)
}

// Logout 将 Token 签名拉黑至其自然过期
func (s *UserServiceImpl) Logout(ctx context.Context, token string) error {
	signature, err := security.ExtractSignature(token)
	if err != nil {
		return ErrParamInvalid
	}
	claims, err := security.ValidateToken(token)
	if err != nil {
		return UnauthorizedError
	}

	ttl := time.Until(claims.ExpiresAt.Time)
	if ttl <= 0 {
		return nil
	}
	return redis.SetWithExpiration(ctx, consts.TokenBlacklistKey+signature, "revoked", ttl)
}

func (s *UserServiceImpl) GetUserInfo(ctx context.Context, userID uint64) (*dto.UserDTO, error) {
	user, err := s.userRepo.GetUserById(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	out := &dto.UserDTO{}
	if err := copier.Copy(out, user); err != nil {
		return nil, err
	}
	out.UserID = user.ID
	out.CreatedAt = &user.CreatedAt
	return out, nil
}

// UpdateUserInfo 更新个人资料，返回用户名供跳转回个人主页
func (s *UserServiceImpl) UpdateUserInfo(ctx context.Context, userID uint64, req *dto.UserUpdateDTO) (string, error) {
	user, err := s.userRepo.GetUserById(ctx, userID)
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", ErrUserNotFound
	}

	if req.Email != nil {
		user.Email = *req.Email
	}
	if req.Nickname != nil {
		user.Nickname = *req.Nickname
	}
	if req.Bio != nil {
		user.Bio = *req.Bio
	}
	if req.AvatarURL != nil {
		user.AvatarURL = *req.AvatarURL
	}

	if err := s.userRepo.UpdateUser(ctx, user); err != nil {
		return "", err
	}
	return user.Username, nil
}

package user

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"blackboxinc-be/internal/logger"
)

type Service interface {
	Register(ctx context.Context, params RegisterParams) (string, User, error)
	Login(ctx context.Context, params LoginParams) (string, User, error)
	Profile(ctx context.Context, userID uint) (User, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Register(ctx context.Context, params RegisterParams) (string, User, error) {
	log := logger.FromCtx(ctx)

	hashed, err := HashPassword(params.Password)
	if err != nil {
		log.Error("failed to hash password", zap.Error(err))
		return "", User{}, err
	}

	u, err := s.repo.Create(ctx, params.Name, params.Email, hashed, string(RoleUser))
	if err != nil {
		if !errors.Is(err, ErrEmailExists) {
			log.Error("failed to create user", zap.String("email", params.Email), zap.Error(err))
		}
		return "", User{}, err
	}

	token, err := GenerateJWT(u.ID, string(u.Role), u.Email)
	if err != nil {
		log.Error("failed to generate jwt", zap.String("user_id", fmt.Sprint(u.ID)), zap.Error(err))
		return "", User{}, err
	}

	log.Info("register service completed",
		zap.String("user_id", fmt.Sprint(u.ID)),
		zap.String("email", params.Email),
	)

	return token, u, nil
}

func (s *service) Login(ctx context.Context, params LoginParams) (string, User, error) {
	u, err := s.repo.FindByEmail(ctx, params.Email)
	if err != nil {
		// same answer whether the email or the password is wrong
		return "", User{}, ErrInvalidCredentials
	}

	if !CheckPasswordHash(params.Password, u.Password) {
		return "", User{}, ErrInvalidCredentials
	}

	token, err := GenerateJWT(u.ID, string(u.Role), u.Email)
	return token, u, err
}

func (s *service) Profile(ctx context.Context, userID uint) (User, error) {
	u, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return User{}, err
	}
	u.Password = ""
	return u, nil
}

package usecase

import (
	"fmt"

	"snake-arena/internal/entity"
	"snake-arena/internal/repo/persistent"
	"snake-arena/pkg/jwt"
	"snake-arena/pkg/logger"
	"snake-arena/pkg/password"
)

type AuthUseCase interface {
	SignUp(username, email, plainPassword string) (*entity.User, string, error)
	Login(email, plainPassword string) (*entity.User, string, error)
	GetUserByEmail(email string) (*entity.User, error)
}

type authUseCase struct {
	userRepo   persistent.UserRepository
	jwtService *jwt.Service
	logger     *logger.Logger
}

func NewAuthUseCase(
	userRepo persistent.UserRepository,
	jwtService *jwt.Service,
	logger *logger.Logger,
) AuthUseCase {
	return &authUseCase{
		userRepo:   userRepo,
		jwtService: jwtService,
		logger:     logger,
	}
}

func (uc *authUseCase) SignUp(username, email, plainPassword string) (*entity.User, string, error) {
	_, err := uc.userRepo.GetByEmail(email)
	if err == nil {
		return nil, "", fmt.Errorf("email already registered")
	}

	_, err = uc.userRepo.GetByUsername(username)
	if err == nil {
		return nil, "", fmt.Errorf("username already taken")
	}

	hashed, err := password.Hash(plainPassword)
	if err != nil {
		uc.logger.Error("Failed to hash password: %v", err)
		return nil, "", fmt.Errorf("failed to process signup")
	}

	user := &entity.User{
		Username: username,
		Email:    email,
		Password: hashed,
	}

	if err := uc.userRepo.Create(user); err != nil {
		uc.logger.Error("Failed to create user: %v", err)
		return nil, "", fmt.Errorf("failed to create user")
	}

	token, err := uc.jwtService.GenerateToken(user.Email)
	if err != nil {
		uc.logger.Error("Failed to generate token: %v", err)
		return nil, "", fmt.Errorf("failed to generate token")
	}

	user.Password = ""
	return user, token, nil
}

func (uc *authUseCase) Login(email, plainPassword string) (*entity.User, string, error) {
	user, err := uc.userRepo.GetByEmail(email)
	if err != nil {
		return nil, "", fmt.Errorf("invalid email or password")
	}

	if !password.Verify(plainPassword, user.Password) {
		return nil, "", fmt.Errorf("invalid email or password")
	}

	// Seed accounts predate password hashing and store the raw password.
	// A successful login against such a row upgrades it in place.
	if password.IsLegacy(user.Password) {
		hashed, err := password.Hash(plainPassword)
		if err != nil {
			uc.logger.Error("Failed to rehash legacy password for %s: %v", user.ID, err)
		} else if err := uc.userRepo.UpdatePassword(user.ID, hashed); err != nil {
			uc.logger.Error("Failed to persist upgraded password for %s: %v", user.ID, err)
		} else {
			uc.logger.Info("Upgraded legacy password for user %s", user.ID)
		}
	}

	token, err := uc.jwtService.GenerateToken(user.Email)
	if err != nil {
		uc.logger.Error("Failed to generate token: %v", err)
		return nil, "", fmt.Errorf("failed to generate token")
	}

	user.Password = ""
	return user, token, nil
}

func (uc *authUseCase) GetUserByEmail(email string) (*entity.User, error) {
	user, err := uc.userRepo.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	user.Password = ""
	return user, nil
}

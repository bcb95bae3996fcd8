package services

import (
	"context"
	"errors"
	"time"

	"codebank/models"
	"codebank/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrEmailTaken    = errors.New("user with that email already exists")
	ErrUsernameTaken = errors.New("username is already taken")
	// ErrInvalidCredentials covers both an unknown email and a wrong
	// password, so the response never leaks which one was wrong.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByUsername(ctx context.Context, username string) (*models.User, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	FindAll(ctx context.Context) ([]models.User, error)
}

type UserService struct {
	users  UserRepository
	tokens *utils.TokenManager
}

func NewUserService(users UserRepository, tokens *utils.TokenManager) *UserService {
	return &UserService{users: users, tokens: tokens}
}

func (s *UserService) Register(ctx context.Context, username, email, password string) error {
	existing, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return err
	}
	if existing != nil {
		return ErrEmailTaken
	}

	existing, err = s.users.FindByUsername(ctx, username)
	if err != nil {
		return err
	}
	if existing != nil {
		return ErrUsernameTaken
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user := &models.User{
		Username:  username,
		Email:     email,
		Password:  string(hashedPassword),
		CreatedAt: time.Now(),
	}
	return s.users.Create(ctx, user)
}

func (s *UserService) Login(ctx context.Context, email, password string) (string, *models.User, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return "", nil, err
	}
	if user == nil {
		return "", nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := s.tokens.Generate(user)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

package user

import (
	"context"
	"errors"

	"go.uber.org/zap"

	domain "rest-user-service/internal/domain/user"
)

// Repository defines the interface for user data access operations.
// It abstracts the data layer, allowing different implementations
// (e.g., SQLite, PostgreSQL) to be used interchangeably.
type Repository interface {
	Create(ctx context.Context, u *domain.User) (int64, error) // Create a new user, returning the assigned id
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context) ([]domain.User, error) // List all users in primary-key order
}

// Service implements the business logic for user management operations.
// It provides a clean separation between the transport layer and data layer.
type Service struct {
	repo        Repository
	log         *zap.Logger
	emailDomain string // domain suffix for derived email addresses
}

// New creates a new Service with the provided repository and logger.
func New(r Repository, log *zap.Logger, emailDomain string) *Service {
	return &Service{repo: r, log: log, emailDomain: emailDomain}
}

// project builds the external representation of a user, computing the
// derived full name and email address.
func (s *Service) project(u *domain.User) User {
	return User{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		FullName:  u.FullName(),
		Email:     u.Email(s.emailDomain),
	}
}

// CreateUser persists a new user built from the validated field set.
// The assigned id is returned to the transport layer but not to callers,
// who re-fetch to learn it.
func (s *Service) CreateUser(ctx context.Context, in CreateUserRequest) (*CreateUserResponse, error) {
	u := domain.New(in.Fields)

	id, err := s.repo.Create(ctx, u)
	if err != nil {
		s.log.Error("failed to create user", zap.Error(err))
		return nil, err
	}

	s.log.Info("user created", zap.Int64("id", id))
	return &CreateUserResponse{ID: id}, nil
}

// DeleteUser removes a user by id. Removal is permanent and immediate; a
// missing id fails with not-found, including on repeated deletes.
func (s *Service) DeleteUser(ctx context.Context, in DeleteUserRequest) error {
	if in.ID <= 0 {
		s.log.Warn("delete user validation failed", zap.Int64("id", in.ID))
		return errors.New("invalid user id")
	}

	if _, err := s.repo.GetByID(ctx, in.ID); err != nil {
		s.log.Warn("delete target not found", zap.Int64("id", in.ID), zap.Error(err))
		return err
	}

	if err := s.repo.Delete(ctx, in.ID); err != nil {
		s.log.Error("failed to delete user", zap.Int64("id", in.ID), zap.Error(err))
		return err
	}

	s.log.Info("user deleted", zap.Int64("id", in.ID))
	return nil
}

// GetUser retrieves a user by id and returns its projection.
func (s *Service) GetUser(ctx context.Context, in GetUserRequest) (*GetUserResponse, error) {
	if in.ID <= 0 {
		s.log.Warn("get user validation failed", zap.Int64("id", in.ID))
		return nil, errors.New("invalid user id")
	}

	u, err := s.repo.GetByID(ctx, in.ID)
	if err != nil {
		s.log.Warn("failed to get user", zap.Int64("id", in.ID), zap.Error(err))
		return nil, err
	}

	return &GetUserResponse{User: s.project(u)}, nil
}

// ListUsers retrieves every user in store order and projects each one.
func (s *Service) ListUsers(ctx context.Context, in ListUsersRequest) (*ListUsersResponse, error) {
	domainUsers, err := s.repo.List(ctx)
	if err != nil {
		s.log.Error("failed to list users", zap.Error(err))
		return nil, err
	}

	users := make([]User, len(domainUsers))
	for i := range domainUsers {
		users[i] = s.project(&domainUsers[i])
	}

	return &ListUsersResponse{Users: users}, nil
}

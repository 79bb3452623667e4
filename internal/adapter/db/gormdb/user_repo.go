package gormdb

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"rest-user-service/internal/domain/user"
	apperrors "rest-user-service/pkg/errors"
)

// UserRepo implements the usecase Repository interface on top of GORM.
type UserRepo struct {
	db  *gorm.DB
	log *zap.Logger
}

// NewUserRepo creates a new instance of UserRepo.
func NewUserRepo(db *gorm.DB, log *zap.Logger) *UserRepo {
	return &UserRepo{db: db, log: log}
}

// UserSchema represents the database schema for the user table.
// Both name columns are nullable, a user may carry no name data at all.
type UserSchema struct {
	ID        int64   `gorm:"primaryKey;autoIncrement"` // Unique identifier, assigned by the store
	FirstName *string `gorm:"size:20"`
	LastName  *string `gorm:"size:20"`
}

// TableName specifies the table name for the UserSchema model.
func (UserSchema) TableName() string {
	return "user"
}

// Migrate creates or updates the user table.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&UserSchema{})
}

func toDomain(m *UserSchema) *user.User {
	return &user.User{
		ID:        m.ID,
		FirstName: m.FirstName,
		LastName:  m.LastName,
	}
}

// Create inserts a new user and commits the write as one unit.
func (r *UserRepo) Create(ctx context.Context, u *user.User) (int64, error) {
	if u == nil {
		return 0, apperrors.NewStoreError("create user", errors.New("user cannot be nil"))
	}

	model := UserSchema{
		FirstName: u.FirstName,
		LastName:  u.LastName,
	}

	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		r.log.Error("failed to create user in db", zap.Error(err))
		return 0, apperrors.NewStoreError("create user", err)
	}

	r.log.Info("user created in db", zap.Int64("id", model.ID))
	return model.ID, nil
}

// GetByID retrieves a user by primary key.
func (r *UserRepo) GetByID(ctx context.Context, id int64) (*user.User, error) {
	var model UserSchema
	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			r.log.Warn("user not found", zap.Int64("id", id))
			return nil, apperrors.NewNotFoundError("user", id)
		}
		r.log.Error("failed to get user from db", zap.Error(err), zap.Int64("id", id))
		return nil, apperrors.NewStoreError("get user", err)
	}

	return toDomain(&model), nil
}

// Delete removes a user by primary key and commits the removal. Deleting an
// id that does not exist reports not-found rather than succeeding silently.
func (r *UserRepo) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&UserSchema{}, id)
	if res.Error != nil {
		r.log.Error("failed to delete user in db", zap.Error(res.Error), zap.Int64("id", id))
		return apperrors.NewStoreError("delete user", res.Error)
	}
	if res.RowsAffected == 0 {
		r.log.Warn("delete matched no rows", zap.Int64("id", id))
		return apperrors.NewNotFoundError("user", id)
	}

	r.log.Info("user deleted in db", zap.Int64("id", id))
	return nil
}

// List retrieves every user in primary-key order.
func (r *UserRepo) List(ctx context.Context) ([]user.User, error) {
	var models []UserSchema
	if err := r.db.WithContext(ctx).Order("id").Find(&models).Error; err != nil {
		r.log.Error("failed to list users from db", zap.Error(err))
		return nil, apperrors.NewStoreError("list users", err)
	}

	users := make([]user.User, len(models))
	for i := range models {
		users[i] = *toDomain(&models[i])
	}

	return users, nil
}

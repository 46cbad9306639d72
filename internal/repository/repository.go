package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"alcyxob/strength-log/internal/domain"
)

// Error constants for the repository layer.
var (
	ErrNotFound     = RepositoryError("not found")
	ErrDuplicateKey = RepositoryError("duplicate key")
	ErrUpdateFailed = RepositoryError("update failed")
	ErrDeleteFailed = RepositoryError("delete failed")
)

// RepositoryError helps distinguish repository errors.
type RepositoryError string

func (e RepositoryError) Error() string { return string(e) }

// UserRepository defines the interface for interacting with user data.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (primitive.ObjectID, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error)
}

// ExerciseRepository defines the interface for interacting with the exercise
// catalog. Exercise ids are name-derived strings, so Create surfaces
// ErrDuplicateKey on a collision.
type ExerciseRepository interface {
	Create(ctx context.Context, exercise *domain.Exercise) error
	GetByID(ctx context.Context, id string) (*domain.Exercise, error)
	// ListForUser returns every global exercise plus the ones owned by the
	// given user.
	ListForUser(ctx context.Context, ownerID primitive.ObjectID) ([]domain.Exercise, error)
	Update(ctx context.Context, exercise *domain.Exercise) error
	Delete(ctx context.Context, id string, ownerID primitive.ObjectID) error
}

// ProgramRepository defines the interface for interacting with stored
// programs. Programs are written whole: an edit replaces the entire document.
type ProgramRepository interface {
	Create(ctx context.Context, program *domain.Program) (primitive.ObjectID, error)
	Replace(ctx context.Context, program *domain.Program) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Program, error)
	GetByOwnerID(ctx context.Context, ownerID primitive.ObjectID) ([]domain.Program, error)
	Delete(ctx context.Context, id, ownerID primitive.ObjectID) error
}

// WorkoutRepository defines the interface for interacting with logged
// workouts. The service layer owns all timestamp and validated-flag
// semantics; implementations store documents exactly as given.
type WorkoutRepository interface {
	Create(ctx context.Context, workout *domain.Workout) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Workout, error)
	// GetByOwnerID returns the owner's workouts sorted ascending by date.
	GetByOwnerID(ctx context.Context, ownerID primitive.ObjectID) ([]domain.Workout, error)
	Replace(ctx context.Context, workout *domain.Workout) error
	Delete(ctx context.Context, id, ownerID primitive.ObjectID) error
}

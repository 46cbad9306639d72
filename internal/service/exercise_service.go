package service

import (
	"context"
	"errors"
	"fmt"
	"path"
	"strings"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"alcyxob/strength-log/internal/domain"
	"alcyxob/strength-log/internal/repository"
	"alcyxob/strength-log/internal/storage"
)

// UploadURLResponse carries a presigned PUT URL and the object key the
// client must confirm after uploading.
type UploadURLResponse struct {
	UploadURL string `json:"uploadUrl"`
	ObjectKey string `json:"objectKey"`
}

// ExerciseService manages the exercise catalog: global exercises plus each
// user's own entries, with optional demonstration videos stored in S3.
type ExerciseService interface {
	CreateExercise(ctx context.Context, ownerID primitive.ObjectID, name string, allowedUnits []domain.WeightUnit) (*domain.Exercise, error)
	GetExercise(ctx context.Context, ownerID primitive.ObjectID, exerciseID string) (*domain.Exercise, error)
	ListExercises(ctx context.Context, ownerID primitive.ObjectID) ([]domain.Exercise, error)
	DeleteExercise(ctx context.Context, ownerID primitive.ObjectID, exerciseID string) error

	RequestVideoUploadURL(ctx context.Context, ownerID primitive.ObjectID, exerciseID, contentType string) (*UploadURLResponse, error)
	ConfirmVideoUpload(ctx context.Context, ownerID primitive.ObjectID, exerciseID, objectKey string) (*domain.Exercise, error)
	VideoDownloadURL(ctx context.Context, ownerID primitive.ObjectID, exerciseID string) (string, error)
}

// exerciseService implements the ExerciseService interface.
type exerciseService struct {
	exerciseRepo repository.ExerciseRepository
	fileStorage  storage.FileStorage
}

// NewExerciseService creates a new instance of exerciseService.
func NewExerciseService(exerciseRepo repository.ExerciseRepository, fileStorage storage.FileStorage) ExerciseService {
	return &exerciseService{
		exerciseRepo: exerciseRepo,
		fileStorage:  fileStorage,
	}
}

// DeriveExerciseID turns an exercise name into its catalog id: trimmed,
// lowercased, spaces collapsed to single dashes, anything outside [a-z0-9-]
// dropped. Two names deriving the same id are considered the same exercise.
func DeriveExerciseID(name string) string {
	var b strings.Builder
	lastDash := true
	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		case r == ' ' || r == '-' || r == '_':
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}

// CreateExercise adds a user-owned exercise to the catalog. The id is derived
// from the name; a collision with an existing entry (global or owned) yields
// ErrExerciseAlreadyExists so the caller can pick another name or edit the
// existing one.
func (s *exerciseService) CreateExercise(ctx context.Context, ownerID primitive.ObjectID, name string, allowedUnits []domain.WeightUnit) (*domain.Exercise, error) {
	if ownerID == primitive.NilObjectID {
		return nil, errors.New("owner ID is required")
	}
	name = strings.TrimSpace(name)
	id := DeriveExerciseID(name)
	if name == "" || id == "" {
		return nil, ErrExerciseInvalidInput
	}
	if len(allowedUnits) == 0 {
		allowedUnits = []domain.WeightUnit{domain.UnitKilograms}
	}

	exercise := &domain.Exercise{
		ID:           id,
		Name:         name,
		AllowedUnits: allowedUnits,
		IsGlobal:     false,
		OwnerID:      &ownerID,
	}

	if err := s.exerciseRepo.Create(ctx, exercise); err != nil {
		if errors.Is(err, repository.ErrDuplicateKey) {
			return nil, ErrExerciseAlreadyExists
		}
		return nil, err
	}
	return exercise, nil
}

// GetExercise retrieves a single catalog entry visible to the user. A stored
// document failing shape validation fails the read.
func (s *exerciseService) GetExercise(ctx context.Context, ownerID primitive.ObjectID, exerciseID string) (*domain.Exercise, error) {
	exercise, err := s.getVisible(ctx, ownerID, exerciseID)
	if err != nil {
		return nil, err
	}
	if err := ValidateExerciseShape(exercise); err != nil {
		return nil, err
	}
	return exercise, nil
}

// ListExercises retrieves every exercise visible to the user, dropping
// entries that fail shape validation instead of aborting the listing.
func (s *exerciseService) ListExercises(ctx context.Context, ownerID primitive.ObjectID) ([]domain.Exercise, error) {
	exercises, err := s.exerciseRepo.ListForUser(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	valid := exercises[:0]
	for _, exercise := range exercises {
		if ValidateExerciseShape(&exercise) == nil {
			valid = append(valid, exercise)
		}
	}
	return valid, nil
}

// DeleteExercise removes a user-owned exercise and its demo video, if any.
func (s *exerciseService) DeleteExercise(ctx context.Context, ownerID primitive.ObjectID, exerciseID string) error {
	exercise, err := s.getVisible(ctx, ownerID, exerciseID)
	if err != nil {
		return err
	}
	if exercise.IsGlobal || exercise.OwnerID == nil || *exercise.OwnerID != ownerID {
		return ErrExerciseNotFound
	}

	if err := s.exerciseRepo.Delete(ctx, exerciseID, ownerID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrExerciseNotFound
		}
		return err
	}

	if exercise.VideoObjectKey != "" {
		// Best effort; an orphaned object is preferable to a failed delete.
		_ = s.fileStorage.DeleteObject(ctx, exercise.VideoObjectKey)
	}
	return nil
}

// RequestVideoUploadURL issues a presigned PUT URL for attaching a
// demonstration video to a user-owned exercise.
func (s *exerciseService) RequestVideoUploadURL(ctx context.Context, ownerID primitive.ObjectID, exerciseID, contentType string) (*UploadURLResponse, error) {
	if contentType == "" || !strings.HasPrefix(strings.ToLower(contentType), "video/") {
		return nil, errors.New("invalid or missing video content type")
	}

	exercise, err := s.getVisible(ctx, ownerID, exerciseID)
	if err != nil {
		return nil, err
	}
	if exercise.IsGlobal || exercise.OwnerID == nil || *exercise.OwnerID != ownerID {
		return nil, ErrExerciseNotFound
	}

	fileExtension := ""
	if parts := strings.Split(contentType, "/"); len(parts) == 2 {
		fileExtension = parts[1]
	}
	objectKey := path.Join("exercise-videos", ownerID.Hex(), exerciseID, fmt.Sprintf("%s.%s", uuid.NewString(), fileExtension))

	uploadURL, err := s.fileStorage.GeneratePresignedUploadURL(ctx, objectKey, contentType, storage.DefaultPresignedURLExpiry)
	if err != nil {
		return nil, err
	}

	return &UploadURLResponse{UploadURL: uploadURL, ObjectKey: objectKey}, nil
}

// ConfirmVideoUpload records the uploaded object key on the exercise. Called
// after the client has PUT the file to the presigned URL.
func (s *exerciseService) ConfirmVideoUpload(ctx context.Context, ownerID primitive.ObjectID, exerciseID, objectKey string) (*domain.Exercise, error) {
	if objectKey == "" {
		return nil, errors.New("object key is required")
	}

	exercise, err := s.getVisible(ctx, ownerID, exerciseID)
	if err != nil {
		return nil, err
	}
	if exercise.IsGlobal || exercise.OwnerID == nil || *exercise.OwnerID != ownerID {
		return nil, ErrExerciseNotFound
	}

	previousKey := exercise.VideoObjectKey
	exercise.VideoObjectKey = objectKey
	if err := s.exerciseRepo.Update(ctx, exercise); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrExerciseNotFound
		}
		return nil, err
	}

	if previousKey != "" && previousKey != objectKey {
		_ = s.fileStorage.DeleteObject(ctx, previousKey)
	}
	return exercise, nil
}

// VideoDownloadURL issues a presigned GET URL for an exercise's demo video.
func (s *exerciseService) VideoDownloadURL(ctx context.Context, ownerID primitive.ObjectID, exerciseID string) (string, error) {
	exercise, err := s.getVisible(ctx, ownerID, exerciseID)
	if err != nil {
		return "", err
	}
	if exercise.VideoObjectKey == "" {
		return "", ErrExerciseNoVideo
	}
	return s.fileStorage.GeneratePresignedDownloadURL(ctx, exercise.VideoObjectKey, storage.DefaultPresignedURLExpiry)
}

// getVisible fetches an exercise and hides entries the user may not see.
func (s *exerciseService) getVisible(ctx context.Context, ownerID primitive.ObjectID, exerciseID string) (*domain.Exercise, error) {
	if exerciseID == "" {
		return nil, errors.New("exercise ID is required")
	}
	exercise, err := s.exerciseRepo.GetByID(ctx, exerciseID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrExerciseNotFound
		}
		return nil, err
	}
	if !exercise.IsGlobal && (exercise.OwnerID == nil || *exercise.OwnerID != ownerID) {
		return nil, ErrExerciseNotFound
	}
	return exercise, nil
}

package service

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"alcyxob/strength-log/internal/domain"
	"alcyxob/strength-log/internal/repository"
)

// WorkoutInput is the editor-side payload for creating or updating a logged
// workout. The serializer reshapes it to exactly the stored field set, so
// editor-only fields can never leak into a document.
type WorkoutInput struct {
	Date      time.Time              `json:"date"`
	Notes     string                 `json:"notes"`
	Exercises []WorkoutExerciseInput `json:"exercises"`
}

type WorkoutExerciseInput struct {
	ExerciseID string            `json:"exerciseId"`
	Name       string            `json:"name"`
	Order      int               `json:"order"`
	Sets       []WorkoutSetInput `json:"sets"`
}

type WorkoutSetInput struct {
	Weight float64 `json:"weight"`
	Reps   int     `json:"reps"`
	RIR    int     `json:"rir"`
}

// WorkoutService serializes workout payloads for storage and owns the
// write-once semantics of createdAt and the validated flag.
type WorkoutService interface {
	CreateWorkout(ctx context.Context, ownerID primitive.ObjectID, input WorkoutInput) (*domain.Workout, error)
	UpdateWorkout(ctx context.Context, ownerID, workoutID primitive.ObjectID, input WorkoutInput) (*domain.Workout, error)
	GetWorkout(ctx context.Context, ownerID, workoutID primitive.ObjectID) (*domain.Workout, error)
	ListWorkouts(ctx context.Context, ownerID primitive.ObjectID) ([]domain.Workout, error)
	DeleteWorkout(ctx context.Context, ownerID, workoutID primitive.ObjectID) error
	ValidateWorkout(ctx context.Context, ownerID, workoutID primitive.ObjectID) (*domain.Workout, error)
	UnvalidateWorkout(ctx context.Context, ownerID, workoutID primitive.ObjectID) (*domain.Workout, error)
}

// workoutService implements the WorkoutService interface.
type workoutService struct {
	workoutRepo repository.WorkoutRepository
	now         func() time.Time
}

// NewWorkoutService creates a new instance of workoutService.
func NewWorkoutService(workoutRepo repository.WorkoutRepository) WorkoutService {
	return &workoutService{
		workoutRepo: workoutRepo,
		now:         time.Now,
	}
}

// NormalizeWorkoutDate truncates an instant to that date's local midnight.
// This is the canonical stored form; time of day is never persisted.
func NormalizeWorkoutDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// serializeExercises reshapes the payload to exactly the stored field set.
func serializeExercises(inputs []WorkoutExerciseInput) []domain.WorkoutExercise {
	exercises := make([]domain.WorkoutExercise, 0, len(inputs))
	for _, in := range inputs {
		sets := make([]domain.WorkoutSet, 0, len(in.Sets))
		for _, s := range in.Sets {
			sets = append(sets, domain.WorkoutSet{Weight: s.Weight, Reps: s.Reps, RIR: s.RIR})
		}
		exercises = append(exercises, domain.WorkoutExercise{
			ExerciseID: in.ExerciseID,
			Name:       in.Name,
			Order:      in.Order,
			Sets:       sets,
		})
	}
	return exercises
}

// CreateWorkout serializes the payload and stores it as a fresh, unvalidated
// workout stamped with the current time.
func (s *workoutService) CreateWorkout(ctx context.Context, ownerID primitive.ObjectID, input WorkoutInput) (*domain.Workout, error) {
	if ownerID == primitive.NilObjectID {
		return nil, errors.New("owner ID is required")
	}
	if len(input.Exercises) == 0 {
		return nil, ErrWorkoutInvalidInput
	}

	now := s.now().UTC()
	workout := &domain.Workout{
		OwnerID:   ownerID,
		Date:      NormalizeWorkoutDate(input.Date),
		Notes:     input.Notes,
		Exercises: serializeExercises(input.Exercises),
		Validated: false,
		CreatedAt: now,
		UpdatedAt: now,
	}

	workoutID, err := s.workoutRepo.Create(ctx, workout)
	if err != nil {
		return nil, err
	}
	workout.ID = workoutID
	return workout, nil
}

// UpdateWorkout replaces every payload field of an existing workout with the
// freshly serialized input. CreatedAt and the validated flag are carried
// forward verbatim from the stored record; only UpdatedAt is bumped. This is
// a full overwrite, not a merge.
func (s *workoutService) UpdateWorkout(ctx context.Context, ownerID, workoutID primitive.ObjectID, input WorkoutInput) (*domain.Workout, error) {
	if len(input.Exercises) == 0 {
		return nil, ErrWorkoutInvalidInput
	}

	existing, err := s.getOwned(ctx, ownerID, workoutID)
	if err != nil {
		return nil, err
	}

	workout := &domain.Workout{
		ID:        existing.ID,
		OwnerID:   existing.OwnerID,
		Date:      NormalizeWorkoutDate(input.Date),
		Notes:     input.Notes,
		Exercises: serializeExercises(input.Exercises),
		Validated: existing.Validated,
		CreatedAt: existing.CreatedAt,
		UpdatedAt: s.now().UTC(),
	}

	if err := s.workoutRepo.Replace(ctx, workout); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrWorkoutNotFound
		}
		return nil, err
	}
	return workout, nil
}

// GetWorkout retrieves a single workout, failing on a corrupt stored shape.
func (s *workoutService) GetWorkout(ctx context.Context, ownerID, workoutID primitive.ObjectID) (*domain.Workout, error) {
	workout, err := s.getOwned(ctx, ownerID, workoutID)
	if err != nil {
		return nil, err
	}
	if err := ValidateWorkoutShape(workout); err != nil {
		return nil, err
	}
	return workout, nil
}

// ListWorkouts retrieves the owner's workouts sorted ascending by date,
// dropping records that fail shape validation instead of aborting the read.
func (s *workoutService) ListWorkouts(ctx context.Context, ownerID primitive.ObjectID) ([]domain.Workout, error) {
	workouts, err := s.workoutRepo.GetByOwnerID(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	valid := workouts[:0]
	for _, workout := range workouts {
		if ValidateWorkoutShape(&workout) == nil {
			valid = append(valid, workout)
		}
	}
	return valid, nil
}

// DeleteWorkout removes a workout after an ownership-scoped existence check.
func (s *workoutService) DeleteWorkout(ctx context.Context, ownerID, workoutID primitive.ObjectID) error {
	err := s.workoutRepo.Delete(ctx, workoutID, ownerID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrWorkoutNotFound
		}
		return err
	}
	return nil
}

// ValidateWorkout marks a workout as validated. Only the flag and UpdatedAt
// change.
func (s *workoutService) ValidateWorkout(ctx context.Context, ownerID, workoutID primitive.ObjectID) (*domain.Workout, error) {
	return s.setValidated(ctx, ownerID, workoutID, true)
}

// UnvalidateWorkout clears the validated flag again.
func (s *workoutService) UnvalidateWorkout(ctx context.Context, ownerID, workoutID primitive.ObjectID) (*domain.Workout, error) {
	return s.setValidated(ctx, ownerID, workoutID, false)
}

func (s *workoutService) setValidated(ctx context.Context, ownerID, workoutID primitive.ObjectID, validated bool) (*domain.Workout, error) {
	workout, err := s.getOwned(ctx, ownerID, workoutID)
	if err != nil {
		return nil, err
	}

	workout.Validated = validated
	workout.UpdatedAt = s.now().UTC()

	if err := s.workoutRepo.Replace(ctx, workout); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrWorkoutNotFound
		}
		return nil, err
	}
	return workout, nil
}

func (s *workoutService) getOwned(ctx context.Context, ownerID, workoutID primitive.ObjectID) (*domain.Workout, error) {
	if ownerID == primitive.NilObjectID || workoutID == primitive.NilObjectID {
		return nil, errors.New("owner ID and workout ID are required")
	}
	workout, err := s.workoutRepo.GetByID(ctx, workoutID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrWorkoutNotFound
		}
		return nil, err
	}
	if workout.OwnerID != ownerID {
		return nil, ErrWorkoutNotFound
	}
	return workout, nil
}

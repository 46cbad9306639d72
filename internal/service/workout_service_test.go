package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"alcyxob/strength-log/internal/domain"
)

func newWorkoutServiceForTest(repo *fakeWorkoutRepo, clock *time.Time) WorkoutService {
	return &workoutService{
		workoutRepo: repo,
		now:         func() time.Time { return *clock },
	}
}

func benchInput(date time.Time) WorkoutInput {
	return WorkoutInput{
		Date:  date,
		Notes: "felt strong",
		Exercises: []WorkoutExerciseInput{
			{
				ExerciseID: "bench-press",
				Name:       "Bench Press",
				Order:      0,
				Sets: []WorkoutSetInput{
					{Weight: 100, Reps: 5, RIR: 2},
					{Weight: 100, Reps: 5, RIR: 1},
				},
			},
		},
	}
}

func TestCreateWorkout(t *testing.T) {
	ctx := context.Background()
	owner := primitive.NewObjectID()

	t.Run("stores a normalized, unvalidated workout", func(t *testing.T) {
		clock := time.Date(2024, 3, 5, 14, 30, 0, 0, time.UTC)
		svc := newWorkoutServiceForTest(newFakeWorkoutRepo(), &clock)

		loc := time.FixedZone("CET", 3600)
		logged := time.Date(2024, 3, 5, 18, 45, 12, 0, loc)
		workout, err := svc.CreateWorkout(ctx, owner, benchInput(logged))
		require.NoError(t, err)

		assert.False(t, workout.ID.IsZero())
		assert.Equal(t, owner, workout.OwnerID)
		assert.False(t, workout.Validated)
		assert.Equal(t, clock, workout.CreatedAt)
		assert.Equal(t, workout.CreatedAt, workout.UpdatedAt)

		// Date is the local midnight of the logged day; time of day is gone.
		assert.Equal(t, time.Date(2024, 3, 5, 0, 0, 0, 0, loc), workout.Date)
	})

	t.Run("at least one exercise required", func(t *testing.T) {
		clock := time.Now()
		svc := newWorkoutServiceForTest(newFakeWorkoutRepo(), &clock)
		_, err := svc.CreateWorkout(ctx, owner, WorkoutInput{Date: time.Now()})
		assert.ErrorIs(t, err, ErrWorkoutInvalidInput)
	})

	t.Run("owner required", func(t *testing.T) {
		clock := time.Now()
		svc := newWorkoutServiceForTest(newFakeWorkoutRepo(), &clock)
		_, err := svc.CreateWorkout(ctx, primitive.NilObjectID, benchInput(time.Now()))
		assert.Error(t, err)
	})
}

func TestUpdateWorkout(t *testing.T) {
	ctx := context.Background()
	owner := primitive.NewObjectID()

	t.Run("full overwrite preserves createdAt and the validated flag", func(t *testing.T) {
		clock := time.Date(2024, 3, 5, 10, 0, 0, 0, time.UTC)
		repo := newFakeWorkoutRepo()
		svc := newWorkoutServiceForTest(repo, &clock)

		created, err := svc.CreateWorkout(ctx, owner, benchInput(clock))
		require.NoError(t, err)
		_, err = svc.ValidateWorkout(ctx, owner, created.ID)
		require.NoError(t, err)

		clock = clock.Add(48 * time.Hour)
		input := benchInput(clock)
		input.Notes = "rewritten"
		updated, err := svc.UpdateWorkout(ctx, owner, created.ID, input)
		require.NoError(t, err)

		assert.Equal(t, created.ID, updated.ID)
		assert.Equal(t, created.CreatedAt, updated.CreatedAt)
		assert.True(t, updated.Validated, "validated flag survives an edit untouched")
		assert.Equal(t, clock, updated.UpdatedAt)
		assert.Equal(t, "rewritten", updated.Notes)

		stored, err := repo.GetByID(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, updated.Notes, stored.Notes)
		assert.Equal(t, created.CreatedAt, stored.CreatedAt)
	})

	t.Run("unknown workout", func(t *testing.T) {
		clock := time.Now()
		svc := newWorkoutServiceForTest(newFakeWorkoutRepo(), &clock)
		_, err := svc.UpdateWorkout(ctx, owner, primitive.NewObjectID(), benchInput(time.Now()))
		assert.ErrorIs(t, err, ErrWorkoutNotFound)
	})

	t.Run("someone else's workout reads as not found", func(t *testing.T) {
		clock := time.Now()
		repo := newFakeWorkoutRepo()
		svc := newWorkoutServiceForTest(repo, &clock)
		created, err := svc.CreateWorkout(ctx, owner, benchInput(time.Now()))
		require.NoError(t, err)

		_, err = svc.UpdateWorkout(ctx, primitive.NewObjectID(), created.ID, benchInput(time.Now()))
		assert.ErrorIs(t, err, ErrWorkoutNotFound)
	})
}

func TestValidateUnvalidateWorkout(t *testing.T) {
	ctx := context.Background()
	owner := primitive.NewObjectID()
	clock := time.Date(2024, 3, 5, 10, 0, 0, 0, time.UTC)
	repo := newFakeWorkoutRepo()
	svc := newWorkoutServiceForTest(repo, &clock)

	created, err := svc.CreateWorkout(ctx, owner, benchInput(clock))
	require.NoError(t, err)
	require.False(t, created.Validated)

	clock = clock.Add(time.Hour)
	validated, err := svc.ValidateWorkout(ctx, owner, created.ID)
	require.NoError(t, err)
	assert.True(t, validated.Validated)
	assert.Equal(t, created.CreatedAt, validated.CreatedAt)
	assert.Equal(t, clock, validated.UpdatedAt)

	unvalidated, err := svc.UnvalidateWorkout(ctx, owner, created.ID)
	require.NoError(t, err)
	assert.False(t, unvalidated.Validated)

	_, err = svc.ValidateWorkout(ctx, owner, primitive.NewObjectID())
	assert.ErrorIs(t, err, ErrWorkoutNotFound)
}

func TestGetAndListWorkouts(t *testing.T) {
	ctx := context.Background()
	owner := primitive.NewObjectID()
	clock := time.Date(2024, 3, 5, 10, 0, 0, 0, time.UTC)
	repo := newFakeWorkoutRepo()
	svc := newWorkoutServiceForTest(repo, &clock)

	first, err := svc.CreateWorkout(ctx, owner, benchInput(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)))
	require.NoError(t, err)
	second, err := svc.CreateWorkout(ctx, owner, benchInput(time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)))
	require.NoError(t, err)

	// A corrupt record planted directly in storage: no exercises.
	corruptID := primitive.NewObjectID()
	repo.workouts[corruptID] = domain.Workout{
		ID:      corruptID,
		OwnerID: owner,
		Date:    time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC),
	}

	t.Run("list drops corrupt records and keeps date order", func(t *testing.T) {
		workouts, err := svc.ListWorkouts(ctx, owner)
		require.NoError(t, err)
		require.Len(t, workouts, 2)
		assert.Equal(t, first.ID, workouts[0].ID)
		assert.Equal(t, second.ID, workouts[1].ID)
	})

	t.Run("single read of a corrupt record fails", func(t *testing.T) {
		_, err := svc.GetWorkout(ctx, owner, corruptID)
		assert.ErrorIs(t, err, ErrWorkoutInvalidData)
	})

	t.Run("single read of a healthy record succeeds", func(t *testing.T) {
		workout, err := svc.GetWorkout(ctx, owner, first.ID)
		require.NoError(t, err)
		assert.Equal(t, first.ID, workout.ID)
	})
}

func TestDeleteWorkout(t *testing.T) {
	ctx := context.Background()
	owner := primitive.NewObjectID()
	clock := time.Now()
	repo := newFakeWorkoutRepo()
	svc := newWorkoutServiceForTest(repo, &clock)

	created, err := svc.CreateWorkout(ctx, owner, benchInput(time.Now()))
	require.NoError(t, err)

	require.ErrorIs(t, svc.DeleteWorkout(ctx, primitive.NewObjectID(), created.ID), ErrWorkoutNotFound)

	require.NoError(t, svc.DeleteWorkout(ctx, owner, created.ID))
	_, err = svc.GetWorkout(ctx, owner, created.ID)
	assert.ErrorIs(t, err, ErrWorkoutNotFound)
}

func TestNormalizeWorkoutDate(t *testing.T) {
	loc := time.FixedZone("UTC+5", 5*3600)
	in := time.Date(2024, 12, 31, 23, 59, 59, 123, loc)
	assert.Equal(t, time.Date(2024, 12, 31, 0, 0, 0, 0, loc), NormalizeWorkoutDate(in))

	midnight := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, midnight, NormalizeWorkoutDate(midnight))
}

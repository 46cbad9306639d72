package service

import (
	"context"
	"sort"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"alcyxob/strength-log/internal/domain"
	"alcyxob/strength-log/internal/repository"
	"alcyxob/strength-log/internal/storage"
)

// In-memory repository fakes for service tests. They mirror the contracts of
// the mongo implementations, including which sentinel errors they surface.

type fakeUserRepo struct {
	users map[primitive.ObjectID]domain.User
}

var _ repository.UserRepository = (*fakeUserRepo)(nil)

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[primitive.ObjectID]domain.User{}}
}

func (r *fakeUserRepo) Create(_ context.Context, user *domain.User) (primitive.ObjectID, error) {
	for _, u := range r.users {
		if u.Email == user.Email {
			return primitive.NilObjectID, repository.ErrDuplicateKey
		}
	}
	id := primitive.NewObjectID()
	stored := *user
	stored.ID = id
	r.users[id] = stored
	return id, nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			out := u
			return &out, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeUserRepo) GetByID(_ context.Context, id primitive.ObjectID) (*domain.User, error) {
	stored, ok := r.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	out := stored
	return &out, nil
}

type fakeWorkoutRepo struct {
	workouts map[primitive.ObjectID]domain.Workout
}

var _ repository.WorkoutRepository = (*fakeWorkoutRepo)(nil)

func newFakeWorkoutRepo() *fakeWorkoutRepo {
	return &fakeWorkoutRepo{workouts: map[primitive.ObjectID]domain.Workout{}}
}

func (r *fakeWorkoutRepo) Create(_ context.Context, workout *domain.Workout) (primitive.ObjectID, error) {
	id := primitive.NewObjectID()
	stored := *workout
	stored.ID = id
	r.workouts[id] = stored
	return id, nil
}

func (r *fakeWorkoutRepo) GetByID(_ context.Context, id primitive.ObjectID) (*domain.Workout, error) {
	stored, ok := r.workouts[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	out := stored
	return &out, nil
}

func (r *fakeWorkoutRepo) GetByOwnerID(_ context.Context, ownerID primitive.ObjectID) ([]domain.Workout, error) {
	var out []domain.Workout
	for _, w := range r.workouts {
		if w.OwnerID == ownerID {
			out = append(out, w)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out, nil
}

func (r *fakeWorkoutRepo) Replace(_ context.Context, workout *domain.Workout) error {
	if _, ok := r.workouts[workout.ID]; !ok {
		return repository.ErrNotFound
	}
	r.workouts[workout.ID] = *workout
	return nil
}

func (r *fakeWorkoutRepo) Delete(_ context.Context, id, ownerID primitive.ObjectID) error {
	stored, ok := r.workouts[id]
	if !ok || stored.OwnerID != ownerID {
		return repository.ErrNotFound
	}
	delete(r.workouts, id)
	return nil
}

type fakeProgramRepo struct {
	programs map[primitive.ObjectID]domain.Program
}

var _ repository.ProgramRepository = (*fakeProgramRepo)(nil)

func newFakeProgramRepo() *fakeProgramRepo {
	return &fakeProgramRepo{programs: map[primitive.ObjectID]domain.Program{}}
}

func (r *fakeProgramRepo) Create(_ context.Context, program *domain.Program) (primitive.ObjectID, error) {
	id := primitive.NewObjectID()
	now := time.Now().UTC()
	program.CreatedAt = now
	program.UpdatedAt = now
	stored := *program
	stored.ID = id
	r.programs[id] = stored
	return id, nil
}

func (r *fakeProgramRepo) Replace(_ context.Context, program *domain.Program) error {
	if _, ok := r.programs[program.ID]; !ok {
		return repository.ErrNotFound
	}
	program.UpdatedAt = time.Now().UTC()
	r.programs[program.ID] = *program
	return nil
}

func (r *fakeProgramRepo) GetByID(_ context.Context, id primitive.ObjectID) (*domain.Program, error) {
	stored, ok := r.programs[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	out := stored
	return &out, nil
}

func (r *fakeProgramRepo) GetByOwnerID(_ context.Context, ownerID primitive.ObjectID) ([]domain.Program, error) {
	var out []domain.Program
	for _, p := range r.programs {
		if p.OwnerID == ownerID {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (r *fakeProgramRepo) Delete(_ context.Context, id, ownerID primitive.ObjectID) error {
	stored, ok := r.programs[id]
	if !ok || stored.OwnerID != ownerID {
		return repository.ErrNotFound
	}
	delete(r.programs, id)
	return nil
}

type fakeExerciseRepo struct {
	exercises map[string]domain.Exercise
}

var _ repository.ExerciseRepository = (*fakeExerciseRepo)(nil)

func newFakeExerciseRepo() *fakeExerciseRepo {
	return &fakeExerciseRepo{exercises: map[string]domain.Exercise{}}
}

func (r *fakeExerciseRepo) Create(_ context.Context, exercise *domain.Exercise) error {
	if _, ok := r.exercises[exercise.ID]; ok {
		return repository.ErrDuplicateKey
	}
	r.exercises[exercise.ID] = *exercise
	return nil
}

func (r *fakeExerciseRepo) GetByID(_ context.Context, id string) (*domain.Exercise, error) {
	stored, ok := r.exercises[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	out := stored
	return &out, nil
}

func (r *fakeExerciseRepo) ListForUser(_ context.Context, ownerID primitive.ObjectID) ([]domain.Exercise, error) {
	var out []domain.Exercise
	for _, ex := range r.exercises {
		if ex.IsGlobal || (ex.OwnerID != nil && *ex.OwnerID == ownerID) {
			out = append(out, ex)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeExerciseRepo) Update(_ context.Context, exercise *domain.Exercise) error {
	if _, ok := r.exercises[exercise.ID]; !ok {
		return repository.ErrNotFound
	}
	r.exercises[exercise.ID] = *exercise
	return nil
}

func (r *fakeExerciseRepo) Delete(_ context.Context, id string, ownerID primitive.ObjectID) error {
	stored, ok := r.exercises[id]
	if !ok || stored.IsGlobal || stored.OwnerID == nil || *stored.OwnerID != ownerID {
		return repository.ErrNotFound
	}
	delete(r.exercises, id)
	return nil
}

type fakeFileStorage struct {
	deleted []string
}

var _ storage.FileStorage = (*fakeFileStorage)(nil)

func (s *fakeFileStorage) GeneratePresignedUploadURL(_ context.Context, objectKey, _ string, _ time.Duration) (string, error) {
	return "https://storage.test/upload/" + objectKey, nil
}

func (s *fakeFileStorage) GeneratePresignedDownloadURL(_ context.Context, objectKey string, _ time.Duration) (string, error) {
	return "https://storage.test/download/" + objectKey, nil
}

func (s *fakeFileStorage) DeleteObject(_ context.Context, objectKey string) error {
	s.deleted = append(s.deleted, objectKey)
	return nil
}

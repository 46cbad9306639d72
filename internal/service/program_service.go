package service

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"alcyxob/strength-log/internal/domain"
	"alcyxob/strength-log/internal/editor"
	"alcyxob/strength-log/internal/repository"
)

// ProgramService is the save-side bridge between the editor and storage:
// drafts go in, composed and validated programs come out. Reads re-validate
// the stored shape before trusting it.
type ProgramService interface {
	CreateProgram(ctx context.Context, ownerID primitive.ObjectID, draft editor.ProgramDraft) (*domain.Program, error)
	UpdateProgram(ctx context.Context, ownerID, programID primitive.ObjectID, draft editor.ProgramDraft) (*domain.Program, error)
	GetProgram(ctx context.Context, ownerID, programID primitive.ObjectID) (*domain.Program, error)
	ListPrograms(ctx context.Context, ownerID primitive.ObjectID) ([]domain.Program, error)
	DeleteProgram(ctx context.Context, ownerID, programID primitive.ObjectID) error
}

// programService implements the ProgramService interface.
type programService struct {
	programRepo repository.ProgramRepository
}

// NewProgramService creates a new instance of programService.
func NewProgramService(programRepo repository.ProgramRepository) ProgramService {
	return &programService{programRepo: programRepo}
}

// CreateProgram composes the draft, validates the result and persists it.
// A CompositionError from the fold propagates untouched so the editor can
// show it next to the offending item; no partial program is ever stored.
func (s *programService) CreateProgram(ctx context.Context, ownerID primitive.ObjectID, draft editor.ProgramDraft) (*domain.Program, error) {
	if ownerID == primitive.NilObjectID {
		return nil, errors.New("owner ID is required")
	}

	program, err := editor.Compose(draft)
	if err != nil {
		return nil, err
	}
	if err := ValidateProgramShape(program); err != nil {
		return nil, err
	}

	program.OwnerID = ownerID
	programID, err := s.programRepo.Create(ctx, program)
	if err != nil {
		return nil, err
	}
	program.ID = programID
	return program, nil
}

// UpdateProgram recomposes the draft and replaces the stored document whole,
// keeping the original creation time.
func (s *programService) UpdateProgram(ctx context.Context, ownerID, programID primitive.ObjectID, draft editor.ProgramDraft) (*domain.Program, error) {
	if ownerID == primitive.NilObjectID || programID == primitive.NilObjectID {
		return nil, errors.New("owner ID and program ID are required")
	}

	existing, err := s.programRepo.GetByID(ctx, programID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProgramNotFound
		}
		return nil, err
	}
	if existing.OwnerID != ownerID {
		return nil, ErrProgramNotFound
	}

	program, err := editor.Compose(draft)
	if err != nil {
		return nil, err
	}
	if err := ValidateProgramShape(program); err != nil {
		return nil, err
	}

	program.ID = existing.ID
	program.OwnerID = existing.OwnerID
	program.CreatedAt = existing.CreatedAt

	if err := s.programRepo.Replace(ctx, program); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProgramNotFound
		}
		return nil, err
	}
	return program, nil
}

// GetProgram retrieves a single program. A stored document that no longer
// passes shape validation fails the read: there is no rest-of-the-list to
// fall back to here.
func (s *programService) GetProgram(ctx context.Context, ownerID, programID primitive.ObjectID) (*domain.Program, error) {
	program, err := s.programRepo.GetByID(ctx, programID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProgramNotFound
		}
		return nil, err
	}
	if program.OwnerID != ownerID {
		return nil, ErrProgramNotFound
	}
	if err := ValidateProgramShape(program); err != nil {
		return nil, err
	}
	return program, nil
}

// ListPrograms retrieves the owner's programs, silently dropping any stored
// document that fails shape validation: one corrupt program out of ten still
// returns the other nine.
func (s *programService) ListPrograms(ctx context.Context, ownerID primitive.ObjectID) ([]domain.Program, error) {
	programs, err := s.programRepo.GetByOwnerID(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	valid := programs[:0]
	for _, program := range programs {
		if ValidateProgramShape(&program) == nil {
			valid = append(valid, program)
		}
	}
	return valid, nil
}

// DeleteProgram removes a program after an ownership-scoped existence check.
func (s *programService) DeleteProgram(ctx context.Context, ownerID, programID primitive.ObjectID) error {
	err := s.programRepo.Delete(ctx, programID, ownerID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrProgramNotFound
		}
		return err
	}
	return nil
}

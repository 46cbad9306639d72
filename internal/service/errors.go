package service

// ServiceError is a typed service failure carrying a stable code string for
// programmatic handling. Callers match with errors.Is against the sentinel
// values below; the code never changes even if the message wording does.
type ServiceError struct {
	Code    string
	Message string
}

func (e *ServiceError) Error() string { return e.Message }

var (
	// Program errors
	ErrProgramInvalidInput            = &ServiceError{Code: "program.invalidInput", Message: "program data is not valid"}
	ErrProgramMissingWeek             = &ServiceError{Code: "program.missingWeek", Message: "simple program is missing its week"}
	ErrProgramMissingAlternatingWeeks = &ServiceError{Code: "program.missingAlternatingWeeks", Message: "alternating program must have exactly two weeks"}
	ErrProgramMissingPhases           = &ServiceError{Code: "program.missingPhases", Message: "advanced program must have at least one phase"}
	ErrProgramInvalidData             = &ServiceError{Code: "program.invalidData", Message: "stored program data is corrupt"}
	ErrProgramNotFound                = &ServiceError{Code: "program.notFound", Message: "program not found"}

	// Workout errors
	ErrWorkoutInvalidInput = &ServiceError{Code: "workout.invalidInput", Message: "a workout needs at least one exercise"}
	ErrWorkoutInvalidData  = &ServiceError{Code: "workout.invalidData", Message: "stored workout data is corrupt"}
	ErrWorkoutNotFound     = &ServiceError{Code: "workout.notFound", Message: "workout not found"}

	// Exercise catalog errors
	ErrExerciseInvalidInput  = &ServiceError{Code: "exercise.invalidInput", Message: "exercise name is required"}
	ErrExerciseInvalidData   = &ServiceError{Code: "exercise.invalidData", Message: "stored exercise data is corrupt"}
	ErrExerciseNotFound      = &ServiceError{Code: "exercise.notFound", Message: "exercise not found"}
	ErrExerciseAlreadyExists = &ServiceError{Code: "exercise.alreadyExists", Message: "an exercise with this name already exists"}
	ErrExerciseNoVideo       = &ServiceError{Code: "exercise.noVideo", Message: "exercise has no demonstration video"}
)

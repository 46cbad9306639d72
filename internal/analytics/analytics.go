// Package analytics derives chart-ready strength-progression series from a
// workout history. Every function is pure: no I/O and no mutation of inputs.
package analytics

import (
	"sort"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"alcyxob/strength-log/internal/domain"
)

const unknownExerciseName = "Unknown exercise"

// E1RMPoint is one point of a per-exercise estimated-1RM time series.
type E1RMPoint struct {
	Date         time.Time `json:"date"`
	ExerciseID   string    `json:"exerciseId"`
	ExerciseName string    `json:"exerciseName"`
	Estimated1RM float64   `json:"estimated1RM"`
}

// TopSetPoint is the heaviest set of one exercise within one workout.
type TopSetPoint struct {
	WorkoutID    primitive.ObjectID `json:"workoutId"`
	Date         time.Time          `json:"date"`
	ExerciseID   string             `json:"exerciseId"`
	ExerciseName string             `json:"exerciseName"`
	SetIndex     int                `json:"setIndex"`
	Set          domain.WorkoutSet  `json:"set"`
}

// WeeklyVolumePoint is the accumulated volume (weight x reps) for one
// exercise within one 7-day bucket of a query window.
type WeeklyVolumePoint struct {
	WeekIndex    int     `json:"weekIndex"`
	ExerciseID   string  `json:"exerciseId"`
	ExerciseName string  `json:"exerciseName"`
	TotalVolume  float64 `json:"totalVolume"`
}

// WeeklyFrequencyPoint counts the distinct workouts in which an exercise
// appears within one 7-day bucket of a query window.
type WeeklyFrequencyPoint struct {
	WeekIndex    int    `json:"weekIndex"`
	ExerciseID   string `json:"exerciseId"`
	ExerciseName string `json:"exerciseName"`
	Sessions     int    `json:"sessions"`
}

// CalculateEstimated1RM predicts a one-rep max from a logged set using a
// reps-plus-reserve-adjusted Epley formula: weight * (1 + (reps+rir)/30).
// Any input at or below zero yields 0, including rir: a multi-rep set taken
// all the way to failure contributes nothing to the trend. The one exception
// is a true single at failure, which is itself a measured 1RM and returns
// the weight unchanged.
func CalculateEstimated1RM(weight float64, reps, rir int) float64 {
	if weight > 0 && reps == 1 && rir == 0 {
		return weight
	}
	if weight <= 0 || reps <= 0 || rir <= 0 {
		return 0
	}
	return weight * (1 + float64(reps+rir)/30)
}

// BuildExerciseE1RMSeries emits, per workout, the best estimated 1RM across
// every set of the matching exercise. Workouts without the exercise, or whose
// best estimate is 0, contribute no point. The series is sorted ascending by
// date regardless of input order.
func BuildExerciseE1RMSeries(workouts []domain.Workout, exerciseID string) []E1RMPoint {
	points := make([]E1RMPoint, 0, len(workouts))
	for _, w := range workouts {
		best := 0.0
		name := ""
		for _, ex := range w.Exercises {
			if ex.ExerciseID != exerciseID {
				continue
			}
			name = ex.Name
			for _, set := range ex.Sets {
				if e := CalculateEstimated1RM(set.Weight, set.Reps, set.RIR); e > best {
					best = e
				}
			}
		}
		if best <= 0 {
			continue
		}
		if name == "" {
			name = unknownExerciseName
		}
		points = append(points, E1RMPoint{
			Date:         w.Date,
			ExerciseID:   exerciseID,
			ExerciseName: name,
			Estimated1RM: best,
		})
	}
	sort.Slice(points, func(i, j int) bool { return points[i].Date.Before(points[j].Date) })
	return points
}

// BuildWorkoutTopSets extracts, for every exercise in every workout, the set
// with the greatest weight. Ties go to the earliest set index. Records keep
// workout-then-exercise encounter order; exercises with no sets are skipped.
func BuildWorkoutTopSets(workouts []domain.Workout) []TopSetPoint {
	var points []TopSetPoint
	for _, w := range workouts {
		for _, ex := range w.Exercises {
			if len(ex.Sets) == 0 {
				continue
			}
			top := 0
			for i, set := range ex.Sets {
				if set.Weight > ex.Sets[top].Weight {
					top = i
				}
			}
			points = append(points, TopSetPoint{
				WorkoutID:    w.ID,
				Date:         w.Date,
				ExerciseID:   ex.ExerciseID,
				ExerciseName: ex.Name,
				SetIndex:     top,
				Set:          ex.Sets[top],
			})
		}
	}
	return points
}

// BuildWeeklyExerciseVolumeByWeek buckets workouts inside the inclusive
// [start, end] window into 7-day slices counted from start, and accumulates
// weight*reps per (week, exercise). Combinations accumulating to zero or less
// are dropped rather than emitted as zero. A reversed range yields nothing.
func BuildWeeklyExerciseVolumeByWeek(workouts []domain.Workout, start, end time.Time) []WeeklyVolumePoint {
	type key struct {
		week       int
		exerciseID string
	}
	startDay, endDay := dateOnly(start), dateOnly(end)
	if endDay.Before(startDay) {
		return nil
	}

	totals := map[key]float64{}
	names := map[key]string{}
	for _, w := range workouts {
		day := dateOnly(w.Date)
		if day.Before(startDay) || day.After(endDay) {
			continue
		}
		week := weekIndex(startDay, day)
		for _, ex := range w.Exercises {
			k := key{week: week, exerciseID: ex.ExerciseID}
			names[k] = ex.Name
			for _, set := range ex.Sets {
				totals[k] += set.Weight * float64(set.Reps)
			}
		}
	}

	points := make([]WeeklyVolumePoint, 0, len(totals))
	for k, total := range totals {
		if total <= 0 {
			continue
		}
		points = append(points, WeeklyVolumePoint{
			WeekIndex:    k.week,
			ExerciseID:   k.exerciseID,
			ExerciseName: names[k],
			TotalVolume:  total,
		})
	}
	sort.Slice(points, func(i, j int) bool {
		if points[i].WeekIndex != points[j].WeekIndex {
			return points[i].WeekIndex < points[j].WeekIndex
		}
		return points[i].ExerciseID < points[j].ExerciseID
	})
	return points
}

// BuildWeeklyExerciseFrequencyByWeek counts, per (week, exercise), the
// distinct workouts in which the exercise appears at least once: an exercise
// split across two blocks of one workout is still a single session. The
// windowing and bucketing match BuildWeeklyExerciseVolumeByWeek.
func BuildWeeklyExerciseFrequencyByWeek(workouts []domain.Workout, start, end time.Time) []WeeklyFrequencyPoint {
	type key struct {
		week       int
		exerciseID string
	}
	startDay, endDay := dateOnly(start), dateOnly(end)
	if endDay.Before(startDay) {
		return nil
	}

	sessions := map[key]int{}
	names := map[key]string{}
	for _, w := range workouts {
		day := dateOnly(w.Date)
		if day.Before(startDay) || day.After(endDay) {
			continue
		}
		week := weekIndex(startDay, day)
		seen := map[string]bool{}
		for _, ex := range w.Exercises {
			if seen[ex.ExerciseID] {
				continue
			}
			seen[ex.ExerciseID] = true
			k := key{week: week, exerciseID: ex.ExerciseID}
			sessions[k]++
			names[k] = ex.Name
		}
	}

	points := make([]WeeklyFrequencyPoint, 0, len(sessions))
	for k, count := range sessions {
		points = append(points, WeeklyFrequencyPoint{
			WeekIndex:    k.week,
			ExerciseID:   k.exerciseID,
			ExerciseName: names[k],
			Sessions:     count,
		})
	}
	sort.Slice(points, func(i, j int) bool {
		if points[i].WeekIndex != points[j].WeekIndex {
			return points[i].WeekIndex < points[j].WeekIndex
		}
		return points[i].ExerciseID < points[j].ExerciseID
	})
	return points
}

// dateOnly truncates an instant to its calendar date. UTC is used so that a
// week index never depends on the server's DST transitions.
func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// weekIndex is the zero-based count of whole 7-day buckets between two
// truncated dates.
func weekIndex(start, day time.Time) int {
	days := int(day.Sub(start).Hours() / 24)
	return days / 7
}

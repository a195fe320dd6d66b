// Package metrics holds the derived dashboard numbers. Everything here
// is a pure function over fetched rows so it can be tested without a
// database.
package metrics

import (
	"math"

	"github.com/arnold/lifehub-api/internal/models"
)

// TaskCompletionRate returns the percentage of tasks with status done,
// or 0 when there are no tasks.
func TaskCompletionRate(tasks []models.Task) float64 {
	if len(tasks) == 0 {
		return 0
	}
	done := 0
	for _, t := range tasks {
		if t.Status == "done" {
			done++
		}
	}
	return float64(done) / float64(len(tasks)) * 100
}

// HabitCompletionRate returns the percentage of habits completed today,
// or 0 when there are no habits.
func HabitCompletionRate(habits []models.Habit) float64 {
	if len(habits) == 0 {
		return 0
	}
	done := 0
	for _, h := range habits {
		if h.CompletedToday {
			done++
		}
	}
	return float64(done) / float64(len(habits)) * 100
}

// LifeScore combines the four factors with fixed weights:
// tasks 40%, habits 30%, events 15%, mood 15%.
func LifeScore(taskRate, habitRate, eventsFactor, moodFactor float64) int {
	return int(math.Round(taskRate*0.40 + habitRate*0.30 + eventsFactor*0.15 + moodFactor*0.15))
}

// MaxStreak returns the highest streak across the habits, or 0 when
// there are none.
func MaxStreak(habits []models.Habit) int {
	max := 0
	for _, h := range habits {
		if h.Streak > max {
			max = h.Streak
		}
	}
	return max
}

// CompletedCount counts tasks with status done.
func CompletedCount(tasks []models.Task) int {
	n := 0
	for _, t := range tasks {
		if t.Status == "done" {
			n++
		}
	}
	return n
}

// CompletedTodayCount counts habits completed today.
func CompletedTodayCount(habits []models.Habit) int {
	n := 0
	for _, h := range habits {
		if h.CompletedToday {
			n++
		}
	}
	return n
}

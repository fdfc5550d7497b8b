package progress

import (
	"math"

	"github.com/2beens/fitplanner/internal/plans"
)

type Macros struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

func (m *Macros) add(meal plans.Meal) {
	m.Calories += meal.Calories
	m.Protein += meal.Protein
	m.Carbs += meal.Carbs
	m.Fat += meal.Fat
}

type DaySummary struct {
	Day        string  `json:"day"`
	Total      int     `json:"total"`
	Completed  int     `json:"completed"`
	Percentage float64 `json:"percentage"`
	Planned    float64 `json:"plannedCalories"`
	Done       float64 `json:"doneCalories"`
}

type DietSummary struct {
	TotalMeals     int          `json:"totalMeals"`
	CompletedMeals int          `json:"completedMeals"`
	Percentage     float64      `json:"percentage"`
	Planned        Macros       `json:"planned"`
	Consumed       Macros       `json:"consumed"`
	Days           []DaySummary `json:"days"`
}

type WorkoutSummary struct {
	TotalExercises     int          `json:"totalExercises"`
	CompletedExercises int          `json:"completedExercises"`
	Percentage         float64      `json:"percentage"`
	PlannedCalories    float64      `json:"plannedCalories"`
	BurnedCalories     float64      `json:"burnedCalories"`
	CompletedSets      int          `json:"completedSets"`
	ActiveMinutes      int          `json:"activeMinutes"`
	Days               []DaySummary `json:"days"`
}

type Summary struct {
	Type    plans.PlanType  `json:"type"`
	Week    int             `json:"week"`
	Diet    *DietSummary    `json:"diet,omitempty"`
	Workout *WorkoutSummary `json:"workout,omitempty"`
}

// Percentage is done/total in percent with one decimal, 0 for an empty plan.
func Percentage(done, total int) float64 {
	if total <= 0 {
		return 0
	}
	return math.Round(float64(done)/float64(total)*1000) / 10
}

// Compute rescans the whole plan. It never mutates it.
func Compute(plan *plans.Plan) *Summary {
	summary := &Summary{
		Type: plan.Type,
		Week: plan.Week,
	}

	switch plan.Type {
	case plans.PlanTypeDiet:
		summary.Diet = computeDiet(plan.Diet)
	case plans.PlanTypeWorkout:
		summary.Workout = computeWorkout(plan.Workout)
	}

	return summary
}

func computeDiet(days []plans.DietDay) *DietSummary {
	s := &DietSummary{Days: make([]DaySummary, 0, len(days))}
	for _, day := range days {
		ds := DaySummary{Day: day.Day, Total: len(day.Meals)}
		for _, meal := range day.Meals {
			s.Planned.add(meal)
			ds.Planned += meal.Calories
			if meal.Completed {
				s.Consumed.add(meal)
				ds.Completed++
				ds.Done += meal.Calories
			}
		}
		ds.Percentage = Percentage(ds.Completed, ds.Total)
		s.TotalMeals += ds.Total
		s.CompletedMeals += ds.Completed
		s.Days = append(s.Days, ds)
	}
	s.Percentage = Percentage(s.CompletedMeals, s.TotalMeals)
	return s
}

func computeWorkout(days []plans.WorkoutDay) *WorkoutSummary {
	s := &WorkoutSummary{Days: make([]DaySummary, 0, len(days))}
	for _, day := range days {
		ds := DaySummary{Day: day.Day, Total: len(day.Exercises)}
		for _, e := range day.Exercises {
			s.PlannedCalories += e.CaloriesBurned
			ds.Planned += e.CaloriesBurned
			if !e.Completed {
				continue
			}
			ds.Completed++
			ds.Done += e.CaloriesBurned
			s.BurnedCalories += e.CaloriesBurned
			s.CompletedSets += e.Sets
			s.ActiveMinutes += e.DurationMinutes
		}
		ds.Percentage = Percentage(ds.Completed, ds.Total)
		s.TotalExercises += ds.Total
		s.CompletedExercises += ds.Completed
		s.Days = append(s.Days, ds)
	}
	s.Percentage = Percentage(s.CompletedExercises, s.TotalExercises)
	return s
}

// completion is the overall percentage of a plan of either type.
func completion(plan *plans.Plan) float64 {
	s := Compute(plan)
	if s.Diet != nil {
		return s.Diet.Percentage
	}
	if s.Workout != nil {
		return s.Workout.Percentage
	}
	return 0
}

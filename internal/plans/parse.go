package plans

import (
	"encoding/json"
	"fmt"

	"github.com/2beens/fitplanner/internal/ai"
)

type dietDayResponse struct {
	Meals *[]Meal `json:"meals"`
}

type workoutDayResponse struct {
	Focus     string      `json:"focus"`
	Exercises *[]Exercise `json:"exercises"`
}

// ParsePlan turns raw model output into a plan. Every weekday must be present,
// with meals (diet) or exercises (workout). Completion flags always start false.
func ParsePlan(planType PlanType, raw string) (*Plan, error) {
	jsonObj, err := ai.ExtractJSON(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidPlanResponse, err)
	}

	var days map[string]json.RawMessage
	if err := json.Unmarshal([]byte(jsonObj), &days); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidPlanResponse, err)
	}
	// some models wrap the week into {"plan": {...}}
	if inner, ok := days["plan"]; ok && len(days) == 1 {
		days = nil
		if err := json.Unmarshal(inner, &days); err != nil {
			return nil, fmt.Errorf("%w: %s", ErrInvalidPlanResponse, err)
		}
	}

	plan := &Plan{Type: planType}
	for _, day := range Weekdays {
		dayRaw, ok := days[day]
		if !ok {
			return nil, fmt.Errorf("%w: missing day %s", ErrInvalidPlanResponse, day)
		}

		switch planType {
		case PlanTypeDiet:
			var d dietDayResponse
			if err := json.Unmarshal(dayRaw, &d); err != nil {
				return nil, fmt.Errorf("%w: %s: %s", ErrInvalidPlanResponse, day, err)
			}
			if d.Meals == nil {
				return nil, fmt.Errorf("%w: missing meals for %s", ErrInvalidPlanResponse, day)
			}
			plan.Diet = append(plan.Diet, DietDay{Day: day, Meals: *d.Meals})
		case PlanTypeWorkout:
			var d workoutDayResponse
			if err := json.Unmarshal(dayRaw, &d); err != nil {
				return nil, fmt.Errorf("%w: %s: %s", ErrInvalidPlanResponse, day, err)
			}
			if d.Exercises == nil {
				return nil, fmt.Errorf("%w: missing exercises for %s", ErrInvalidPlanResponse, day)
			}
			plan.Workout = append(plan.Workout, WorkoutDay{Day: day, Focus: d.Focus, Exercises: *d.Exercises})
		default:
			return nil, fmt.Errorf("%w: %s", ErrUnknownPlanType, planType)
		}
	}

	plan.ResetCompletion()
	return plan, nil
}

package plans

import (
	"fmt"
	"strings"

	"github.com/2beens/fitplanner/internal/profile"
)

const (
	dietSystemPrompt    = "You are a professional nutritionist and meal planning expert. You answer with a single JSON object and nothing else."
	workoutSystemPrompt = "You are a certified personal trainer. You answer with a single JSON object and nothing else."
)

type PromptParams struct {
	Profile    *profile.Profile
	Type       PlanType
	Week       int
	TotalWeeks int
	// Previous is the outgoing week, used to avoid repeating it verbatim.
	Previous *Plan
}

// BuildPrompt returns the system and the user prompt for one week of a plan.
func BuildPrompt(params PromptParams) (string, string) {
	p := params.Profile
	tier := DifficultyTierFor(params.Week, params.TotalWeeks)

	var sb strings.Builder
	sb.WriteString("USER PROFILE:\n")
	sb.WriteString(fmt.Sprintf("- Age: %d years\n", p.Age))
	sb.WriteString(fmt.Sprintf("- Gender: %s\n", p.Gender))
	sb.WriteString(fmt.Sprintf("- Height: %.0f cm\n", p.HeightCm))
	sb.WriteString(fmt.Sprintf("- Weight: %.1f kg\n", p.WeightKg))
	bmi := p.BMI()
	sb.WriteString(fmt.Sprintf("- BMI: %.1f (%s)\n", bmi, profile.BMICategory(bmi)))
	sb.WriteString(fmt.Sprintf("- Goal: %s\n", p.FitnessGoal.Readable()))
	sb.WriteString(fmt.Sprintf("- Activity level: %s\n", strings.ReplaceAll(string(p.ActivityLevel), "_", " ")))
	if len(p.HealthConditions) > 0 {
		sb.WriteString(fmt.Sprintf("- Health conditions: %s\n", strings.Join(p.HealthConditions, ", ")))
	}
	if params.Type == PlanTypeDiet && p.DietaryPreference != "" {
		sb.WriteString(fmt.Sprintf("- Dietary preference: %s\n", p.DietaryPreference))
	}
	sb.WriteString("\n")

	sb.WriteString("PROGRAM:\n")
	sb.WriteString(fmt.Sprintf("- Week %d of %d (%s phase)\n", params.Week, params.TotalWeeks, tier))

	var system string
	switch params.Type {
	case PlanTypeDiet:
		system = dietSystemPrompt
		sb.WriteString(fmt.Sprintf("- Daily calorie target: %d kcal\n", p.DailyCalorieTarget()))
		sb.WriteString(fmt.Sprintf("- %s\n", tier.dietGuidance()))
		writePreviousMeals(&sb, params.Previous)
		sb.WriteString("\nTASK:\n")
		sb.WriteString("Create a 7 day meal plan with 3 to 5 meals per day.\n")
		sb.WriteString("Respond with JSON in exactly this shape, with all seven lowercase weekday keys:\n")
		sb.WriteString(`{"monday": {"meals": [{"name": "Oatmeal with berries", "time": "08:00", "description": "...", "calories": 420, "protein": 18, "carbs": 60, "fat": 10}]}, "tuesday": {...}, ..., "sunday": {...}}`)
		sb.WriteString("\nCalories are kcal, protein, carbs and fat are grams, all numbers.\n")
	case PlanTypeWorkout:
		system = workoutSystemPrompt
		sb.WriteString(fmt.Sprintf("- %s\n", tier.workoutGuidance()))
		writePreviousExercises(&sb, params.Previous)
		sb.WriteString("\nTASK:\n")
		sb.WriteString("Create a 7 day workout plan. Rest days have a focus of \"Rest\" and an empty exercises list.\n")
		sb.WriteString("Respond with JSON in exactly this shape, with all seven lowercase weekday keys:\n")
		sb.WriteString(`{"monday": {"focus": "Upper body", "exercises": [{"name": "Push-ups", "sets": 3, "reps": "10-12", "durationMinutes": 0, "restSeconds": 60, "caloriesBurned": 40, "notes": "..."}]}, "tuesday": {...}, ..., "sunday": {...}}`)
		sb.WriteString("\nUse durationMinutes for timed exercises and sets/reps for strength work.\n")
	}
	if len(p.HealthConditions) > 0 {
		sb.WriteString("Take the listed health conditions into account and avoid anything contraindicated.\n")
	}

	return system, sb.String()
}

func writePreviousMeals(sb *strings.Builder, previous *Plan) {
	if previous == nil || len(previous.Diet) == 0 {
		return
	}
	var names []string
	for _, day := range previous.Diet {
		for _, meal := range day.Meals {
			names = append(names, meal.Name)
		}
	}
	if len(names) > 0 {
		sb.WriteString(fmt.Sprintf("- Last week's meals (vary them): %s\n", strings.Join(dedupe(names), ", ")))
	}
}

func writePreviousExercises(sb *strings.Builder, previous *Plan) {
	if previous == nil || len(previous.Workout) == 0 {
		return
	}
	var names []string
	for _, day := range previous.Workout {
		for _, e := range day.Exercises {
			names = append(names, e.Name)
		}
	}
	if len(names) > 0 {
		sb.WriteString(fmt.Sprintf("- Last week's exercises (progress from them): %s\n", strings.Join(dedupe(names), ", ")))
	}
}

func dedupe(in []string) []string {
	seen := make(map[string]bool, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		if seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	return out
}

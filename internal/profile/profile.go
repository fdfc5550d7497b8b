package profile

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"
	"time"
)

var (
	ErrProfileNotFound = errors.New("profile not found")
	ErrInvalidProfile  = errors.New("invalid profile")
)

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

type FitnessGoal string

const (
	GoalLoseWeight       FitnessGoal = "lose_weight"
	GoalBuildMuscle      FitnessGoal = "build_muscle"
	GoalMaintain         FitnessGoal = "maintain"
	GoalImproveEndurance FitnessGoal = "improve_endurance"
	GoalGeneralFitness   FitnessGoal = "general_fitness"
)

func (g FitnessGoal) IsValid() bool {
	switch g {
	case GoalLoseWeight, GoalBuildMuscle, GoalMaintain, GoalImproveEndurance, GoalGeneralFitness:
		return true
	}
	return false
}

// Readable is used when describing the goal to the model.
func (g FitnessGoal) Readable() string {
	return strings.ReplaceAll(string(g), "_", " ")
}

type ActivityLevel string

const (
	ActivitySedentary  ActivityLevel = "sedentary"
	ActivityLight      ActivityLevel = "light"
	ActivityModerate   ActivityLevel = "moderate"
	ActivityActive     ActivityLevel = "active"
	ActivityVeryActive ActivityLevel = "very_active"
)

var activityMultipliers = map[ActivityLevel]float64{
	ActivitySedentary:  1.2,
	ActivityLight:      1.375,
	ActivityModerate:   1.55,
	ActivityActive:     1.725,
	ActivityVeryActive: 1.9,
}

type Profile struct {
	UserID            int           `json:"userId"`
	Age               int           `json:"age"`
	Gender            Gender        `json:"gender"`
	HeightCm          float64       `json:"heightCm"`
	WeightKg          float64       `json:"weightKg"`
	HealthConditions  []string      `json:"healthConditions"`
	FitnessGoal       FitnessGoal   `json:"fitnessGoal"`
	ActivityLevel     ActivityLevel `json:"activityLevel"`
	DietaryPreference string        `json:"dietaryPreference"`
	CreatedAt         time.Time     `json:"createdAt"`
	UpdatedAt         time.Time     `json:"updatedAt"`
}

// Normalize fills defaults and turns health conditions into a sorted set.
func (p *Profile) Normalize() {
	p.Gender = Gender(strings.ToLower(strings.TrimSpace(string(p.Gender))))
	if p.ActivityLevel == "" {
		p.ActivityLevel = ActivityModerate
	}
	p.DietaryPreference = strings.TrimSpace(p.DietaryPreference)
	p.HealthConditions = NormalizeConditions(p.HealthConditions)
}

func (p *Profile) Validate() error {
	switch {
	case p.Age < 13 || p.Age > 120:
		return fmt.Errorf("%w: age must be between 13 and 120", ErrInvalidProfile)
	case p.HeightCm < 50 || p.HeightCm > 272:
		return fmt.Errorf("%w: height must be between 50 and 272 cm", ErrInvalidProfile)
	case p.WeightKg < 20 || p.WeightKg > 400:
		return fmt.Errorf("%w: weight must be between 20 and 400 kg", ErrInvalidProfile)
	case p.Gender != GenderMale && p.Gender != GenderFemale && p.Gender != GenderOther:
		return fmt.Errorf("%w: unknown gender [%s]", ErrInvalidProfile, p.Gender)
	case !p.FitnessGoal.IsValid():
		return fmt.Errorf("%w: unknown fitness goal [%s]", ErrInvalidProfile, p.FitnessGoal)
	}
	if _, ok := activityMultipliers[p.ActivityLevel]; !ok {
		return fmt.Errorf("%w: unknown activity level [%s]", ErrInvalidProfile, p.ActivityLevel)
	}
	return nil
}

// NormalizeConditions lowercases, trims, dedupes and sorts the conditions.
// "none" and empty entries are dropped.
func NormalizeConditions(conditions []string) []string {
	set := make(map[string]struct{}, len(conditions))
	for _, c := range conditions {
		c = strings.ToLower(strings.TrimSpace(c))
		if c == "" || c == "none" {
			continue
		}
		set[c] = struct{}{}
	}

	normalized := make([]string, 0, len(set))
	for c := range set {
		normalized = append(normalized, c)
	}
	sort.Strings(normalized)
	return normalized
}

// BMI = weight / (height/100)^2, rounded to one decimal.
func BMI(heightCm, weightKg float64) float64 {
	if heightCm <= 0 {
		return 0
	}
	heightM := heightCm / 100
	return math.Round(weightKg/(heightM*heightM)*10) / 10
}

func BMICategory(bmi float64) string {
	switch {
	case bmi < 18.5:
		return "Underweight"
	case bmi < 25:
		return "Normal"
	case bmi < 30:
		return "Overweight"
	default:
		return "Obese"
	}
}

func (p *Profile) BMI() float64 {
	return BMI(p.HeightCm, p.WeightKg)
}

// BMR is the Mifflin-St Jeor basal metabolic rate in kcal.
func (p *Profile) BMR() float64 {
	base := 10*p.WeightKg + 6.25*p.HeightCm - 5*float64(p.Age)
	switch p.Gender {
	case GenderMale:
		return base + 5
	case GenderFemale:
		return base - 161
	default:
		return base - 78
	}
}

// DailyCalorieTarget scales BMR by activity and adjusts it for the goal.
func (p *Profile) DailyCalorieTarget() int {
	multiplier, ok := activityMultipliers[p.ActivityLevel]
	if !ok {
		multiplier = activityMultipliers[ActivityModerate]
	}

	tdee := p.BMR() * multiplier
	switch p.FitnessGoal {
	case GoalLoseWeight:
		tdee -= 500
	case GoalBuildMuscle:
		tdee += 300
	}
	return int(math.Round(tdee))
}

type BMISummary struct {
	BMI                float64 `json:"bmi"`
	Category           string  `json:"category"`
	BMR                int     `json:"bmr,omitempty"`
	DailyCalorieTarget int     `json:"dailyCalorieTarget,omitempty"`
}

func (p *Profile) Summary() BMISummary {
	bmi := p.BMI()
	return BMISummary{
		BMI:                bmi,
		Category:           BMICategory(bmi),
		BMR:                int(math.Round(p.BMR())),
		DailyCalorieTarget: p.DailyCalorieTarget(),
	}
}

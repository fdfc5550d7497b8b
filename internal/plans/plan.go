package plans

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

var (
	ErrPlanNotFound        = errors.New("plan not found")
	ErrMetadataNotFound    = errors.New("plan metadata not found")
	ErrUnknownPlanType     = errors.New("unknown plan type")
	ErrUnknownDay          = errors.New("unknown day")
	ErrItemNotFound        = errors.New("plan item not found")
	ErrDayLocked           = errors.New("day is locked")
	ErrInvalidPlanResponse = errors.New("the generated plan could not be read, please try again")
	ErrRenewalConflict     = errors.New("plan was renewed concurrently")
	ErrPlanBusy            = errors.New("plan is being renewed, try again shortly")
)

type PlanType string

const (
	PlanTypeDiet    PlanType = "diet"
	PlanTypeWorkout PlanType = "workout"
)

var AllPlanTypes = []PlanType{PlanTypeDiet, PlanTypeWorkout}

func ParsePlanType(s string) (PlanType, error) {
	switch PlanType(strings.ToLower(s)) {
	case PlanTypeDiet:
		return PlanTypeDiet, nil
	case PlanTypeWorkout:
		return PlanTypeWorkout, nil
	}
	return "", fmt.Errorf("%w: %s", ErrUnknownPlanType, s)
}

// RenewalPeriod is how long a week of the plan lasts before it is regenerated.
func (t PlanType) RenewalPeriod() time.Duration {
	if t == PlanTypeWorkout {
		return 6 * 24 * time.Hour
	}
	return 7 * 24 * time.Hour
}

var Weekdays = []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"}

func ParseWeekday(day string) (time.Weekday, bool) {
	switch strings.ToLower(strings.TrimSpace(day)) {
	case "monday":
		return time.Monday, true
	case "tuesday":
		return time.Tuesday, true
	case "wednesday":
		return time.Wednesday, true
	case "thursday":
		return time.Thursday, true
	case "friday":
		return time.Friday, true
	case "saturday":
		return time.Saturday, true
	case "sunday":
		return time.Sunday, true
	}
	return 0, false
}

type Meal struct {
	Name        string  `json:"name"`
	Time        string  `json:"time"`
	Description string  `json:"description"`
	Calories    float64 `json:"calories"`
	Protein     float64 `json:"protein"`
	Carbs       float64 `json:"carbs"`
	Fat         float64 `json:"fat"`
	Completed   bool    `json:"completed"`
}

type DietDay struct {
	Day   string `json:"day"`
	Meals []Meal `json:"meals"`
}

// Reps accepts both 12 and "8-12" from the model.
type Reps string

func (r *Reps) UnmarshalJSON(b []byte) error {
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*r = Reps(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("reps: %w", err)
	}
	*r = Reps(n.String())
	return nil
}

// Count is the lower bound of the reps range, 0 when not numeric.
func (r Reps) Count() int {
	s := string(r)
	if i := strings.IndexAny(s, "-/ "); i > 0 {
		s = s[:i]
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}

type Exercise struct {
	Name            string  `json:"name"`
	Sets            int     `json:"sets"`
	Reps            Reps    `json:"reps"`
	DurationMinutes int     `json:"durationMinutes"`
	RestSeconds     int     `json:"restSeconds"`
	CaloriesBurned  float64 `json:"caloriesBurned"`
	Notes           string  `json:"notes"`
	Completed       bool    `json:"completed"`
}

type WorkoutDay struct {
	Day       string     `json:"day"`
	Focus     string     `json:"focus"`
	Exercises []Exercise `json:"exercises"`
}

type Plan struct {
	UserID    int          `json:"userId"`
	Type      PlanType     `json:"type"`
	Week      int          `json:"week"`
	Diet      []DietDay    `json:"diet,omitempty"`
	Workout   []WorkoutDay `json:"workout,omitempty"`
	CreatedAt time.Time    `json:"createdAt"`
	UpdatedAt time.Time    `json:"updatedAt"`
}

// content is what is stored in the plan JSONB column.
type content struct {
	Diet    []DietDay    `json:"diet,omitempty"`
	Workout []WorkoutDay `json:"workout,omitempty"`
}

func (p *Plan) contentJSON() ([]byte, error) {
	return json.Marshal(content{Diet: p.Diet, Workout: p.Workout})
}

func (p *Plan) setContent(raw []byte) error {
	var c content
	if err := json.Unmarshal(raw, &c); err != nil {
		return fmt.Errorf("unmarshal plan content: %w", err)
	}
	p.Diet = c.Diet
	p.Workout = c.Workout
	return nil
}

// ToggleItem flips the completed flag of the meal or exercise at index on the given day.
func (p *Plan) ToggleItem(day string, index int) (bool, error) {
	day = strings.ToLower(day)
	switch p.Type {
	case PlanTypeDiet:
		for i := range p.Diet {
			if p.Diet[i].Day != day {
				continue
			}
			if index < 0 || index >= len(p.Diet[i].Meals) {
				return false, ErrItemNotFound
			}
			meal := &p.Diet[i].Meals[index]
			meal.Completed = !meal.Completed
			return meal.Completed, nil
		}
	case PlanTypeWorkout:
		for i := range p.Workout {
			if p.Workout[i].Day != day {
				continue
			}
			if index < 0 || index >= len(p.Workout[i].Exercises) {
				return false, ErrItemNotFound
			}
			exercise := &p.Workout[i].Exercises[index]
			exercise.Completed = !exercise.Completed
			return exercise.Completed, nil
		}
	}
	return false, fmt.Errorf("%w: %s", ErrUnknownDay, day)
}

// ResetCompletion marks every item as not completed.
func (p *Plan) ResetCompletion() {
	for i := range p.Diet {
		for j := range p.Diet[i].Meals {
			p.Diet[i].Meals[j].Completed = false
		}
	}
	for i := range p.Workout {
		for j := range p.Workout[i].Exercises {
			p.Workout[i].Exercises[j].Completed = false
		}
	}
}

type Metadata struct {
	UserID      int       `json:"userId"`
	Type        PlanType  `json:"type"`
	StartDate   time.Time `json:"startDate"`
	CurrentWeek int       `json:"currentWeek"`
	TotalWeeks  int       `json:"totalWeeks"`
	RenewalDate time.Time `json:"renewalDate"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// ArchivedPlan is one finished week of the program started at ProgramStart.
type ArchivedPlan struct {
	ID           int       `json:"id"`
	UserID       int       `json:"userId"`
	Type         PlanType  `json:"type"`
	ProgramStart time.Time `json:"programStart"`
	Week         int       `json:"week"`
	Plan         *Plan     `json:"plan"`
	ArchivedAt   time.Time `json:"archivedAt"`
}

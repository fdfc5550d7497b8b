package plans

type DifficultyTier string

const (
	TierFoundation  DifficultyTier = "foundation"
	TierProgression DifficultyTier = "progression"
	TierPeak        DifficultyTier = "peak"
)

// DifficultyTierFor splits the program into thirds by week/totalWeeks.
// The boundaries belong to the lower tier: week 4 of 12 is still foundation.
func DifficultyTierFor(week, totalWeeks int) DifficultyTier {
	if totalWeeks <= 0 || week <= 0 {
		return TierFoundation
	}
	switch {
	case 3*week <= totalWeeks:
		return TierFoundation
	case 3*week <= 2*totalWeeks:
		return TierProgression
	default:
		return TierPeak
	}
}

func (t DifficultyTier) dietGuidance() string {
	switch t {
	case TierProgression:
		return "Build on the habits from previous weeks: tighten macro accuracy, add more variety and slightly more complex recipes."
	case TierPeak:
		return "This is the final phase: optimize meal timing around training, keep macros precise and prioritize nutrient dense whole foods."
	default:
		return "Focus on establishing sustainable habits: simple recipes, regular meal times and easy to follow portions."
	}
}

func (t DifficultyTier) workoutGuidance() string {
	switch t {
	case TierProgression:
		return "Increase training volume or intensity by roughly 10 percent over the previous week, introduce harder exercise variations and shorten rest periods."
	case TierPeak:
		return "This is the peak phase: use the most challenging variations, highest intensity and supersets where appropriate while keeping good form."
	default:
		return "Focus on learning correct form with moderate volume, full body movements and generous rest periods."
	}
}

package wellness

import (
	"fmt"
	"math"
)

// metValues maps activity levels to their Metabolic Equivalent of Task.
var metValues = map[string]float64{
	"light":    3.5,
	"moderate": 5.0,
	"vigorous": 8.0,
}

// HydrationStatus describes a daily water intake assessment.
type HydrationStatus struct {
	Status string
	Advice string
}

// SleepAssessment describes a scored night of sleep.
type SleepAssessment struct {
	Score  int
	Status string
}

// BMI computes the body mass index for a weight in kilograms and a height
// in meters or centimeters. Heights above 10 are assumed to be centimeters
// and converted. The result is rounded to two decimals.
func BMI(weight, height float64) (float64, error) {
	if weight <= 0 || height <= 0 {
		return 0, fmt.Errorf("weight and height %w", ErrNonPositiveInput)
	}
	if height > 10 {
		height /= 100
	}
	return round2(weight / (height * height)), nil
}

// CaloriesBurned estimates calories burned for a weight in kilograms, a
// duration in minutes, and one of the known activity levels (light,
// moderate, vigorous). The result is rounded to two decimals.
func CaloriesBurned(weight, duration float64, activityLevel string) (float64, error) {
	if weight <= 0 || duration <= 0 {
		return 0, fmt.Errorf("weight and duration %w", ErrNonPositiveInput)
	}
	met, ok := metValues[activityLevel]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownActivity, activityLevel)
	}
	return round2(met * weight * duration / 60), nil
}

// Hydration maps a water intake in milliliters to a status and advice pair.
// The thresholds are fixed: below 2000ml is too little, 2000-3000ml
// inclusive is healthy, above 3000ml is too much.
func Hydration(waterML int) HydrationStatus {
	switch {
	case waterML < 2000:
		return HydrationStatus{
			Status: "Drink more water!",
			Advice: "Aim for at least 2 liters per day.",
		}
	case waterML <= 3000:
		return HydrationStatus{
			Status: "You're well hydrated!",
			Advice: "Maintain this level of hydration.",
		}
	default:
		return HydrationStatus{
			Status: "Too much water!",
			Advice: "Avoid overhydration.",
		}
	}
}

// SleepScore maps hours of sleep to a score and status pair. Under 6 hours
// scores 50, 6-8 hours inclusive scores 90, above 8 hours scores 70.
func SleepScore(hours float64) SleepAssessment {
	switch {
	case hours < 6:
		return SleepAssessment{Score: 50, Status: "Too little sleep"}
	case hours <= 8:
		return SleepAssessment{Score: 90, Status: "Healthy sleep"}
	default:
		return SleepAssessment{Score: 70, Status: "Too much sleep"}
	}
}

// round2 rounds to two decimal places, half away from zero.
func round2(x float64) float64 {
	return math.Round(x*100) / 100
}

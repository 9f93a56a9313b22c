package services

// BiometricInput is the body of the intake and day endpoints. Validation
// happens at the binding boundary; by the time it reaches a service the
// numbers are positive and the blood type is 1-4.
type BiometricInput struct {
	Height        float64 `json:"height" binding:"required,gt=0"`
	Age           int     `json:"age" binding:"required,gt=0"`
	CurrentWeight float64 `json:"currentWeight" binding:"required,gt=0"`
	DesiredWeight float64 `json:"desiredWeight" binding:"required,gt=0"`
	BloodType     int     `json:"bloodType" binding:"required,min=1,max=4"`
}

// bloodTypeAdjustment tweaks the daily target per blood type. Types
// outside 1-4 contribute nothing.
var bloodTypeAdjustment = map[int]float64{
	1: 0,
	2: 50,
	3: 75,
	4: -50,
}

// ComputeDailyTarget derives the daily calorie intake from biometric
// data. The input schema carries no sex field, so the male and female
// Harris-Benedict formulas are averaged, then scaled by a fixed
// moderate-activity multiplier. Losing weight subtracts 500 kcal,
// anything else (including equal weights) adds 500. No rounding.
func ComputeDailyTarget(input BiometricInput) float64 {
	bmrMen := 88.362 + 13.397*input.CurrentWeight + 4.799*input.Height - 5.677*float64(input.Age)
	bmrWomen := 447.593 + 9.247*input.CurrentWeight + 3.098*input.Height - 4.33*float64(input.Age)
	bmrAvg := (bmrMen + bmrWomen) / 2

	tdee := bmrAvg * 1.55

	adjustment := 500.0
	if input.CurrentWeight > input.DesiredWeight {
		adjustment = -500
	}

	return tdee + adjustment + bloodTypeAdjustment[input.BloodType]
}

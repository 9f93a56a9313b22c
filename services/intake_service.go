package services

import "context"

// IntakeResult is the response shape of both the anonymous preview and
// the authenticated commit.
type IntakeResult struct {
	DailyCalIntake float64  `json:"dailyCalIntake"`
	FoodNotRcmnded []string `json:"foodNotRcmnded"`
}

// IntakeService composes the calorie model, the restriction index and
// the profile store.
type IntakeService struct {
	products *ProductService
	profiles *ProfileService
}

func NewIntakeService(products *ProductService, profiles *ProfileService) *IntakeService {
	return &IntakeService{products: products, profiles: profiles}
}

// Preview computes the daily target and restricted foods without
// persisting anything.
func (s *IntakeService) Preview(ctx context.Context, input BiometricInput) (*IntakeResult, error) {
	notRecommended, err := s.products.NotRecommendedFor(ctx, input.BloodType)
	if err != nil {
		return nil, err
	}
	return &IntakeResult{
		DailyCalIntake: ComputeDailyTarget(input),
		FoodNotRcmnded: notRecommended,
	}, nil
}

// Commit is Preview plus an upsert of the caller's profile with the
// freshly computed daily rate.
func (s *IntakeService) Commit(ctx context.Context, userID string, input BiometricInput) (*IntakeResult, error) {
	result, err := s.Preview(ctx, input)
	if err != nil {
		return nil, err
	}
	if err := s.profiles.Upsert(ctx, userID, input, result.DailyCalIntake); err != nil {
		return nil, err
	}
	return result, nil
}

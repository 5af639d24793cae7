package transit

// LoyaltyStatus is a rider's profile together with their tier standing.
type LoyaltyStatus struct {
	Profile UserProfile `json:"profile" groups:"basic,detail"`
	Tier    LoyaltyTier `json:"tier" groups:"basic,detail"`

	NextTier    *LoyaltyTier `json:"next_tier,omitempty" groups:"basic,detail"`
	RidesToNext int          `json:"rides_to_next,omitempty" groups:"basic,detail"`
}

func NewLoyaltyStatus(profile UserProfile) LoyaltyStatus {
	status := LoyaltyStatus{
		Profile: profile,
		Tier:    CurrentTier(profile.TotalRides),
	}

	if next, ok := NextTier(profile.TotalRides); ok {
		status.NextTier = &next
		status.RidesToNext = next.MinRides - profile.TotalRides
	}

	return status
}

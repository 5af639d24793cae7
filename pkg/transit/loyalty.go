package transit

// LoyaltyTier grants a percentage discount once a rider's cumulative ride
// count reaches MinRides. Tiers are cumulative - a rider keeps climbing and
// always gets the discount of the highest tier they have passed.
type LoyaltyTier struct {
	Name            string `json:"name" groups:"basic,detail"`
	MinRides        int    `json:"min_rides" groups:"basic,detail"`
	DiscountPercent int    `json:"discount_percent" groups:"basic,detail"`
}

// LoyaltyTiers is ordered ascending by MinRides.
var LoyaltyTiers = []LoyaltyTier{
	{Name: "Bronze", MinRides: 0, DiscountPercent: 0},
	{Name: "Silver", MinRides: 10, DiscountPercent: 5},
	{Name: "Gold", MinRides: 25, DiscountPercent: 10},
	{Name: "Platinum", MinRides: 50, DiscountPercent: 15},
}

// CurrentTier returns the highest tier with MinRides <= totalRides.
func CurrentTier(totalRides int) LoyaltyTier {
	current := LoyaltyTiers[0]
	for _, tier := range LoyaltyTiers {
		if totalRides >= tier.MinRides {
			current = tier
		}
	}
	return current
}

// CurrentDiscount returns the discount percentage for a rider with the given
// cumulative ride count.
func CurrentDiscount(totalRides int) int {
	return CurrentTier(totalRides).DiscountPercent
}

// NextTier returns the next tier the rider has not yet reached, or false if
// they already hold the highest one.
func NextTier(totalRides int) (LoyaltyTier, bool) {
	for _, tier := range LoyaltyTiers {
		if totalRides < tier.MinRides {
			return tier, true
		}
	}
	return LoyaltyTier{}, false
}

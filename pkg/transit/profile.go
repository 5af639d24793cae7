package transit

// Languages supported for rider-facing text.
var Languages = map[string]string{
	"en": "English",
	"rw": "Kinyarwanda",
	"fr": "French",
	"sw": "Swahili",
}

const (
	DefaultLanguage = "en"
	DefaultPayment  = "MTN Mobile Money"
)

// UserProfile accumulates a rider's loyalty standing. LoyaltyPoints and
// TotalRides only ever grow under normal operation.
type UserProfile struct {
	LoyaltyPoints     int    `json:"loyalty_points" groups:"basic,detail"`
	TotalRides        int    `json:"total_rides" groups:"basic,detail"`
	PreferredLanguage string `json:"preferred_language" groups:"detail"`
	PreferredPayment  string `json:"preferred_payment" groups:"detail"`
}

// NewUserProfile is the profile given to a username seen for the first time.
func NewUserProfile() UserProfile {
	return UserProfile{
		PreferredLanguage: DefaultLanguage,
		PreferredPayment:  DefaultPayment,
	}
}

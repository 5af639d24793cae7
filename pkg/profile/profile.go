package profile

import (
	"sync"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/illuminado/illuminado/pkg/storage"
	"github.com/illuminado/illuminado/pkg/transit"
)

// ProfilesFile holds every rider profile keyed by username.
const ProfilesFile = "user_profiles.json"

// Store owns the rider profile map. The whole map is rewritten on every
// mutation; a missing or corrupt file loads as an empty map, never an error.
type Store struct {
	mutex sync.Mutex

	files    *storage.Store
	profiles map[string]transit.UserProfile
}

func NewStore(files *storage.Store) *Store {
	profiles := map[string]transit.UserProfile{}
	if err := files.Load(ProfilesFile, &profiles); err != nil {
		log.Warn().Err(err).Msg("Failed to load user profiles, starting empty")
		profiles = map[string]transit.UserProfile{}
	}

	return &Store{
		files:    files,
		profiles: profiles,
	}
}

// Get returns the rider's profile, creating and persisting a default one the
// first time a username is seen.
func (s *Store) Get(username string) transit.UserProfile {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	profile, ok := s.profiles[username]
	if !ok {
		profile = transit.NewUserProfile()
		s.profiles[username] = profile
		if err := s.persistLocked(); err != nil {
			log.Warn().Err(err).Str("user", username).Msg("Failed to persist new user profile")
		}
	}

	return profile
}

// TotalRides reports the rider's cumulative ride count without creating a
// profile for unknown usernames.
func (s *Store) TotalRides(username string) int {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	return s.profiles[username].TotalRides
}

// RecordRide credits a completed purchase: loyalty points for the price paid
// and one more ride. Returns the updated profile; a PersistenceError means
// the update is in memory only.
func (s *Store) RecordRide(username string, pointsEarned int) (transit.UserProfile, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	profile, ok := s.profiles[username]
	if !ok {
		profile = transit.NewUserProfile()
	}

	profile.LoyaltyPoints += pointsEarned
	profile.TotalRides += 1
	s.profiles[username] = profile

	return profile, s.persistLocked()
}

// SetPreferences updates the rider's preferred language and payment method.
// Empty values leave the existing preference untouched.
func (s *Store) SetPreferences(username string, language string, payment string) (transit.UserProfile, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	profile, ok := s.profiles[username]
	if !ok {
		profile = transit.NewUserProfile()
	}

	if language != "" {
		if _, ok := transit.Languages[language]; !ok {
			return profile, transit.ValidationError{Field: "language", Msg: "unsupported language " + language}
		}
		profile.PreferredLanguage = language
	}

	if payment != "" {
		if _, ok := transit.ProviderByName(payment); !ok {
			return profile, transit.ValidationError{Field: "payment", Msg: "unknown payment provider " + payment}
		}
		profile.PreferredPayment = payment
	}

	s.profiles[username] = profile

	return profile, s.persistLocked()
}

// Usernames lists every known rider in stable order.
func (s *Store) Usernames() []string {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	usernames := maps.Keys(s.profiles)
	slices.Sort(usernames)
	return usernames
}

func (s *Store) persistLocked() error {
	return s.files.Save(ProfilesFile, s.profiles)
}

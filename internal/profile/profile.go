// Package profile holds the local user profile. Like the order log it is
// persisted best-effort to the local key-value store and loaded once at
// startup.
package profile

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/rs/zerolog/log"
	bolt "go.etcd.io/bbolt"

	"github.com/vasiliy-maslov/storefront/internal/storage"
)

const profileKey = "profile"

type Profile struct {
	Username     string `json:"username"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	ProfileImage string `json:"profileImage,omitempty"`
}

// Update carries the fields to change. Empty fields are left untouched.
type Update struct {
	Username     string `json:"username,omitempty"`
	Email        string `json:"email,omitempty"`
	Phone        string `json:"phone,omitempty"`
	ProfileImage string `json:"profileImage,omitempty"`
}

type Repository interface {
	Load() (*Profile, error)
	Save(p Profile) error
}

type boltRepository struct {
	db *bolt.DB
}

func NewBoltRepository(db *bolt.DB) Repository {
	return &boltRepository{db: db}
}

func (r *boltRepository) Load() (*Profile, error) {
	data, err := storage.Get(r.db, profileKey)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to load profile: %w", err)
	}
	if data == nil {
		return nil, nil
	}
	var p Profile
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("repository: failed to decode profile: %w", err)
	}
	return &p, nil
}

func (r *boltRepository) Save(p Profile) error {
	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("repository: failed to encode profile: %w", err)
	}
	if err := storage.Put(r.db, profileKey, data); err != nil {
		return fmt.Errorf("repository: failed to save profile: %w", err)
	}
	return nil
}

// Store owns the profile. Reads and partial updates are serialized
// through one mutex.
type Store struct {
	mu      sync.Mutex
	repo    Repository
	profile Profile
}

func defaultProfile() Profile {
	return Profile{
		Username: "John Doe",
		Email:    "john.doe@example.com",
		Phone:    "09123456789",
	}
}

// NewStore loads the persisted profile once, falling back to the default
// when absent or unreadable.
func NewStore(repo Repository) *Store {
	s := &Store{repo: repo, profile: defaultProfile()}

	p, err := repo.Load()
	if err != nil {
		log.Warn().Err(err).Msg("profile: failed to load persisted profile, using default")
		return s
	}
	if p != nil {
		s.profile = *p
	}
	return s
}

func (s *Store) Get() Profile {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.profile
}

// Apply merges the non-empty fields of u into the profile and persists
// the result best-effort.
func (s *Store) Apply(u Update) Profile {
	s.mu.Lock()
	defer s.mu.Unlock()

	if u.Username != "" {
		s.profile.Username = u.Username
	}
	if u.Email != "" {
		s.profile.Email = u.Email
	}
	if u.Phone != "" {
		s.profile.Phone = u.Phone
	}
	if u.ProfileImage != "" {
		s.profile.ProfileImage = u.ProfileImage
	}

	if err := s.repo.Save(s.profile); err != nil {
		log.Error().Err(err).Msg("profile: failed to persist profile")
	}

	return s.profile
}

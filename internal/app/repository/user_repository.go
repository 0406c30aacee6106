package repository

import (
	"strings"
	"sync"

	"github.com/elinacho/lumiskin-backend/internal/app/model"
)

// UserRepository is the in-memory mock user store. Seeded once at startup,
// mutated only by signup; nothing is persisted externally.
type UserRepository interface {
	FindByEmail(email string) (*model.User, error)
	FindByID(id string) (*model.User, error)
	Create(user *model.User) error
}

type userRepository struct {
	mu    sync.RWMutex
	users map[string]*model.User // keyed by lowercased email
}

func NewUserRepository(seed []model.User) UserRepository {
	users := make(map[string]*model.User, len(seed))
	for i := range seed {
		user := seed[i]
		users[strings.ToLower(user.Email)] = &user
	}
	return &userRepository{users: users}
}

func (r *userRepository) FindByEmail(email string) (*model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[strings.ToLower(email)]
	if !ok {
		return nil, ErrNotFound
	}
	clone := *user
	return &clone, nil
}

func (r *userRepository) FindByID(id string) (*model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, user := range r.users {
		if user.ID == id {
			clone := *user
			return &clone, nil
		}
	}
	return nil, ErrNotFound
}

func (r *userRepository) Create(user *model.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := strings.ToLower(user.Email)
	if _, exists := r.users[key]; exists {
		return ErrDuplicateEmail
	}
	clone := *user
	r.users[key] = &clone
	return nil
}

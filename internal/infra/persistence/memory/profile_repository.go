package memory

import (
	"context"
	"sync"
	"time"

	"lifeline/internal/domain/entity"
	"lifeline/internal/domain/repository"
)

// profileRepository implements the repository.ProfileRepository interface.
type profileRepository struct {
	mu       sync.RWMutex
	profiles map[string]*entity.Profile
}

// NewProfileRepository is the constructor for profileRepository.
func NewProfileRepository() repository.ProfileRepository {
	return &profileRepository{profiles: make(map[string]*entity.Profile)}
}

func (repo *profileRepository) FindByID(_ context.Context, uid string) (*entity.Profile, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	profile, ok := repo.profiles[uid]
	if !ok {
		return nil, repository.ErrProfileNotFound
	}
	clone := *profile

	return &clone, nil
}

func (repo *profileRepository) SetFCMToken(_ context.Context, uid, token string) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	now := time.Now().UTC()
	profile, ok := repo.profiles[uid]
	if !ok {
		profile = &entity.Profile{UID: uid, CreatedAt: &now}
		repo.profiles[uid] = profile
	}
	profile.FCMToken = token
	profile.UpdatedAt = &now

	return nil
}

func (repo *profileRepository) FindFCMTokens(_ context.Context, uids []string) ([]entity.DeviceToken, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	tokens := make([]entity.DeviceToken, 0, len(uids))
	for _, uid := range uids {
		profile, ok := repo.profiles[uid]
		if !ok || profile.FCMToken == "" {
			continue
		}
		tokens = append(tokens, entity.DeviceToken{UserID: uid, Token: profile.FCMToken})
	}

	return tokens, nil
}

func (repo *profileRepository) ClearFCMToken(_ context.Context, uid string) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	if profile, ok := repo.profiles[uid]; ok {
		profile.FCMToken = ""
	}

	return nil
}

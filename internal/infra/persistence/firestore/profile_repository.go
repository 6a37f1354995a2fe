package firestore

import (
	"context"

	"lifeline/internal/domain/entity"
	"lifeline/internal/domain/repository"
	"lifeline/internal/infra/persistence/model"

	"cloud.google.com/go/firestore"
	"github.com/pkg/errors"
)

// profileRepository implements the repository.ProfileRepository interface.
type profileRepository struct {
	client     *firestore.Client
	collection string
}

// NewProfileRepository is the constructor for profileRepository.
func NewProfileRepository(client *firestore.Client, collection string) repository.ProfileRepository {
	if collection == "" {
		collection = model.UsersCollection
	}

	return &profileRepository{
		client:     client,
		collection: collection,
	}
}

func (repo *profileRepository) users() *firestore.CollectionRef {
	return repo.client.Collection(repo.collection)
}

// FindByID retrieves users/{uid}.
func (repo *profileRepository) FindByID(ctx context.Context, uid string) (*entity.Profile, error) {
	snap, err := repo.users().Doc(uid).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, repository.ErrProfileNotFound
		}

		return nil, toStoreError(err, "failed to find profile by ID")
	}

	var profileM model.ProfileModel
	if err := snap.DataTo(&profileM); err != nil {
		return nil, errors.Wrap(err, "failed to decode profile")
	}

	return model.ToProfileDomain(snap.Ref.ID, &profileM), nil
}

// SetFCMToken merges the token into the user's document, creating it if needed.
func (repo *profileRepository) SetFCMToken(ctx context.Context, uid, token string) error {
	_, err := repo.users().Doc(uid).Set(ctx, map[string]any{
		"fcmToken":  token,
		"updatedAt": firestore.ServerTimestamp,
	}, firestore.MergeAll)
	if err != nil {
		return toStoreError(err, "failed to store FCM token")
	}

	return nil
}

// FindFCMTokens reads the given user documents in one batch.
func (repo *profileRepository) FindFCMTokens(ctx context.Context, uids []string) ([]entity.DeviceToken, error) {
	if len(uids) == 0 {
		return nil, nil
	}

	refs := make([]*firestore.DocumentRef, 0, len(uids))
	for _, uid := range uids {
		refs = append(refs, repo.users().Doc(uid))
	}

	snaps, err := repo.client.GetAll(ctx, refs)
	if err != nil {
		return nil, toStoreError(err, "failed to read recipient profiles")
	}

	tokens := make([]entity.DeviceToken, 0, len(snaps))
	for _, snap := range snaps {
		if !snap.Exists() {
			continue
		}

		var profileM model.ProfileModel
		if err := snap.DataTo(&profileM); err != nil {
			return nil, errors.Wrapf(err, "failed to decode profile %s", snap.Ref.ID)
		}
		if profileM.FCMToken == "" {
			continue
		}

		tokens = append(tokens, entity.DeviceToken{UserID: snap.Ref.ID, Token: profileM.FCMToken})
	}

	return tokens, nil
}

// ClearFCMToken deletes the fcmToken field. A missing document is not an error.
func (repo *profileRepository) ClearFCMToken(ctx context.Context, uid string) error {
	_, err := repo.users().Doc(uid).Update(ctx, []firestore.Update{
		{Path: "fcmToken", Value: firestore.Delete},
	})
	if err != nil && !isNotFound(err) {
		return toStoreError(err, "failed to clear FCM token")
	}

	return nil
}

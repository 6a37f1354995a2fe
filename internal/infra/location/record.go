// Package location implements the location stores read by the proximity ranker.
package location

import (
	"log/slog"
	"slices"
	"strings"

	"lifeline/internal/domain/constants"
	"lifeline/internal/domain/entity"
	"lifeline/internal/domain/proximity"

	"github.com/goccy/go-json"
)

// record is the stored shape of one user's location. Coordinates are pointers
// because clients have written partial entries.
type record struct {
	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`
	DisplayName string   `json:"displayName,omitempty"`
	Timestamp   int64    `json:"timestamp,omitempty"` // Unix milliseconds
}

func newRecord(location *entity.UserLocation) record {
	lat, lng := location.Latitude, location.Longitude

	rec := record{
		Latitude:    &lat,
		Longitude:   &lng,
		DisplayName: location.DisplayName,
	}
	if !location.UpdatedAt.IsZero() {
		rec.Timestamp = location.UpdatedAt.UnixMilli()
	}

	return rec
}

// decodeRecords decodes each entry on its own so one malformed entry, such as a
// string latitude written by a client, is skipped instead of failing the snapshot.
func decodeRecords(entries map[string]json.RawMessage, logger *slog.Logger) map[string]record {
	records := make(map[string]record, len(entries))
	for userID, raw := range entries {
		var rec record
		if err := json.Unmarshal(raw, &rec); err != nil {
			logger.Warn("Skipping malformed location entry",
				slog.String("user_id", userID),
				slog.Any("error", err),
			)

			continue
		}
		records[userID] = rec
	}

	return records
}

// toTrackedUsers converts records keyed by user id into a snapshot ordered by id.
func toTrackedUsers(records map[string]record) []proximity.TrackedUser {
	users := make([]proximity.TrackedUser, 0, len(records))
	for id, rec := range records {
		displayName := rec.DisplayName
		if displayName == "" {
			displayName = constants.DefaultDisplayName
		}

		users = append(users, proximity.TrackedUser{
			ID:          id,
			DisplayName: displayName,
			Position: proximity.Position{
				Latitude:  rec.Latitude,
				Longitude: rec.Longitude,
			},
		})
	}

	slices.SortFunc(users, func(a, b proximity.TrackedUser) int {
		return strings.Compare(a.ID, b.ID)
	})

	return users
}

// file: database/hackathon_store.go
package database

import (
	"context"
	"errors"
	"time"

	"hatch/metrics"
	"hatch/models"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

var (
	ErrHackathonNotFound = errors.New("hackathon not found")
	ErrProfileNotFound   = errors.New("profile not found")
	ErrWriteConflict     = errors.New("too many concurrent writers, giving up")
)

const casRetries = 5

func GetHackathon(ctx context.Context, hackCode string) (*models.Hackathon, error) {
	var h models.Hackathon
	err := Hackathons.FindOne(ctx, bson.M{"_id": hackCode}).Decode(&h)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrHackathonNotFound
	}
	if err != nil {
		return nil, err
	}
	return &h, nil
}

func ListHackathons(ctx context.Context) ([]models.Hackathon, error) {
	cur, err := Hackathons.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	var hacks []models.Hackathon
	if err := cur.All(ctx, &hacks); err != nil {
		return nil, err
	}
	return hacks, nil
}

func InsertHackathon(ctx context.Context, h *models.Hackathon) error {
	_, err := Hackathons.InsertOne(ctx, h)
	return err
}

// MutateHackathon runs one read-modify-write cycle over the whole
// hackathon document under optimistic concurrency: the replace only
// matches the version that was read, and a lost race reloads and
// reapplies the mutation. Errors returned by mutate abort the cycle
// unchanged and are passed through to the caller.
func MutateHackathon(ctx context.Context, hackCode string, mutate func(h *models.Hackathon) error) (*models.Hackathon, error) {
	for attempt := 0; attempt < casRetries; attempt++ {
		h, err := GetHackathon(ctx, hackCode)
		if err != nil {
			return nil, err
		}
		if err := mutate(h); err != nil {
			return nil, err
		}
		readVersion := h.Version
		h.Version = readVersion + 1
		res, err := Hackathons.ReplaceOne(ctx, bson.M{"_id": hackCode, "version": readVersion}, h)
		if err != nil {
			return nil, err
		}
		if res.MatchedCount == 1 {
			return h, nil
		}
		// Another writer bumped the version between our read and write.
		metrics.VersionConflicts.Inc()
	}
	return nil, ErrWriteConflict
}

// UpdateHackathonFields applies a raw field-level merge (manage:update).
// Field names and types are deliberately not validated.
func UpdateHackathonFields(ctx context.Context, hackCode string, fields map[string]interface{}) error {
	res, err := Hackathons.UpdateOne(ctx, bson.M{"_id": hackCode}, bson.M{
		"$set": fields,
		"$inc": bson.M{"version": 1},
	})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrHackathonNotFound
	}
	return nil
}

// AddAdmin / RemoveAdmin are idempotent single-field set mutations, so
// they go straight to the atomic array operators.
func AddAdmin(ctx context.Context, hackCode, email string) error {
	res, err := Hackathons.UpdateOne(ctx, bson.M{"_id": hackCode}, bson.M{
		"$addToSet": bson.M{"admins": email},
		"$inc":      bson.M{"version": 1},
	})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrHackathonNotFound
	}
	return nil
}

func RemoveAdmin(ctx context.Context, hackCode, email string) error {
	res, err := Hackathons.UpdateOne(ctx, bson.M{"_id": hackCode}, bson.M{
		"$pull": bson.M{"admins": email},
		"$inc":  bson.M{"version": 1},
	})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrHackathonNotFound
	}
	return nil
}

// --- profile reverse index ---

func GetProfile(ctx context.Context, email string) (*models.Profile, error) {
	var p models.Profile
	err := Profiles.FindOne(ctx, bson.M{"_id": email}).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrProfileNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// AddProfileRegistration appends a {hackCode, teamId} pair to the user's
// reverse index, creating the profile lazily on first registration.
// $addToSet keeps the pair list a set even under concurrent calls.
func AddProfileRegistration(ctx context.Context, email string, ref models.RegistrationRef) error {
	_, err := Profiles.UpdateOne(ctx, bson.M{"_id": email}, bson.M{
		"$addToSet": bson.M{"hackathonsRegistered": ref},
		"$setOnInsert": bson.M{
			"hackathonsCreated": []string{},
			"createdAt":         time.Now().UTC(),
		},
	}, options.UpdateOne().SetUpsert(true))
	return err
}

func RemoveProfileRegistration(ctx context.Context, email string, ref models.RegistrationRef) error {
	_, err := Profiles.UpdateOne(ctx, bson.M{"_id": email}, bson.M{
		"$pull": bson.M{"hackathonsRegistered": bson.M{"hackCode": ref.HackCode, "teamId": ref.TeamID}},
	})
	return err
}

// AddProfileCreated records a hackathon code under the creator's profile.
func AddProfileCreated(ctx context.Context, email, hackCode string) error {
	_, err := Profiles.UpdateOne(ctx, bson.M{"_id": email}, bson.M{
		"$addToSet": bson.M{"hackathonsCreated": hackCode},
		"$setOnInsert": bson.M{
			"hackathonsRegistered": []models.RegistrationRef{},
			"createdAt":            time.Now().UTC(),
		},
	}, options.UpdateOne().SetUpsert(true))
	return err
}

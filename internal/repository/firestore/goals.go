package firestore

import (
	"context"
	"errors"
	"time"

	fs "cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"github.com/limbo/drinklog/pkg/entity"
)

type goalDoc struct {
	UserID      string    `firestore:"userId"`
	SojuBottles int       `firestore:"sojuBottles"`
	BeerCans    int       `firestore:"beerCans"`
	CreatedAt   time.Time `firestore:"createdAt"`
	UpdatedAt   time.Time `firestore:"updatedAt"`
}

// GoalsStore keeps a single goal document per user, keyed by the user id.
type GoalsStore struct {
	client *fs.Client
}

func NewGoalsStore(client *fs.Client) *GoalsStore {
	return &GoalsStore{client: client}
}

func fromGoalDoc(d goalDoc) (*entity.Goal, error) {
	uid, err := uuid.Parse(d.UserID)
	if err != nil {
		return nil, errors.New("invalid userId in goal: " + err.Error())
	}
	return &entity.Goal{
		ID:          uuid.NewSHA1(uuid.NameSpaceOID, []byte(goalsCollection+"/"+d.UserID)),
		UserID:      uid,
		SojuBottles: d.SojuBottles,
		BeerCans:    d.BeerCans,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}, nil
}

func (gs *GoalsStore) Upsert(ctx context.Context, goal *entity.Goal) error {
	if goal == nil {
		return errors.New("goal is nil")
	}
	ref := gs.client.Collection(goalsCollection).Doc(goal.UserID.String())
	err := gs.client.RunTransaction(ctx, func(ctx context.Context, tx *fs.Transaction) error {
		now := time.Now().UTC()
		doc := goalDoc{
			UserID:      goal.UserID.String(),
			SojuBottles: goal.SojuBottles,
			BeerCans:    goal.BeerCans,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		snap, err := tx.Get(ref)
		switch {
		case err == nil:
			var existing goalDoc
			if err := snap.DataTo(&existing); err != nil {
				return err
			}
			doc.CreatedAt = existing.CreatedAt
		case snap == nil || snap.Exists():
			return err
		}
		return tx.Set(ref, doc)
	})
	if err != nil {
		return errors.New("saving goal error: " + err.Error())
	}
	return nil
}

func (gs *GoalsStore) GetByUserID(ctx context.Context, uid uuid.UUID) (*entity.Goal, error) {
	snap, err := gs.client.Collection(goalsCollection).Doc(uid.String()).Get(ctx)
	if err != nil {
		if snap != nil && !snap.Exists() {
			return nil, nil
		}
		return nil, errors.New("getting goal error: " + err.Error())
	}
	var doc goalDoc
	if err = snap.DataTo(&doc); err != nil {
		return nil, errors.New("goal decoding error: " + err.Error())
	}
	return fromGoalDoc(doc)
}

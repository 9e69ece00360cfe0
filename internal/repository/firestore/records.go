package firestore

import (
	"context"
	"errors"
	"time"

	"cloud.google.com/go/civil"
	fs "cloud.google.com/go/firestore"
	"github.com/google/uuid"
	errorvalues "github.com/limbo/drinklog/internal/error_values"
	"github.com/limbo/drinklog/pkg/entity"
	"google.golang.org/api/iterator"
)

// recordDoc is the stored shape of a daily record. Date is kept as YYYY-MM-DD so that
// string ordering matches calendar ordering in range queries.
type recordDoc struct {
	UserID      string    `firestore:"userId"`
	Date        string    `firestore:"date"`
	Drank       bool      `firestore:"drank"`
	SojuBottles int       `firestore:"sojuBottles"`
	BeerCans    int       `firestore:"beerCans"`
	CreatedAt   time.Time `firestore:"createdAt"`
	UpdatedAt   time.Time `firestore:"updatedAt"`
}

type RecordsStore struct {
	client *fs.Client
}

func NewRecordsStore(client *fs.Client) *RecordsStore {
	return &RecordsStore{client: client}
}

// One document per user and day.
func recordDocID(uid uuid.UUID, date civil.Date) string {
	return uid.String() + "_" + date.String()
}

// recordID derives a stable uuid from the document id, firestore has no uuid column.
func recordID(docID string) uuid.UUID {
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(recordsCollection+"/"+docID))
}

func toRecordDoc(r *entity.DailyRecord) recordDoc {
	return recordDoc{
		UserID:      r.UserID.String(),
		Date:        r.Date.String(),
		Drank:       r.Drank,
		SojuBottles: r.SojuBottles,
		BeerCans:    r.BeerCans,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

func fromRecordDoc(docID string, d recordDoc) (*entity.DailyRecord, error) {
	uid, err := uuid.Parse(d.UserID)
	if err != nil {
		return nil, errors.New("invalid userId in record " + docID + ": " + err.Error())
	}
	date, err := civil.ParseDate(d.Date)
	if err != nil {
		return nil, errors.New("invalid date in record " + docID + ": " + err.Error())
	}
	return &entity.DailyRecord{
		ID:          recordID(docID),
		UserID:      uid,
		Date:        date,
		Drank:       d.Drank,
		SojuBottles: d.SojuBottles,
		BeerCans:    d.BeerCans,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}, nil
}

func (rs *RecordsStore) Upsert(ctx context.Context, record *entity.DailyRecord) error {
	if record == nil {
		return errors.New("record is nil")
	}
	ref := rs.client.Collection(recordsCollection).Doc(recordDocID(record.UserID, record.Date))
	err := rs.client.RunTransaction(ctx, func(ctx context.Context, tx *fs.Transaction) error {
		doc := toRecordDoc(record)
		doc.UpdatedAt = time.Now().UTC()
		doc.CreatedAt = doc.UpdatedAt
		snap, err := tx.Get(ref)
		switch {
		case err == nil:
			var existing recordDoc
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
		return errors.New("saving record error: " + err.Error())
	}
	return nil
}

func (rs *RecordsStore) GetByDate(ctx context.Context, uid uuid.UUID, date civil.Date) (*entity.DailyRecord, error) {
	snap, err := rs.client.Collection(recordsCollection).Doc(recordDocID(uid, date)).Get(ctx)
	if err != nil {
		if snap != nil && !snap.Exists() {
			return nil, errorvalues.ErrRecordNotFound
		}
		return nil, errors.New("getting record by date error: " + err.Error())
	}
	var doc recordDoc
	if err = snap.DataTo(&doc); err != nil {
		return nil, errors.New("record decoding error: " + err.Error())
	}
	return fromRecordDoc(snap.Ref.ID, doc)
}

func (rs *RecordsStore) GetByDateRange(ctx context.Context, uid uuid.UUID, from, to civil.Date) ([]entity.DailyRecord, error) {
	it := rs.client.Collection(recordsCollection).
		Where("userId", "==", uid.String()).
		Where("date", ">=", from.String()).
		Where("date", "<=", to.String()).
		OrderBy("date", fs.Asc).
		Documents(ctx)
	defer it.Stop()
	result := make([]entity.DailyRecord, 0, 8)
	for {
		snap, err := it.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, errors.New("getting records for period error: " + err.Error())
		}
		var doc recordDoc
		if err = snap.DataTo(&doc); err != nil {
			return nil, errors.New("record decoding error: " + err.Error())
		}
		record, err := fromRecordDoc(snap.Ref.ID, doc)
		if err != nil {
			return nil, err
		}
		result = append(result, *record)
	}
	return result, nil
}

func (rs *RecordsStore) Delete(ctx context.Context, uid uuid.UUID, date civil.Date) error {
	ref := rs.client.Collection(recordsCollection).Doc(recordDocID(uid, date))
	err := rs.client.RunTransaction(ctx, func(ctx context.Context, tx *fs.Transaction) error {
		snap, err := tx.Get(ref)
		if err != nil {
			if snap != nil && !snap.Exists() {
				return errorvalues.ErrRecordNotFound
			}
			return err
		}
		return tx.Delete(ref)
	})
	if errors.Is(err, errorvalues.ErrRecordNotFound) {
		return err
	}
	if err != nil {
		return errors.New("deleting record error: " + err.Error())
	}
	return nil
}

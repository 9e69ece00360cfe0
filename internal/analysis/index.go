package analysis

import (
	"cloud.google.com/go/civil"
	"github.com/limbo/drinklog/pkg/entity"
)

// RecordIndex gives O(1) access to a record by its date.
type RecordIndex map[civil.Date]entity.DailyRecord

// NewRecordIndex indexes records by date. Duplicated dates are not rejected, the last one wins.
func NewRecordIndex(records []entity.DailyRecord) RecordIndex {
	idx := make(RecordIndex, len(records))
	for _, r := range records {
		idx[r.Date] = r
	}
	return idx
}

func (idx RecordIndex) Lookup(d civil.Date) (entity.DailyRecord, bool) {
	r, ok := idx[d]
	return r, ok
}

// Between returns the records inside the window in ascending date order.
func (idx RecordIndex) Between(w PeriodWindow) []entity.DailyRecord {
	result := make([]entity.DailyRecord, 0, min(len(idx), max(w.TotalDays, 0)))
	if len(idx) == 0 {
		return result
	}
	for d := w.StartDate; !d.After(w.EndDate); d = d.AddDays(1) {
		if r, ok := idx[d]; ok {
			result = append(result, r)
		}
	}
	return result
}

package models

import "time"

// TimeModel is embedded in stored documents. Timestamps are kept in UTC at
// millisecond precision, which is what a BSON datetime can hold.
type TimeModel struct {
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updatedAt"`
}

func storedTime(now time.Time) time.Time {
	return now.UTC().Truncate(time.Millisecond)
}

func (m *TimeModel) SetCreatedAtUpdatedAt(now time.Time) {
	m.CreatedAt = storedTime(now)
	m.UpdatedAt = m.CreatedAt
}

func (m *TimeModel) SetUpdatedAt(now time.Time) {
	m.UpdatedAt = storedTime(now)
}

// Package model contains the Firestore document shapes and their mapping to
// domain entities.
package model

import "doorman/internal/domain/entity"

// ReservationModel mirrors a reservation document. UsedAt is only present on
// consumed documents.
type ReservationModel struct {
	Date      string `firestore:"date"`
	StartTime string `firestore:"startTime"`
	EndTime   string `firestore:"endTime"`
	Secret    string `firestore:"secret"`
	UserName  string `firestore:"userName"`
	Room      string `firestore:"room"`
}

// ToEntity converts the document into the domain entity.
func (m *ReservationModel) ToEntity(id string) *entity.Reservation {
	return &entity.Reservation{
		ID:        id,
		Date:      m.Date,
		StartTime: m.StartTime,
		EndTime:   m.EndTime,
		Secret:    m.Secret,
		UserName:  m.UserName,
		Room:      m.Room,
	}
}

// Package entity contains the core business objects of the project.
package entity

// Reservation represents a scheduled booking that carries a single-use door
// secret. Times are wall-clock strings in the configured local zone; an
// EndTime earlier than StartTime means the booking crosses midnight and the
// effective end falls on the following day.
type Reservation struct {
	ID        string `json:"id"`         // Firestore document ID.
	Date      string `json:"date"`       // Calendar day, "2006-01-02".
	StartTime string `json:"start_time"` // Local time of day, "15:04".
	EndTime   string `json:"end_time"`   // Local time of day, "15:04".
	Secret    string `json:"-"`          // Single-use door secret; tombstoned on consumption.
	UserName  string `json:"user_name"`  // Human identifier of the booking holder.
	Room      string `json:"room"`       // The booked room, informational only.
}

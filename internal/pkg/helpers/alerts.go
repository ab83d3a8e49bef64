package helpers

import (
	"fmt"

	"github.com/endeavored/classwatch/internal/pkg/models"
)

// SeatAlert is the alert checker's view of one whitelisted section.
type SeatAlert struct {
	ClassName   string
	ClassNumber string
	Title       string
	Enrolled    string
	Capacity    string
	Open        bool
}

// NewSeatAlert reads the counts from rec. If either count is not an integer
// both are taken as 0, so a malformed record reports no open seats.
func NewSeatAlert(className string, rec models.RawClassRecord) SeatAlert {
	enrolled, okEnrolled := rec.IntOK("ENRLTOT")
	capacity, okCapacity := rec.IntOK("ENRLCAP")
	if !okEnrolled || !okCapacity {
		enrolled, capacity = 0, 0
	}
	return SeatAlert{
		ClassName:   className,
		ClassNumber: rec.String("CLASSNBR"),
		Title:       rec.String("TITLE"),
		Enrolled:    rec.String("ENRLTOT"),
		Capacity:    rec.String("ENRLCAP"),
		Open:        enrolled < capacity,
	}
}

func (a SeatAlert) String() string {
	prefix := "No open seats"
	if a.Open {
		prefix = "OPEN SEAT"
	}
	return fmt.Sprintf("%s: %s - %s (%s). Seats: %s of %s", prefix, a.ClassName, a.Title, a.ClassNumber, a.Enrolled, a.Capacity)
}

// FetchErrorLine is the status line shown in place of a class that could not be fetched.
func FetchErrorLine(className string, err error) string {
	return fmt.Sprintf("Error fetching data for %s: %v", className, err)
}

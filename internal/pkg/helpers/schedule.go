package helpers

import (
	"fmt"
	"sort"
	"strings"

	"github.com/endeavored/classwatch/internal/pkg/models"
)

const (
	onlineLabel   = "ASU Online"
	inPersonLabel = "P"
	tbdLabel      = "TBD"
	scheduleTBD   = "Schedule TBD"
	scheduleSep   = " | "
	blankDay      = "&nbsp;"
)

var onlineModes = map[string]bool{"Online": true, "ASO": true, "OL": true}

var inPersonModes = map[string]bool{"P": true, "HY": true, "SYNC": true}

// FullSchedule describes when and where a section meets. Meetings come from
// MEETINGSLIST, or from the DAYLIST/STARTTIMES/ENDTIMES arrays when that
// yields nothing; entries are de-duplicated and sorted. With no meetings the
// instruction mode stands in.
func FullSchedule(rec models.RawClassRecord) string {
	parts := meetingEntries(rec)
	if len(parts) == 0 && rec.IsList("DAYLIST") {
		parts = parallelEntries(rec)
	}
	if len(parts) > 0 {
		return joinSorted(parts)
	}

	mode := rec.String("INSTRUCTIONMODE")
	switch {
	case onlineModes[mode]:
		return onlineLabel
	case mode != "":
		return mode
	}
	return scheduleTBD
}

// ScheduleAbbreviation is the short code shown next to search results.
func ScheduleAbbreviation(rec models.RawClassRecord) string {
	mode := rec.String("INSTRUCTIONMODE")
	switch {
	case onlineModes[mode]:
		return onlineLabel
	case inPersonModes[mode]:
		return inPersonLabel
	case rec.Truthy("MEETINGSLIST") || rec.Truthy("STARTTIMES"):
		return inPersonLabel
	}
	return tbdLabel
}

func meetingEntries(rec models.RawClassRecord) map[string]struct{} {
	parts := make(map[string]struct{})
	for _, meeting := range rec.Records("MEETINGSLIST") {
		days := meeting.String("DAYSLIST")
		start := meeting.String("STARTTIME")
		if days == "" || start == "" {
			continue
		}
		end := meeting.String("ENDTIME")

		location := ""
		building, room := meeting.String("BUILDINGCD"), meeting.String("ROOM")
		if building != "" && room != "" {
			location = fmt.Sprintf(" (%s %s)", building, room)
		}

		days, start, end = cleanMarkup(days), cleanMarkup(start), cleanMarkup(end)
		if days == "" || start == "" || end == "" {
			continue
		}
		parts[fmt.Sprintf("%s %s - %s%s", days, start, end, location)] = struct{}{}
	}
	return parts
}

func parallelEntries(rec models.RawClassRecord) map[string]struct{} {
	parts := make(map[string]struct{})
	days := rec.Strings("DAYLIST")
	starts := rec.Strings("STARTTIMES")
	ends := rec.Strings("ENDTIMES")

	n := len(days)
	if len(starts) < n {
		n = len(starts)
	}
	if len(ends) < n {
		n = len(ends)
	}

	for i := 0; i < n; i++ {
		day, start, end := days[i], starts[i], ends[i]
		if day == "" || start == "" || end == "" || strings.TrimSpace(day) == "" || day == blankDay {
			continue
		}
		facility := rec.StringOr("FACILITYID", tbdLabel)
		parts[fmt.Sprintf("%s %s - %s (%s)", day, start, end, facility)] = struct{}{}
	}
	return parts
}

func joinSorted(parts map[string]struct{}) string {
	list := make([]string, 0, len(parts))
	for p := range parts {
		list = append(list, p)
	}
	sort.Strings(list)
	return strings.Join(list, scheduleSep)
}

package form

import (
	"fmt"
	"time"
)

// Weekday is the wire code of a day of the week.
type Weekday string

const (
	Saturday  Weekday = "saturday"
	Sunday    Weekday = "sunday"
	Monday    Weekday = "monday"
	Tuesday   Weekday = "tuesday"
	Wednesday Weekday = "wednesday"
	Thursday  Weekday = "thursday"
	Friday    Weekday = "friday"
)

// Weekdays lists the days in storefront display order. The Persian week
// starts on Saturday.
var Weekdays = [7]Weekday{Saturday, Sunday, Monday, Tuesday, Wednesday, Thursday, Friday}

const (
	DefaultOpenTime  = "09:00"
	DefaultCloseTime = "22:00"
	clockLayout      = "15:04"
)

// ParseWeekday validates a wire code.
func ParseWeekday(code string) (Weekday, bool) {
	for _, d := range Weekdays {
		if string(d) == code {
			return d, true
		}
	}
	return "", false
}

func (d Weekday) index() int {
	for i, w := range Weekdays {
		if w == d {
			return i
		}
	}
	return -1
}

// WorkingHourRecord is the opening schedule of one day. OpenTime and
// CloseTime only matter while IsOpen is true.
type WorkingHourRecord struct {
	Day       Weekday `json:"day"`
	IsOpen    bool    `json:"isOpen"`
	OpenTime  string  `json:"openTime,omitempty"`
	CloseTime string  `json:"closeTime,omitempty"`
}

// WorkingHours always holds exactly one record per weekday, in Weekdays
// order. Being an array it is copied by value, so edits never alias.
type WorkingHours [7]WorkingHourRecord

// DefaultWorkingHours opens every day 09:00–22:00.
func DefaultWorkingHours() WorkingHours {
	var wh WorkingHours
	for i, d := range Weekdays {
		wh[i] = WorkingHourRecord{Day: d, IsOpen: true, OpenTime: DefaultOpenTime, CloseTime: DefaultCloseTime}
	}
	return wh
}

// SeedWorkingHours builds the fixed 7-day schedule from stored records.
// Days missing from existing get defaults, unknown codes are ignored and
// the first record wins when a day repeats.
func SeedWorkingHours(existing []WorkingHourRecord) WorkingHours {
	wh := DefaultWorkingHours()
	var seen [7]bool
	for _, rec := range existing {
		i := rec.Day.index()
		if i < 0 || seen[i] {
			continue
		}
		seen[i] = true
		wh[i] = WorkingHourRecord{
			Day:       Weekdays[i],
			IsOpen:    rec.IsOpen,
			OpenTime:  rec.OpenTime,
			CloseTime: rec.CloseTime,
		}
	}
	return wh
}

// Records returns the schedule as a slice for payloads.
func (wh WorkingHours) Records() []WorkingHourRecord {
	return append([]WorkingHourRecord(nil), wh[:]...)
}

// Day returns the record for d.
func (wh WorkingHours) Day(d Weekday) (WorkingHourRecord, bool) {
	i := d.index()
	if i < 0 {
		return WorkingHourRecord{}, false
	}
	return wh[i], true
}

func (wh WorkingHours) update(d Weekday, fn func(*WorkingHourRecord)) (WorkingHours, error) {
	i := d.index()
	if i < 0 {
		return wh, fmt.Errorf("unknown weekday %q", d)
	}
	fn(&wh[i])
	return wh, nil
}

// SetOpen opens or closes a day. Times are kept when closing so reopening
// restores them.
func (wh WorkingHours) SetOpen(d Weekday, open bool) (WorkingHours, error) {
	return wh.update(d, func(r *WorkingHourRecord) { r.IsOpen = open })
}

// Toggle flips IsOpen for a day.
func (wh WorkingHours) Toggle(d Weekday) (WorkingHours, error) {
	return wh.update(d, func(r *WorkingHourRecord) { r.IsOpen = !r.IsOpen })
}

// SetOpenTime edits the opening time of a day.
func (wh WorkingHours) SetOpenTime(d Weekday, hhmm string) (WorkingHours, error) {
	return wh.update(d, func(r *WorkingHourRecord) { r.OpenTime = hhmm })
}

// SetCloseTime edits the closing time of a day.
func (wh WorkingHours) SetCloseTime(d Weekday, hhmm string) (WorkingHours, error) {
	return wh.update(d, func(r *WorkingHourRecord) { r.CloseTime = hhmm })
}

// Validate checks open days for well-formed times. Closed days are not
// checked since their times are ignored downstream.
func (wh WorkingHours) Validate() ValidationErrors {
	errs := ValidationErrors{}
	for i, r := range wh {
		if !r.IsOpen {
			continue
		}
		if !isClock(r.OpenTime) {
			errs.Add(fmt.Sprintf("workingHours[%d].openTime", i), "opening time must be HH:MM")
		}
		if !isClock(r.CloseTime) {
			errs.Add(fmt.Sprintf("workingHours[%d].closeTime", i), "closing time must be HH:MM")
		}
	}
	return errs
}

func isClock(v string) bool {
	if len(v) != len(clockLayout) {
		return false
	}
	_, err := time.Parse(clockLayout, v)
	return err == nil
}

package models

import (
	"time"
)

// CalendarDay is one trading session. Date is "2006-01-02"; Open and Close
// are "15:04" wall-clock times in ET.
type CalendarDay struct {
	Date  string `json:"date"`
	Open  string `json:"open"`
	Close string `json:"close"`
}

type Clock struct {
	Timestamp time.Time `json:"timestamp"`
	IsOpen    bool      `json:"is_open"`
	NextOpen  time.Time `json:"next_open"`
	NextClose time.Time `json:"next_close"`
}

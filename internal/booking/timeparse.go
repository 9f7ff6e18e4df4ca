package booking

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

var ErrInvalidTimeLabel = errors.New("invalid time label")

// ConvertTo24Hour turns a 12-hour label like "2:00 PM" into "14:00:00".
func ConvertTo24Hour(label string) (string, error) {
	parts := strings.Fields(label)
	if len(parts) != 2 {
		return "", ErrInvalidTimeLabel
	}

	clock, modifier := parts[0], strings.ToUpper(parts[1])
	if modifier != "AM" && modifier != "PM" {
		return "", ErrInvalidTimeLabel
	}

	hm := strings.Split(clock, ":")
	if len(hm) != 2 {
		return "", ErrInvalidTimeLabel
	}

	hours, err := strconv.Atoi(hm[0])
	if err != nil || hours < 1 || hours > 12 {
		return "", ErrInvalidTimeLabel
	}

	minutes, err := strconv.Atoi(hm[1])
	if err != nil || minutes < 0 || minutes > 59 {
		return "", ErrInvalidTimeLabel
	}

	if hours == 12 {
		hours = 0
	}
	if modifier == "PM" {
		hours += 12
	}

	return fmt.Sprintf("%02d:%02d:00", hours, minutes), nil
}

// CombineDateTime builds the booking timestamp from a YYYY-MM-DD date and a
// 12-hour time label.
func CombineDateTime(dateStr, timeLabel string) (time.Time, error) {
	clock, err := ConvertTo24Hour(timeLabel)
	if err != nil {
		return time.Time{}, err
	}

	return time.Parse("2006-01-02T15:04:05", dateStr+"T"+clock)
}

// ParseSlotDate parses the plain YYYY-MM-DD date used for the slot row.
func ParseSlotDate(dateStr string) (time.Time, error) {
	return time.Parse("2006-01-02", dateStr)
}

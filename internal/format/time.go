// Package format renders timestamps according to the display_date and
// display_time config keys.
package format

import (
	"strings"
	"time"

	"github.com/relay-tools/slashcmd/internal/config"
)

const (
	defaultDateLayout = "Jan 02"
	defaultTimeKind   = "24h"
)

// DateTime formats a time with both date and time.
// Example output: "23/01/2024 15:04" or "01/23/2024 3:04 PM"
func DateTime(t time.Time) string {
	return Date(t) + " " + Time(t)
}

// DateTimeShort formats a time with short date (no year) and time.
func DateTimeShort(t time.Time) string {
	return DateShort(t) + " " + Time(t)
}

// Date formats only the date portion.
func Date(t time.Time) string {
	return t.Format(dateLayout())
}

// DateShort formats the date without year.
func DateShort(t time.Time) string {
	return t.Format(dateLayoutShort())
}

// Time formats only the time portion.
func Time(t time.Time) string {
	return t.Format(timeLayout(false))
}

// TimeFull formats the time with seconds.
func TimeFull(t time.Time) string {
	return t.Format(timeLayout(true))
}

// Full formats with full date and time with seconds.
func Full(t time.Time) string {
	return Date(t) + " " + TimeFull(t)
}

func dateLayout() string {
	displayDate, _ := config.Get("display_date")
	if displayDate == "" {
		return defaultDateLayout
	}

	switch displayDate {
	case "mm/dd/yyyy":
		return "01/02/2006"
	case "yyyy-mm-dd":
		return "2006-01-02"
	case "dd/mm/yyyy":
		return "02/01/2006"
	default:
		// Assume a custom Go layout, e.g. "Jan 02"
		return displayDate
	}
}

func dateLayoutShort() string {
	displayDate, _ := config.Get("display_date")
	if displayDate == "" {
		return defaultDateLayout
	}

	switch displayDate {
	case "mm/dd/yyyy":
		return "01/02"
	case "yyyy-mm-dd":
		return "01-02"
	case "dd/mm/yyyy":
		return "02/01"
	default:
		return stripYear(displayDate)
	}
}

// stripYear derives a short layout from a custom one by removing year
// patterns.
func stripYear(layout string) string {
	short := layout
	short = strings.ReplaceAll(short, "2006", "")
	short = strings.ReplaceAll(short, "/06", "")
	short = strings.ReplaceAll(short, "-06", "")
	short = strings.ReplaceAll(short, " 06", "")
	short = strings.TrimSpace(short)
	short = strings.Trim(short, "/-")
	if short == "" {
		return defaultDateLayout
	}
	return short
}

func timeLayout(withSeconds bool) string {
	displayTime, _ := config.Get("display_time")
	if displayTime == "" {
		displayTime = defaultTimeKind
	}

	if displayTime == "12h" {
		if withSeconds {
			return "3:04:05 PM"
		}
		return "3:04 PM"
	}
	if withSeconds {
		return "15:04:05"
	}
	return "15:04"
}

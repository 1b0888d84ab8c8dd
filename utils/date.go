package utils

import (
	"fmt"
	"strings"
	"time"
)

const isoMillis = "2006-01-02T15:04:05.000Z07:00"

var banglaDigits = strings.NewReplacer(
	"0", "০", "1", "১", "2", "২", "3", "৩", "4", "৪",
	"5", "৫", "6", "৬", "7", "৭", "8", "৮", "9", "৯",
)

// BanglaDate renders t the way the bn-BD locale prints a short date,
// e.g. "১৯/১০/২০২৬".
func BanglaDate(t time.Time) string {
	return BanglaDigits(fmt.Sprintf("%d/%d/%d", t.Day(), int(t.Month()), t.Year()))
}

func BanglaDigits(s string) string {
	return banglaDigits.Replace(s)
}

// ISOTime formats t in UTC with millisecond precision and a Z suffix.
func ISOTime(t time.Time) string {
	return t.UTC().Format(isoMillis)
}

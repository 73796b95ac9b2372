package promo

import (
	"fmt"
	"strings"
	"time"
)

// Campaign names a seasonal popup.
type Campaign string

const (
	NewYear   Campaign = "new-year"
	Valentine Campaign = "valentine"
)

// ParseCampaign accepts a campaign name or "auto" (returned as the empty
// Campaign, meaning pick by date).
func ParseCampaign(s string) (Campaign, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return "", nil
	case "new-year", "newyear":
		return NewYear, nil
	case "valentine", "valentines":
		return Valentine, nil
	}
	return "", fmt.Errorf("unknown campaign %q", s)
}

// CampaignFor returns the campaign running on t: New Year through December
// and January, Valentine's Day from Feb 1 to Feb 14. ok is false on any other
// date.
func CampaignFor(t time.Time) (c Campaign, ok bool) {
	switch {
	case t.Month() == time.December || t.Month() == time.January:
		return NewYear, true
	case t.Month() == time.February && t.Day() <= 14:
		return Valentine, true
	}
	return "", false
}

// season is the year a campaign run belongs to; late-December New Year runs
// count toward the following year.
func season(c Campaign, t time.Time) int {
	if c == NewYear && t.Month() == time.December {
		return t.Year() + 1
	}
	return t.Year()
}

func seenKey(c Campaign, t time.Time) string {
	return fmt.Sprintf("popup.%s.%d.shown", c, season(c, t))
}

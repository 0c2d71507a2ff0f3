// File: zone.go
// Title: Service Zone and Current Time
// Description: The fixed UTC+8 offset all "now" and epoch readings use,
//              independent of the host's local zone.
// Author: paisley
// Version: v0.2.0
// Created: 2026-03-04
// Modified: 2026-09-27
//
// Change History:
// - 2026-03-04 v0.1.0: ServiceZone, Now, NowString
// - 2026-09-27 v0.2.0: ParseOffset for the zone.offset setting

package timex

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	mdwerror "github.com/paisley/rocdate/foundation/core/error"
)

// ServiceOffset is the UTC offset of the service's single user time zone.
const ServiceOffset = 8 * time.Hour

// ServiceZone is the fixed zone at ServiceOffset. It has no daylight
// saving rules.
var ServiceZone = time.FixedZone("UTC+8", int(ServiceOffset/time.Second))

// Now returns the current wall clock reading in ServiceZone.
func Now() DateTime {
	return DateTimeOf(NowTime())
}

// NowIn returns the current wall clock reading in loc. A nil loc means
// ServiceZone.
func NowIn(loc *time.Location) DateTime {
	if loc == nil {
		loc = ServiceZone
	}
	return DateTimeOf(time.Now().In(loc))
}

// NowTime returns the current instant with its location set to
// ServiceZone.
func NowTime() time.Time {
	return time.Now().In(ServiceZone)
}

// NowString renders Now with pattern.
func NowString(pattern string) string {
	now := Now()
	s, _ := FormatDateTime(&now, pattern)
	return s
}

// maxOffset bounds ParseOffset to the range time zones actually use.
const maxOffset = 18 * time.Hour

// ParseOffset reads a UTC offset such as "+08:00", "+0800", "-5" or "Z"
// and returns a fixed zone for it. The service offset yields ServiceZone
// itself.
func ParseOffset(s string) (*time.Location, error) {
	v := strings.TrimSpace(s)
	v = strings.TrimPrefix(strings.TrimPrefix(v, "UTC"), "GMT")
	if v == "" || v == "Z" {
		return time.UTC, nil
	}

	sign := 1
	switch v[0] {
	case '+':
	case '-':
		sign = -1
	default:
		return nil, invalidOffset(s)
	}
	v = v[1:]

	hh, mm := v, "0"
	if h, m, ok := strings.Cut(v, ":"); ok {
		hh, mm = h, m
	} else if len(v) == 4 {
		hh, mm = v[:2], v[2:]
	}
	hours, err := strconv.Atoi(hh)
	if err != nil || len(hh) > 2 {
		return nil, invalidOffset(s)
	}
	minutes, err := strconv.Atoi(mm)
	if err != nil || len(mm) > 2 || minutes > 59 {
		return nil, invalidOffset(s)
	}

	offset := time.Duration(sign) * (time.Duration(hours)*time.Hour + time.Duration(minutes)*time.Minute)
	if offset > maxOffset || offset < -maxOffset {
		return nil, invalidOffset(s)
	}
	if offset == ServiceOffset {
		return ServiceZone, nil
	}
	if offset == 0 {
		return time.UTC, nil
	}

	name := fmt.Sprintf("UTC%+d", sign*hours)
	if minutes != 0 {
		name = fmt.Sprintf("UTC%c%02d:%02d", "-+"[(sign+1)/2], hours, minutes)
	}
	return time.FixedZone(name, int(offset/time.Second)), nil
}

func invalidOffset(s string) error {
	return mdwerror.New("invalid UTC offset: "+s).
		WithCode(mdwerror.CodeInvalidFormat).
		WithOperation("timex.ParseOffset").
		WithDetail("offset", s)
}

// File: chrono.go
// Title: Chronologies and the Minguo Calendar
// Description: ISO and ROC (Minguo) year numbering, eras, and the MinguoDate
//              projection of a Gregorian Date.
// Author: paisley
// Version: v0.2.0
// Created: 2026-03-04
// Modified: 2026-09-21
//
// Change History:
// - 2026-03-04 v0.1.0: ROC year offset and MinguoDate
// - 2026-09-21 v0.2.0: Eras and reduced-year bases per chronology

package timex

import (
	"fmt"
	"time"
)

// Chronology selects how year numbers are interpreted by a pattern.
type Chronology int

const (
	// ISO is the proleptic Gregorian calendar.
	ISO Chronology = iota
	// ROC is the Republic of China (Minguo) calendar: year 1 is 1912 CE.
	ROC
)

// RocYearOffset is the number of years between the Gregorian and the ROC
// year numbering.
const RocYearOffset = 1911

// reduced two-digit year bases
const (
	isoReducedBase = 2000
	rocReducedBase = 89
)

func (c Chronology) String() string {
	switch c {
	case ISO:
		return "ISO"
	case ROC:
		return "ROC"
	default:
		return fmt.Sprintf("Chronology(%d)", int(c))
	}
}

// prolepticYear maps a Gregorian year to the chronology's proleptic year.
func (c Chronology) prolepticYear(isoYear int) int {
	if c == ROC {
		return isoYear - RocYearOffset
	}
	return isoYear
}

// isoYear maps a proleptic year of the chronology back to the Gregorian year.
func (c Chronology) isoYear(proleptic int) int {
	if c == ROC {
		return proleptic + RocYearOffset
	}
	return proleptic
}

func (c Chronology) reducedBase() int {
	if c == ROC {
		return rocReducedBase
	}
	return isoReducedBase
}

// Era is the era of a year within a chronology.
type Era int

const (
	// EraBefore is BCE for ISO and "before ROC" (民國前) for ROC.
	EraBefore Era = iota
	// EraCurrent is CE for ISO and ROC (民國) for ROC.
	EraCurrent
)

func (e Era) String() string {
	if e == EraCurrent {
		return "current"
	}
	return "before"
}

// eraOf splits a proleptic year into era and year-of-era.
func eraOf(proleptic int) (Era, int) {
	if proleptic >= 1 {
		return EraCurrent, proleptic
	}
	return EraBefore, 1 - proleptic
}

// prolepticFromEra is the inverse of eraOf.
func prolepticFromEra(era Era, yearOfEra int) int {
	if era == EraCurrent {
		return yearOfEra
	}
	return 1 - yearOfEra
}

// MinguoDate is the ROC calendar view of a Date. It is derived on demand
// and carries the same month and day as the Gregorian date.
type MinguoDate struct {
	Era       Era
	YearOfEra int
	Month     time.Month
	Day       int
}

// Minguo projects d onto the ROC calendar. Years up to 1911 fall into
// EraBefore, counted backwards from 1912 (1911 is 民國前1年).
func (d Date) Minguo() MinguoDate {
	era, yoe := eraOf(ROC.prolepticYear(d.Year))
	return MinguoDate{Era: era, YearOfEra: yoe, Month: d.Month, Day: d.Day}
}

// ProlepticYear returns the signed ROC year: 1 for 1912, 0 for 1911.
func (m MinguoDate) ProlepticYear() int {
	return prolepticFromEra(m.Era, m.YearOfEra)
}

// Date converts m back to the Gregorian calendar.
func (m MinguoDate) Date() Date {
	return Date{Year: ROC.isoYear(m.ProlepticYear()), Month: m.Month, Day: m.Day}
}

// String renders m in the zh-TW long form, e.g. 民國113年1月1日.
func (m MinguoDate) String() string {
	t := tableFor(Locale)
	return fmt.Sprintf("%s%d年%d月%d日", t.eras[ROC][m.Era], m.YearOfEra, int(m.Month), m.Day)
}

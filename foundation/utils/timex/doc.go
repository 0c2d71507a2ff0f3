// Package timex implements the calendar utilities of rocdate: civil dates
// and date-times, letter-pattern formatting and parsing, and conversion
// between the Gregorian and the ROC (Minguo) calendar.
//
// Package: timex
// Title: Civil Date, Pattern and ROC Calendar Utilities
// Description: Pure functions over immutable value types that bridge raw
//              strings with arbitrary patterns, proleptic-Gregorian civil
//              dates, and the ROC calendar used on Taiwanese government
//              documents. Includes a strict format validator and simple
//              date arithmetic pinned to a fixed UTC+8 service zone.
// Author: paisley
// Version: v0.2.0
// Created: 2026-03-04
// Modified: 2026-09-22
//
// Change History:
// - 2026-03-04 v0.1.0: Civil values, ROC projection, fixed service zone
// - 2026-09-22 v0.2.0: Strict validator, lenient ROC parsing, Formatter options
//
// Package Overview:
//
// # Value Types
//
//   - Date: year, month and day in the proleptic Gregorian calendar
//   - DateTime: a Date with hour, minute, second and nanosecond
//   - MinguoDate: the ROC view of a Date (ROC year = Gregorian year - 1911)
//
// Absent values are nil pointers for dates and ("", false) for strings.
// Every entry point maps blank or whitespace-only input to an absent
// result; blank is never an error.
//
// # Patterns
//
// Patterns use letters in the style of CLDR date patterns:
//
//	G     era             西元 / 西元前, or 民國 / 民國前 under ROC
//	y     year-of-era     yy = two digits, yyy = ROC year, yyyy = four digits
//	u     proleptic year  same widths as y
//	M, L  month           M / MM numeric, MMM 1月, MMMM 一月
//	d     day of month
//	E     weekday         E..EEE 週一, EEEE 星期一
//	a     am/pm           上午 / 下午
//	H k   hour of day     0-23 and 1-24
//	h K   hour of am/pm   1-12 and 0-11
//	m s   minute, second
//	S     fraction        exactly as many digits as letters
//	n     nanosecond
//
// Text in single quotes is literal and '' is a single quote. Other ASCII
// letters and the characters [ ] { } # are reserved. Malformed patterns are
// programmer errors: the package-level functions panic with a
// CodeInvalidPattern error.
//
// Numbers written next to each other without a separator are split by
// width, so "yyyyMMdd" and "yyyMMdd" both parse.
//
// # Strict and Lenient Paths
//
// The Gregorian parse functions are strict: MatchesPattern gates every
// ParseDate, ParseDateTime, Reformat and ConvertAdToRoc call and rejects
// wrong widths, leftover text and impossible fields (month 13, February 30,
// hour 24). FromMinguo and ConvertRocToAd are lenient: numbers may use any
// width, month and weekday names may be short or full, and a day beyond
// the end of its month is clamped.
//
// # Usage Examples
//
//	d, err := timex.ParseDate("2024-01-31", "yyyy-MM-dd")
//	roc, _ := timex.ToMinguo(d, "yyy/MM/dd")           // "113/01/31"
//	back, err := timex.FromMinguo("113/1/31", "yyy/MM/dd")
//	ok := timex.MatchesPattern("2024-13-01", "yyyy-MM-dd") // false
//
//	days := timex.DaysBetween(timex.MustDate(2024, 1, 1), timex.MustDate(2024, 1, 31)) // 30
//	stamp := timex.FormatEpochMilli(ms, "yyyy-MM-dd HH:mm:ss") // read in UTC+8
//
// # Service Zone
//
// Now, NowString, NowAsMinguo and FormatEpochMilli read instants in
// ServiceZone (UTC+8), never in the host's local zone.
//
// # Error Handling
//
// Recoverable failures are returned as *error.Error values from
// foundation/core/error: CodeFormatMismatch from the strict paths and
// CodeCalendarParse from the ROC paths. Use IsFormatMismatch and
// IsCalendarParse to test for them through wrapped chains. The package
// never logs.
//
// # Thread Safety
//
// All values are immutable and all functions are safe for concurrent use.
package timex

// File: locale.go
// Title: Locale Text Tables
// Description: Month, weekday, am/pm and era names used by text pattern
//              tokens. zh-TW is the service locale; English is available
//              through WithLocale.
// Author: paisley
// Version: v0.2.0
// Created: 2026-03-05
// Modified: 2026-09-21
//
// Change History:
// - 2026-03-05 v0.1.0: zh-TW tables
// - 2026-09-21 v0.2.0: English table, language matcher

package timex

import (
	"golang.org/x/text/language"
)

// Locale is the locale used by every package-level entry point.
var Locale = language.MustParse("zh-TW")

// textTable holds the names for one locale. Weekday arrays start on Sunday
// so they index with time.Weekday directly.
type textTable struct {
	monthsShort   [12]string
	monthsFull    [12]string
	weekdaysShort [7]string
	weekdaysFull  [7]string
	ampm          [2]string
	eras          map[Chronology][2]string
}

var zhTW = &textTable{
	monthsShort: [12]string{
		"1月", "2月", "3月", "4月", "5月", "6月",
		"7月", "8月", "9月", "10月", "11月", "12月",
	},
	monthsFull: [12]string{
		"一月", "二月", "三月", "四月", "五月", "六月",
		"七月", "八月", "九月", "十月", "十一月", "十二月",
	},
	weekdaysShort: [7]string{"週日", "週一", "週二", "週三", "週四", "週五", "週六"},
	weekdaysFull:  [7]string{"星期日", "星期一", "星期二", "星期三", "星期四", "星期五", "星期六"},
	ampm:          [2]string{"上午", "下午"},
	eras: map[Chronology][2]string{
		ISO: {"西元前", "西元"},
		ROC: {"民國前", "民國"},
	},
}

var english = &textTable{
	monthsShort: [12]string{
		"Jan", "Feb", "Mar", "Apr", "May", "Jun",
		"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
	},
	monthsFull: [12]string{
		"January", "February", "March", "April", "May", "June",
		"July", "August", "September", "October", "November", "December",
	},
	weekdaysShort: [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"},
	weekdaysFull:  [7]string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"},
	ampm:          [2]string{"AM", "PM"},
	eras: map[Chronology][2]string{
		ISO: {"BC", "AD"},
		ROC: {"Before R.O.C.", "Minguo"},
	},
}

// supported and tables are index-aligned; the first entry is the fallback.
var (
	supported = []language.Tag{Locale, language.English}
	tables    = []*textTable{zhTW, english}
	matcher   = language.NewMatcher(supported)
)

// tableFor picks the closest supported table for tag.
func tableFor(tag language.Tag) *textTable {
	_, idx, conf := matcher.Match(tag)
	if conf == language.No || idx < 0 || idx >= len(tables) {
		return tables[0]
	}
	return tables[idx]
}

// textStyle selects short or full names.
type textStyle int

const (
	styleShort textStyle = iota
	styleFull
)

func styleFor(count int) textStyle {
	if count >= 4 {
		return styleFull
	}
	return styleShort
}

func (t *textTable) month(m int, style textStyle) string {
	if style == styleFull {
		return t.monthsFull[m-1]
	}
	return t.monthsShort[m-1]
}

func (t *textTable) weekday(w int, style textStyle) string {
	if style == styleFull {
		return t.weekdaysFull[w]
	}
	return t.weekdaysShort[w]
}

// candidates lists the names a text field may be parsed from, with the
// value each name stands for.
type candidate struct {
	text  string
	value int
}

func (t *textTable) monthCandidates(styles ...textStyle) []candidate {
	var out []candidate
	for _, s := range styles {
		for i := 0; i < 12; i++ {
			out = append(out, candidate{text: t.month(i+1, s), value: i + 1})
		}
	}
	return out
}

func (t *textTable) weekdayCandidates(styles ...textStyle) []candidate {
	var out []candidate
	for _, s := range styles {
		for i := 0; i < 7; i++ {
			out = append(out, candidate{text: t.weekday(i, s), value: i})
		}
	}
	return out
}

func (t *textTable) ampmCandidates() []candidate {
	return []candidate{{t.ampm[0], 0}, {t.ampm[1], 1}}
}

func (t *textTable) eraCandidates(c Chronology) []candidate {
	names := t.eras[c]
	return []candidate{{names[0], int(EraBefore)}, {names[1], int(EraCurrent)}}
}

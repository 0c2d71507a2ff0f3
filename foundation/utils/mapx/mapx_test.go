// File: mapx_test.go
// Title: Map Utilities Tests
// Description: Tests for defaults, typed lookups and nested paths.
// Author: paisley
// Version: v0.2.0
// Created: 2026-03-04
// Modified: 2026-09-25
//
// Change History:
// - 2026-03-04 v0.1.0: Initial tests
// - 2026-09-25 v0.2.0: Non-mutating defaults, DeepMerge

package mapx

import (
	"reflect"
	"testing"
)

func TestGetOrDefault(t *testing.T) {
	m := map[string]int{"a": 1, "zero": 0}

	tests := []struct {
		name string
		m    map[string]int
		key  string
		def  int
		want int
	}{
		{"present", m, "a", 9, 1},
		{"present zero value", m, "zero", 9, 0},
		{"absent", m, "b", 9, 9},
		{"nil map", nil, "a", 7, 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetOrDefault(tt.m, tt.key, tt.def); got != tt.want {
				t.Errorf("GetOrDefault() = %d, want %d", got, tt.want)
			}
		})
	}

	if _, ok := m["b"]; ok {
		t.Error("GetOrDefault wrote the default into the map")
	}
	if len(m) != 2 {
		t.Errorf("map size changed to %d", len(m))
	}
}

func TestLookup(t *testing.T) {
	m := map[int]string{1: "one"}
	if v, ok := Lookup(m, 1); !ok || v != "one" {
		t.Errorf("Lookup(1) = %q, %v", v, ok)
	}
	if _, ok := Lookup(m, 2); ok {
		t.Error("Lookup(2) should be absent")
	}
}

func TestGetAs(t *testing.T) {
	m := map[string]interface{}{"n": int64(3), "s": "x"}

	if v, ok := GetAs[int64](m, "n"); !ok || v != 3 {
		t.Errorf("GetAs[int64] = %d, %v", v, ok)
	}
	if _, ok := GetAs[string](m, "n"); ok {
		t.Error("GetAs[string] on an int64 should fail")
	}
	if _, ok := GetAs[string](m, "missing"); ok {
		t.Error("GetAs on a missing key should fail")
	}
}

func TestGetString(t *testing.T) {
	m := map[string]interface{}{"s": "yyy/MM/dd", "n": 8, "nil": nil}

	tests := []struct {
		key    string
		want   string
		wantOK bool
	}{
		{"s", "yyy/MM/dd", true},
		{"n", "8", true},
		{"nil", "", false},
		{"missing", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			got, ok := GetString(m, tt.key)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("GetString(%q) = %q, %v", tt.key, got, ok)
			}
		})
	}
}

func TestOf(t *testing.T) {
	got := Of("era", "民國", "year", 113, "dangling")
	want := map[string]interface{}{"era": "民國", "year": 113}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Of() = %v, want %v", got, want)
	}
}

func TestPath(t *testing.T) {
	doc := map[string]interface{}{
		"display": map[string]interface{}{
			"date_pattern": "yyyy-MM-dd",
		},
		"yaml": map[interface{}]interface{}{
			"inner": 1,
		},
		"leaf": "x",
	}

	tests := []struct {
		path   string
		want   interface{}
		wantOK bool
	}{
		{"display.date_pattern", "yyyy-MM-dd", true},
		{"yaml.inner", 1, true},
		{"leaf", "x", true},
		{"leaf.deeper", nil, false},
		{"display.missing", nil, false},
		{"", nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, ok := Path(doc, tt.path)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("Path(%q) = %v, %v", tt.path, got, ok)
			}
		})
	}

	if _, ok := Path(nil, "a"); ok {
		t.Error("Path on nil map should fail")
	}
}

func TestSetPath(t *testing.T) {
	m := map[string]interface{}{"zone": "flat"}
	SetPath(m, "zone.offset", "+08:00")
	SetPath(m, "log.level", "debug")

	if v, _ := Path(m, "zone.offset"); v != "+08:00" {
		t.Errorf("zone.offset = %v", v)
	}
	if v, _ := Path(m, "log.level"); v != "debug" {
		t.Errorf("log.level = %v", v)
	}
}

func TestDeepMerge(t *testing.T) {
	base := map[string]interface{}{
		"display": map[string]interface{}{"date_pattern": "yyyy-MM-dd", "datetime_pattern": "yyyy-MM-dd HH:mm:ss"},
		"log":     map[string]interface{}{"level": "info"},
	}
	override := map[string]interface{}{
		"display": map[string]interface{}{"date_pattern": "yyyy/MM/dd"},
		"extra":   true,
	}

	got := DeepMerge(base, override)
	want := map[string]interface{}{
		"display": map[string]interface{}{"date_pattern": "yyyy/MM/dd", "datetime_pattern": "yyyy-MM-dd HH:mm:ss"},
		"log":     map[string]interface{}{"level": "info"},
		"extra":   true,
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("DeepMerge() = %v", got)
	}

	display := base["display"].(map[string]interface{})
	if display["date_pattern"] != "yyyy-MM-dd" {
		t.Error("DeepMerge modified base")
	}
}

func TestSortedKeys(t *testing.T) {
	got := SortedKeys(map[string]int{"b": 1, "a": 2, "c": 3})
	if !reflect.DeepEqual(got, []string{"a", "b", "c"}) {
		t.Errorf("SortedKeys() = %v", got)
	}
}

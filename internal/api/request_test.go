package api

import (
	"testing"
)

type displayID string

func TestTruthy(t *testing.T) {
	var nilPtr *int
	one := 1
	testCases := []struct {
		name  string
		value interface{}
		want  bool
	}{
		{"nil", nil, false},
		{"empty string", "", false},
		{"string", "sum", true},
		{"zero int", 0, false},
		{"int", 3, true},
		{"zero int64", int64(0), false},
		{"zero uint", uint(0), false},
		{"false", false, false},
		{"true", true, true},
		{"zero float", 0.0, false},
		{"float", 0.5, true},
		{"nil pointer", nilPtr, false},
		{"pointer", &one, true},
		{"named string", displayID("A"), true},
		{"empty named string", displayID(""), false},
		{"slice", []string{}, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Truthy(tc.value); got != tc.want {
				t.Errorf("Truthy(%#v) = %v, want %v", tc.value, got, tc.want)
			}
		})
	}
}

func TestParams_MergeTruthyDropsFalsyFilters(t *testing.T) {
	params := Params{"paging": true, "offset": 0, "limit": 10}.MergeTruthy(map[string]interface{}{
		"keyword":    "graph",
		"difficulty": "",
		"tag":        nil,
		"page":       0,
		"visible":    false,
	})

	if params["keyword"] != "graph" {
		t.Errorf("Expected keyword to be copied, got %v", params["keyword"])
	}
	for _, key := range []string{"difficulty", "tag", "page", "visible"} {
		if _, ok := params[key]; ok {
			t.Errorf("Expected %q to be omitted", key)
		}
	}
	// Fixed params are kept even when falsy.
	if _, ok := params["offset"]; !ok {
		t.Error("Expected offset to stay")
	}
}

func TestParams_MergeTruthyNilSource(t *testing.T) {
	params := Params{"offset": 0}.MergeTruthy(nil)
	if len(params) != 1 {
		t.Errorf("Expected params unchanged, got %v", params)
	}
}

func TestParams_Values(t *testing.T) {
	id := int64(42)
	values := Params{
		"paging":   true,
		"offset":   0,
		"ratio":    1.5,
		"name":     "bob",
		"skip":     nil,
		"user_id":  &id,
		"problem":  displayID("B"),
		"contests": int64(7),
	}.Values()

	want := map[string]string{
		"paging":   "true",
		"offset":   "0",
		"ratio":    "1.5",
		"name":     "bob",
		"user_id":  "42",
		"problem":  "B",
		"contests": "7",
	}
	for k, v := range want {
		if got := values.Get(k); got != v {
			t.Errorf("Expected %s=%q, got %q", k, v, got)
		}
	}
	if _, ok := values["skip"]; ok {
		t.Error("Expected nil value to be omitted")
	}
}

func TestParams_CloneIsIndependent(t *testing.T) {
	orig := Params{"myself": "1"}
	clone := orig.Clone()
	clone["limit"] = 20

	if _, ok := orig["limit"]; ok {
		t.Error("Expected original to be untouched")
	}
	if (Params(nil)).Clone() == nil {
		t.Error("Expected non-nil clone of nil params")
	}
}

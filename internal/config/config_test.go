package config

import (
	"math"
	"testing"
)

func TestValidate(t *testing.T) {
	cases := []struct {
		name    string
		opts    Options
		wantErr bool
	}{
		{"defaults", Options{Speed: DefaultSpeed, CornerMargin: DefaultCornerMargin}, false},
		{"speed 2.5", Options{Speed: 2.5}, false},
		{"speed zero", Options{Speed: 0}, true},
		{"speed negative", Options{Speed: -1}, true},
		{"speed NaN", Options{Speed: math.NaN()}, true},
		{"speed Inf", Options{Speed: math.Inf(1)}, true},
		{"margin negative", Options{Speed: 1, CornerMargin: -1}, true},
		{"margin zero", Options{Speed: 1, CornerMargin: 0}, false},
	}
	for _, tc := range cases {
		err := tc.opts.Validate()
		if tc.wantErr && err == nil {
			t.Errorf("%s: expected error, got nil", tc.name)
		}
		if !tc.wantErr && err != nil {
			t.Errorf("%s: unexpected error: %v", tc.name, err)
		}
	}
}

func TestParse(t *testing.T) {
	opts, err := Parse([]string{"-speed", "2.5", "-corner", "10", "-trace"})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if opts.Speed != 2.5 || opts.CornerMargin != 10 || !opts.Trace {
		t.Errorf("Parse = %+v, want speed 2.5, corner 10, trace on", opts)
	}
}

func TestParseDefaults(t *testing.T) {
	opts, err := Parse(nil)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if opts.Speed != DefaultSpeed || opts.CornerMargin != DefaultCornerMargin || opts.Trace {
		t.Errorf("Parse(nil) = %+v, want defaults", opts)
	}
}

func TestParseRejectsBadValues(t *testing.T) {
	if _, err := Parse([]string{"-speed", "0"}); err == nil {
		t.Error("speed 0 accepted")
	}
	if _, err := Parse([]string{"-speed", "-1"}); err == nil {
		t.Error("speed -1 accepted")
	}
	if _, err := Parse([]string{"-corner", "-3"}); err == nil {
		t.Error("corner -3 accepted")
	}
}

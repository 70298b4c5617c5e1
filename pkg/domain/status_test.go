package domain

import "testing"

func TestClassify_Boundaries(t *testing.T) {
	cases := []struct {
		score float64
		want  Status
	}{
		{100, StatusGreen},
		{70, StatusGreen},
		{69.999, StatusAmber},
		{40, StatusAmber},
		{39.999, StatusRed},
		{0, StatusRed},
		{-10, StatusRed},   // out-of-range input is classified as-is
		{140, StatusGreen}, // same on the high side
	}

	for _, tc := range cases {
		if got := Classify(tc.score); got != tc.want {
			t.Errorf("Classify(%v) = %s, want %s", tc.score, got, tc.want)
		}
	}
}

func TestStatus_AtLeast(t *testing.T) {
	cases := []struct {
		s, threshold Status
		want         bool
	}{
		{StatusRed, StatusRed, true},
		{StatusAmber, StatusRed, false},
		{StatusRed, StatusAmber, true},
		{StatusAmber, StatusAmber, true},
		{StatusGreen, StatusAmber, false},
		{StatusGreen, StatusGreen, true},
		{StatusRed, StatusGreen, true},
	}

	for _, tc := range cases {
		if got := tc.s.AtLeast(tc.threshold); got != tc.want {
			t.Errorf("%s.AtLeast(%s) = %v, want %v", tc.s, tc.threshold, got, tc.want)
		}
	}
}

func TestStatus_Valid(t *testing.T) {
	if !StatusGreen.Valid() || !StatusAmber.Valid() || !StatusRed.Valid() {
		t.Error("known bands must be valid")
	}
	if Status("purple").Valid() {
		t.Error("unknown band must be invalid")
	}
}

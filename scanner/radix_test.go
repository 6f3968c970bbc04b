package scanner

import "testing"

func TestRadixModeAllowsRadix(t *testing.T) {
	cases := []struct {
		mode  RadixMode
		radix int
		want  bool
	}{
		{RadixAll, 8, true},
		{RadixAll, 16, true},
		{RadixAll, 2, true},
		{RadixOnly10, 8, false},
		{RadixOnly10, 16, false},
		{RadixNoOctal, 8, false},
		{RadixNoOctal, 16, true},
		{RadixNoOctal, 2, true},
	}
	for _, tc := range cases {
		if got := tc.mode.allowsRadix(tc.radix); got != tc.want {
			t.Errorf("%s.allowsRadix(%d) = %v, want %v", tc.mode, tc.radix, got, tc.want)
		}
	}
}

func TestRadixModeString(t *testing.T) {
	if RadixAll.String() != "all" || RadixOnly10.String() != "only10" || RadixNoOctal.String() != "noOctal" {
		t.Error("unexpected RadixMode.String() output")
	}
}

package acoesbr

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestUnique(t *testing.T) {
	testCases := []struct {
		name  string
		lists [][]string
		want  []string
	}{
		{"duplicate in one list", [][]string{{"PETR4", "VALE3", "PETR4"}}, []string{"PETR4", "VALE3"}},
		{"duplicate across lists", [][]string{{"PETR4"}, {"VALE3", "PETR4"}}, []string{"PETR4", "VALE3"}},
		{"case and spaces", [][]string{{" petr4 ", "PETR4", "vale3"}}, []string{"PETR4", "VALE3"}},
		{"empty entries dropped", [][]string{{"", "  ", "ITUB4"}}, []string{"ITUB4"}},
		{"no input", nil, nil},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := Unique(tc.lists...)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("Unique(%v) mismatch (-want +got):\n%s", tc.lists, diff)
			}
		})
	}
}

func TestTickers(t *testing.T) {
	got := Tickers()
	if len(got) != len(BaseTickers)+len(ExtraTickers) {
		t.Fatalf("Tickers() returned %d tickers, want %d", len(got), len(BaseTickers)+len(ExtraTickers))
	}
	if got[0] != "PETR4" || got[len(got)-1] != "CMIG4" {
		t.Errorf("Tickers() = %v, want base list first and CMIG4 last", got)
	}
	seen := make(map[string]bool)
	for _, tk := range got {
		if seen[tk] {
			t.Errorf("Tickers() contains %q twice", tk)
		}
		seen[tk] = true
	}
}

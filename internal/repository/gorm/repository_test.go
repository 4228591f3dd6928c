package gormrepository

import "testing"

func TestAccountSortColumn(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"", "date"},
		{"date", "date"},
		{"firm", "firm"},
		{" base_cost ", "base_cost"},
		{"created_at", "created_at"},
		{"notes", "date"},
		{"date; DROP TABLE accounts", "date"},
		{"base_cost desc", "date"},
	}
	for _, tc := range cases {
		if got := accountSortColumn(tc.in); got != tc.want {
			t.Fatalf("accountSortColumn(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

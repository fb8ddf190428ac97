package wealthwise

import "testing"

func TestParseAccountType(t *testing.T) {
	tests := []struct {
		in   string
		want AccountType
		ok   bool
	}{
		{"Checking", Checking, true},
		{"Credit Card", Credit, true},
		{"Investment", InvestmentAccount, true},
		{"Loan", Loan, true},
		{"Wallet", "", false},
	}
	for _, tc := range tests {
		got, err := ParseAccountType(tc.in)
		if tc.ok != (err == nil) {
			t.Errorf("ParseAccountType(%q) err = %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseAccountType(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

package wealthwise

import (
	"encoding/json"
	"testing"
)

func TestMoney_Ratio(t *testing.T) {
	if got := M(50).Ratio(M(200)); got != 0.25 {
		t.Errorf("Ratio(50, 200) = %v, want 0.25", got)
	}
	if got := M(50).Ratio(M(0)); got != 0 {
		t.Errorf("Ratio with zero divisor = %v, want 0", got)
	}
}

func TestMoney_Round2(t *testing.T) {
	// 100/3 rounds to centavos; three installments of 33.33 sum to 99.99,
	// one centavo short of the original amount.
	each := M(100).Div(Q(3)).Round2()
	if !each.Equal(M(33.33)) {
		t.Errorf("each = %s, want R$33,33", each)
	}
	sum := each.Add(each).Add(each)
	if !sum.Equal(M(99.99)) {
		t.Errorf("sum = %s, want R$99,99", sum)
	}
}

func TestMoney_String(t *testing.T) {
	testCases := []struct {
		value float64
		want  string
	}{
		{value: 1234.56, want: "R$1.234,56"},
		{value: 0, want: "R$0,00"},
		{value: -10.5, want: "-R$10,50"},
	}
	for _, tc := range testCases {
		if got := M(tc.value).String(); got != tc.want {
			t.Errorf("M(%v).String() = %q, want %q", tc.value, got, tc.want)
		}
	}
}

func TestMoney_MarshalJSON(t *testing.T) {
	data, err := M(1234.567).MarshalJSON()
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "1234.57" {
		t.Errorf("MarshalJSON = %s, want 1234.57", data)
	}

	// Through encoding/json the amounts stay plain numbers, not strings.
	raw, err := json.Marshal(struct {
		Balance  Money    `json:"balance"`
		Quantity Quantity `json:"quantity"`
	}{M(10.5), Q(100)})
	if err != nil {
		t.Fatal(err)
	}
	if string(raw) != `{"balance":10.5,"quantity":100}` {
		t.Errorf("json.Marshal = %s", raw)
	}

	var m Money
	if err := m.UnmarshalJSON([]byte("10.5")); err != nil {
		t.Fatal(err)
	}
	if !m.Equal(M(10.5)) {
		t.Errorf("UnmarshalJSON(10.5) = %s", m)
	}
}

func TestMoney_DivPrice(t *testing.T) {
	q := M(1800).DivPrice(M(12))
	if !q.Equal(Q(150)) {
		t.Errorf("DivPrice(1800, 12) = %s, want 150", q)
	}
}

func TestPercent_String(t *testing.T) {
	if got := Percent(12.5).String(); got != "12.50%" {
		t.Errorf("String() = %q, want 12.50%%", got)
	}
	if got := Percent(0).SignedString(); got != "-" {
		t.Errorf("SignedString(0) = %q, want -", got)
	}
	if got := Percent(3.2).SignedString(); got != "+3.20%" {
		t.Errorf("SignedString(3.2) = %q, want +3.20%%", got)
	}
}

package model

import (
	"encoding/json"
	"testing"
)

func TestParsePaymentMethod(t *testing.T) {
	tests := []struct {
		in      string
		want    PaymentMethod
		wantErr bool
	}{
		{"CASH", PaymentCash, false},
		{"card", PaymentCard, false},
		{" Cash ", PaymentCash, false},
		{"WIRE", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		got, err := ParsePaymentMethod(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParsePaymentMethod(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParsePaymentMethod(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestParseCategory(t *testing.T) {
	for _, c := range Categories() {
		got, err := ParseCategory(string(c))
		if err != nil {
			t.Errorf("ParseCategory(%q) errored: %v", c, err)
		}
		if got != c {
			t.Errorf("ParseCategory(%q) = %q", c, got)
		}
	}

	if _, err := ParseCategory("GAMBLING"); err == nil {
		t.Error("expected error for unknown category")
	}
}

func TestEnumUnmarshalRejectsUnknown(t *testing.T) {
	var m PaymentMethod
	if err := json.Unmarshal([]byte(`"BARTER"`), &m); err == nil {
		t.Error("payment method unmarshal accepted unknown enumerant")
	}
	if err := json.Unmarshal([]byte(`"CARD"`), &m); err != nil || m != PaymentCard {
		t.Errorf("payment method unmarshal = %q, %v", m, err)
	}

	var c Category
	if err := json.Unmarshal([]byte(`"BRIBES"`), &c); err == nil {
		t.Error("category unmarshal accepted unknown enumerant")
	}
	if err := json.Unmarshal([]byte(`"FOOD"`), &c); err != nil || c != CategoryFood {
		t.Errorf("category unmarshal = %q, %v", c, err)
	}
}

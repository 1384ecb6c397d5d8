package model

import (
	"encoding/json"
	"fmt"
	"strings"
)

// PaymentMethod is how an expense was paid.
type PaymentMethod string

// Payment methods. Serialized by name.
const (
	PaymentCash PaymentMethod = "CASH"
	PaymentCard PaymentMethod = "CARD"
)

// PaymentMethods lists every valid payment method, in display order.
func PaymentMethods() []PaymentMethod {
	return []PaymentMethod{PaymentCash, PaymentCard}
}

// ParsePaymentMethod converts a name into a PaymentMethod,
// rejecting anything outside the closed set.
func ParsePaymentMethod(s string) (PaymentMethod, error) {
	m := PaymentMethod(strings.ToUpper(strings.TrimSpace(s)))
	switch m {
	case PaymentCash, PaymentCard:
		return m, nil
	}
	return "", fmt.Errorf("unknown payment method %q", s)
}

// UnmarshalJSON rejects unknown enumerants at the deserialization boundary.
func (m *PaymentMethod) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParsePaymentMethod(s)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// Category classifies what an expense was for.
type Category string

// Expense categories. Serialized by name.
const (
	CategoryTransport     Category = "TRANSPORT"
	CategoryLodging       Category = "LODGING"
	CategoryFood          Category = "FOOD"
	CategoryEntertainment Category = "ENTERTAINMENT"
	CategoryShopping      Category = "SHOPPING"
)

// Categories lists every valid expense category, in display order.
func Categories() []Category {
	return []Category{
		CategoryTransport,
		CategoryLodging,
		CategoryFood,
		CategoryEntertainment,
		CategoryShopping,
	}
}

// ParseCategory converts a name into a Category,
// rejecting anything outside the closed set.
func ParseCategory(s string) (Category, error) {
	c := Category(strings.ToUpper(strings.TrimSpace(s)))
	switch c {
	case CategoryTransport, CategoryLodging, CategoryFood, CategoryEntertainment, CategoryShopping:
		return c, nil
	}
	return "", fmt.Errorf("unknown expense category %q", s)
}

// UnmarshalJSON rejects unknown enumerants at the deserialization boundary.
func (c *Category) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseCategory(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

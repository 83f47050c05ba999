package enum

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// DiscountType represents the exclusive rule used to reduce a subtotal
// before tax. Exactly one applies per bill.
type DiscountType int

const (
	DiscountNone          DiscountType = 0
	DiscountPercentage    DiscountType = 1
	DiscountFixed         DiscountType = 2
	DiscountSeniorCitizen DiscountType = 3
)

var discountTypeNames = [...]string{"none", "percentage", "fixed", "senior_citizen"}

func (d DiscountType) String() string {
	if int(d) < 0 || int(d) >= len(discountTypeNames) {
		return "none"
	}
	return discountTypeNames[d]
}

// Valid reports whether d is one of the known discount tags
func (d DiscountType) Valid() bool {
	return int(d) >= 0 && int(d) < len(discountTypeNames)
}

// ParseDiscountType maps a wire tag to its DiscountType
func ParseDiscountType(s string) (DiscountType, error) {
	for i, name := range discountTypeNames {
		if name == s {
			return DiscountType(i), nil
		}
	}
	return DiscountNone, fmt.Errorf("unknown discount type %q", s)
}

func (d DiscountType) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *DiscountType) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		if !DiscountType(i).Valid() {
			return fmt.Errorf("unknown discount type %d", i)
		}
		*d = DiscountType(i)
		return nil
	}
	// An absent tag decodes as the zero value, DiscountNone
	if str == "" {
		*d = DiscountNone
		return nil
	}
	parsed, err := ParseDiscountType(str)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

func (d DiscountType) Value() (driver.Value, error) {
	return int64(d), nil
}

func (d *DiscountType) Scan(value interface{}) error {
	if value == nil {
		*d = DiscountNone
		return nil
	}
	switch v := value.(type) {
	case int64:
		*d = DiscountType(v)
	case int:
		*d = DiscountType(v)
	}
	return nil
}

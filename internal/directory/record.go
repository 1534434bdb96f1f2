package directory

import (
	"fmt"
	"strings"
)

// Record is one employee entry. JSON names match the users service payloads.
type Record struct {
	ID          string `json:"id" yaml:"id"`
	FullName    string `json:"fullName" yaml:"fullName"`
	Address     string `json:"address" yaml:"address"`
	PhoneNumber string `json:"phoneNumber" yaml:"phoneNumber"`
	Email       string `json:"email" yaml:"email"`
}

// Field names one editable record attribute.
type Field string

const (
	FieldFullName    Field = "fullName"
	FieldAddress     Field = "address"
	FieldPhoneNumber Field = "phoneNumber"
	FieldEmail       Field = "email"
)

// Fields lists record fields in display order.
func Fields() []Field {
	return []Field{FieldFullName, FieldAddress, FieldPhoneNumber, FieldEmail}
}

var fieldAliases = map[string]Field{
	"fullname":     FieldFullName,
	"full_name":    FieldFullName,
	"address":      FieldAddress,
	"phonenumber":  FieldPhoneNumber,
	"phone_number": FieldPhoneNumber,
	"email":        FieldEmail,
}

// ParseField resolves a field from its JSON name or its snake_case path.
func ParseField(name string) (Field, error) {
	field, ok := fieldAliases[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownField, name)
	}
	return field, nil
}

// Sortable reports whether the table can be ordered by this field.
func (f Field) Sortable() bool {
	return f == FieldFullName || f == FieldEmail
}

// Path returns the snake_case ordering path used in order_by expressions.
func (f Field) Path() string {
	switch f {
	case FieldFullName:
		return "full_name"
	case FieldPhoneNumber:
		return "phone_number"
	default:
		return string(f)
	}
}

// Value returns the record attribute named by f.
func (r Record) Value(f Field) string {
	switch f {
	case FieldFullName:
		return r.FullName
	case FieldAddress:
		return r.Address
	case FieldPhoneNumber:
		return r.PhoneNumber
	case FieldEmail:
		return r.Email
	default:
		return ""
	}
}

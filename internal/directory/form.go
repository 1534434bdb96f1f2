package directory

import (
	"fmt"
	"strings"
)

// FormMode distinguishes a create dialog from an edit dialog.
type FormMode int

const (
	FormModeCreate FormMode = iota
	FormModeEdit
)

// FormValues mirrors Record minus the id.
type FormValues struct {
	FullName    string `json:"fullName"`
	Address     string `json:"address"`
	PhoneNumber string `json:"phoneNumber"`
	Email       string `json:"email"`
}

// Form is the record dialog state. Values persist across Close so reopening
// a create dialog resumes the draft.
type Form struct {
	Open      bool
	Mode      FormMode
	EditingID string
	Values    FormValues
}

// OpenCreate opens the dialog for a new record. Values left by an edit are
// cleared; an unsubmitted create draft is kept.
func (f *Form) OpenCreate() {
	if f.Mode == FormModeEdit {
		f.Values = FormValues{}
	}
	f.Mode = FormModeCreate
	f.EditingID = ""
	f.Open = true
}

// OpenEdit opens the dialog loaded with record.
func (f *Form) OpenEdit(record Record) {
	f.Mode = FormModeEdit
	f.EditingID = record.ID
	f.Values = FormValues{
		FullName:    record.FullName,
		Address:     record.Address,
		PhoneNumber: record.PhoneNumber,
		Email:       record.Email,
	}
	f.Open = true
}

// SetField updates one value by field name.
func (f *Form) SetField(name, value string) error {
	field, err := ParseField(name)
	if err != nil {
		return err
	}
	switch field {
	case FieldFullName:
		f.Values.FullName = value
	case FieldAddress:
		f.Values.Address = value
	case FieldPhoneNumber:
		f.Values.PhoneNumber = value
	case FieldEmail:
		f.Values.Email = value
	default:
		return fmt.Errorf("%w: %q", ErrUnknownField, name)
	}
	return nil
}

// Reset clears all values without closing the dialog.
func (f *Form) Reset() {
	f.Values = FormValues{}
}

// Close hides the dialog and keeps its values.
func (f *Form) Close() {
	f.Open = false
}

// Clear resets values and closes the dialog, as a successful submit does.
func (f *Form) Clear() {
	f.Values = FormValues{}
	f.Open = false
	f.Mode = FormModeCreate
	f.EditingID = ""
}

// Record builds the record the form would submit under id.
func (f Form) Record(id string) Record {
	return Record{
		ID:          strings.TrimSpace(id),
		FullName:    f.Values.FullName,
		Address:     f.Values.Address,
		PhoneNumber: f.Values.PhoneNumber,
		Email:       f.Values.Email,
	}
}

// ABOUTME: Flattened editable form state and completion/skip payload shaping
// ABOUTME: Splits nested references into display-only name plus bare id fields

package lead

import (
	"errors"
	"fmt"
	"strings"
)

// Validation and edit errors, caught before any network call.
var (
	ErrValidation   = errors.New("validation failed")
	ErrReadOnly     = errors.New("field is read-only")
	ErrUnknownField = errors.New("unknown field")
)

// FieldOrder lists the form fields in presentation order.
var FieldOrder = []string{
	"name",
	"designation",
	"companyName",
	"location",
	"email",
	"mobile",
	"industryName",
	"remarks",
	"division",
	"productLine",
	"turnOver",
	"employeeStrength",
}

// Flat is the editable form state for one raw lead. Company and Industry
// hold only bare identifiers after flattening; CompanyName and IndustryName
// are display values that are stripped before any submission. CompanyName
// is additionally read-only: it changes only by being assigned a different
// lead.
type Flat struct {
	ID               string
	Name             string
	Designation      string
	Location         string
	Email            string
	Mobile           StringList
	Remarks          string
	Division         string
	ProductLine      string
	TurnOver         string
	EmployeeStrength string
	Company          string
	CompanyName      string
	Industry         string
	IndustryName     string
}

// Flatten converts a server-shaped raw lead into editable form state. A
// populated company/industry object becomes a display name plus its bare
// id; a reference that was already an id string passes through with no
// display name set.
func Flatten(raw *RawLead) *Flat {
	f := &Flat{
		ID:               raw.ID,
		Name:             raw.Name,
		Designation:      raw.Designation,
		Location:         raw.Location,
		Email:            raw.Email,
		Mobile:           raw.Mobile,
		Remarks:          raw.Remarks,
		Division:         raw.Division,
		ProductLine:      raw.ProductLine,
		TurnOver:         raw.TurnOver,
		EmployeeStrength: raw.EmployeeStrength,
		Company:          raw.Company.ID,
		Industry:         raw.Industry.ID,
	}
	if raw.Company.IsObject() {
		f.CompanyName = raw.Company.Name
	}
	if raw.Industry.IsObject() {
		f.IndustryName = raw.Industry.Name
	}
	return f
}

// Get returns the display value for a form field.
func (f *Flat) Get(field string) string {
	switch field {
	case "name":
		return f.Name
	case "designation":
		return f.Designation
	case "companyName":
		return f.CompanyName
	case "location":
		return f.Location
	case "email":
		return f.Email
	case "mobile":
		return strings.Join(f.Mobile, ", ")
	case "industryName":
		return f.IndustryName
	case "remarks":
		return f.Remarks
	case "division":
		return f.Division
	case "productLine":
		return f.ProductLine
	case "turnOver":
		return f.TurnOver
	case "employeeStrength":
		return f.EmployeeStrength
	default:
		return ""
	}
}

// Set updates a single form field. companyName is rejected as read-only;
// setting mobile replaces the whole list with the one value given.
func (f *Flat) Set(field, value string) error {
	switch field {
	case "name":
		f.Name = value
	case "designation":
		f.Designation = value
	case "companyName":
		return fmt.Errorf("%w: companyName", ErrReadOnly)
	case "location":
		f.Location = value
	case "email":
		f.Email = value
	case "mobile":
		f.Mobile = StringList{value}
	case "industryName":
		f.IndustryName = value
	case "remarks":
		f.Remarks = value
	case "division":
		f.Division = value
	case "productLine":
		f.ProductLine = value
	case "turnOver":
		f.TurnOver = value
	case "employeeStrength":
		f.EmployeeStrength = value
	default:
		return fmt.Errorf("%w: %s", ErrUnknownField, field)
	}
	return nil
}

// Submission is the wire shape for completing or skipping a lead. The
// mobile list collapses to its first element; the workflow supports
// single-mobile completion only. Display-only name fields are absent by
// construction.
type Submission struct {
	Name             string `json:"name"`
	Designation      string `json:"designation"`
	Location         string `json:"location"`
	Email            string `json:"email"`
	Mobile           string `json:"mobile"`
	Remarks          string `json:"remarks"`
	Division         string `json:"division"`
	ProductLine      string `json:"productLine"`
	TurnOver         string `json:"turnOver"`
	EmployeeStrength string `json:"employeeStrength"`
	Company          string `json:"company,omitempty"`
	Industry         string `json:"industry,omitempty"`
	IsComplete       bool   `json:"isComplete,omitempty"`
}

// submission shapes the shared part of the complete and skip payloads.
func (f *Flat) submission() *Submission {
	return &Submission{
		Name:             f.Name,
		Designation:      f.Designation,
		Location:         f.Location,
		Email:            f.Email,
		Mobile:           f.Mobile.First(),
		Remarks:          f.Remarks,
		Division:         f.Division,
		ProductLine:      f.ProductLine,
		TurnOver:         f.TurnOver,
		EmployeeStrength: f.EmployeeStrength,
		Company:          f.Company,
		Industry:         f.Industry,
	}
}

// CompletePayload validates and shapes the form for the complete endpoint.
// Name and mobile are required; failure is reported before any network
// call is attempted.
func (f *Flat) CompletePayload() (*Submission, error) {
	if f.Name == "" || f.Mobile.First() == "" {
		return nil, fmt.Errorf("%w: name and mobile are required", ErrValidation)
	}
	sub := f.submission()
	sub.IsComplete = true
	return sub, nil
}

// SkipPayload shapes the form for the skip endpoint. Same shaping as a
// completion but without forcing the completion flag, and no required
// fields: a skipped lead may still be blank.
func (f *Flat) SkipPayload() *Submission {
	return f.submission()
}

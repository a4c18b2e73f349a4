// ABOUTME: Raw-lead model as shaped by the backend, with tolerant decoding
// ABOUTME: Nested company/industry references arrive as objects, ids, or null

// Package lead models raw recruitment leads and the flattening that turns
// the backend's nested references into editable form state.
package lead

import (
	"encoding/json"
	"fmt"
)

// Ref is a nested relational reference. The backend serves it as a
// populated object ({_id, name} or {_id, CompanyName}), as a bare id
// string, or not at all.
type Ref struct {
	ID   string
	Name string
}

// refObject covers both reference shapes the backend emits. Companies carry
// their display name in CompanyName, industries in name.
type refObject struct {
	ID          string `json:"_id"`
	Name        string `json:"name"`
	CompanyName string `json:"CompanyName"`
}

// UnmarshalJSON accepts an id string, a populated object, or null.
func (r *Ref) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*r = Ref{}
		return nil
	}

	var id string
	if err := json.Unmarshal(data, &id); err == nil {
		*r = Ref{ID: id}
		return nil
	}

	var obj refObject
	if err := json.Unmarshal(data, &obj); err != nil {
		return fmt.Errorf("decoding reference: %w", err)
	}
	name := obj.Name
	if name == "" {
		name = obj.CompanyName
	}
	*r = Ref{ID: obj.ID, Name: name}
	return nil
}

// MarshalJSON always emits the bare id; display names never travel back to
// the server.
func (r Ref) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.ID)
}

// IsObject reports whether the reference arrived populated with a display
// name rather than as a bare id.
func (r Ref) IsObject() bool {
	return r.Name != ""
}

// StringList tolerates a scalar where a list is expected. Older lead rows
// store mobile as a single string, newer ones as an array.
type StringList []string

func (l *StringList) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*l = nil
		return nil
	}

	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		*l = StringList{single}
		return nil
	}

	var many []string
	if err := json.Unmarshal(data, &many); err != nil {
		return fmt.Errorf("decoding string list: %w", err)
	}
	*l = many
	return nil
}

// First returns the first element, or "" for an empty list.
func (l StringList) First() string {
	if len(l) == 0 {
		return ""
	}
	return l[0]
}

// RawLead is an unprocessed, auto-assigned lead awaiting operator
// completion or skip.
type RawLead struct {
	ID               string     `json:"_id"`
	Name             string     `json:"name"`
	Designation      string     `json:"designation"`
	Location         string     `json:"location"`
	Email            string     `json:"email"`
	Mobile           StringList `json:"mobile"`
	Remarks          string     `json:"remarks"`
	Division         string     `json:"division"`
	ProductLine      string     `json:"productLine"`
	TurnOver         string     `json:"turnOver"`
	EmployeeStrength string     `json:"employeeStrength"`
	Company          Ref        `json:"company"`
	Industry         Ref        `json:"industry"`
	AssignedTo       Ref        `json:"assignedTo"`
	IsComplete       bool       `json:"isComplete"`
}

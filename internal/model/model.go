package model

import "time"

// Reminder is a payment that somebody still owes.
type Reminder struct {
	Id          int64     `json:"id"          db:"id"`
	PersonName  string    `json:"personName"  db:"person_name"`
	PhoneNumber string    `json:"phoneNumber" db:"phone_number"`
	Amount      int64     `json:"amount"      db:"amount"`
	DueDate     time.Time `json:"dueDate"     db:"due_date"`
	IsPaid      bool      `json:"isPaid"      db:"is_paid"`
}

// ReminderInput holds the fields a caller may submit when creating or
// updating a reminder. A nil pointer means the field was absent from the
// request body, which is not the same as a field submitted with a zero
// value.
type ReminderInput struct {
	PersonName  *string    `json:"personName"`
	PhoneNumber *string    `json:"phoneNumber"`
	Amount      *int64     `json:"amount"`
	DueDate     *time.Time `json:"dueDate"`
	IsPaid      *bool      `json:"isPaid"`
}

// ValidationError reports the first submitted field that failed validation.
type ValidationError struct {
	Message string `json:"message"`
	Field   string `json:"field"`
}

func (e *ValidationError) Error() string {
	return e.Message
}

// ValidateCreate checks that all fields required for a new reminder are
// present and within range. Validation stops at the first failing field.
func (in *ReminderInput) ValidateCreate() *ValidationError {
	if in.PersonName == nil || *in.PersonName == "" {
		return &ValidationError{Message: "personName must not be empty", Field: "personName"}
	}
	if in.PhoneNumber == nil || *in.PhoneNumber == "" {
		return &ValidationError{Message: "phoneNumber must not be empty", Field: "phoneNumber"}
	}
	if in.Amount == nil || *in.Amount < 1 {
		return &ValidationError{Message: "amount must be at least 1", Field: "amount"}
	}
	if in.DueDate == nil {
		return &ValidationError{Message: "dueDate is required", Field: "dueDate"}
	}
	return nil
}

// ValidateUpdate checks only the fields that are present. A present field
// must satisfy the same rule as on creation.
func (in *ReminderInput) ValidateUpdate() *ValidationError {
	if in.PersonName != nil && *in.PersonName == "" {
		return &ValidationError{Message: "personName must not be empty", Field: "personName"}
	}
	if in.PhoneNumber != nil && *in.PhoneNumber == "" {
		return &ValidationError{Message: "phoneNumber must not be empty", Field: "phoneNumber"}
	}
	if in.Amount != nil && *in.Amount < 1 {
		return &ValidationError{Message: "amount must be at least 1", Field: "amount"}
	}
	return nil
}

// Empty returns true if none of the fields were submitted.
func (in *ReminderInput) Empty() bool {
	return in.PersonName == nil &&
		in.PhoneNumber == nil &&
		in.Amount == nil &&
		in.DueDate == nil &&
		in.IsPaid == nil
}

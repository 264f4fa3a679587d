// Package submission gates and assembles the requisition creation request.
package submission

import (
	"errors"
	"fmt"
	"sync"

	"requisiciones_api/internal/domain/entities"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

var (
	ErrMissingGeneralData = errors.New("general data is required")
	ErrNoLineItems        = errors.New("at least one line item is required")
	ErrEmptyJustification = errors.New("justification is required")
)

// ValidationError carries the first failed requirement of a draft.
type ValidationError struct {
	Field  string
	Reason error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid draft: %s: %v", e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error { return e.Reason }

type rule struct {
	field  string
	tag    string
	reason error
	value  func(d *entities.RequisitionDraft) any
}

// Checked in this order; the first failure wins.
var rules = []rule{
	{
		field:  "general_data",
		tag:    "required",
		reason: ErrMissingGeneralData,
		value:  func(d *entities.RequisitionDraft) any { return d.GeneralData },
	},
	{
		field:  "line_items",
		tag:    "required,min=1",
		reason: ErrNoLineItems,
		value:  func(d *entities.RequisitionDraft) any { return d.LineItems },
	},
	{
		field:  "justification",
		tag:    "notblank",
		reason: ErrEmptyJustification,
		value:  func(d *entities.RequisitionDraft) any { return d.Justification },
	},
}

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func engine() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		_ = validate.RegisterValidation("notblank", validators.NotBlank)
	})
	return validate
}

// Validate returns nil when the draft may be submitted, otherwise a *ValidationError.
func Validate(d *entities.RequisitionDraft) error {
	if d == nil {
		return &ValidationError{Field: "general_data", Reason: ErrMissingGeneralData}
	}
	v := engine()
	for _, r := range rules {
		if err := v.Var(r.value(d), r.tag); err != nil {
			var verrs validator.ValidationErrors
			if !errors.As(err, &verrs) {
				return fmt.Errorf("validate %s: %w", r.field, err)
			}
			return &ValidationError{Field: r.field, Reason: r.reason}
		}
	}
	return nil
}

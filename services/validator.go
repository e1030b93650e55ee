package services

import (
	goerrors "errors"
	"item-lab/errors"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

const (
	ReasonEmptyText   = "empty text"
	ReasonTextTooLong = "text too long"
)

// AddItemRequest carries the rules of AddItem. Tags are checked in order:
// blank text is reported before length, and max counts characters of the raw text.
type AddItemRequest struct {
	Text string `validate:"notblank,max=100"`
}

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	return v
}

// ValidateAddItem returns a *errors.ValidationError naming the first broken rule.
func ValidateAddItem(req AddItemRequest) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !goerrors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return &errors.ValidationError{Field: "text", Reason: err.Error()}
	}
	switch fieldErrs[0].Tag() {
	case "notblank":
		return &errors.ValidationError{Field: "text", Reason: ReasonEmptyText}
	case "max":
		return &errors.ValidationError{Field: "text", Reason: ReasonTextTooLong}
	default:
		return &errors.ValidationError{Field: "text", Reason: fieldErrs[0].Error()}
	}
}

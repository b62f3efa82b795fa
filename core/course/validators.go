package course

import (
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	"github.com/trezcool/courseplan/core"
)

var (
	weekdayTag  = "weekday"
	weekdayText = "{0} must be a weekday between 1 (Mon) and 5 (Fri)"

	sessionEndTag  = "gtfield"
	sessionEndText = "{0} must be after the start time"
)

// InitValidators registers the catalog validations.
func InitValidators(validate *validator.Validate, translator ut.Translator) {
	_ = validate.RegisterValidation(weekdayTag, weekdayValidation)
	core.RegisterCustomTranslation(validate, translator, weekdayTag, weekdayText)
	core.RegisterCustomTranslation(validate, translator, sessionEndTag, sessionEndText, true /* override */)
}

// weekdayValidation only allows Monday to Friday.
func weekdayValidation(fl validator.FieldLevel) bool {
	day := fl.Field().Int()
	return day >= Monday && day <= Friday
}

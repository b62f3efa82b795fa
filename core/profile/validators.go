package profile

import (
	"fmt"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	"github.com/trezcool/courseplan/core"
	"github.com/trezcool/courseplan/core/course"
)

var (
	uniqueCodeTag  = "uniquecode"
	uniqueCodeText = "{0} is a duplicate course code"

	knownCourseTag  = "knowncourse"
	knownCourseText = "{0} is not in the catalog"

	positionTag  = "position"
	positionText = "{0} must be a positive waitlist position"

	eventCourseTag  = "eventcourse"
	eventCourseText = "{0} must name a catalog course for seat openings"

	eventMessageTag  = "eventmessage"
	eventMessageText = "{0} is required for reminders"
)

// InitValidators registers the profile validations.
// course.InitValidators must be called as well, for the catalog entries.
func InitValidators(validate *validator.Validate, translator ut.Translator) {
	validate.RegisterStructValidation(profileStructValidation, Profile{})
	validate.RegisterStructValidation(eventStructValidation, Event{})

	core.RegisterCustomTranslation(validate, translator, uniqueCodeTag, uniqueCodeText)
	core.RegisterCustomTranslation(validate, translator, knownCourseTag, knownCourseText)
	core.RegisterCustomTranslation(validate, translator, positionTag, positionText)
	core.RegisterCustomTranslation(validate, translator, eventCourseTag, eventCourseText)
	core.RegisterCustomTranslation(validate, translator, eventMessageTag, eventMessageText)
}

// Validate checks the profile, translating failures into a core.ValidationError.
func (p Profile) Validate(validate *validator.Validate, translator ut.Translator) error {
	if err := validate.Struct(p); err != nil {
		return core.TranslateValidationErrors(err, translator)
	}
	return nil
}

// profileStructValidation checks the references between the catalog and the plan.
func profileStructValidation(sl validator.StructLevel) {
	p, ok := sl.Current().Interface().(Profile)
	if !ok {
		return
	}

	catalog := make(course.CodeSet, len(p.Courses))
	for i, c := range p.Courses {
		if catalog.Has(c.Code) {
			sl.ReportError(c.Code, fmt.Sprintf("courses[%d].code", i), "Code", uniqueCodeTag, "")
		}
		catalog[c.Code] = struct{}{}
	}

	checkKnown := func(name string, codes []course.Code) {
		for i, code := range codes {
			if !catalog.Has(code) {
				sl.ReportError(code, fmt.Sprintf("%s[%d]", name, i), name, knownCourseTag, "")
			}
		}
	}
	checkKnown("requirements", p.Requirements)
	checkKnown("enrolled", p.Enrolled)

	enrolled := make(course.CodeSet, len(p.Enrolled))
	for i, code := range p.Enrolled {
		if enrolled.Has(code) {
			sl.ReportError(code, fmt.Sprintf("enrolled[%d]", i), "Enrolled", uniqueCodeTag, "")
		}
		enrolled[code] = struct{}{}
	}

	for _, code := range course.NewCodeSetFromMap(p.Waitlist).Sorted() {
		name := fmt.Sprintf("waitlist[%s]", code)
		switch {
		case !catalog.Has(code):
			sl.ReportError(code, name, "Waitlist", knownCourseTag, "")
		case p.Waitlist[code] <= 0:
			sl.ReportError(p.Waitlist[code], name, "Waitlist", positionTag, "")
		}
	}

	for i, ev := range p.Events {
		if ev.Kind == EventSeatOpening && !catalog.Has(ev.Course) {
			sl.ReportError(ev.Course, fmt.Sprintf("events[%d].course", i), "Course", eventCourseTag, "")
		}
	}
}

// eventStructValidation requires a message for reminders.
func eventStructValidation(sl validator.StructLevel) {
	ev, ok := sl.Current().Interface().(Event)
	if !ok {
		return
	}
	if ev.Kind == EventReminder && core.CleanString(ev.Message) == "" {
		sl.ReportError(ev.Message, "message", "Message", eventMessageTag, "")
	}
}

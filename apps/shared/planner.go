// Package shared wires the planner pieces used by every app.
package shared

import (
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"

	"github.com/trezcool/courseplan/core"
	"github.com/trezcool/courseplan/core/course"
	"github.com/trezcool/courseplan/core/plan"
	"github.com/trezcool/courseplan/core/profile"
	inmemdb "github.com/trezcool/courseplan/storage/inmem"
)

// NewValidator returns a validator with every app validation registered.
func NewValidator() (*validator.Validate, ut.Translator) {
	validate := validator.New()
	translator := core.NewTranslator()
	core.InitValidators(validate, translator)
	course.InitValidators(validate, translator)
	profile.InitValidators(validate, translator)
	return validate, translator
}

type Planner struct {
	Profile profile.Profile
	Repo    course.Repository
	Ledger  *plan.Ledger
}

// OpenPlanner loads and validates the profile at `path`, seeds an in-memory catalog with it,
// and starts a ledger on top, emitting its events to `notifier`.
func OpenPlanner(
	path string,
	validate *validator.Validate,
	translator ut.Translator,
	notifier core.Notifier,
) (*Planner, error) {
	prof, err := profile.Load(path)
	if err != nil {
		return nil, err
	}
	return NewPlanner(prof, validate, translator, notifier)
}

// NewPlanner is OpenPlanner for an already loaded profile.
func NewPlanner(
	prof profile.Profile,
	validate *validator.Validate,
	translator ut.Translator,
	notifier core.Notifier,
) (*Planner, error) {
	if err := prof.Validate(validate, translator); err != nil {
		return nil, err
	}

	repo := inmemdb.NewCourseRepository(inmemdb.Open())
	if err := prof.Seed(repo); err != nil {
		return nil, errors.Wrap(err, "seeding catalog")
	}

	ledger, err := plan.NewLedger(repo, notifier, prof.State())
	if err != nil {
		return nil, errors.Wrap(err, "opening ledger")
	}
	return &Planner{Profile: prof, Repo: repo, Ledger: ledger}, nil
}

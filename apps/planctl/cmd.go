package main

import (
	"flag"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"

	"github.com/trezcool/courseplan/apps/shared"
	"github.com/trezcool/courseplan/core"
	"github.com/trezcool/courseplan/core/conflict"
	"github.com/trezcool/courseplan/core/course"
	"github.com/trezcool/courseplan/core/plan"
	"github.com/trezcool/courseplan/core/suggest"
	notifysvc "github.com/trezcool/courseplan/services/notify"
)

var errHelp = errors.New("help provided")

const (
	ansiRed   = "\033[31m"
	ansiReset = "\033[0m"
)

type commandLine struct {
	out         io.Writer
	color       bool
	profilePath string
	validate    *validator.Validate
	translator  ut.Translator
}

func (cli *commandLine) printUsage() {
	fmt.Fprintln(cli.out, "Usage:")
	fmt.Fprintln(cli.out, "  validate [-profile FILE]                 - check the profile")
	fmt.Fprintln(cli.out, "  show [-profile FILE] [-search TEXT]      - print the plan")
	fmt.Fprintln(cli.out, "  suggest [-profile FILE]                  - print the suggestions")
	fmt.Fprintln(cli.out, "  add -code CODE [-profile FILE]           - add a course, or join its waitlist")
	fmt.Fprintln(cli.out, "  drop -code CODE [-profile FILE]          - drop a course")
	fmt.Fprintln(cli.out, "  switch -code CODE -alt N [-profile FILE] - switch a course to its N-th alternative")
	fmt.Fprintln(cli.out, "  open -code CODE [-profile FILE]          - resolve a seat opening")
}

func (cli *commandLine) run(args []string) error {
	if len(args) < 2 {
		cli.printUsage()
		return errHelp
	}

	cmd := flag.NewFlagSet(args[1], flag.ContinueOnError)
	cmd.SetOutput(cli.out)
	profilePath := cmd.String("profile", cli.profilePath, "The profile (catalog & plan) YAML file.")
	code := cmd.String("code", "", "The course code.")
	alt := cmd.Int("alt", -1, "The alternative index, starting at 0.")
	search := cmd.String("search", "", "Only show the courses matching this text.")

	switch args[1] {
	case "validate", "show", "suggest", "add", "drop", "switch", "open":
		if err := cmd.Parse(args[2:]); err != nil {
			if err == flag.ErrHelp {
				return errHelp
			}
			return err
		}
	default:
		cli.printUsage()
		return errHelp
	}

	needsCode := args[1] == "add" || args[1] == "drop" || args[1] == "switch" || args[1] == "open"
	if needsCode && course.NormalizeCode(*code) == "" {
		cmd.Usage()
		return errHelp
	}
	if args[1] == "switch" && *alt < 0 {
		cmd.Usage()
		return errHelp
	}

	notifications := notifysvc.NewLog()
	planner, err := shared.OpenPlanner(
		*profilePath,
		cli.validate,
		cli.translator,
		notifysvc.Fanout{notifications, &consoleToaster{out: cli.out}},
	)
	if err != nil {
		return errors.Wrap(err, "loading profile")
	}

	switch args[1] {
	case "validate":
		return cli.printValidated(planner)
	case "show":
		return cli.printPlan(planner.Ledger, *search)
	case "suggest":
		return cli.printSuggestions(planner)
	}

	if err = cli.apply(planner.Ledger, args[1], *code, *alt); err != nil {
		return cli.withHint(planner.Ledger, *code, err)
	}
	cli.printNotifications(notifications)
	if err = cli.printPlan(planner.Ledger, ""); err != nil {
		return err
	}
	return cli.printSuggestions(planner)
}

// apply runs a single ledger mutation.
func (cli *commandLine) apply(ledger *plan.Ledger, cmd, code string, alt int) error {
	switch cmd {
	case "add":
		_, err := ledger.AddCourse(code)
		return err
	case "drop":
		_, err := ledger.DropCourse(code)
		return err
	case "switch":
		return ledger.SwitchSession(code, alt)
	case "open":
		ledger.ResolveSeatOpening(code)
	}
	return nil
}

// withHint appends a "did you mean" hint to unknown course errors.
func (cli *commandLine) withHint(ledger *plan.Ledger, code string, err error) error {
	if errors.Cause(err) != course.ErrUnknownCourse {
		return err
	}
	snap, serr := ledger.Snapshot()
	if serr != nil {
		return err
	}
	if match, ok := course.Closest(snap.Catalog, code); ok {
		return errors.Wrapf(err, "%s (did you mean %s?)", course.NormalizeCode(code), match)
	}
	return errors.Wrap(err, string(course.NormalizeCode(code)))
}

func (cli *commandLine) printValidated(planner *shared.Planner) error {
	snap, err := planner.Ledger.Snapshot()
	if err != nil {
		return err
	}
	fmt.Fprintf(cli.out, "Profile OK: %d courses, %d enrolled, %d waitlisted, %d events\n",
		len(snap.Catalog), len(snap.Enrolled), len(snap.Waitlist), len(planner.Profile.Events))
	for _, w := range snap.Warnings() {
		fmt.Fprintf(cli.out, "warning: %s needs %s\n", w.Course, course.JoinCodes(w.Missing))
	}
	return nil
}

func (cli *commandLine) printPlan(ledger *plan.Ledger, search string) error {
	snap, err := ledger.Snapshot()
	if err != nil {
		return err
	}
	conflicts := conflict.Detect(snap.EnrolledCourses())

	fmt.Fprintf(cli.out, "Plan: %d courses • %d credits\n", len(snap.Enrolled), snap.Credits())
	tw := tabwriter.NewWriter(cli.out, 0, 4, 2, ' ', 0)
	for _, c := range snap.Search(search) {
		var flags []string
		if conflicts.Has(c.Code) {
			flags = append(flags, cli.red("conflict"))
		}
		if pos := snap.Position(c.Code); pos > 0 {
			flags = append(flags, fmt.Sprintf("waitlist #%d", pos))
		}
		if missing := c.MissingPrereqs(snap.Completed); len(missing) > 0 {
			flags = append(flags, "needs "+course.JoinCodes(missing))
		}
		fmt.Fprintf(tw, "  %s\t%s (%d cr)\t%s\t%s\n", c.Code, c.Title, c.Credits, c.SessionsText(), strings.Join(flags, ", "))
	}
	if err = tw.Flush(); err != nil {
		return err
	}

	if len(snap.Waitlist) > 0 {
		fmt.Fprintln(cli.out, "Waitlist:")
		for _, code := range course.NewCodeSetFromMap(snap.Waitlist).Sorted() {
			fmt.Fprintf(cli.out, "  %s #%d\n", code, snap.Waitlist[code])
		}
	}
	if conflicts.Len() > 0 {
		fmt.Fprintln(cli.out, cli.red("Conflicts: "+course.JoinCodes(conflicts.Codes())))
	} else {
		fmt.Fprintln(cli.out, "Conflicts: none")
	}
	return nil
}

func (cli *commandLine) printSuggestions(planner *shared.Planner) error {
	snap, err := planner.Ledger.Snapshot()
	if err != nil {
		return err
	}
	fmt.Fprintln(cli.out, "Suggestions:")
	for i, it := range suggest.Generate(snap, planner.Profile.Requirements, nil) {
		fmt.Fprintf(cli.out, "  %d. %s\n     %s\n", i+1, it.Title, it.Detail)
		if len(it.Missing) > 0 {
			fmt.Fprintf(cli.out, "     Prerequisite needed: %s\n", course.JoinCodes(it.Missing))
		}
	}
	return nil
}

func (cli *commandLine) printNotifications(notifications *notifysvc.Log) {
	entries := notifications.Entries()
	for i := len(entries) - 1; i >= 0; i-- {
		fmt.Fprintf(cli.out, "notification: %s\n", entries[i].Message)
	}
}

func (cli *commandLine) red(s string) string {
	if !cli.color {
		return s
	}
	return ansiRed + s + ansiReset
}

// consoleToaster prints toasts; notifications are printed from the log afterwards.
type consoleToaster struct {
	out io.Writer
}

var _ core.Notifier = (*consoleToaster)(nil)

func (t *consoleToaster) Toast(msg string) { fmt.Fprintf(t.out, "» %s\n", msg) }
func (t *consoleToaster) Notify(string)    {}

// describeError flattens validation errors for the terminal.
func describeError(err error) string {
	var vErr *core.ValidationError
	if errors.As(err, &vErr) && len(vErr.Fields) > 0 {
		lines := []string{err.Error()}
		for _, f := range vErr.Fields {
			lines = append(lines, fmt.Sprintf("  %s: %s", f.Field, f.Error))
		}
		return strings.Join(lines, "\n")
	}
	return err.Error()
}

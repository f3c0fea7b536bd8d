package cli

import (
	"errors"
	"log/slog"
	"strconv"
	"strings"

	"github.com/randalmurphal/charkit/editor"
	"github.com/randalmurphal/charkit/tokens"
)

// fieldResult is one field's line in a submit report.
type fieldResult struct {
	ID          string `json:"id"`
	Weight      int    `json:"weight"`
	Display     int    `json:"display"`
	MaxWeight   int    `json:"max_weight"`
	Limit       int    `json:"limit"`
	Overflowing bool   `json:"overflowing"`
	Kept        string `json:"kept"`
	Exceeded    string `json:"exceeded,omitempty"`
	Message     string `json:"message,omitempty"`
}

// submitReport is the output of check and form.
type submitReport struct {
	Submitted bool          `json:"submitted"`
	Fields    []fieldResult `json:"fields"`
}

// submit recounts every field of page, attempts a submit and reports the
// result. message reads back the validation message of a field name.
// A blocked submit returns the report and an error wrapping ErrBlocked.
func (a *app) submit(page editor.Page, fields []editor.FieldDescriptor, message func(name string) string) (submitReport, error) {
	ctrl, err := editor.New(page, fields, a.cfg.ControllerOptions(a.logger)...)
	if err != nil {
		return submitReport{}, WrapError(err, "Invalid fields", "Check the field ids and max_weight values")
	}

	results := make([]fieldResult, 0, len(fields))
	for _, f := range fields {
		if err := ctrl.HandleInput(f.ID, false); err != nil {
			return submitReport{}, err
		}
		st, _ := ctrl.State(f.ID)
		r := fieldResult{
			ID:          f.ID,
			Weight:      st.TotalWeight,
			Display:     st.DisplayCount,
			MaxWeight:   f.MaxWeight,
			Overflowing: st.Overflowing,
			Kept:        st.Kept,
			Exceeded:    st.Exceeded,
		}
		if f.MaxWeight > 0 {
			r.Limit = tokens.NewBudget(f.MaxWeight).DisplayLimit()
		}
		results = append(results, r)
	}

	outcome, err := ctrl.Submit()
	for i, f := range fields {
		results[i].Message = message(f.MessageKey())
	}
	report := submitReport{Submitted: outcome.Submitted, Fields: results}

	if err != nil {
		if !errors.Is(err, editor.ErrOverflow) {
			return report, err
		}
		failing := outcome.Validation.Failing()
		a.logger.Info("submit blocked", slog.Any("fields", failing))
		return report, &CLIError{
			Message:    "Submission blocked",
			Suggestion: "Shorten " + strings.Join(failing, ", "),
			Cause:      errors.Join(ErrBlocked, err),
		}
	}
	return report, nil
}

func (a *app) printReport(report submitReport) {
	rows := make([][]string, 0, len(report.Fields))
	for _, f := range report.Fields {
		rows = append(rows, []string{
			f.ID,
			strconv.Itoa(f.Display) + "/" + strconv.Itoa(f.Limit),
			strconv.Itoa(f.Weight),
			strconv.Itoa(f.MaxWeight),
			status(f.Overflowing),
			f.Message,
		})
	}
	a.out.Table([]string{"FIELD", "COUNT", "WEIGHT", "MAX", "STATUS", "MESSAGE"}, rows)

	if report.Submitted {
		a.out.Success("submitted %d fields", len(report.Fields))
	}
}

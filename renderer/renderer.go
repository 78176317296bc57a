// Package renderer formats evaluations, quotes and forms as the plain text
// shown to the user, and schedules as markdown.
package renderer

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"text/template"

	"github.com/etnz/invest"
)

//go:embed *.tmpl
var templates embed.FS

var funcs = template.FuncMap{
	"inc": func(i int) int { return i + 1 },
}

// evaluation is the data of evaluation.tmpl.
type evaluation struct {
	NPV        float64
	IRR        invest.Percent
	IRRFound   bool
	Low, High  invest.Percent // search bracket
	Accept     bool
	Attractive bool
}

// Evaluation renders the result message of an evaluation: the NPV, the IRR,
// then the recommendation lines.
func Evaluation(e invest.Evaluation) string {
	return renderTemplate("evaluation.tmpl", evaluation{
		NPV:        e.NPV,
		IRR:        invest.PercentOf(e.IRR),
		IRRFound:   e.IRRFound,
		Low:        invest.PercentOf(invest.DefaultBisection.Low),
		High:       invest.PercentOf(invest.DefaultBisection.High),
		Accept:     e.Accept(),
		Attractive: e.Attractive(),
	})
}

// Schedule renders the discounted cash flow schedule of a request as a
// markdown table, followed by its discounted payback.
func Schedule(r invest.Request) string {
	periods := invest.Schedule(r.CashFlows(), r.DiscountRatePercent.Rate())
	year, ok := invest.Payback(periods)
	return renderTemplate("schedule.tmpl", struct {
		Periods      []invest.Period
		Payback      int
		PaybackFound bool
	}{periods, year, ok})
}

// Quote renders the latest close message.
func Quote(q invest.Quote) string { return renderTemplate("quote.tmpl", q) }

// Form renders the current fields of a form.
func Form(f invest.Form) string { return renderTemplate("form.tmpl", f) }

// renderTemplate executes a template file on data. Errors are rendered in
// place of the output.
func renderTemplate(file string, data any) string {
	content, err := fs.ReadFile(templates, file)
	if err != nil {
		return fmt.Sprintf("error reading template %q: %v", file, err)
	}
	tmpl, err := template.New(file).Funcs(funcs).Parse(string(content))
	if err != nil {
		return fmt.Sprintf("error parsing template %q: %v", file, err)
	}
	var b strings.Builder
	if err := tmpl.Execute(&b, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", file, err)
	}
	return b.String()
}

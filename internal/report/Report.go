// Package report renders scan results for the command line.
package report

import "github.com/muonsoft/runscan/internal/scanner"

type Report struct {
	Strategy string `json:"strategy" yaml:"strategy"`
	Input    string `json:"input" yaml:"input"`
	Length   int    `json:"length" yaml:"length"`
	Span     string `json:"span" yaml:"span"`
	Start    int    `json:"start" yaml:"start"`
	End      int    `json:"end" yaml:"end"`
	Runs     []Run  `json:"runs,omitempty" yaml:"runs,omitempty"`
}

type Run struct {
	Span  string `json:"span" yaml:"span"`
	Start int    `json:"start" yaml:"start"`
	End   int    `json:"end" yaml:"end"`
}

func New(strategy string, input string, result scanner.Result) Report {
	return Report{
		Strategy: strategy,
		Input:    input,
		Length:   result.Length,
		Span:     result.Span(input),
		Start:    result.Start,
		End:      result.End,
	}
}

// WithRuns attaches every maximal-length window of the input.
func (report Report) WithRuns(runs []scanner.Result) Report {
	report.Runs = make([]Run, 0, len(runs))
	for _, run := range runs {
		report.Runs = append(report.Runs, Run{Span: run.Span(report.Input), Start: run.Start, End: run.End})
	}

	return report
}

func (report Report) toMap() map[string]interface{} {
	m := map[string]interface{}{
		"strategy": report.Strategy,
		"input":    report.Input,
		"length":   report.Length,
		"span":     report.Span,
		"start":    report.Start,
		"end":      report.End,
	}
	if len(report.Runs) > 0 {
		runs := make([]interface{}, 0, len(report.Runs))
		for _, run := range report.Runs {
			runs = append(runs, map[string]interface{}{"span": run.Span, "start": run.Start, "end": run.End})
		}
		m["runs"] = map[string]interface{}{"run": runs}
	}

	return m
}

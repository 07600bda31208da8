package report

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/clbanning/mxj"
	"github.com/fatih/color"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

type textEncoder struct {
	highlight *color.Color
}

func (encoder *textEncoder) Encode(report Report) ([]byte, error) {
	var builder strings.Builder

	fmt.Fprintf(&builder, "strategy: %s\n", report.Strategy)
	fmt.Fprintf(&builder, "length:   %d\n", report.Length)
	fmt.Fprintf(&builder, "span:     %q [%d, %d)\n", report.Span, report.Start, report.End)
	fmt.Fprintf(&builder, "input:    %s\n", encoder.highlighted(report.Input, report.Start, report.End))
	for _, run := range report.Runs {
		fmt.Fprintf(&builder, "run:      %q [%d, %d)\n", run.Span, run.Start, run.End)
	}

	return []byte(builder.String()), nil
}

// highlighted quotes the input like %q and colors the span inside the quotes.
func (encoder *textEncoder) highlighted(input string, start, end int) string {
	return `"` + unquoted(input[:start]) + encoder.highlight.Sprint(unquoted(input[start:end])) + unquoted(input[end:]) + `"`
}

func unquoted(s string) string {
	quoted := fmt.Sprintf("%q", s)
	return quoted[1 : len(quoted)-1]
}

type jsonEncoder struct{}

func (encoder *jsonEncoder) Encode(report Report) ([]byte, error) {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return nil, errors.Wrap(err, "[jsonEncoder] failed to encode report")
	}

	return append(data, '\n'), nil
}

type xmlEncoder struct{}

func (encoder *xmlEncoder) Encode(report Report) ([]byte, error) {
	data, err := mxj.Map(report.toMap()).XmlIndent("", "  ", "report")
	if err != nil {
		return nil, errors.Wrap(err, "[xmlEncoder] failed to encode report")
	}

	return append(data, '\n'), nil
}

type yamlEncoder struct{}

func (encoder *yamlEncoder) Encode(report Report) ([]byte, error) {
	data, err := yaml.Marshal(report)
	if err != nil {
		return nil, errors.Wrap(err, "[yamlEncoder] failed to encode report")
	}

	return data, nil
}

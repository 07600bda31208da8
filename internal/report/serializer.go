package report

import (
	"fmt"
	"regexp"

	"github.com/fatih/color"
	"github.com/muonsoft/runscan/internal/errors"
)

const (
	FormatText = "text"
	FormatJSON = "json"
	FormatXML  = "xml"
	FormatYAML = "yaml"
)

var Formats = []string{FormatText, FormatJSON, FormatXML, FormatYAML}

type Serializer interface {
	Serialize(report Report, format string) ([]byte, error)
}

type Encoder interface {
	Encode(report Report) ([]byte, error)
}

type Options struct {
	// Color forces span highlighting on or off regardless of the terminal.
	Color bool
}

func NewSerializer(options Options) Serializer {
	highlight := color.New(color.FgGreen, color.Bold)
	if options.Color {
		highlight.EnableColor()
	} else {
		highlight.DisableColor()
	}

	return &DelegatingSerializer{
		Matchers: []FormatMatcher{
			{
				Pattern: regexp.MustCompile("^(text)?$"),
				Encoder: &textEncoder{highlight: highlight},
			},
			{
				Pattern: regexp.MustCompile("^json$"),
				Encoder: &jsonEncoder{},
			},
			{
				Pattern: regexp.MustCompile("^xml$"),
				Encoder: &xmlEncoder{},
			},
			{
				Pattern: regexp.MustCompile("^ya?ml$"),
				Encoder: &yamlEncoder{},
			},
		},
	}
}

type DelegatingSerializer struct {
	Matchers []FormatMatcher
}

type FormatMatcher struct {
	Pattern *regexp.Regexp
	Encoder Encoder
}

func (serializer *DelegatingSerializer) Serialize(report Report, format string) ([]byte, error) {
	for _, matcher := range serializer.Matchers {
		if matcher.Pattern.MatchString(format) {
			return matcher.Encoder.Encode(report)
		}
	}

	return nil, errors.NewNotSupported(fmt.Sprintf("report format '%s' is not supported", format))
}

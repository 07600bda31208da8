package report

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockEncoder struct {
	mock.Mock
}

func (encoder *MockEncoder) Encode(report Report) ([]byte, error) {
	args := encoder.Called(report)
	data, _ := args.Get(0).([]byte)
	return data, args.Error(1)
}

func TestDelegatingSerializer_Serialize_MatchingEncoderFound_ReportEncodedByMatchingEncoder(t *testing.T) {
	skippedEncoder := &MockEncoder{}
	matchingEncoder := &MockEncoder{}
	serializer := &DelegatingSerializer{
		Matchers: []FormatMatcher{
			{Pattern: regexp.MustCompile("^xml$"), Encoder: skippedEncoder},
			{Pattern: regexp.MustCompile("^ya?ml$"), Encoder: matchingEncoder},
		},
	}
	report := Report{Strategy: "hashmap", Input: "ab", Length: 2, Span: "ab", End: 2}
	matchingEncoder.On("Encode", report).Return([]byte("data"), nil).Once()

	data, err := serializer.Serialize(report, "yml")

	matchingEncoder.AssertExpectations(t)
	skippedEncoder.AssertNotCalled(t, "Encode", mock.Anything)
	assert.NoError(t, err)
	assert.Equal(t, []byte("data"), data)
}

func TestDelegatingSerializer_Serialize_NoMatchers_NotSupported(t *testing.T) {
	serializer := &DelegatingSerializer{Matchers: []FormatMatcher{}}

	data, err := serializer.Serialize(Report{}, "json")

	assert.Nil(t, data)
	assert.EqualError(t, err, "report format 'json' is not supported")
}

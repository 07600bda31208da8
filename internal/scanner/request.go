package scanner

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	apperrors "github.com/muonsoft/runscan/internal/errors"
	"github.com/pkg/errors"
)

// Request is a scan call whose input may be missing, as it is when it comes
// from outside the process.
type Request struct {
	Input    *string
	Strategy string
}

func (request Request) Validate() error {
	names := make([]interface{}, 0, len(strategies))
	for _, name := range Names() {
		names = append(names, name)
	}

	err := validation.ValidateStruct(&request,
		validation.Field(&request.Input, validation.NotNil),
		validation.Field(&request.Strategy, validation.In(names...).Error("must be a registered strategy")),
	)
	if err != nil {
		return errors.WithStack(&apperrors.InvalidArgument{
			Argument: "request",
			Message:  "scan request is not valid",
			Previous: err,
		})
	}

	return nil
}

// Execute validates the request and scans its input. Nothing is scanned when
// validation fails.
func Execute(request Request) (Result, error) {
	if err := request.Validate(); err != nil {
		return Result{}, err
	}

	strategy, err := New(request.Strategy)
	if err != nil {
		return Result{}, err
	}

	return strategy.Scan(*request.Input), nil
}

package errors

import (
	"fmt"

	"github.com/pkg/errors"
)

type NotSupported struct {
	Message string
}

func (err *NotSupported) Error() string {
	return err.Message
}

func NewNotSupported(message string) error {
	return errors.WithStack(&NotSupported{Message: message})
}

// InvalidArgument is returned when an input is missing or malformed
// before any processing starts.
type InvalidArgument struct {
	Argument string
	Message  string
	Previous error
}

func (err *InvalidArgument) Error() string {
	message := fmt.Sprintf("invalid argument '%s': %s", err.Argument, err.Message)
	if err.Previous != nil {
		message += ": " + err.Previous.Error()
	}

	return message
}

func (err *InvalidArgument) Unwrap() error {
	return err.Previous
}

func NewInvalidArgument(argument string, message string) error {
	return errors.WithStack(&InvalidArgument{Argument: argument, Message: message})
}

func IsInvalidArgument(err error) bool {
	var target *InvalidArgument
	return errors.As(err, &target)
}

func IsNotSupported(err error) bool {
	var target *NotSupported
	return errors.As(err, &target)
}

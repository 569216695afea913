// Package common provides shared error helpers used across the panel.
package common

import (
	"errors"
	"fmt"

	"github.com/domysh/spesometro/logger"
)

func NewErrorf(format string, a ...any) error {
	msg := fmt.Sprintf(format, a...)
	return errors.New(msg)
}

func NewError(a ...any) error {
	msg := fmt.Sprintln(a...)
	return errors.New(msg)
}

// Combine merges multiple errors into one, skipping nils.
func Combine(errs ...error) error {
	message := ""
	for _, err := range errs {
		if err != nil {
			if message != "" {
				message += ", "
			}
			message += err.Error()
		}
	}
	if message != "" {
		return errors.New(message)
	}
	return nil
}

func Recover(msg string) any {
	panicErr := recover()
	if panicErr != nil {
		if msg != "" {
			logger.Error(msg, "panic:", panicErr)
		}
	}
	return panicErr
}

package errors

import (
	"fmt"
	"strings"
)

type CLITypedError interface {
	error
	UserFacingError() error
}

// ConfigurationError means required credentials were not present in the
// environment. It is raised before any network call is made.
type ConfigurationError struct {
	Missing []string
}

func (e *ConfigurationError) Error() string {
	msgs := make([]string, len(e.Missing))
	for i, name := range e.Missing {
		msgs[i] = fmt.Sprintf(MissingEnvVarErrorMsg, name)
	}
	return strings.Join(msgs, "; ")
}

func (e *ConfigurationError) UserFacingError() error {
	return NewErrorWithSuggestions(e.Error(), MissingCredentialsSuggestions)
}

// AuthenticationError means the API rejected the supplied key/secret.
type AuthenticationError struct {
	StatusCode int
	Detail     string
}

func (e *AuthenticationError) Error() string {
	msg := fmt.Sprintf(AuthenticationErrorMsg, e.StatusCode)
	if e.Detail != "" {
		msg = fmt.Sprintf(prefixFormat, msg, e.Detail)
	}
	return msg
}

func (e *AuthenticationError) UserFacingError() error {
	return NewErrorWithSuggestions(e.Error(), AuthenticationSuggestions)
}

// TransientAPIError covers transport failures and 5xx responses. The
// generator is one-shot, so these abort the run rather than retry.
type TransientAPIError struct {
	Operation  string
	StatusCode int
	Detail     string
	Err        error
}

func (e *TransientAPIError) Error() string {
	var msg string
	if e.StatusCode != 0 {
		msg = fmt.Sprintf(TransientAPIStatusErrorMsg, e.Operation, e.StatusCode)
	} else {
		msg = fmt.Sprintf(TransientAPIErrorMsg, e.Operation)
	}
	if e.Detail != "" {
		msg = fmt.Sprintf(prefixFormat, msg, e.Detail)
	}
	if e.Err != nil {
		msg = fmt.Sprintf(prefixFormat, msg, e.Err.Error())
	}
	return msg
}

func (e *TransientAPIError) UserFacingError() error {
	return NewErrorWithSuggestions(e.Error(), TransientAPISuggestions)
}

func (e *TransientAPIError) Unwrap() error {
	return e.Err
}

// SerializationError means the cluster records could not be rendered into a
// valid scrape configuration document.
type SerializationError struct {
	Err         error
	Suggestions string
}

func (e *SerializationError) Error() string {
	return e.Err.Error()
}

func (e *SerializationError) UserFacingError() error {
	return NewErrorWithSuggestions(e.Err.Error(), e.Suggestions)
}

func (e *SerializationError) Unwrap() error {
	return e.Err
}

// FileWriteError means the generated document could not be written out.
type FileWriteError struct {
	Path string
	Err  error
}

func (e *FileWriteError) Error() string {
	return Wrap(e.Err, fmt.Sprintf(FileWriteErrorMsg, e.Path)).Error()
}

func (e *FileWriteError) UserFacingError() error {
	return NewErrorWithSuggestions(e.Error(), FileWriteSuggestions)
}

func (e *FileWriteError) Unwrap() error {
	return e.Err
}

const prefixFormat = "%s: %s"

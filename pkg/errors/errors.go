package errors

import "errors"

// ErrMalformedFixture the backing dataset could not be decoded into the expected shape.
// The process must not start with such a dataset.
var ErrMalformedFixture = errors.New("malformed fixture data")

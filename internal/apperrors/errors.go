package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrConflict indicates an optimistic-concurrency failure: the record was
// modified between read and write. Callers may re-read and retry.
var ErrConflict = errors.New("resource version conflict")

// ErrUnauthorized indicates missing or invalid credentials.
var ErrUnauthorized = errors.New("unauthorized")

// ErrForbidden indicates the caller lacks permission for the action.
var ErrForbidden = errors.New("forbidden")

// ErrUnavailable indicates the persistence gateway could not be reached.
// Safe to retry: the atomic-write contract guarantees nothing was committed.
var ErrUnavailable = errors.New("persistence unavailable")

// ErrInternal indicates an unexpected internal failure.
var ErrInternal = errors.New("internal error")

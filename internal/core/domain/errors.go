package domain

import "errors"

var ErrValidation = errors.New("validation error")
var ErrInvalidInput = errors.New("invalid input")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrUserExists = errors.New("user already exists")
var ErrUserNotFound = errors.New("user not found")
var ErrGoalNotFound = errors.New("goal not found")
var ErrRateLimited = errors.New("too many requests")

// Token verification failures. Callers reject all three identically; the
// distinction exists so logs can tell a clock problem from a forgery.
var ErrTokenMalformed = errors.New("token malformed")
var ErrTokenSignatureInvalid = errors.New("token signature invalid")
var ErrTokenExpired = errors.New("token expired")

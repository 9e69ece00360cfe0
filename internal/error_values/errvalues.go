package errorvalues

import "errors"

var (
	ErrUserExists       = errors.New("such user already exists")
	ErrUserNotFound     = errors.New("user doesn't exists")
	ErrWrongCredentials = errors.New("wrong name or password")
	ErrInvalidToken     = errors.New("invalid token")

	ErrRecordNotFound       = errors.New("daily record doesn't exist")
	ErrRecordDateNotAllowed = errors.New("record date is in the future")
	ErrOwnerNotFound        = errors.New("owner of the entry doesn't exist")
	ErrGoalNotFound         = errors.New("goal is not set")
	ErrValidation           = errors.New("validation error")

	ErrInvalidRange = errors.New("invalid date range: end is before start")
	ErrInvalidYear  = errors.New("year is out of range")
	ErrInvalidWeek  = errors.New("week number must be between 1 and 52")
	ErrInvalidMonth = errors.New("month must be between 1 and 12")
	ErrUnknownMode  = errors.New("unknown analysis mode")
)

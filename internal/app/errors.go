package app

import "errors"

var (
	ErrInvalidOption    = errors.New("Invalid Option")
	ErrInvalidUsage     = errors.New("Invalid usage. Use -h for usage")
	ErrRegexUnsupported = errors.New("Regex not implemented")
	ErrFileNotFound     = errors.New("No such file or directory")
	ErrIO               = errors.New("I/O error")
)

func IsInvalidOptionErr(err error) bool {
	return errors.Is(err, ErrInvalidOption)
}

func IsInvalidUsageErr(err error) bool {
	return errors.Is(err, ErrInvalidUsage)
}

func IsRegexUnsupportedErr(err error) bool {
	return errors.Is(err, ErrRegexUnsupported)
}

func IsFileNotFoundErr(err error) bool {
	return errors.Is(err, ErrFileNotFound)
}

func IsIOErr(err error) bool {
	return errors.Is(err, ErrIO)
}

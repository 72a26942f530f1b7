// Package repository contains data access for the book files and the
// errors shared by every settings backend.
package repository

import "errors"

var (
	ErrResourceUnavailable = errors.New("book resource unavailable")
	ErrResourceMalformed   = errors.New("book resource malformed")
	ErrSettingsNotFound    = errors.New("settings not found")
)

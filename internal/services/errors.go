// Package services implements the contact-submission workflow. This file
// centralizes service-level error values so they can be consistently returned
// by service methods and checked by callers.
//
// Translation into user-facing payloads and HTTP status codes is performed at
// the handler layer, not here.
package services

import "errors"

var (
	// ErrMissingFields is returned when any of the required submission
	// fields (name, email, message) is absent or empty. Nothing is written
	// to the store and no mail is sent.
	ErrMissingFields = errors.New("all fields are required")

	// ErrPersistFailed wraps a store error: the insert transaction was
	// rolled back and no row exists.
	ErrPersistFailed = errors.New("persist contact message")

	// ErrNotifyFailed wraps a mail-transport error that occurred after the
	// row was committed. The record is not retracted; callers see a failure
	// even though the data was saved.
	ErrNotifyFailed = errors.New("send contact notification")
)

package domain

import "errors"

var (
	ErrInvalidEmail          = errors.New("invalid email")
	ErrIncompleteContactForm = errors.New("name, email and message are required")
	ErrContactFormClosed     = errors.New("contact form is not open")
	ErrInvalidPropertyType   = errors.New("invalid property type")
	ErrMalformedProperty     = errors.New("malformed property")
	ErrPropertyNotFound      = errors.New("property not found")
	ErrNoSelection           = errors.New("no property selected")
	ErrSessionNotFound       = errors.New("session not found")
)

package main

import (
	"fmt"
	"net/url"
	"strings"
)

// ConfigError is the only error that stops the bot.
type ConfigError struct {
	Missing []string
	Invalid []string
}

func (e *ConfigError) Error() string {
	var parts []string
	if len(e.Missing) > 0 {
		parts = append(parts, "missing required environment variables: "+strings.Join(e.Missing, ", "))
	}
	if len(e.Invalid) > 0 {
		parts = append(parts, "invalid values for: "+strings.Join(e.Invalid, ", "))
	}
	return strings.Join(parts, "; ")
}

// TransportError means the request to the review API could not be completed.
type TransportError struct {
	Endpoint string
	Params   url.Values
	Err      error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("request to %v with params %v failed: %v", e.Endpoint, e.Params.Encode(), e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// UnexpectedStatusError means the review API answered with anything but 200.
type UnexpectedStatusError struct {
	Endpoint   string
	Params     url.Values
	StatusCode int
}

func (e *UnexpectedStatusError) Error() string {
	return fmt.Sprintf("endpoint %v with params %v returned status %d, expected 200", e.Endpoint, e.Params.Encode(), e.StatusCode)
}

type ShapeError struct {
	Reason string
}

func (e *ShapeError) Error() string {
	return "unexpected API response: " + e.Reason
}

type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("homework has no %q field", e.Field)
}

type UnknownStatusError struct {
	Status string
}

func (e *UnknownStatusError) Error() string {
	return fmt.Sprintf("unknown homework status %q", e.Status)
}

// SendError wraps a failure of the messaging transport.
type SendError struct {
	Err error
}

func (e *SendError) Error() string {
	return fmt.Sprintf("can't send telegram message: %v", e.Err)
}

func (e *SendError) Unwrap() error {
	return e.Err
}

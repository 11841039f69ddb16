package domain

import "errors"

var (
	// ErrInvalidInput is returned when an upload does not decode as an image.
	ErrInvalidInput = errors.New("invalid input")

	// ErrGeneration is returned by the gateway when no usable image came back.
	ErrGeneration = errors.New("image generation failed")

	// ErrChat is returned by the gateway when the chat call fails.
	ErrChat = errors.New("chat reply failed")

	// ErrBusy rejects an operation while another request is in flight.
	ErrBusy = errors.New("session busy")

	// ErrNoSourceImage rejects generate/chat before any upload.
	ErrNoSourceImage = errors.New("no source image uploaded")

	ErrSessionNotFound = errors.New("session not found")
	ErrStyleNotFound   = errors.New("style not found")
)

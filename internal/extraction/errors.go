package extraction

import "errors"

// Failure reasons of the model-backed extractor.
var (
	ErrCapabilityUnavailable = errors.New("model capability unavailable: no credential configured")
	ErrTransport             = errors.New("model request failed")
	ErrEmptyReply            = errors.New("model reply is empty")
	ErrMalformedReply        = errors.New("model reply could not be parsed")
)

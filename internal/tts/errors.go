package tts

import (
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Category buckets an external synthesis failure for error mapping and
// activity logging
type Category int

const (
	// CategoryInvalidArgument means the API rejected the call, e.g. an
	// unknown voice or a voice/language mismatch
	CategoryInvalidArgument Category = iota

	// CategoryAPIError means the API was reached but returned a
	// service-level failure (quota, transient outage)
	CategoryAPIError

	// CategoryUnknown covers everything else
	CategoryUnknown
)

// Classify buckets an error from the Google TTS client. The client surfaces
// API failures as gRPC status errors; anything without a status is treated
// as unclassified.
func Classify(err error) Category {
	st, ok := status.FromError(err)
	if !ok {
		return CategoryUnknown
	}
	switch st.Code() {
	case codes.InvalidArgument:
		return CategoryInvalidArgument
	case codes.OK:
		return CategoryUnknown
	default:
		return CategoryAPIError
	}
}

package codec

import "errors"

var (
	// ErrMalformedPayload is returned when a framed blob cannot be split into
	// its expected buffers.
	ErrMalformedPayload = errors.New("malformed payload")

	// ErrUnsupportedEncoding is returned when a blob declares a compression
	// or encryption scheme this codec does not implement.
	ErrUnsupportedEncoding = errors.New("unsupported payload encoding")

	// ErrSerialization is returned when elements cannot be encoded or a
	// decrypted payload is not a valid element list.
	ErrSerialization = errors.New("scene serialization failed")
)

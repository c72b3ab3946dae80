package codec

import (
	"bytes"
	"compress/zlib"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"io"

	"github.com/MKhiriev/scene-keeper/internal/crypto"
	"github.com/MKhiriev/scene-keeper/models"
)

const (
	// frameFormatVersion is the version word written at the head of every
	// framed buffer.
	frameFormatVersion uint32 = 1

	blobEncodingVersion = 2
	blobCompression     = "pako@1"
	blobEncryption      = "AES-GCM"
)

// blobEncoding is the plaintext header of an attachment payload.
type blobEncoding struct {
	Version     int    `json:"version"`
	Compression string `json:"compression,omitempty"`
	Encryption  string `json:"encryption"`
}

// BlobCodec reads and writes attachment payloads in the layout produced by
// collaborating drawing clients:
//
//	frame(encodingJSON, iv, AES-GCM(zlib(frame(metadataJSON, data))))
//
// where frame is a big-endian uint32 format version followed by
// length-prefixed buffers.
type BlobCodec struct {
	cipher crypto.Cipher
}

// NewBlobCodec constructs a BlobCodec.
func NewBlobCodec(cipher crypto.Cipher) *BlobCodec {
	return &BlobCodec{cipher: cipher}
}

// Compress packs data and its metadata into an encrypted attachment payload.
func (c *BlobCodec) Compress(data []byte, meta models.FileMetadata, key string) ([]byte, error) {
	metaJSON, err := json.Marshal(meta)
	if err != nil {
		return nil, fmt.Errorf("marshal file metadata: %w", err)
	}

	var compressed bytes.Buffer
	zw := zlib.NewWriter(&compressed)
	if _, err = zw.Write(concatBuffers(metaJSON, data)); err != nil {
		return nil, fmt.Errorf("compress file: %w", err)
	}
	if err = zw.Close(); err != nil {
		return nil, fmt.Errorf("compress file: %w", err)
	}

	ciphertext, iv, err := c.cipher.Encrypt(key, compressed.Bytes())
	if err != nil {
		return nil, fmt.Errorf("encrypt file: %w", err)
	}

	encodingJSON, err := json.Marshal(blobEncoding{
		Version:     blobEncodingVersion,
		Compression: blobCompression,
		Encryption:  blobEncryption,
	})
	if err != nil {
		return nil, fmt.Errorf("marshal file encoding: %w", err)
	}

	return concatBuffers(encodingJSON, iv, ciphertext), nil
}

// Decompress decrypts and inflates an attachment payload. A wrong key yields
// an error wrapping [crypto.ErrDecryption].
func (c *BlobCodec) Decompress(payload []byte, key string) ([]byte, models.FileMetadata, error) {
	var meta models.FileMetadata

	outer, err := splitBuffers(payload)
	if err != nil {
		return nil, meta, err
	}
	if len(outer) != 3 {
		return nil, meta, fmt.Errorf("%w: expected 3 buffers, got %d", ErrMalformedPayload, len(outer))
	}

	var encoding blobEncoding
	if err = json.Unmarshal(outer[0], &encoding); err != nil {
		return nil, meta, fmt.Errorf("%w: encoding header: %w", ErrMalformedPayload, err)
	}
	if encoding.Encryption != blobEncryption {
		return nil, meta, fmt.Errorf("%w: encryption %q", ErrUnsupportedEncoding, encoding.Encryption)
	}

	plaintext, err := c.cipher.Decrypt(outer[1], outer[2], key)
	if err != nil {
		return nil, meta, fmt.Errorf("decrypt file: %w", err)
	}

	if encoding.Compression != "" {
		if plaintext, err = inflate(plaintext); err != nil {
			return nil, meta, err
		}
	}

	inner, err := splitBuffers(plaintext)
	if err != nil {
		return nil, meta, err
	}
	if len(inner) != 2 {
		return nil, meta, fmt.Errorf("%w: expected 2 content buffers, got %d", ErrMalformedPayload, len(inner))
	}

	if err = json.Unmarshal(inner[0], &meta); err != nil {
		return nil, meta, fmt.Errorf("%w: file metadata: %w", ErrMalformedPayload, err)
	}

	return inner[1], meta, nil
}

func inflate(compressed []byte) ([]byte, error) {
	zr, err := zlib.NewReader(bytes.NewReader(compressed))
	if err != nil {
		return nil, fmt.Errorf("%w: inflate: %w", ErrMalformedPayload, err)
	}
	defer zr.Close()

	data, err := io.ReadAll(zr)
	if err != nil {
		return nil, fmt.Errorf("%w: inflate: %w", ErrMalformedPayload, err)
	}
	return data, nil
}

func concatBuffers(buffers ...[]byte) []byte {
	size := 4
	for _, b := range buffers {
		size += 4 + len(b)
	}

	out := make([]byte, 0, size)
	out = binary.BigEndian.AppendUint32(out, frameFormatVersion)
	for _, b := range buffers {
		out = binary.BigEndian.AppendUint32(out, uint32(len(b)))
		out = append(out, b...)
	}
	return out
}

func splitBuffers(framed []byte) ([][]byte, error) {
	if len(framed) < 4 {
		return nil, fmt.Errorf("%w: missing frame header", ErrMalformedPayload)
	}

	if version := binary.BigEndian.Uint32(framed); version > frameFormatVersion {
		return nil, fmt.Errorf("%w: frame version %d", ErrUnsupportedEncoding, version)
	}

	var buffers [][]byte
	cursor := 4
	for cursor < len(framed) {
		if len(framed)-cursor < 4 {
			return nil, fmt.Errorf("%w: truncated chunk size", ErrMalformedPayload)
		}
		size := int(binary.BigEndian.Uint32(framed[cursor:]))
		cursor += 4

		if size > len(framed)-cursor {
			return nil, fmt.Errorf("%w: chunk of %d bytes exceeds payload", ErrMalformedPayload, size)
		}
		buffers = append(buffers, framed[cursor:cursor+size])
		cursor += size
	}

	return buffers, nil
}

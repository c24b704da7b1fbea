// Package fragment implements the stateless share path: a reversible
// transform from a shared-prompt payload to a URL-fragment-safe string.
// The fragment never reaches a server, so this path needs no backend and
// never expires.
package fragment

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"io"
	"strings"

	"github.com/klauspost/compress/flate"

	"promptlink/internal/models"
)

// maxDecodedSize bounds decompression output so a hostile fragment cannot
// balloon into arbitrary memory.
const maxDecodedSize = 1 << 20

// Encode serializes the payload to JSON, applies raw DEFLATE, and encodes
// the result as unpadded base64url. Every character of the output is safe
// for direct inclusion in a URL fragment without escaping.
func Encode(data *models.SharedPromptData) (string, error) {
	raw, err := json.Marshal(data)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	w, err := flate.NewWriter(&buf, flate.BestCompression)
	if err != nil {
		return "", err
	}
	if _, err := w.Write(raw); err != nil {
		return "", err
	}
	if err := w.Close(); err != nil {
		return "", err
	}

	return base64.RawURLEncoding.EncodeToString(buf.Bytes()), nil
}

// Decode reverses Encode. It returns nil for anything that is not valid
// Encode output: bad base64, corrupt DEFLATE, malformed JSON, or a payload
// missing prompt or transcript. It never panics and never returns an error;
// callers render a single generic "invalid or expired link" state, making no
// distinction between corruption, truncation, and malicious input.
func Decode(encoded string) *models.SharedPromptData {
	// Tolerate padded copies of the fragment; Encode never emits '='.
	raw, err := base64.RawURLEncoding.DecodeString(strings.TrimRight(encoded, "="))
	if err != nil {
		return nil
	}

	r := flate.NewReader(bytes.NewReader(raw))
	defer r.Close()

	plain, err := io.ReadAll(io.LimitReader(r, maxDecodedSize))
	if err != nil {
		return nil
	}

	var data models.SharedPromptData
	if err := json.Unmarshal(plain, &data); err != nil {
		return nil
	}
	if !data.Valid() {
		return nil
	}
	return &data
}

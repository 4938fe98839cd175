package data

import (
	"bytes"
	"compress/gzip"
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// gzipMagic is the two-byte gzip header.
var gzipMagic = []byte{0x1f, 0x8b}

// ReadPayload reads an ads response file and parses it into a generic JSON
// object. Gzipped files are decompressed transparently. Unreadable files and
// malformed JSON are fatal to the caller; per-record tolerance happens later
// in the pipeline.
func ReadPayload(path string) (map[string]interface{}, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read input file: %w", err)
	}
	return ParsePayload(raw)
}

// ParsePayload parses raw (optionally gzipped) bytes into a JSON object.
func ParsePayload(raw []byte) (map[string]interface{}, error) {
	if bytes.HasPrefix(raw, gzipMagic) {
		gr, err := gzip.NewReader(bytes.NewReader(raw))
		if err != nil {
			return nil, fmt.Errorf("failed to open gzip input: %w", err)
		}
		defer gr.Close()

		raw, err = io.ReadAll(gr)
		if err != nil {
			return nil, fmt.Errorf("failed to decompress input: %w", err)
		}
	}

	var payload map[string]interface{}
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, fmt.Errorf("failed to parse JSON: %w", err)
	}
	return payload, nil
}

/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package graph

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"bennypowers.dev/whence/fs"
)

// ErrUnknownFormat is returned for an output format other than json or yaml.
var ErrUnknownFormat = errors.New("unknown format")

// Format is a serialization format for results.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat parses a format name. "yml" is accepted for YAML.
func ParseFormat(s string) (Format, error) {
	switch s {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w %q (expected json or yaml)", ErrUnknownFormat, s)
	}
}

// Load reads and decodes the result at path.
func Load(filesystem fs.FileSystem, path string) (*Result, error) {
	data, err := filesystem.ReadFile(path)
	if err != nil {
		return nil, err
	}
	result, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return result, nil
}

// Decode parses a result from JSON (comments allowed) or YAML, detecting
// which from the content.
func Decode(data []byte) (*Result, error) {
	result := &Result{}
	if isLikelyJSON(data) {
		if err := json.Unmarshal(jsonc.ToJSON(data), result); err != nil {
			return nil, fmt.Errorf("failed to parse JSON: %w", err)
		}
		return result, nil
	}

	if err := yaml.Unmarshal(data, result); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	return result, nil
}

// Encode serializes result in the given format.
func Encode(result *Result, format Format) ([]byte, error) {
	switch format {
	case FormatJSON:
		var buf bytes.Buffer
		enc := json.NewEncoder(&buf)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		if err := enc.Encode(result); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	case FormatYAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(result); err != nil {
			return nil, err
		}
		if err := enc.Close(); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	default:
		return nil, fmt.Errorf("%w %q", ErrUnknownFormat, format)
	}
}

// isLikelyJSON reports whether data starts like a JSON object. Leading
// whitespace, a UTF-8 BOM and JSONC comments are skipped.
func isLikelyJSON(data []byte) bool {
	data = bytes.TrimLeft(data, " \t\r\n\xEF\xBB\xBF")
	for bytes.HasPrefix(data, []byte("//")) || bytes.HasPrefix(data, []byte("/*")) {
		if bytes.HasPrefix(data, []byte("//")) {
			end := bytes.IndexByte(data, '\n')
			if end < 0 {
				return false
			}
			data = data[end+1:]
		} else {
			end := bytes.Index(data, []byte("*/"))
			if end < 0 {
				return false
			}
			data = data[end+2:]
		}
		data = bytes.TrimLeft(data, " \t\r\n")
	}
	return len(data) > 0 && data[0] == '{'
}

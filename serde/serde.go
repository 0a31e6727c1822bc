// Package serde is the serialization runtime generated Go clients
// call into. It mirrors the factory-plus-settings surface of the C#
// serializer the generator targets: construct Settings, pick a null
// handling mode, Create a Serializer, and Serialize values to a
// writer.
package serde

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
)

// NullValueHandling controls how null-valued object fields are
// written.
type NullValueHandling int

const (
	// Include writes null-valued fields to the output.
	Include NullValueHandling = iota

	// Ignore omits null-valued fields from the output.
	Ignore
)

// String returns the string representation of the handling mode.
func (h NullValueHandling) String() string {
	switch h {
	case Include:
		return "Include"
	case Ignore:
		return "Ignore"
	default:
		return "Unknown"
	}
}

// Settings configures a Serializer.
type Settings struct {
	// NullValueHandling selects null field treatment.
	NullValueHandling NullValueHandling
}

// Serializer converts in-memory values to JSON text.
type Serializer struct {
	settings Settings
}

// Create constructs a Serializer from settings. A nil settings value
// yields default behavior (nulls included).
func Create(settings *Settings) *Serializer {
	s := &Serializer{}
	if settings != nil {
		s.settings = *settings
	}
	return s
}

// Serialize writes v as JSON to w, applying the configured null
// handling.
func (s *Serializer) Serialize(w io.Writer, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to serialize value: %w", err)
	}

	if s.settings.NullValueHandling == Ignore {
		data, err = stripNulls(data)
		if err != nil {
			return err
		}
	}

	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("failed to write serialized value: %w", err)
	}
	return nil
}

// stripNulls removes null-valued object members at every depth.
// Array elements are preserved even when null; only object members
// are dropped.
//
// The prune streams tokens rather than round-tripping through maps:
// member order is preserved, and numbers pass through as json.Number
// so values outside float64's exact integer range survive unchanged.
func stripNulls(data []byte) ([]byte, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var buf bytes.Buffer
	if _, err := pruneValue(dec, &buf); err != nil {
		return nil, fmt.Errorf("failed to re-read serialized value: %w", err)
	}
	return buf.Bytes(), nil
}

// pruneValue writes the next value from dec to buf and reports
// whether that value was a JSON null.
func pruneValue(dec *json.Decoder, buf *bytes.Buffer) (bool, error) {
	tok, err := dec.Token()
	if err != nil {
		return false, err
	}

	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			return false, pruneObject(dec, buf)
		case '[':
			return false, pruneArray(dec, buf)
		}
		return false, fmt.Errorf("unexpected delimiter %q", t.String())
	case nil:
		buf.WriteString("null")
		return true, nil
	case json.Number:
		buf.WriteString(t.String())
		return false, nil
	default:
		// bool or string
		b, err := json.Marshal(t)
		if err != nil {
			return false, err
		}
		buf.Write(b)
		return false, nil
	}
}

func pruneObject(dec *json.Decoder, buf *bytes.Buffer) error {
	buf.WriteByte('{')
	first := true
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("unexpected object key token %v", keyTok)
		}

		var val bytes.Buffer
		isNull, err := pruneValue(dec, &val)
		if err != nil {
			return err
		}
		if isNull {
			continue
		}

		if !first {
			buf.WriteByte(',')
		}
		first = false

		kb, err := json.Marshal(key)
		if err != nil {
			return err
		}
		buf.Write(kb)
		buf.WriteByte(':')
		buf.Write(val.Bytes())
	}

	// Consume the closing brace.
	if _, err := dec.Token(); err != nil {
		return err
	}
	buf.WriteByte('}')
	return nil
}

func pruneArray(dec *json.Decoder, buf *bytes.Buffer) error {
	buf.WriteByte('[')
	first := true
	for dec.More() {
		if !first {
			buf.WriteByte(',')
		}
		first = false
		if _, err := pruneValue(dec, buf); err != nil {
			return err
		}
	}

	// Consume the closing bracket.
	if _, err := dec.Token(); err != nil {
		return err
	}
	buf.WriteByte(']')
	return nil
}

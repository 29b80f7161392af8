// SPDX-License-Identifier: MIT
//
// File: codec.go
// Role: Collection serialization formats.

package dataset

import (
	"encoding/gob"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/katalvlaran/kclique/tensor"
)

// ErrUnknownFormat indicates an unsupported codec name.
var ErrUnknownFormat = errors.New("dataset: unknown format")

// Format names accepted by CodecByName.
const (
	FormatGob  = "gob"
	FormatJSON = "json"
)

// Codec serializes a whole collection.
type Codec interface {
	Name() string
	// Ext is the file extension, including the dot.
	Ext() string
	Encode(w io.Writer, graphs []tensor.Graph) error
	Decode(r io.Reader) ([]tensor.Graph, error)
}

// CodecByName returns the codec for name; "" selects gob.
func CodecByName(name string) (Codec, error) {
	switch name {
	case "", FormatGob:
		return GobCodec{}, nil
	case FormatJSON:
		return JSONCodec{}, nil
	default:
		return nil, fmt.Errorf("%q: %w", name, ErrUnknownFormat)
	}
}

// GobCodec is the default binary format. Empty slices decode as nil, so
// compare decoded records with tensor.SameStructure.
type GobCodec struct{}

func (GobCodec) Name() string { return FormatGob }
func (GobCodec) Ext() string  { return ".gob" }

func (GobCodec) Encode(w io.Writer, graphs []tensor.Graph) error {
	if err := gob.NewEncoder(w).Encode(graphs); err != nil {
		return fmt.Errorf("gob encode: %w", err)
	}
	return nil
}

func (GobCodec) Decode(r io.Reader) ([]tensor.Graph, error) {
	var out []tensor.Graph
	if err := gob.NewDecoder(r).Decode(&out); err != nil {
		return nil, fmt.Errorf("gob decode: %w", err)
	}
	return out, nil
}

// JSONCodec writes one JSON array of records; readable from any language.
type JSONCodec struct{}

func (JSONCodec) Name() string { return FormatJSON }
func (JSONCodec) Ext() string  { return ".json" }

func (JSONCodec) Encode(w io.Writer, graphs []tensor.Graph) error {
	if graphs == nil {
		graphs = []tensor.Graph{}
	}
	if err := json.NewEncoder(w).Encode(graphs); err != nil {
		return fmt.Errorf("json encode: %w", err)
	}
	return nil
}

func (JSONCodec) Decode(r io.Reader) ([]tensor.Graph, error) {
	var out []tensor.Graph
	if err := json.NewDecoder(r).Decode(&out); err != nil {
		return nil, fmt.Errorf("json decode: %w", err)
	}
	return out, nil
}

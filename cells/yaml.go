// SPDX-License-Identifier: MIT
// Package cells - YAML document codec.
//
// A document lists cells with their dimension, tag, optional subdomain flag,
// optional mesh image, and an oriented boundary given by face tags:
//
//	name: hollow-triangle
//	cells:
//	  - {dim: 0, tag: 1}
//	  - {dim: 0, tag: 2}
//	  - dim: 1
//	    tag: 10
//	    boundary: [{tag: 1, sign: -1}, {tag: 2, sign: 1}]
//
// Cells are inserted dimension by dimension, keeping document order within a
// dimension, so faces may be listed after the cells that reference them.

package cells

import (
	"fmt"
	"io"
	"sort"

	"gopkg.in/yaml.v3"
)

const (
	opDecode = "Decode"
	opEncode = "Encode"
)

// Document is the serialized form of a Complex.
type Document struct {
	Name  string     `yaml:"name,omitempty"`
	Cells []CellSpec `yaml:"cells"`
}

// CellSpec describes one cell in a Document.
type CellSpec struct {
	Dim       int           `yaml:"dim"`
	Tag       int           `yaml:"tag"`
	Subdomain bool          `yaml:"subdomain,omitempty"`
	Boundary  []FaceSpec    `yaml:"boundary,omitempty,flow"`
	Image     []ElementSpec `yaml:"image,omitempty,flow"`
}

// FaceSpec is one oriented boundary pair referencing a face by tag.
type FaceSpec struct {
	Tag  int `yaml:"tag"`
	Sign int `yaml:"sign"`
}

// ElementSpec is one mesh element of a cell image.
type ElementSpec struct {
	Num  int `yaml:"num"`
	Sign int `yaml:"sign"`
}

// Decode reads a YAML document and builds the complex it describes.
// Errors: ErrDecode for malformed YAML or unresolved face tags, plus any
// AddCell sentinel (ErrBadDimension, ErrBadSign, ErrDuplicateTag, ...).
func Decode(r io.Reader) (*Complex, error) {
	var doc Document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && err != io.EOF {
		return nil, cellsErrorf(opDecode, fmt.Errorf("%v: %w", err, ErrDecode))
	}

	return FromDocument(doc)
}

// FromDocument builds a complex from an already parsed document.
func FromDocument(doc Document) (*Complex, error) {
	specs := append([]CellSpec(nil), doc.Cells...)
	sort.SliceStable(specs, func(i, j int) bool { return specs[i].Dim < specs[j].Dim })

	cx := New()
	for _, s := range specs {
		if s.Dim < 0 || s.Dim > MaxDim {
			return nil, cellsErrorf(opDecode, fmt.Errorf("cell tag %d dim %d: %w", s.Tag, s.Dim, ErrBadDimension))
		}
		bd := make([]Incidence, 0, len(s.Boundary))
		for _, f := range s.Boundary {
			pos, ok := cx.Lookup(s.Dim-1, f.Tag)
			if !ok {
				return nil, cellsErrorf(opDecode, fmt.Errorf("cell tag %d: face tag %d: %w", s.Tag, f.Tag, ErrUnknownFace))
			}
			bd = append(bd, Incidence{Sign: f.Sign, Face: pos})
		}
		pos, err := cx.AddCell(s.Dim, s.Tag, bd...)
		if err != nil {
			return nil, cellsErrorf(opDecode, err)
		}
		if s.Subdomain {
			_ = cx.SetSubdomain(s.Dim, pos, true) // position just issued
		}
		if len(s.Image) > 0 {
			img := make([]Element, len(s.Image))
			for k, e := range s.Image {
				img[k] = Element{Num: e.Num, Sign: e.Sign}
			}
			_ = cx.SetImage(s.Dim, pos, img...)
		}
	}

	return cx, nil
}

// ToDocument converts a complex into its serializable form.
func ToDocument(cx *Complex, name string) Document {
	doc := Document{Name: name}
	for d := 0; d <= MaxDim; d++ {
		for _, c := range cx.arena[d] {
			spec := CellSpec{Dim: d, Tag: c.Tag, Subdomain: c.Subdomain}
			for _, inc := range c.Boundary {
				spec.Boundary = append(spec.Boundary, FaceSpec{Tag: cx.arena[d-1][inc.Face].Tag, Sign: inc.Sign})
			}
			for _, e := range c.Image {
				spec.Image = append(spec.Image, ElementSpec{Num: e.Num, Sign: e.Sign})
			}
			doc.Cells = append(doc.Cells, spec)
		}
	}

	return doc
}

// Encode writes cx as a YAML document.
func Encode(w io.Writer, cx *Complex) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(ToDocument(cx, "")); err != nil {
		return cellsErrorf(opEncode, err)
	}

	return enc.Close()
}

// Copyright 2017 Google Inc. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package attrtools defines the structured records extracted from the root
// element of a values resource file, and the serialized side-file format that
// carries them alongside the compiled artifact.  The on-disk format is
// private to this package; consumers read it back through ReadFile.
package attrtools

import (
	"bufio"
	"encoding/gob"
	"fmt"
	"io"
	"os"
)

// fileMagic identifies and versions the side-file format.
const fileMagic = "resattrs\x001\n"

// A Namespace is one xmlns declaration in scope on the root element.
type Namespace struct {
	Prefix string // empty for the default namespace
	URI    string
}

// A Record describes one attribute of a resource file's root element.
type Record struct {
	// FullyQualifiedName identifies the attribute within the resource
	// universe, derived from the resource directory type and the
	// attribute's qualified name.
	FullyQualifiedName string

	NamespaceURI string // empty for unprefixed attributes
	LocalName    string
	Prefix       string

	// Value is the attribute's literal string value.
	Value string

	// Namespaces holds the root element's xmlns declarations, sorted by
	// prefix so that serialized content is deterministic.
	Namespaces []Namespace

	// SourceFile is the resource file the record was extracted from.
	SourceFile string
}

// QualifiedName returns the attribute name in expanded "{uri}local" form, or
// just the local name when the attribute has no namespace.
func (r Record) QualifiedName() string {
	if r.NamespaceURI == "" {
		return r.LocalName
	}
	return "{" + r.NamespaceURI + "}" + r.LocalName
}

// Name returns the attribute name as written in the source document.
func (r Record) Name() string {
	if r.NamespaceURI == "" {
		return r.LocalName
	}
	return r.Prefix + ":" + r.LocalName
}

// A Serializer accumulates the records for one resource file and writes them
// out in a single flush.
type Serializer struct {
	records []Record
}

func NewSerializer() *Serializer {
	return &Serializer{}
}

// Queue adds a record to be written by the next FlushTo.  Records are
// written in the order queued.
func (s *Serializer) Queue(r Record) {
	s.records = append(s.records, r)
}

// FlushTo writes every queued record to filename.  Any error leaves no
// side-file behind so a failed unit cannot be mistaken for a succeeded one.
func (s *Serializer) FlushTo(filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}

	w := bufio.NewWriter(f)
	_, err = w.WriteString(fileMagic)
	if err == nil {
		err = gob.NewEncoder(w).Encode(s.records)
	}
	if err == nil {
		err = w.Flush()
	}
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		os.Remove(filename)
		return err
	}
	return nil
}

// ReadFile loads the records previously written by FlushTo.
func ReadFile(filename string) ([]Record, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := bufio.NewReader(f)
	magic := make([]byte, len(fileMagic))
	if _, err := io.ReadFull(r, magic); err != nil || string(magic) != fileMagic {
		return nil, fmt.Errorf("%s is not a resource attributes file", filename)
	}

	var records []Record
	if err := gob.NewDecoder(r).Decode(&records); err != nil {
		return nil, fmt.Errorf("reading %s: %s", filename, err)
	}
	return records, nil
}

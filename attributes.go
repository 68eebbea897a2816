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

package rescompile

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/google/rescompile/attrtools"
)

// virtualAttributeType marks fully qualified names that refer to an
// attribute of the resources tag rather than to a declared resource.
const virtualAttributeType = "<resources-attribute>"

// rootElement advances dec to the document's root start element, skipping
// comments, processing instructions, directives (including any DTD) and
// whitespace character data, the same set of events a nextTag-style scan
// tolerates before the root.
func rootElement(dec *xml.Decoder) (xml.StartElement, error) {
	for {
		tok, err := dec.Token()
		if err != nil {
			return xml.StartElement{}, err
		}
		switch t := tok.(type) {
		case xml.Comment, xml.ProcInst, xml.Directive:
			continue
		case xml.CharData:
			if strings.TrimSpace(string(t)) == "" {
				continue
			}
			return xml.StartElement{}, fmt.Errorf("unexpected character data before root element")
		case xml.StartElement:
			return t, nil
		default:
			return xml.StartElement{}, fmt.Errorf("unexpected %T before root element", tok)
		}
	}
}

// rootAttributeRecords parses file and returns one record per attribute of
// its root element, or nil if the root element has none.  The compiler
// subprocess strips namespaces and attributes from the resources tag, so
// they are read here separately and packaged with the compiled artifact.
func rootAttributeRecords(file, resType string) ([]attrtools.Record, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	root, err := rootElement(xml.NewDecoder(f))
	if err == io.EOF {
		return nil, fmt.Errorf("no start element found in resource XML file: %s", file)
	} else if err != nil {
		return nil, fmt.Errorf("reading %s: %s", file, err)
	}

	// encoding/xml reports xmlns declarations as attributes and resolves
	// prefixed attribute names to namespace URIs.  Separate the
	// declarations out first so prefixes can be recovered for the real
	// attributes.
	var namespaces []attrtools.Namespace
	prefixByURI := make(map[string]string)
	for _, attr := range root.Attr {
		switch {
		case attr.Name.Space == "xmlns":
			namespaces = append(namespaces, attrtools.Namespace{Prefix: attr.Name.Local, URI: attr.Value})
			prefixByURI[attr.Value] = attr.Name.Local
		case attr.Name.Space == "" && attr.Name.Local == "xmlns":
			namespaces = append(namespaces, attrtools.Namespace{URI: attr.Value})
		}
	}
	sort.Slice(namespaces, func(i, j int) bool {
		return namespaces[i].Prefix < namespaces[j].Prefix
	})

	var records []attrtools.Record
	for _, attr := range root.Attr {
		if attr.Name.Space == "xmlns" || (attr.Name.Space == "" && attr.Name.Local == "xmlns") {
			continue
		}
		r := attrtools.Record{
			NamespaceURI: attr.Name.Space,
			LocalName:    attr.Name.Local,
			Prefix:       prefixByURI[attr.Name.Space],
			Value:        attr.Value,
			Namespaces:   namespaces,
			SourceFile:   file,
		}
		r.FullyQualifiedName = resType + "/" + virtualAttributeType + "/" + r.QualifiedName()
		records = append(records, r)
	}
	return records, nil
}

// writeAttributes serializes records to filename through a single flush.
func writeAttributes(filename string, records []attrtools.Record) error {
	s := attrtools.NewSerializer()
	for _, r := range records {
		s.Queue(r)
	}
	return s.FlushTo(filename)
}

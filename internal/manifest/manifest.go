// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package manifest

import (
	"encoding/xml"
	"fmt"
	"os"

	"github.com/apex/log"
)

// Package is the loaded form of a package.xml document. Types preserves
// document order. An empty document (no types elements) is valid.
type Package struct {
	XMLName xml.Name    `xml:"Package"`
	Types   []TypeGroup `xml:"types"`
	Version string      `xml:"version"`
}

// TypeGroup is one named metadata category with its ordered member
// identifiers. Members may be empty. Field order mirrors the document
// schema, where members precede name.
type TypeGroup struct {
	Members []string `xml:"members"`
	Name    string   `xml:"name"`
}

// Load reads and unmarshals the manifest at path. Unknown elements are
// ignored; member strings are kept verbatim, deduplication included.
func Load(path string) (Package, error) {
	doc, err := os.ReadFile(path)
	if err != nil {
		return Package{}, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return Parse(doc)
}

// Parse unmarshals an already-read manifest document.
func Parse(doc []byte) (Package, error) {
	var pkg Package
	if err := xml.Unmarshal(doc, &pkg); err != nil {
		return Package{}, fmt.Errorf("failed to parse package.xml: %w", err)
	}
	log.Debugf("loaded %d type groups, api version %q", len(pkg.Types), pkg.Version)
	return pkg, nil
}

// Copyright © 2018 One Concern

package session

import (
	"bufio"
	"encoding/xml"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/oneconcern/igvsession/pkg/manifest"
	"github.com/oneconcern/igvsession/pkg/session/status"
)

// Version of the IGV session schema
const Version = "3"

const (
	xmlHeader = `<?xml version='1.0' encoding='UTF-8'?>` + "\n"
	indent    = "  "
)

// Document is an IGV session
type Document struct {
	Genome    string              `json:"genome" yaml:"genome"`
	Version   string              `json:"version" yaml:"version"`
	Resources []manifest.Resource `json:"resources" yaml:"resources"`
}

// New session document for a genome build
func New(genome string, resources []manifest.Resource) Document {
	return Document{
		Genome:    genome,
		Version:   Version,
		Resources: resources,
	}
}

var attrEscaper = strings.NewReplacer(
	`&`, "&amp;",
	`<`, "&lt;",
	`>`, "&gt;",
	`"`, "&quot;",
	"\t", "&#9;",
	"\n", "&#10;",
	"\r", "&#13;",
)

// Encode writes the document as indented XML.
//
// The output is deterministic and byte-compatible with the lxml pretty printer, so
// sessions may be compared against existing fixtures by hash.
func Encode(w io.Writer, doc Document) error {
	if err := doc.validate(); err != nil {
		return err
	}
	version := doc.Version
	if version == "" {
		version = Version
	}

	bw := bufio.NewWriter(w)
	_, _ = bw.WriteString(xmlHeader)
	writeStart(bw, "", "Global", false, "genome", doc.Genome, "version", version)
	if len(doc.Resources) == 0 {
		writeStart(bw, indent, "Resources", true)
	} else {
		writeStart(bw, indent, "Resources", false)
		for _, resource := range doc.Resources {
			writeStart(bw, indent+indent, "Resource", true, "name", resource.Name, "path", resource.Path)
		}
		writeEnd(bw, indent, "Resources")
	}
	writeEnd(bw, "", "Global")
	return bw.Flush()
}

func writeStart(w *bufio.Writer, prefix, name string, empty bool, attrs ...string) {
	_, _ = w.WriteString(prefix)
	_ = w.WriteByte('<')
	_, _ = w.WriteString(name)
	for i := 0; i+1 < len(attrs); i += 2 {
		_ = w.WriteByte(' ')
		_, _ = w.WriteString(attrs[i])
		_, _ = w.WriteString(`="`)
		_, _ = attrEscaper.WriteString(w, attrs[i+1])
		_ = w.WriteByte('"')
	}
	if empty {
		_ = w.WriteByte('/')
	}
	_, _ = w.WriteString(">\n")
}

func writeEnd(w *bufio.Writer, prefix, name string) {
	_, _ = w.WriteString(prefix)
	_, _ = w.WriteString("</")
	_, _ = w.WriteString(name)
	_, _ = w.WriteString(">\n")
}

func (d Document) validate() error {
	if err := validAttr("genome", d.Genome); err != nil {
		return err
	}
	if err := validAttr("version", d.Version); err != nil {
		return err
	}
	for _, resource := range d.Resources {
		if err := validAttr("name", resource.Name); err != nil {
			return err
		}
		if err := validAttr("path", resource.Path); err != nil {
			return err
		}
	}
	return nil
}

// validAttr rejects values that cannot be represented in XML 1.0
func validAttr(name, value string) error {
	if !utf8.ValidString(value) {
		return status.ErrInvalidDocument.Wrapf("attribute %s: invalid UTF-8 in %q", name, value)
	}
	for _, r := range value {
		if !isXMLChar(r) {
			return status.ErrInvalidDocument.Wrapf("attribute %s: character %U not allowed in XML in %q", name, r, value)
		}
	}
	return nil
}

func isXMLChar(r rune) bool {
	return r == 0x09 ||
		r == 0x0A ||
		r == 0x0D ||
		r >= 0x20 && r <= 0xD7FF ||
		r >= 0xE000 && r <= 0xFFFD ||
		r >= 0x10000 && r <= 0x10FFFF
}

type xmlResource struct {
	Name string `xml:"name,attr"`
	Path string `xml:"path,attr"`
}

type xmlGlobal struct {
	XMLName   xml.Name `xml:"Global"`
	Genome    string   `xml:"genome,attr"`
	Version   string   `xml:"version,attr"`
	Resources struct {
		Resource []xmlResource `xml:"Resource"`
	} `xml:"Resources"`
}

// Decode reads back a session document
func Decode(r io.Reader) (Document, error) {
	var global xmlGlobal
	if err := xml.NewDecoder(r).Decode(&global); err != nil {
		return Document{}, status.ErrInvalidDocument.Wrap(err)
	}

	doc := Document{
		Genome:  global.Genome,
		Version: global.Version,
	}
	if len(global.Resources.Resource) > 0 {
		doc.Resources = make([]manifest.Resource, 0, len(global.Resources.Resource))
	}
	for _, resource := range global.Resources.Resource {
		doc.Resources = append(doc.Resources, manifest.Resource{Name: resource.Name, Path: resource.Path})
	}
	return doc, nil
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package codec encodes and decodes entities in the Atom/OData XML format
// used by the bookmark service.
//
// A feed looks like this:
//
//	<feed xmlns="http://www.w3.org/2005/Atom" xmlns:m="..." xmlns:d="...">
//	  <entry>
//	    <content type="application/xml">
//	      <m:properties>
//	        <d:BookmarkId m:type="Edm.Int32">1002</d:BookmarkId>
//	        <d:Name>Go</d:Name>
//	      </m:properties>
//	    </content>
//	  </entry>
//	</feed>
//
// Field elements are matched against the entity schema by local name; only
// elements in the data namespace that name a server-visible field are read.
package codec

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-bookmark-sync/models"
)

const (
	AtomNamespace      = "http://www.w3.org/2005/Atom"
	MetadataNamespace  = "http://schemas.microsoft.com/ado/2007/08/dataservices/metadata"
	DataNamespace      = "http://schemas.microsoft.com/ado/2007/08/dataservices"
	ContentTypeAtomXML = "application/atom+xml"
	contentTypeXML     = "application/xml"
	edmInt32           = "Edm.Int32"
	edmBoolean         = "Edm.Boolean"
	metadataPrefix     = "m"
	dataPrefix         = "d"
	xmlnsAttr          = "xmlns"
	metadataTypeAttr   = metadataPrefix + ":type"
	metadataNullAttr   = metadataPrefix + ":null"
	metadataProperties = metadataPrefix + ":properties"
	trueLiteral        = "true"
)

var (
	// ErrMalformedFeed is returned when the document lacks an expected
	// container element (feed, entry, content or properties).
	ErrMalformedFeed = errors.New("malformed feed")

	// ErrUnsupportedType is returned for an m:type the codec cannot handle.
	ErrUnsupportedType = errors.New("unsupported edm type")
)

type xmlFeed struct {
	XMLName xml.Name   `xml:"http://www.w3.org/2005/Atom feed"`
	Entries []xmlEntry `xml:"http://www.w3.org/2005/Atom entry"`
}

type xmlEntry struct {
	XMLName xml.Name    `xml:"http://www.w3.org/2005/Atom entry"`
	Content *xmlContent `xml:"http://www.w3.org/2005/Atom content"`
}

type xmlContent struct {
	Properties *xmlProperties `xml:"http://schemas.microsoft.com/ado/2007/08/dataservices/metadata properties"`
}

type xmlProperties struct {
	Values []xmlProperty `xml:",any"`
}

type xmlProperty struct {
	XMLName xml.Name
	Type    string `xml:"http://schemas.microsoft.com/ado/2007/08/dataservices/metadata type,attr"`
	Null    string `xml:"http://schemas.microsoft.com/ado/2007/08/dataservices/metadata null,attr"`
	Value   string `xml:",chardata"`
}

// DecodeFeed parses a feed document into entities of type et.
func DecodeFeed(data []byte, et *models.EntityType) ([]models.Entity, error) {
	var feed xmlFeed
	if err := xml.Unmarshal(data, &feed); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedFeed, err)
	}

	items := make([]models.Entity, 0, len(feed.Entries))
	for i, entry := range feed.Entries {
		item, err := decodeEntry(entry, et)
		if err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}
		items = append(items, item)
	}

	return items, nil
}

// DecodeEntry parses a single entry document, as sent by an insert or merge.
func DecodeEntry(data []byte, et *models.EntityType) (models.Entity, error) {
	var entry xmlEntry
	if err := xml.Unmarshal(data, &entry); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedFeed, err)
	}
	return decodeEntry(entry, et)
}

// DecodeEntryFields is like DecodeEntry but also reports which fields the
// entry actually carried. Merge semantics need that set: fields absent
// from the payload must be left untouched.
func DecodeEntryFields(data []byte, et *models.EntityType) (models.Entity, []string, error) {
	var entry xmlEntry
	if err := xml.Unmarshal(data, &entry); err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrMalformedFeed, err)
	}
	item := et.New()
	fields, err := readProperties(entry, et, item)
	if err != nil {
		return nil, nil, err
	}
	return item, fields, nil
}

func decodeEntry(entry xmlEntry, et *models.EntityType) (models.Entity, error) {
	item := et.New()
	if _, err := readProperties(entry, et, item); err != nil {
		return nil, err
	}
	return item, nil
}

func readProperties(entry xmlEntry, et *models.EntityType, item models.Entity) ([]string, error) {
	if entry.Content == nil {
		return nil, fmt.Errorf("%w: 'content' is missing", ErrMalformedFeed)
	}
	if entry.Content.Properties == nil {
		return nil, fmt.Errorf("%w: 'properties' is missing", ErrMalformedFeed)
	}

	var seen []string
	for _, prop := range entry.Content.Properties.Values {
		if prop.XMLName.Space != DataNamespace {
			continue
		}
		field, ok := et.Field(prop.XMLName.Local)
		if !ok || !field.IsOnServer {
			continue
		}

		value, err := propertyValue(prop)
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", field.Name, err)
		}
		if err = item.SetValue(field.Name, value); err != nil {
			return nil, fmt.Errorf("field %s: %w", field.Name, err)
		}
		seen = append(seen, field.Name)
	}

	return seen, nil
}

// propertyValue reads the scalar held by a field element.
// <d:BookmarkId m:type="Edm.Int32">1002</d:BookmarkId>
func propertyValue(prop xmlProperty) (any, error) {
	if strings.EqualFold(prop.Null, trueLiteral) {
		return nil, nil
	}

	switch {
	case prop.Type == "":
		return prop.Value, nil
	case strings.EqualFold(prop.Type, edmInt32):
		n, err := strconv.ParseInt(strings.TrimSpace(prop.Value), 10, 32)
		if err != nil {
			return nil, fmt.Errorf("parse %s %q: %w", edmInt32, prop.Value, err)
		}
		return n, nil
	case strings.EqualFold(prop.Type, edmBoolean):
		b, err := strconv.ParseBool(strings.TrimSpace(prop.Value))
		if err != nil {
			return nil, fmt.Errorf("parse %s %q: %w", edmBoolean, prop.Value, err)
		}
		return b, nil
	}

	return nil, fmt.Errorf("%w: cannot handle '%s'", ErrUnsupportedType, prop.Type)
}

// EncodeEntry renders e as a single entry suitable for an insert or merge.
// Only server-visible, non-key fields are written.
func EncodeEntry(e models.Entity, et *models.EntityType) ([]byte, error) {
	var buf bytes.Buffer
	enc := xml.NewEncoder(&buf)

	if err := writeEntry(enc, e, et, et.ServerFields(), true); err != nil {
		return nil, err
	}
	if err := enc.Flush(); err != nil {
		return nil, fmt.Errorf("flush entry: %w", err)
	}

	return buf.Bytes(), nil
}

// EncodeStoredEntry renders e as a single entry that includes the key field,
// as a server answers an insert.
func EncodeStoredEntry(e models.Entity, et *models.EntityType) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(xml.Header)
	enc := xml.NewEncoder(&buf)

	if err := writeEntry(enc, e, et, storedFields(et), true); err != nil {
		return nil, err
	}
	if err := enc.Flush(); err != nil {
		return nil, fmt.Errorf("flush entry: %w", err)
	}

	return buf.Bytes(), nil
}

// EncodeFeed renders entities as a feed. Unlike EncodeEntry it includes the
// key field, the way a server reports its stored records.
func EncodeFeed(entities []models.Entity, et *models.EntityType) ([]byte, error) {
	fields := storedFields(et)

	var buf bytes.Buffer
	buf.WriteString(xml.Header)
	enc := xml.NewEncoder(&buf)

	feed := xml.StartElement{Name: xml.Name{Local: "feed"}, Attr: namespaceAttrs()}
	if err := enc.EncodeToken(feed); err != nil {
		return nil, fmt.Errorf("encode feed: %w", err)
	}
	for _, e := range entities {
		if err := writeEntry(enc, e, et, fields, false); err != nil {
			return nil, err
		}
	}
	if err := enc.EncodeToken(feed.End()); err != nil {
		return nil, fmt.Errorf("encode feed: %w", err)
	}
	if err := enc.Flush(); err != nil {
		return nil, fmt.Errorf("flush feed: %w", err)
	}

	return buf.Bytes(), nil
}

// storedFields lists the server-visible fields, key included.
func storedFields(et *models.EntityType) []models.EntityField {
	var fields []models.EntityField
	for _, f := range et.Fields {
		if f.IsOnServer {
			fields = append(fields, f)
		}
	}
	return fields
}

func writeEntry(enc *xml.Encoder, e models.Entity, et *models.EntityType, fields []models.EntityField, root bool) error {
	entry := xml.StartElement{Name: xml.Name{Local: "entry"}}
	if root {
		entry.Attr = namespaceAttrs()
	}
	content := xml.StartElement{
		Name: xml.Name{Local: "content"},
		Attr: []xml.Attr{{Name: xml.Name{Local: "type"}, Value: contentTypeXML}},
	}
	properties := xml.StartElement{Name: xml.Name{Local: metadataProperties}}

	for _, tok := range []xml.Token{entry, content, properties} {
		if err := enc.EncodeToken(tok); err != nil {
			return fmt.Errorf("encode %s entry: %w", et.Name, err)
		}
	}

	for _, f := range fields {
		v, err := e.Value(f.Name)
		if err != nil {
			return fmt.Errorf("encode %s entry: %w", et.Name, err)
		}
		if err = writeProperty(enc, f, v); err != nil {
			return fmt.Errorf("encode %s.%s: %w", et.Name, f.Name, err)
		}
	}

	for _, tok := range []xml.Token{properties.End(), content.End(), entry.End()} {
		if err := enc.EncodeToken(tok); err != nil {
			return fmt.Errorf("encode %s entry: %w", et.Name, err)
		}
	}

	return nil
}

func writeProperty(enc *xml.Encoder, f models.EntityField, v any) error {
	el := xml.StartElement{Name: xml.Name{Local: dataPrefix + ":" + f.Name}}
	switch f.DataType {
	case models.Int32:
		el.Attr = append(el.Attr, xml.Attr{Name: xml.Name{Local: metadataTypeAttr}, Value: edmInt32})
	case models.Boolean:
		el.Attr = append(el.Attr, xml.Attr{Name: xml.Name{Local: metadataTypeAttr}, Value: edmBoolean})
	}
	if v == nil {
		el.Attr = append(el.Attr, xml.Attr{Name: xml.Name{Local: metadataNullAttr}, Value: trueLiteral})
	}

	if err := enc.EncodeToken(el); err != nil {
		return err
	}
	if v != nil {
		if err := enc.EncodeToken(xml.CharData(fmt.Sprint(v))); err != nil {
			return err
		}
	}
	return enc.EncodeToken(el.End())
}

// namespaceAttrs declares the default Atom namespace and the m/d prefixes on
// the root element.
func namespaceAttrs() []xml.Attr {
	return []xml.Attr{
		{Name: xml.Name{Local: xmlnsAttr}, Value: AtomNamespace},
		{Name: xml.Name{Local: xmlnsAttr + ":" + metadataPrefix}, Value: MetadataNamespace},
		{Name: xml.Name{Local: xmlnsAttr + ":" + dataPrefix}, Value: DataNamespace},
	}
}

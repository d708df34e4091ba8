package ts

import (
	"bytes"
	"encoding/xml"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spkg/bom"
)

// Parse decodes a TS document
func Parse(r io.Reader) (*Document, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	return Unmarshal(content)
}

// Unmarshal decodes a TS document held in memory
func Unmarshal(content []byte) (*Document, error) {
	d := &decoder{dec: xml.NewDecoder(bytes.NewReader(bom.Clean(content)))}
	d.dec.Strict = true

	return d.document()
}

// ParseFile decodes the TS file at path
func ParseFile(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Parse(f)
}

type decoder struct {
	dec *xml.Decoder
}

func (d *decoder) errorf(format string, args ...interface{}) error {
	line, column := d.dec.InputPos()
	return newParseError(line, column, format, args...)
}

func (d *decoder) wrap(err error) error {
	if err == io.EOF {
		return d.errorf("unexpected end of file")
	}
	if syntaxErr, ok := err.(*xml.SyntaxError); ok {
		return d.errorf("%s", syntaxErr.Msg)
	}
	return d.errorf("%s", err.Error())
}

func (d *decoder) document() (*Document, error) {
	var doc *Document
	for {
		tok, err := d.dec.Token()
		if err == io.EOF {
			if doc == nil {
				return nil, d.errorf("no <TS> element found")
			}
			return doc, nil
		}
		if err != nil {
			return nil, d.wrap(err)
		}

		start, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}
		if start.Name.Local != "TS" || doc != nil {
			return nil, d.errorf("unexpected <%s> element at top level", start.Name.Local)
		}

		doc = &Document{
			Version:        attr(start, "version"),
			Language:       attr(start, "language"),
			SourceLanguage: attr(start, "sourcelanguage"),
		}
		if err := d.readTS(doc); err != nil {
			return nil, err
		}
	}
}

func (d *decoder) readTS(doc *Document) error {
	for {
		tok, err := d.dec.Token()
		if err != nil {
			return d.wrap(err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Local != "context" {
				if err := d.dec.Skip(); err != nil {
					return d.wrap(err)
				}
				continue
			}
			context, err := d.readContext()
			if err != nil {
				return err
			}
			doc.Contexts = append(doc.Contexts, context)
		case xml.EndElement:
			return nil
		}
	}
}

func (d *decoder) readContext() (*Context, error) {
	context := &Context{}
	for {
		tok, err := d.dec.Token()
		if err != nil {
			return nil, d.wrap(err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "name":
				context.Name, err = d.readText()
			case "comment":
				context.Comment, err = d.readText()
			case "message":
				var message *Message
				message, err = d.readMessage(t)
				if err == nil {
					context.Messages = append(context.Messages, message)
				}
			default:
				err = d.skip()
			}
			if err != nil {
				return nil, err
			}
		case xml.EndElement:
			return context, nil
		}
	}
}

func (d *decoder) readMessage(start xml.StartElement) (*Message, error) {
	message := &Message{
		ID:      attr(start, "id"),
		Numerus: attr(start, "numerus") == "yes",
	}

	for {
		tok, err := d.dec.Token()
		if err != nil {
			return nil, d.wrap(err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "location":
				message.Locations = append(message.Locations, Location{
					Filename: attr(t, "filename"),
					Line:     attr(t, "line"),
				})
				err = d.skip()
			case "source":
				message.Source, err = d.readText()
			case "oldsource":
				message.OldSource, err = d.readText()
			case "comment":
				message.Comment, err = d.readText()
			case "oldcomment":
				message.OldComment, err = d.readText()
			case "extracomment":
				message.ExtraComment, err = d.readText()
			case "translatorcomment":
				message.TranslatorComment, err = d.readText()
			case "translation":
				message.Translation, err = d.readTranslation(t, message.Numerus)
			case "userdata":
				message.UserData, err = d.readText()
			default:
				if name, ok := strings.CutPrefix(t.Name.Local, "extra-"); ok {
					var value string
					value, err = d.readText()
					if message.Extras == nil {
						message.Extras = map[string]string{}
					}
					message.Extras[name] = value
					break
				}
				err = d.skip()
			}
			if err != nil {
				return nil, err
			}
		case xml.EndElement:
			return message, nil
		}
	}
}

func (d *decoder) readTranslation(start xml.StartElement, numerus bool) (Translation, error) {
	translation := Translation{Type: TranslationType(attr(start, "type"))}
	if !numerus {
		text, err := d.readVariants(start)
		translation.Text = text
		return translation, err
	}

	for {
		tok, err := d.dec.Token()
		if err != nil {
			return translation, d.wrap(err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Local != "numerusform" {
				if err := d.skip(); err != nil {
					return translation, err
				}
				continue
			}
			form, err := d.readVariants(t)
			if err != nil {
				return translation, err
			}
			translation.NumerusForms = append(translation.NumerusForms, form)
		case xml.EndElement:
			return translation, nil
		}
	}
}

// readText collects the character data up to the end of the current element.
// Control characters written by lupdate as <byte value="x1b"/> are turned
// back into runes.
func (d *decoder) readText() (string, error) {
	var sb strings.Builder
	for {
		tok, err := d.dec.Token()
		if err != nil {
			return "", d.wrap(err)
		}

		switch t := tok.(type) {
		case xml.CharData:
			sb.Write(t)
		case xml.StartElement:
			if t.Name.Local == "byte" {
				r, err := byteValue(attr(t, "value"))
				if err != nil {
					return "", d.errorf("invalid byte value %q", attr(t, "value"))
				}
				sb.WriteRune(r)
			}
			if err := d.skip(); err != nil {
				return "", err
			}
		case xml.EndElement:
			return sb.String(), nil
		}
	}
}

// readVariants reads the text of an element that may be split into
// <lengthvariant> children, joining the variants with VariantSeparator
func (d *decoder) readVariants(start xml.StartElement) (string, error) {
	if attr(start, "variants") != "yes" {
		return d.readText()
	}

	variants := []string{}
	for {
		tok, err := d.dec.Token()
		if err != nil {
			return "", d.wrap(err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Local != "lengthvariant" {
				if err := d.skip(); err != nil {
					return "", err
				}
				continue
			}
			variant, err := d.readText()
			if err != nil {
				return "", err
			}
			variants = append(variants, variant)
		case xml.EndElement:
			return strings.Join(variants, string(VariantSeparator)), nil
		}
	}
}

func (d *decoder) skip() error {
	if err := d.dec.Skip(); err != nil {
		return d.wrap(err)
	}
	return nil
}

func byteValue(value string) (rune, error) {
	var (
		n   uint64
		err error
	)
	if strings.HasPrefix(value, "x") {
		n, err = strconv.ParseUint(value[1:], 16, 32)
	} else {
		n, err = strconv.ParseUint(value, 10, 32)
	}
	return rune(n), err
}

func attr(start xml.StartElement, name string) string {
	for _, a := range start.Attr {
		if a.Name.Local == name {
			return a.Value
		}
	}
	return ""
}

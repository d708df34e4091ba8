package ts

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/samber/lo"
)

const header = "<?xml version=\"1.0\" encoding=\"utf-8\"?>\n<!DOCTYPE TS>\n"

// Encode writes doc in the layout lupdate uses
func Encode(w io.Writer, doc *Document) error {
	var buf bytes.Buffer
	writeDocument(&buf, doc)
	_, err := w.Write(buf.Bytes())
	return err
}

// Marshal returns the encoded form of doc
func Marshal(doc *Document) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, doc); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteFile encodes doc into the file at path, replacing it
func WriteFile(path string, doc *Document) error {
	content, err := Marshal(doc)
	if err != nil {
		return err
	}
	return os.WriteFile(path, content, 0o644)
}

func writeDocument(buf *bytes.Buffer, doc *Document) {
	version := doc.Version
	if version == "" {
		version = DefaultVersion
	}

	buf.WriteString(header)
	buf.WriteString("<TS")
	writeAttr(buf, "version", version)
	writeAttr(buf, "language", doc.Language)
	writeAttr(buf, "sourcelanguage", doc.SourceLanguage)
	buf.WriteString(">\n")

	for _, context := range doc.Contexts {
		writeContext(buf, context)
	}

	buf.WriteString("</TS>\n")
}

func writeContext(buf *bytes.Buffer, context *Context) {
	buf.WriteString("<context>\n")
	writeElement(buf, "    ", "name", context.Name)
	if context.Comment != "" {
		writeElement(buf, "    ", "comment", context.Comment)
	}
	for _, message := range context.Messages {
		writeMessage(buf, message)
	}
	buf.WriteString("</context>\n")
}

func writeMessage(buf *bytes.Buffer, message *Message) {
	const indent = "        "

	buf.WriteString("    <message")
	writeAttr(buf, "id", message.ID)
	if message.Numerus {
		buf.WriteString(` numerus="yes"`)
	}
	buf.WriteString(">\n")

	for _, location := range message.Locations {
		buf.WriteString(indent + "<location")
		writeAttr(buf, "filename", location.Filename)
		writeAttr(buf, "line", location.Line)
		buf.WriteString("/>\n")
	}

	writeElement(buf, indent, "source", message.Source)
	optional := []struct {
		name  string
		value string
	}{
		{"oldsource", message.OldSource},
		{"comment", message.Comment},
		{"oldcomment", message.OldComment},
		{"extracomment", message.ExtraComment},
		{"translatorcomment", message.TranslatorComment},
	}
	for _, element := range optional {
		if element.value != "" {
			writeElement(buf, indent, element.name, element.value)
		}
	}

	buf.WriteString(indent + "<translation")
	writeAttr(buf, "type", string(message.Translation.Type))
	if message.Numerus {
		buf.WriteString(">")
		for _, form := range message.Translation.NumerusForms {
			buf.WriteString("\n" + indent + "    <numerusform")
			writeVariants(buf, indent+"    ", form)
			buf.WriteString("</numerusform>")
		}
		buf.WriteString("\n" + indent)
	} else {
		writeVariants(buf, indent, message.Translation.Text)
	}
	buf.WriteString("</translation>\n")

	extras := lo.Keys(message.Extras)
	sort.Strings(extras)
	for _, name := range extras {
		writeElement(buf, indent, "extra-"+name, message.Extras[name])
	}
	if message.UserData != "" {
		writeElement(buf, indent, "userdata", message.UserData)
	}

	buf.WriteString("    </message>\n")
}

// writeVariants closes the open start tag and writes text, splitting length
// variants into <lengthvariant> children
func writeVariants(buf *bytes.Buffer, indent, text string) {
	if !strings.ContainsRune(text, VariantSeparator) {
		buf.WriteString(">" + protect(text))
		return
	}

	buf.WriteString(` variants="yes">`)
	for _, variant := range strings.Split(text, string(VariantSeparator)) {
		buf.WriteString("\n" + indent + "    <lengthvariant>")
		buf.WriteString(protect(variant))
		buf.WriteString("</lengthvariant>")
	}
	buf.WriteString("\n" + indent)
}

func writeElement(buf *bytes.Buffer, indent, name, value string) {
	buf.WriteString(indent + "<" + name + ">")
	buf.WriteString(protect(value))
	buf.WriteString("</" + name + ">\n")
}

func writeAttr(buf *bytes.Buffer, name, value string) {
	if value == "" {
		return
	}
	buf.WriteString(" " + name + `="` + protect(value) + `"`)
}

// protect escapes text the same way lupdate does. XML 1.0 cannot carry most
// control characters, so they are written as <byte> elements.
func protect(str string) string {
	var sb strings.Builder
	sb.Grow(len(str) * 12 / 10)
	for _, c := range str {
		switch c {
		case '"':
			sb.WriteString("&quot;")
		case '&':
			sb.WriteString("&amp;")
		case '>':
			sb.WriteString("&gt;")
		case '<':
			sb.WriteString("&lt;")
		case '\'':
			sb.WriteString("&apos;")
		default:
			if (c < 0x20 || (c > 0x7f && c < 0xa0)) && c != '\n' && c != '\r' && c != '\t' {
				fmt.Fprintf(&sb, `<byte value="x%x"/>`, c)
			} else {
				sb.WriteRune(c)
			}
		}
	}
	return sb.String()
}

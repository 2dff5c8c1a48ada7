// Package xmlfile implements the XML persistence layer for the student roster.
package xmlfile

import (
	"bufio"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/alem-hub/student-roster/internal/domain/shared"
	"github.com/alem-hub/student-roster/internal/domain/student"
)

// Declaration is written before the root element on save.
const Declaration = `<?xml version='1.0' encoding='utf-8'?>`

// Field element names.
const (
	nameTag  = "name"
	groupTag = "group"
	gradeTag = "grade"
)

// byteOrderMark is the UTF-8 encoding of U+FEFF. Editors on Windows put it
// in front of UTF-8 files.
var byteOrderMark = []byte{0xEF, 0xBB, 0xBF}

// Nesting depths of the document: root, student element, field element.
const (
	depthRoot    = 1
	depthStudent = 2
	depthField   = 3
)

// ══════════════════════════════════════════════════════════════════════════════
// ENCODING
// ══════════════════════════════════════════════════════════════════════════════

type documentXML struct {
	XMLName  xml.Name     `xml:"students"`
	Students []studentXML `xml:"Student"`
}

type studentXML struct {
	Name  string `xml:"name"`
	Group int    `xml:"group"`
	Grade string `xml:"grade"`
}

// Encode writes students as an indented UTF-8 XML document with declaration.
func Encode(w io.Writer, students []student.Student) error {
	doc := documentXML{Students: make([]studentXML, len(students))}
	for i, s := range students {
		doc.Students[i] = studentXML{Name: s.Name, Group: s.Group, Grade: s.Grade}
	}

	if _, err := io.WriteString(w, Declaration+"\n"); err != nil {
		return err
	}

	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("failed to encode roster: %w", err)
	}
	if err := enc.Close(); err != nil {
		return err
	}

	_, err := io.WriteString(w, "\n")
	return err
}

// ══════════════════════════════════════════════════════════════════════════════
// DECODING
// ══════════════════════════════════════════════════════════════════════════════

// Decoded is the outcome of a successful Decode.
type Decoded struct {
	Students []student.Student

	// Skipped counts student elements that never had all three fields.
	Skipped int
}

// accumulator collects the fields of one student element.
type accumulator struct {
	name, grade       string
	group             int
	hasName, hasGroup bool
	hasGrade, emitted bool
}

func (a *accumulator) complete() bool {
	return a.hasName && a.hasGroup && a.hasGrade
}

// readErrRecorder remembers failures of the underlying reader so that they
// can be told apart from malformed XML.
type readErrRecorder struct {
	r   io.Reader
	err error
}

func (rr *readErrRecorder) Read(p []byte) (int, error) {
	n, err := rr.r.Read(p)
	if err != nil && err != io.EOF {
		rr.err = err
	}
	return n, err
}

// Decode reads a roster document.
//
// The root tag is not checked. Every child of the root is a student element;
// its name, group and grade children may come in any order and are collected
// from scratch for each student element. A student is emitted as soon as all
// three fields are seen, later children of the same element are ignored.
// Elements with missing fields are skipped. A leading byte-order mark is
// dropped.
//
// Errors: ErrParse for malformed XML, ErrFormat for a non-integer group,
// ErrIO when the reader itself fails.
func Decode(r io.Reader) (*Decoded, error) {
	rr := &readErrRecorder{r: r}
	br := bufio.NewReader(rr)
	if head, err := br.Peek(len(byteOrderMark)); err == nil && bytes.Equal(head, byteOrderMark) {
		_, _ = br.Discard(len(byteOrderMark))
	}
	dec := xml.NewDecoder(br)

	var (
		out        = &Decoded{Students: make([]student.Student, 0)}
		acc        accumulator
		field      string
		text       strings.Builder
		depth      int
		rootSeen   bool
		rootClosed bool
	)

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			if rr.err != nil {
				return nil, shared.WrapError("xmlfile", "Decode", shared.ErrIO, "failed to read document", rr.err)
			}
			return nil, shared.WrapError("xmlfile", "Decode", shared.ErrParse, "document is not well-formed", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if rootClosed {
				return nil, parseError(dec, fmt.Sprintf("junk element <%s> after document element", t.Name.Local))
			}
			depth++
			switch depth {
			case depthRoot:
				rootSeen = true
			case depthStudent:
				acc = accumulator{}
			case depthField:
				field = t.Name.Local
				text.Reset()
			}

		case xml.EndElement:
			switch depth {
			case depthField:
				if err := acc.apply(field, text.String()); err != nil {
					return nil, err
				}
				if !acc.emitted && acc.complete() {
					out.Students = append(out.Students, student.NewStudent(acc.name, acc.group, acc.grade))
					acc.emitted = true
				}
				field = ""
			case depthStudent:
				if !acc.emitted {
					out.Skipped++
				}
			case depthRoot:
				rootClosed = true
			}
			depth--

		case xml.CharData:
			if depth == depthField {
				text.Write(t)
			} else if depth == 0 && len(strings.TrimSpace(string(t))) > 0 {
				return nil, parseError(dec, "text outside of document element")
			}
		}
	}

	if !rootSeen {
		return nil, shared.NewDomainError("xmlfile", "Decode", shared.ErrParse, "no document element found")
	}
	if depth != 0 {
		return nil, shared.NewDomainError("xmlfile", "Decode", shared.ErrParse, "unexpected end of document")
	}

	return out, nil
}

// apply stores the text of a field element. Unknown tags and fields of an
// already emitted student are ignored.
func (a *accumulator) apply(tag, text string) error {
	if a.emitted {
		return nil
	}

	switch tag {
	case nameTag:
		a.name, a.hasName = text, true
	case gradeTag:
		a.grade, a.hasGrade = text, true
	case groupTag:
		group, err := strconv.Atoi(strings.TrimSpace(text))
		if err != nil {
			return shared.WrapError("xmlfile", "Decode", shared.ErrFormat,
				fmt.Sprintf("group %q is not an integer", text), err)
		}
		a.group, a.hasGroup = group, true
	}

	return nil
}

func parseError(dec *xml.Decoder, msg string) error {
	line, col := dec.InputPos()
	return shared.NewDomainError("xmlfile", "Decode", shared.ErrParse,
		fmt.Sprintf("line %d, column %d: %s", line, col, msg))
}

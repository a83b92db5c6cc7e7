package pom

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rios0rios0/mvnupdate/internal/domain/entities"
)

// element is one XML element with the byte spans needed to rewrite it.
type element struct {
	name      string
	path      string
	offset    int
	textStart int
	textEnd   int
	line      int
	column    int
	text      strings.Builder
	parent    *element
	children  []*element
}

func (e *element) trimmedText() string {
	return strings.TrimSpace(e.text.String())
}

func (e *element) child(name string) *element {
	for _, c := range e.children {
		if c.name == name {
			return c
		}
	}
	return nil
}

func (e *element) childrenNamed(name string) []*element {
	var result []*element
	for _, c := range e.children {
		if c.name == name {
			result = append(result, c)
		}
	}
	return result
}

// find walks a chain of child names, taking the first match at each level.
func (e *element) find(names ...string) *element {
	current := e
	for _, name := range names {
		if current == nil {
			return nil
		}
		current = current.child(name)
	}
	return current
}

func (e *element) handle() entities.ElementHandle {
	return entities.ElementHandle{
		Path:      e.path,
		Offset:    e.offset,
		TextStart: e.textStart,
		TextEnd:   e.textEnd,
		Line:      e.line,
		Column:    e.column,
		Text:      e.trimmedText(),
	}
}

// document is a parsed XML file indexed by element path.
type document struct {
	root   *element
	byPath map[string]*element
}

var errNoRoot = errors.New("document has no root element")

// parseDocument tokenizes content and records, for every element, the span
// between its opening and closing tags. Paths index same-named siblings
// from 1, e.g. project[1]/dependencies[1]/dependency[3]/version[1].
func parseDocument(content []byte) (*document, error) {
	encoding := &charset{content: content}
	decoder := xml.NewDecoder(bytes.NewReader(content))
	decoder.CharsetReader = encoding.reader

	doc := &document{byPath: make(map[string]*element)}
	var stack []*element

	for {
		before := int(decoder.InputOffset())
		line, column := decoder.InputPos()
		token, err := decoder.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("malformed XML: %w", err)
		}

		switch t := token.(type) {
		case xml.StartElement:
			e := &element{
				name:      t.Name.Local,
				offset:    before,
				textStart: int(decoder.InputOffset()),
				line:      line,
				column:    column,
			}
			if len(stack) == 0 {
				if doc.root != nil {
					return nil, errors.New("malformed XML: more than one root element")
				}
				e.path = fmt.Sprintf("%s[1]", e.name)
				doc.root = e
			} else {
				parent := stack[len(stack)-1]
				e.parent = parent
				e.path = fmt.Sprintf("%s/%s[%d]", parent.path, e.name, len(parent.childrenNamed(e.name))+1)
				parent.children = append(parent.children, e)
			}
			doc.byPath[e.path] = e
			stack = append(stack, e)
		case xml.CharData:
			if len(stack) > 0 {
				stack[len(stack)-1].text.Write(t)
			}
		case xml.EndElement:
			if len(stack) == 0 {
				return nil, errors.New("malformed XML: unexpected closing tag")
			}
			stack[len(stack)-1].textEnd = before
			stack = stack[:len(stack)-1]
		}
	}

	if doc.root == nil {
		return nil, errNoRoot
	}
	if len(stack) > 0 {
		return nil, fmt.Errorf("malformed XML: element %q is not closed", stack[len(stack)-1].name)
	}
	encoding.remap(doc)
	return doc, nil
}

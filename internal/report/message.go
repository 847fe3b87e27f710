// Package report renders query views as chat embeds and plain text.
package report

import (
	"fmt"
	"strings"
)

// Colour is a 24-bit RGB embed colour.
type Colour uint32

// Embed colours.
const (
	DarkGreen Colour = 0x1f8b4c
	DarkRed   Colour = 0x992d22
	DarkGrey  Colour = 0x607d8b
)

// Hex renders the colour as #rrggbb.
func (c Colour) Hex() string {
	return fmt.Sprintf("#%06x", uint32(c))
}

// MarshalText encodes the colour as #rrggbb.
func (c Colour) MarshalText() ([]byte, error) {
	return []byte(c.Hex()), nil
}

// Field is one name/value cell of a message.
type Field struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Inline bool   `json:"inline"`
}

// Message is an embed-like reply.
type Message struct {
	Title       string  `json:"title"`
	Description string  `json:"description,omitempty"`
	Colour      Colour  `json:"colour"`
	Fields      []Field `json:"fields,omitempty"`
}

func (m *Message) field(name, value string) {
	m.Fields = append(m.Fields, Field{Name: name, Value: value, Inline: true})
}

func (m *Message) block(name, value string) {
	m.Fields = append(m.Fields, Field{Name: name, Value: value})
}

// Text renders messages for a terminal, one titled section per message.
func Text(messages ...Message) string {
	var sb strings.Builder
	for i, m := range messages {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString("== ")
		sb.WriteString(m.Title)
		sb.WriteString(" ==\n")
		if m.Description != "" {
			sb.WriteString(m.Description)
			sb.WriteByte('\n')
		}
		for _, f := range m.Fields {
			if strings.Contains(f.Value, "\n") {
				sb.WriteString(f.Name)
				sb.WriteString(":\n")
				for _, line := range strings.Split(f.Value, "\n") {
					sb.WriteString("  ")
					sb.WriteString(line)
					sb.WriteByte('\n')
				}
				continue
			}
			sb.WriteString(f.Name)
			sb.WriteString(": ")
			sb.WriteString(f.Value)
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

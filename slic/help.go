package slic

import (
	"bytes"
	"io"

	"github.com/dzonerzy/go-slic/internal/pool"
	slicio "github.com/dzonerzy/go-slic/io"
)

// WriteHelp renders the usage text to w. Headings and names are styled
// only when the parser's IOManager supports color.
func (p *Parser[S]) WriteHelp(w io.Writer) error {
	buf := pool.GetBuffer()
	defer pool.PutBuffer(buf)

	p.renderHelp(buf)
	_, err := w.Write(buf.Bytes())
	return err
}

// PrintHelp writes the usage text to the IOManager's output stream.
func (p *Parser[S]) PrintHelp() {
	_ = p.WriteHelp(p.io.Out())
}

// HelpString returns the usage text without styling.
func (p *Parser[S]) HelpString() string {
	buf := pool.GetBuffer()
	defer pool.PutBuffer(buf)

	p.renderHelpWith(buf, nil)
	return buf.String()
}

func (p *Parser[S]) renderHelp(buf *bytes.Buffer) {
	m := p.io
	if m != nil && !m.SupportsColor() {
		m = nil
	}
	p.renderHelpWith(buf, m)
}

// renderHelpWith writes the help text, styling through m. A nil m renders
// plain text.
func (p *Parser[S]) renderHelpWith(buf *bytes.Buffer, m *slicio.IOManager) {
	d := p.decls

	if d.description != "" {
		buf.WriteString(d.description)
		buf.WriteByte('\n')
	}

	buf.WriteString(slicio.Heading.Sprint(m, "Usage:"))
	buf.WriteByte(' ')
	buf.WriteString(p.program)
	if len(d.options) > 0 {
		buf.WriteString(" [OPTIONS]")
	}
	for _, a := range d.args {
		if a.optional {
			buf.WriteString(" [" + a.name + "]")
		} else {
			buf.WriteString(" <" + a.name + ">")
		}
	}
	if d.varArgs != nil {
		buf.WriteString(" [...]")
	}
	buf.WriteByte('\n')

	if len(d.args) > 0 || d.varArgs != nil {
		buf.WriteByte('\n')
		buf.WriteString(slicio.Heading.Sprint(m, "Arguments:"))
		buf.WriteByte('\n')
		for _, a := range d.args {
			writeHelpLine(buf, m, a.name, "", a.description, true)
		}
		if d.varArgs != nil {
			writeHelpLine(buf, m, "[...]", "", d.varArgs.description, true)
		}
	}

	if len(d.options) > 0 {
		buf.WriteByte('\n')
		buf.WriteString(slicio.Heading.Sprint(m, "Options:"))
		buf.WriteByte('\n')
		for _, o := range d.options {
			label := o.name
			if o.altName != "" {
				label = o.altName + ", " + o.name
			}
			suffix := ""
			if o.needsValue {
				suffix = " <value>"
			}
			writeHelpLine(buf, m, label, suffix, o.description, false)
		}
	}
}

// writeHelpLine writes one indented entry. Argument lines always carry the
// ": " separator; option lines drop it when the description is empty.
func writeHelpLine(buf *bytes.Buffer, m *slicio.IOManager, label, suffix, description string, separator bool) {
	buf.WriteString("  ")
	buf.WriteString(slicio.Bold.Sprint(m, label))
	buf.WriteString(suffix)
	if separator || description != "" {
		buf.WriteString(": ")
		buf.WriteString(description)
	}
	buf.WriteByte('\n')
}

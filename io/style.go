package slicio

import (
	"github.com/fatih/color"
)

// Style is a set of SGR attributes applied when the IOManager allows color.
// The zero value renders text unchanged.
type Style struct {
	attrs []color.Attribute
}

// NewStyle creates a style from fatih/color attributes.
func NewStyle(attrs ...color.Attribute) Style {
	return Style{attrs: attrs}
}

// Add returns a copy of s with extra attributes appended.
func (s Style) Add(attrs ...color.Attribute) Style {
	merged := make([]color.Attribute, 0, len(s.attrs)+len(attrs))
	merged = append(merged, s.attrs...)
	merged = append(merged, attrs...)
	return Style{attrs: merged}
}

// Fg returns a copy of s with a foreground color.
func (s Style) Fg(c color.Attribute) Style { return s.Add(c) }

// Sprint formats a like fmt.Sprint and wraps it in the style's escape
// sequences when m supports color. A nil manager means no color.
func (s Style) Sprint(m *IOManager, a ...any) string {
	c := color.New(s.attrs...)
	if m != nil && m.SupportsColor() && len(s.attrs) > 0 {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c.Sprint(a...)
}

// Sprintf is Sprint with a format string.
func (s Style) Sprintf(m *IOManager, format string, a ...any) string {
	c := color.New(s.attrs...)
	if m != nil && m.SupportsColor() && len(s.attrs) > 0 {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c.Sprintf(format, a...)
}

// Predefined styles used by help rendering.
var (
	Bold    = NewStyle(color.Bold)
	Heading = NewStyle(color.Bold, color.Underline)
	Faint   = NewStyle(color.Faint)
)

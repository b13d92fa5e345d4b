package libdiff

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

type renderOpts struct {
	color   bool
	reverse bool
}

type RenderOption func(*renderOpts)

// Color renders with terminal colors.
func Color(v bool) RenderOption {
	return func(o *renderOpts) { o.color = v }
}

// Reversed renders the changes turning the target back into the source.
func Reversed(v bool) RenderOption {
	return func(o *renderOpts) { o.reverse = v }
}

type palette struct {
	path, del, ins func(a ...any) string
}

func mkPalette(on bool) *palette {
	mk := func(attrs ...color.Attribute) func(a ...any) string {
		c := color.New(attrs...)
		if on {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
		return c.SprintFunc()
	}
	return &palette{
		path: mk(color.Bold),
		del:  mk(color.FgRed),
		ins:  mk(color.FgGreen),
	}
}

// Render writes changes to w, one block per change:
//
//	~ $.runs[0].results[2].message.text
//	  - "unused variable x"
//	  + "unused variable y"
//	  @ "unused variable [-x-]{+y+}"
//
// The last line is present only for strings with character edits.
func Render(w io.Writer, changes []Change, opts ...RenderOption) error {
	o := &renderOpts{}
	for _, opt := range opts {
		opt(o)
	}
	if o.reverse {
		changes = Reverse(changes)
	}
	p := mkPalette(o.color)
	for i := range changes {
		if err := renderChange(w, p, &changes[i]); err != nil {
			return err
		}
	}
	return nil
}

func renderChange(w io.Writer, p *palette, c *Change) error {
	if _, err := fmt.Fprintf(w, "%s %s\n", c.Op.Sign(), p.path(c.Path)); err != nil {
		return err
	}
	if c.Op != Insert {
		if _, err := fmt.Fprintf(w, "  %s %s\n", p.del("-"), p.del(formatValue(c.From))); err != nil {
			return err
		}
	}
	if c.Op != Delete {
		if _, err := fmt.Fprintf(w, "  %s %s\n", p.ins("+"), p.ins(formatValue(c.To))); err != nil {
			return err
		}
	}
	if len(c.Edits) == 0 {
		return nil
	}
	_, err := fmt.Fprintf(w, "  @ %s\n", renderEdits(p, c.Edits))
	return err
}

func renderEdits(p *palette, edits []Edit) string {
	var b strings.Builder
	b.WriteByte('"')
	for _, e := range edits {
		txt := quoteInner(e.Text)
		switch e.Op {
		case Keep:
			b.WriteString(txt)
		case Delete:
			b.WriteString(p.del("[-" + txt + "-]"))
		case Insert:
			b.WriteString(p.ins("{+" + txt + "+}"))
		}
	}
	b.WriteByte('"')
	return b.String()
}

// quoteInner quotes s as a JSON string, without the surrounding quotes.
func quoteInner(s string) string {
	d := formatValue(s)
	return d[1 : len(d)-1]
}

func formatValue(v any) string {
	var b bytes.Buffer
	enc := json.NewEncoder(&b)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return fmt.Sprintf("%v", v)
	}
	return strings.TrimSuffix(b.String(), "\n")
}

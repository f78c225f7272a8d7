// Package output provides a renderer for command output that adapts to
// the environment: styled text on a terminal, markdown when piped, and
// JSON on request.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// Mode selects the output format.
type Mode string

// Output modes.
const (
	ModeAuto     Mode = "auto" // TTY=text, non-TTY=markdown
	ModeText     Mode = "text"
	ModeMarkdown Mode = "markdown"
	ModeJSON     Mode = "json"
)

// Renderer writes formatted command output.
type Renderer struct {
	out  io.Writer
	err  io.Writer
	mode Mode
}

// NewRenderer creates a renderer writing to the given streams.
// An empty or unknown mode falls back to ModeAuto.
func NewRenderer(out, errW io.Writer, mode Mode) *Renderer {
	switch mode {
	case ModeText, ModeMarkdown, ModeJSON, ModeAuto:
	default:
		mode = ModeAuto
	}
	return &Renderer{out: out, err: errW, mode: mode}
}

// EffectiveMode resolves ModeAuto against the output stream: text when
// writing to a terminal, markdown otherwise.
func (r *Renderer) EffectiveMode() Mode {
	if r.mode != ModeAuto {
		return r.mode
	}
	if f, ok := r.out.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return ModeText
	}
	return ModeMarkdown
}

// Out returns the renderer's output stream.
func (r *Renderer) Out() io.Writer {
	return r.out
}

// Header writes a section header at the given level.
func (r *Renderer) Header(level int, text string) {
	switch r.EffectiveMode() {
	case ModeMarkdown:
		_, _ = fmt.Fprintf(r.out, "%s %s\n\n", strings.Repeat("#", level), text)
	default:
		_, _ = fmt.Fprintf(r.out, "%s\n", text)
		if level == 1 {
			_, _ = fmt.Fprintf(r.out, "%s\n", strings.Repeat("=", len(text)))
		}
	}
}

// Println writes a plain line to the output stream.
func (r *Renderer) Println(a ...any) {
	_, _ = fmt.Fprintln(r.out, a...)
}

// Printf writes a formatted string to the output stream.
func (r *Renderer) Printf(format string, a ...any) {
	_, _ = fmt.Fprintf(r.out, format, a...)
}

// CodeBlock writes lines as a fenced code block in markdown mode, or as
// plain lines otherwise.
func (r *Renderer) CodeBlock(lines []string) {
	if r.EffectiveMode() == ModeMarkdown {
		_, _ = fmt.Fprintln(r.out, "```")
		for _, line := range lines {
			_, _ = fmt.Fprintln(r.out, line)
		}
		_, _ = fmt.Fprintln(r.out, "```")
		return
	}
	for _, line := range lines {
		_, _ = fmt.Fprintln(r.out, line)
	}
}

// JSON writes v as indented JSON to the output stream.
func (r *Renderer) JSON(v any) error {
	enc := json.NewEncoder(r.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// Error writes an error line to the error stream.
func (r *Renderer) Error(format string, a ...any) {
	_, _ = fmt.Fprintf(r.err, format+"\n", a...)
}

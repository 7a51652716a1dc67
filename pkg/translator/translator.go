// Package translator lowers stack VM instructions to assembly for the 16-bit
// target machine.
//
// Pipeline: VM line → Parse → Command → Translate → assembly lines
//
// One Translator owns one Context, so every file fed through it shares the
// branch and return counters and every generated label stays unique in the
// concatenated output.
package translator

import "github.com/samber/lo"

// DefaultEntry is the function the bootstrap calls.
const DefaultEntry = "Sys.init"

// Unit is the cleaned content of one VM file.
type Unit struct {
	// Name is the file's base name without extension.
	Name  string
	Lines []string
}

type Translator struct {
	ctx   *Context
	entry string
}

type Option func(*Translator)

// WithEntry sets the function called by the bootstrap.
func WithEntry(name string) Option {
	return func(t *Translator) {
		if name != "" {
			t.entry = name
		}
	}
}

func New(opts ...Option) *Translator {
	t := &Translator{
		ctx:   &Context{},
		entry: DefaultEntry,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

func (t *Translator) Context() *Context {
	return t.ctx
}

func (t *Translator) Entry() string {
	return t.entry
}

// Boot emits the startup sequence. It must precede every file's output.
func (t *Translator) Boot() []string {
	return Translate(Bootstrap{Entry: t.entry}, t.ctx)
}

// Translate lowers the lines of one file. fileName scopes its statics.
func (t *Translator) Translate(fileName string, lines []string) []string {
	t.ctx.FileName = fileName
	return lo.FlatMap(lines, func(line string, _ int) []string {
		return Translate(Parse(line), t.ctx)
	})
}

// TranslateProgram lowers every unit in order, optionally after the
// bootstrap.
func (t *Translator) TranslateProgram(units []Unit, bootstrap bool) []string {
	var out []string
	if bootstrap {
		out = append(out, t.Boot()...)
	}
	for _, u := range units {
		out = append(out, t.Translate(u.Name, u.Lines)...)
	}
	return out
}

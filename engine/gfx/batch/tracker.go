package batch

import "github.com/hubastard/glade/engine/gfx"

// Tracker remembers the pipeline signature of the open batch.
type Tracker struct {
	state gfx.DrawState
	open  bool
}

// Differs reports whether drawing under s would break the open batch.
// A closed tracker never differs; the first command opens the batch.
func (t *Tracker) Differs(s gfx.DrawState) bool { return t.open && t.state != s }

func (t *Tracker) Set(s gfx.DrawState) {
	t.state = s
	t.open = true
}

func (t *Tracker) State() gfx.DrawState { return t.state }
func (t *Tracker) Open() bool           { return t.open }
func (t *Tracker) Reset()               { *t = Tracker{} }

package core

import (
	"errors"
	"testing"
	"time"
)

type recordLayer struct {
	name      string
	log       *[]string
	handles   bool
	updateErr error
}

func (l *recordLayer) OnAttach(*Engine) { *l.log = append(*l.log, l.name+".attach") }
func (l *recordLayer) OnDetach(*Engine) { *l.log = append(*l.log, l.name+".detach") }

func (l *recordLayer) OnUpdate(*Engine, time.Duration) error {
	*l.log = append(*l.log, l.name+".update")
	return l.updateErr
}

func (l *recordLayer) OnRender(*Engine, float64) error {
	*l.log = append(*l.log, l.name+".render")
	return nil
}

func (l *recordLayer) OnEvent(_ *Engine, _ Event) bool {
	*l.log = append(*l.log, l.name+".event")
	return l.handles
}

func TestLayersRunBottomUpAndDetachTopDown(t *testing.T) {
	var log []string
	app := &Layers{}
	app.Stack.Push(&recordLayer{name: "world", log: &log})
	app.Stack.Push(&recordLayer{name: "hud", log: &log})

	app.OnStart(nil)
	app.OnUpdate(nil, time.Millisecond)
	app.OnRender(nil, 0)
	app.OnShutdown(nil)

	want := []string{
		"world.attach", "hud.attach",
		"world.update", "hud.update",
		"world.render", "hud.render",
		"hud.detach", "world.detach",
	}
	if len(log) != len(want) {
		t.Fatalf("log = %v, want %v", log, want)
	}
	for i := range want {
		if log[i] != want[i] {
			t.Fatalf("log[%d] = %q, want %q (full: %v)", i, log[i], want[i], log)
		}
	}
}

func TestLayersEventsStopAtHandler(t *testing.T) {
	var log []string
	app := &Layers{}
	app.Stack.Push(&recordLayer{name: "world", log: &log})
	app.Stack.Push(&recordLayer{name: "hud", log: &log, handles: true})

	app.OnEvent(nil, EventKey{Key: KeySpace, Down: true})

	if len(log) != 1 || log[0] != "hud.event" {
		t.Fatalf("log = %v, want only the top layer", log)
	}
}

func TestLayersUpdateErrorStopsLowerLayers(t *testing.T) {
	var log []string
	boom := errors.New("boom")
	app := &Layers{}
	app.Stack.Push(&recordLayer{name: "world", log: &log, updateErr: boom})
	app.Stack.Push(&recordLayer{name: "hud", log: &log})

	if err := app.OnUpdate(nil, time.Millisecond); !errors.Is(err, boom) {
		t.Fatalf("err = %v, want boom", err)
	}
	if len(log) != 1 || log[0] != "world.update" {
		t.Fatalf("log = %v, want update to stop after the failing layer", log)
	}
}

func TestLayerStackPop(t *testing.T) {
	var ls LayerStack
	if _, ok := ls.Pop(); ok {
		t.Fatal("empty stack should not pop")
	}
	var log []string
	l := &recordLayer{name: "a", log: &log}
	ls.Push(l)
	got, ok := ls.Pop()
	if !ok || got != l {
		t.Fatalf("Pop = %v, %v", got, ok)
	}
}

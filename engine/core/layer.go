package core

import "time"

// Layer is one slice of an app: a scene, an overlay, a debug panel.
// Layers update and render in push order; events walk the stack
// top-down until one reports handled.
type Layer interface {
	OnAttach(e *Engine)
	OnDetach(e *Engine)
	OnUpdate(e *Engine, dt time.Duration) error
	OnRender(e *Engine, blend float64) error
	OnEvent(e *Engine, ev Event) bool // true stops propagation
}

type LayerStack struct{ list []Layer }

func (ls *LayerStack) Push(l Layer) { ls.list = append(ls.list, l) }

func (ls *LayerStack) Pop() (Layer, bool) {
	if len(ls.list) == 0 {
		return nil, false
	}
	i := len(ls.list) - 1
	l := ls.list[i]
	ls.list = ls.list[:i]
	return l, true
}

func (ls *LayerStack) ForEach(f func(Layer)) {
	for _, l := range ls.list {
		f(l)
	}
}

func (ls *LayerStack) ForEachReverse(f func(Layer) bool) {
	for i := len(ls.list) - 1; i >= 0; i-- {
		if stop := f(ls.list[i]); stop {
			break
		}
	}
}

// Layers adapts a LayerStack to the App hooks. Push layers before Run;
// they attach on start and detach in reverse order on shutdown.
type Layers struct {
	Stack LayerStack
}

func (a *Layers) OnStart(e *Engine) error {
	a.Stack.ForEach(func(l Layer) { l.OnAttach(e) })
	return nil
}

func (a *Layers) OnUpdate(e *Engine, dt time.Duration) error {
	var err error
	a.Stack.ForEach(func(l Layer) {
		if err == nil {
			err = l.OnUpdate(e, dt)
		}
	})
	return err
}

func (a *Layers) OnRender(e *Engine, blend float64) error {
	var err error
	a.Stack.ForEach(func(l Layer) {
		if err == nil {
			err = l.OnRender(e, blend)
		}
	})
	return err
}

func (a *Layers) OnEvent(e *Engine, ev Event) {
	a.Stack.ForEachReverse(func(l Layer) bool { return l.OnEvent(e, ev) })
}

func (a *Layers) OnShutdown(e *Engine) {
	for {
		l, ok := a.Stack.Pop()
		if !ok {
			return
		}
		l.OnDetach(e)
	}
}

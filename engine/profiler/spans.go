//go:build profile

package profiler

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"
)

// Init sizes the span ring. Call once at startup; spans recorded
// before Init are dropped.
func Init(capacity int) {
	if capacity <= 0 {
		capacity = 1 << 20
	}
	ring.init(capacity)
}

// Start opens a span and returns the func that closes it. Safe from
// any goroutine once Init ran.
func Start(name string) func() {
	if !ring.ready.Load() {
		return func() {}
	}
	id := internName(name)
	opened := time.Now().UnixNano()
	ring.push(span{at: opened, name: id, open: true})
	return func() {
		closed := time.Now().UnixNano()
		if closed < opened {
			closed = opened
		}
		ring.push(span{at: closed, name: id})
	}
}

// Dump writes the recorded spans as a speedscope evented profile and
// returns the path written. An empty path lands in the system temp
// directory.
func Dump(path string) (string, error) {
	spans := ring.snapshot()
	if len(spans) == 0 {
		return "", fmt.Errorf("profiler: no spans recorded")
	}
	if path == "" {
		path = filepath.Join(os.TempDir(), "glade.profile.speedscope.json")
	}
	if err := writeSpeedscope(spans, path); err != nil {
		return "", err
	}
	return path, nil
}

type span struct {
	at   int64 // ns
	name int
	open bool
}

type spanRing struct {
	ready atomic.Bool
	size  uint64
	write atomic.Uint64
	spans []span
}

var ring spanRing

func (r *spanRing) init(capacity int) {
	r.size = uint64(capacity)
	r.spans = make([]span, r.size)
	r.write.Store(0)
	r.ready.Store(true)
}

func (r *spanRing) push(s span) {
	i := r.write.Add(1) - 1
	r.spans[i%r.size] = s
}

// snapshot returns the retained spans in write order.
func (r *spanRing) snapshot() []span {
	n := r.write.Load()
	if n == 0 {
		return nil
	}
	start := uint64(0)
	if n > r.size {
		start = n - r.size
	}
	out := make([]span, 0, n-start)
	for k := start; k < n; k++ {
		out = append(out, r.spans[k%r.size])
	}
	return out
}

var (
	namesMu sync.Mutex
	names   []string
	nameIDs = map[string]int{}
)

func internName(name string) int {
	namesMu.Lock()
	defer namesMu.Unlock()
	if id, ok := nameIDs[name]; ok {
		return id
	}
	id := len(names)
	nameIDs[name] = id
	names = append(names, name)
	return id
}

type ssFile struct {
	Schema   string      `json:"$schema"`
	Shared   ssShared    `json:"shared"`
	Profiles []ssProfile `json:"profiles"`
	Exporter string      `json:"exporter,omitempty"`
}
type ssShared struct {
	Frames []ssFrame `json:"frames"`
}
type ssFrame struct {
	Name string `json:"name"`
}
type ssProfile struct {
	Type       string    `json:"type"`
	Name       string    `json:"name"`
	Unit       string    `json:"unit"`
	StartValue int64     `json:"startValue"`
	EndValue   int64     `json:"endValue"`
	Events     []ssEvent `json:"events"`
}
type ssEvent struct {
	Type  string `json:"type"` // "O" or "C"
	At    int64  `json:"at"`   // µs since first span
	Frame int    `json:"frame"`
}

func writeSpeedscope(spans []span, path string) error {
	namesMu.Lock()
	frames := make([]ssFrame, len(names))
	for i, n := range names {
		frames[i] = ssFrame{Name: n}
	}
	namesMu.Unlock()

	// Speedscope wants balanced, monotonic events: drop closes that do
	// not match the top of the stack, close whatever stays open at the
	// final timestamp.
	base := spans[0].at
	events := make([]ssEvent, 0, len(spans)+8)
	stack := make([]int, 0, 64)
	last := int64(0)
	for _, s := range spans {
		at := (s.at - base) / 1000
		if at < last {
			at = last
		}
		if s.open {
			events = append(events, ssEvent{Type: "O", At: at, Frame: s.name})
			stack = append(stack, s.name)
		} else {
			if len(stack) == 0 || stack[len(stack)-1] != s.name {
				continue
			}
			stack = stack[:len(stack)-1]
			events = append(events, ssEvent{Type: "C", At: at, Frame: s.name})
		}
		last = at
	}
	for i := len(stack) - 1; i >= 0; i-- {
		events = append(events, ssEvent{Type: "C", At: last, Frame: stack[i]})
	}
	if len(events) == 0 {
		return fmt.Errorf("profiler: no balanced spans")
	}

	doc := ssFile{
		Schema: "https://www.speedscope.app/file-format-schema.json",
		Shared: ssShared{Frames: frames},
		Profiles: []ssProfile{{
			Type:     "evented",
			Name:     "glade capture",
			Unit:     "microseconds",
			EndValue: last,
			Events:   events,
		}},
		Exporter: "glade-profiler",
	}

	tmp := path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(&doc); err != nil {
		f.Close()
		os.Remove(tmp)
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

package bindings

import (
	"fmt"
	"log"

	"github.com/milk9111/zeninput/input"
)

// Source produces the spec a Reloader builds from.
type Source func() (*Spec, error)

// FileSource reads name through Load, so an on-disk copy wins over the
// embedded one.
func FileSource(name string) Source {
	return func() (*Spec, error) {
		data, err := Load(name)
		if err != nil {
			return nil, fmt.Errorf("bindings: load %s: %w", name, err)
		}
		return Parse(data)
	}
}

// Reloader owns the active Set and swaps it when its source changes. Reload
// and Poll must run on the tick goroutine.
type Reloader struct {
	sys    *input.System
	source Source
	set    *Set
	events <-chan string
}

func NewReloader(sys *input.System, source Source) (*Reloader, error) {
	r := &Reloader{sys: sys, source: source}
	if err := r.Reload(); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *Reloader) Set() *Set { return r.set }

// Watch makes Poll reload on every path received from events.
func (r *Reloader) Watch(events <-chan string) { r.events = events }

// Reload rebuilds the Set. Controls that keep their name carry their held
// state and timing over, so a reload does not produce phantom presses. On
// failure the previous Set stays active.
func (r *Reloader) Reload() error {
	spec, err := r.source()
	if err != nil {
		return err
	}
	set, err := Build(r.sys, spec)
	if err != nil {
		return err
	}
	set.inherit(r.set)
	r.set = set
	return nil
}

// Poll drains pending watcher events without blocking and reports whether the
// Set was replaced.
func (r *Reloader) Poll() bool {
	changed := false
	for {
		select {
		case path, ok := <-r.events:
			if !ok {
				r.events = nil
				return changed
			}
			if err := r.Reload(); err != nil {
				log.Printf("Bindings: reload after %s failed, keeping previous bindings: %v", path, err)
				continue
			}
			log.Printf("Bindings: reloaded after change to %s", path)
			changed = true
		default:
			return changed
		}
	}
}

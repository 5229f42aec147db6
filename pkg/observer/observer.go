package observer

import (
	"fmt"
	"io"
	"os"

	"github.com/selectdb/state_observer/pkg/subject"
)

var (
	_ subject.Observer = (*ConcreteObserverA)(nil)
	_ subject.Observer = (*ConcreteObserverB)(nil)
)

type Option func(*base)

// WithOutput sets where the observer reports its reactions, os.Stdout by default.
func WithOutput(w io.Writer) Option {
	return func(b *base) {
		b.out = w
	}
}

type base struct {
	Name string
	out  io.Writer
}

func newBase(name string, opts []Option) base {
	b := base{
		Name: name,
		out:  os.Stdout,
	}
	for _, opt := range opts {
		opt(&b)
	}
	return b
}

func (b *base) react(kind string) {
	out := b.out
	if out == nil {
		out = os.Stdout
	}
	fmt.Fprintf(out, "%s: Reacted to the event\n", kind)
}

type ConcreteObserverA struct {
	base
}

func NewConcreteObserverA(name string, opts ...Option) *ConcreteObserverA {
	return &ConcreteObserverA{base: newBase(name, opts)}
}

func (o *ConcreteObserverA) Update(_ subject.StateView) {
	o.react("ConcreteObserverA")
}

func (o *ConcreteObserverA) String() string {
	return fmt.Sprintf("ConcreteObserverA(%s)", o.Name)
}

type ConcreteObserverB struct {
	base
}

func NewConcreteObserverB(name string, opts ...Option) *ConcreteObserverB {
	return &ConcreteObserverB{base: newBase(name, opts)}
}

func (o *ConcreteObserverB) Update(_ subject.StateView) {
	o.react("ConcreteObserverB")
}

func (o *ConcreteObserverB) String() string {
	return fmt.Sprintf("ConcreteObserverB(%s)", o.Name)
}

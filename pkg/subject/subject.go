package subject

import (
	"fmt"
	"io"
	"os"

	"github.com/selectdb/state_observer/pkg/utils"
	"github.com/selectdb/state_observer/pkg/xmetrics"

	log "github.com/sirupsen/logrus"
	"golang.org/x/exp/slices"
)

// businessState is the value SomeBusinessLogic moves the subject to.
const businessState = 1

// StateView is the read-only side of a Subject that observers get on Update.
type StateView interface {
	State() int
}

//go:generate mockgen -destination=mock_observer_test.go -package=subject . Observer
type Observer = utils.Observer[StateView]

var _ utils.Subject[StateView] = (*Subject)(nil)

type Option func(*Subject)

// WithOutput sets where state change messages are written, os.Stdout by default.
func WithOutput(w io.Writer) Option {
	return func(s *Subject) {
		s.out = w
	}
}

// Subject owns the state and notifies the attached observers whenever it changes.
//
// A Subject is not safe for concurrent use. Observers must not attach or detach
// on the same subject from inside Update; the result is undefined.
type Subject struct {
	state     int
	observers []Observer
	out       io.Writer
}

func NewSubject(opts ...Option) *Subject {
	s := &Subject{
		out: os.Stdout,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Subject) State() int {
	return s.state
}

// Len returns the number of attached entries, duplicates included.
func (s *Subject) Len() int {
	return len(s.observers)
}

// impl utils.Subject[StateView]
func (s *Subject) Attach(observer Observer) {
	if observer == nil {
		return
	}
	log.Debugf("attach observer %v", observer)

	s.observers = append(s.observers, observer)
	xmetrics.Attach(len(s.observers))
}

// Detach removes every entry that is the same observer as the given one. Unknown
// observers are ignored.
func (s *Subject) Detach(observer Observer) {
	before := len(s.observers)
	same := func(o Observer) bool {
		return utils.SameObserver(o, observer)
	}
	for i := slices.IndexFunc(s.observers, same); i >= 0; i = slices.IndexFunc(s.observers, same) {
		s.observers = slices.Delete(s.observers, i, i+1)
	}

	removed := before - len(s.observers)
	if removed == 0 {
		log.Debugf("detach observer %v, not attached", observer)
		return
	}
	log.Debugf("detach observer %v, removed %d", observer, removed)
	xmetrics.Detach(removed, len(s.observers))
}

func (s *Subject) Notify() {
	log.Tracef("notify %d observers, state: %d", len(s.observers), s.state)

	for _, o := range s.observers {
		o.Update(s)
	}
	xmetrics.Notify(len(s.observers))
}

// SetState stores the new state and notifies every observer before reporting it.
func (s *Subject) SetState(state int) {
	s.state = state
	xmetrics.StateChanged(state)

	s.Notify()
	fmt.Fprintf(s.out, "Subject: My state has just changed to: %d\n", s.state)
}

func (s *Subject) SomeBusinessLogic() {
	s.SetState(businessState)
}

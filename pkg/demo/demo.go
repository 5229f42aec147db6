package demo

import (
	"io"

	"github.com/selectdb/state_observer/pkg/observer"
	"github.com/selectdb/state_observer/pkg/subject"
	"github.com/selectdb/state_observer/pkg/utils"
	"github.com/selectdb/state_observer/pkg/xerror"

	log "github.com/sirupsen/logrus"
)

const (
	subjectName   = "demo"
	DefaultRounds = 2
)

type Config struct {
	// Rounds is how many times the business logic runs before the detach.
	Rounds int
	// DetachAttached detaches the attached B itself instead of a fresh copy of it.
	DetachAttached bool
}

func DefaultConfig() Config {
	return Config{Rounds: DefaultRounds}
}

func (c Config) Validate() error {
	if c.Rounds < 0 {
		return xerror.Errorf(xerror.Config, "rounds is negative: %d", c.Rounds)
	}
	return nil
}

// Run attaches observers A and B, runs the business logic cfg.Rounds times, detaches B
// and runs it once more. Everything the subject and observers report goes to out.
func Run(cfg Config, out io.Writer) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	cleanup := utils.LabelGoroutine(subjectName)
	defer cleanup()

	s := subject.NewSubject(subject.WithOutput(out))

	observerA := observer.NewConcreteObserverA("A", observer.WithOutput(out))
	s.Attach(observerA)

	observerB := observer.NewConcreteObserverB("B", observer.WithOutput(out))
	s.Attach(observerB)

	for i := 0; i < cfg.Rounds; i++ {
		s.SomeBusinessLogic()
	}

	if cfg.DetachAttached {
		s.Detach(observerB)
	} else {
		// a new B is a different observer, nothing gets detached
		s.Detach(observer.NewConcreteObserverB("B", observer.WithOutput(out)))
	}
	log.Infof("%d observers attached after detach", s.Len())

	s.SomeBusinessLogic()
	return nil
}

package waitdomain

import (
	"fmt"
	"slices"
	"strings"
	"time"
)

const (
	DefaultMaxInterval = 30 * time.Second
	DefaultMaxWait     = 1200 * time.Second
)

type OperationHandle string

func ParseOperationHandle(s string) (OperationHandle, error) {
	if strings.TrimSpace(s) == "" {
		return "", fmt.Errorf("%w: %q", ErrInvalidHandle, s)
	}
	return OperationHandle(s), nil
}

func (h OperationHandle) String() string {
	return string(h)
}

// StatusSnapshot is the result of a single status fetch. Payload is the typed
// response of the fetch and is never inspected by the waiter.
type StatusSnapshot struct {
	Status  string
	Payload any
}

// AcceptanceSet is a set of case-insensitive states. The zero value is empty.
type AcceptanceSet struct {
	states map[string]struct{}
}

func NewAcceptanceSet(states ...string) AcceptanceSet {
	set := AcceptanceSet{states: make(map[string]struct{}, len(states))}
	for _, state := range states {
		state = strings.TrimSpace(state)
		if state == "" {
			continue
		}
		set.states[strings.ToLower(state)] = struct{}{}
	}
	return set
}

func (s AcceptanceSet) Empty() bool {
	return len(s.states) == 0
}

func (s AcceptanceSet) Contains(status string) bool {
	if s.Empty() {
		return false
	}
	_, ok := s.states[strings.ToLower(status)]
	return ok
}

func (s AcceptanceSet) States() []string {
	states := make([]string, 0, len(s.states))
	for state := range s.states {
		states = append(states, state)
	}
	slices.Sort(states)
	return states
}

type WaitConfig struct {
	MaxInterval       time.Duration
	MaxWait           time.Duration
	SucceedOnNotFound bool
}

func DefaultWaitConfig() WaitConfig {
	return WaitConfig{
		MaxInterval: DefaultMaxInterval,
		MaxWait:     DefaultMaxWait,
	}
}

// WaitConfigFromSeconds builds a WaitConfig from the max_interval_seconds and
// max_wait_seconds options. Non-positive values select the defaults.
func WaitConfigFromSeconds(maxIntervalSeconds, maxWaitSeconds int, succeedOnNotFound bool) WaitConfig {
	cfg := WaitConfig{
		MaxInterval:       time.Duration(maxIntervalSeconds) * time.Second,
		MaxWait:           time.Duration(maxWaitSeconds) * time.Second,
		SucceedOnNotFound: succeedOnNotFound,
	}
	return cfg.WithDefaults()
}

func (c WaitConfig) WithDefaults() WaitConfig {
	if c.MaxInterval <= 0 {
		c.MaxInterval = DefaultMaxInterval
	}
	if c.MaxWait <= 0 {
		c.MaxWait = DefaultMaxWait
	}
	return c
}

type Outcome int

const (
	OutcomeSkipped Outcome = iota
	OutcomeMatched
	OutcomeNotFound
)

func (o Outcome) String() string {
	switch o {
	case OutcomeSkipped:
		return "skipped"
	case OutcomeMatched:
		return "matched"
	case OutcomeNotFound:
		return "not_found"
	default:
		return fmt.Sprintf("outcome(%d)", int(o))
	}
}

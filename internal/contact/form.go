package contact

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"
)

var (
	// ErrSubmitting is returned when a submit arrives while another is in flight.
	ErrSubmitting = errors.New("contact: submission already in progress")
	// ErrUnknownField is returned by Set for names outside the form.
	ErrUnknownField = errors.New("contact: unknown form field")
)

// DefaultDelay is the simulated network latency of a submission.
const DefaultDelay = 1500 * time.Millisecond

// Notice is the confirmation shown after a successful submission.
type Notice struct {
	Title       string
	Description string
}

var sentNotice = Notice{
	Title:       "Message Sent!",
	Description: "Thank you for reaching out. I'll respond to your message soon.",
}

// Snapshot is a read-only copy of the form used for rendering.
type Snapshot struct {
	Values     Values
	Errors     FieldErrors
	Submitting bool
	Notice     *Notice
}

// Form holds one visitor's contact form. The zero value is an idle, empty form.
type Form struct {
	mu         sync.Mutex
	values     Values
	errors     FieldErrors
	submitting bool
	notice     *Notice
}

// Set records a live input change.
func (f *Form) Set(field, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.values.Set(field, value)
}

// Snapshot copies the current state. It does not consume the notice.
func (f *Form) Snapshot() Snapshot {
	f.mu.Lock()
	defer f.mu.Unlock()

	snap := Snapshot{
		Values:     f.values,
		Submitting: f.submitting,
	}
	if len(f.errors) > 0 {
		snap.Errors = make(FieldErrors, len(f.errors))
		for k, v := range f.errors {
			snap.Errors[k] = v
		}
	}
	if f.notice != nil {
		n := *f.notice
		snap.Notice = &n
	}
	return snap
}

// TakeNotice returns the pending notice and clears it, so each
// confirmation is displayed once.
func (f *Form) TakeNotice() *Notice {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := f.notice
	f.notice = nil
	return n
}

// Submitting reports whether a submission is in flight.
func (f *Form) Submitting() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.submitting
}

// begin validates v and, when valid, moves the form into the submitting state.
func (f *Form) begin(v Values) (Values, FieldErrors, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.submitting {
		return Values{}, nil, ErrSubmitting
	}

	f.values = v.Normalize()
	f.notice = nil
	if errs := f.values.Validate(); errs != nil {
		f.errors = errs
		return Values{}, errs, nil
	}

	f.errors = nil
	f.submitting = true
	return f.values, nil, nil
}

func (f *Form) finish() {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.values = Values{}
	f.submitting = false
	n := sentNotice
	f.notice = &n
}

// Delivery receives validated submissions.
type Delivery interface {
	Deliver(ctx context.Context, v Values) error
}

// Submitter runs the simulated submission for any number of forms.
type Submitter struct {
	delay    time.Duration
	delivery Delivery
	log      *zap.Logger
	after    func(time.Duration) <-chan time.Time
}

// NewSubmitter returns a Submitter that waits delay before delivering.
// A nil delivery logs the submission; a nil logger discards logs.
func NewSubmitter(delay time.Duration, delivery Delivery, log *zap.Logger) *Submitter {
	if log == nil {
		log = zap.NewNop()
	}
	if delivery == nil {
		delivery = NewLogDelivery(log)
	}
	return &Submitter{
		delay:    delay,
		delivery: delivery,
		log:      log,
		after:    time.After,
	}
}

// Delay is the simulated latency.
func (s *Submitter) Delay() time.Duration {
	return s.delay
}

// Submit validates v against f. Invalid input is recorded on the form and
// returned without submitting. Valid input puts the form in the submitting
// state, waits the delay, delivers, then clears the fields and leaves a
// notice. The wait cannot be cancelled and delivery failures are only logged.
func (s *Submitter) Submit(f *Form, v Values) (FieldErrors, error) {
	clean, errs, err := f.begin(v)
	if err != nil || errs != nil {
		return errs, err
	}

	<-s.after(s.delay)

	if err := s.delivery.Deliver(context.Background(), clean); err != nil {
		s.log.Warn("contact delivery failed", zap.Error(err))
	}

	f.finish()
	return nil, nil
}

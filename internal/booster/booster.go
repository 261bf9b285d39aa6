package booster

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strings"
	"time"
)

const (
	SourceFallback = "fallback"

	systemPrompt = "You are a wellness coach who gives short motivational quotes for mental wellbeing."
	userPrompt   = "Give me one short motivational quote to boost my mood today."
)

var FallbackQuotes = []string{
	"You are stronger than you think, and braver than you feel.",
	"Your mind is a powerful thing. Fill it with positive thoughts.",
	"Small steps every day lead to big changes.",
	"It's okay to rest. Don't forget to care for yourself.",
	"You are doing your best, and that is enough.",
	"Every day may not be good, but there is something good in every day.",
}

// Generator produces one motivational quote from a remote service.
type Generator interface {
	Name() string
	Generate(ctx context.Context) (string, error)
}

type RemoteError struct {
	Provider string
	Err      error
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("%s quote request: %v", e.Provider, e.Err)
}

func (e *RemoteError) Unwrap() error { return e.Err }

// Quote is the outcome of Booster.Quote. Err holds the remote failure when
// Source is SourceFallback because a generator was tried.
type Quote struct {
	Text   string
	Source string
	Err    error
}

type Booster struct {
	gen     Generator
	rng     *rand.Rand
	timeout time.Duration
}

type Option func(*Booster)

func WithRand(r *rand.Rand) Option {
	return func(b *Booster) { b.rng = r }
}

func WithTimeout(d time.Duration) Option {
	return func(b *Booster) { b.timeout = d }
}

// New builds a Booster. gen may be nil, in which case every quote comes
// from FallbackQuotes.
func New(gen Generator, opts ...Option) *Booster {
	b := &Booster{
		gen:     gen,
		rng:     rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0x5eed)),
		timeout: 10 * time.Second,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

func (b *Booster) Quote(ctx context.Context) Quote {
	if b.gen == nil {
		return Quote{Text: Fallback(b.rng), Source: SourceFallback}
	}
	text, err := b.remote(ctx)
	if err != nil {
		return Quote{Text: Fallback(b.rng), Source: SourceFallback, Err: err}
	}
	return Quote{Text: text, Source: b.gen.Name()}
}

func (b *Booster) remote(ctx context.Context) (string, error) {
	if b.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, b.timeout)
		defer cancel()
	}
	text, err := b.gen.Generate(ctx)
	if err != nil {
		return "", &RemoteError{Provider: b.gen.Name(), Err: err}
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return "", &RemoteError{Provider: b.gen.Name(), Err: fmt.Errorf("empty response")}
	}
	return text, nil
}

func Fallback(r *rand.Rand) string {
	return FallbackQuotes[r.IntN(len(FallbackQuotes))]
}

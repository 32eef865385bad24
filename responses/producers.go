package responses

import (
	"context"
	"io"
	"iter"

	"golang.org/x/sync/errgroup"

	"github.com/sargassum-world/turboresponse/handling"
)

// Producer produces the fragments of a streamed response body on demand.
type Producer interface {
	// Next blocks until the next fragment is available, and returns it. Next returns io.EOF when no
	// more fragments will be produced.
	Next(ctx context.Context) (fragment string, err error)
	// Close releases any resources held by the producer. It's called exactly once by the consumer,
	// whether or not the producer was exhausted. Next must not be called after Close.
	Close() error
}

// Slices

type sliceProducer struct {
	fragments []string
}

// FromSlice creates a [Producer] of the provided fragments.
func FromSlice(fragments ...string) Producer {
	return &sliceProducer{fragments: fragments}
}

func (p *sliceProducer) Next(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if len(p.fragments) == 0 {
		return "", io.EOF
	}
	fragment := p.fragments[0]
	p.fragments = p.fragments[1:]
	return fragment, nil
}

func (p *sliceProducer) Close() error {
	p.fragments = nil
	return nil
}

// Iterators

type pullProducer struct {
	next func() (string, error, bool)
	stop func()
}

// FromSeq creates a [Producer] which pulls fragments from the iterator. Closing the producer stops
// the iterator, so deferred cleanup in the iterator function runs even if the response ends
// before the iterator is exhausted.
func FromSeq(seq iter.Seq[string]) Producer {
	return FromSeq2(func(yield func(string, error) bool) {
		for fragment := range seq {
			if !yield(fragment, nil) {
				return
			}
		}
	})
}

// FromSeq2 is like [FromSeq], but for iterators which can fail. The first non-nil error ends the
// stream.
func FromSeq2(seq iter.Seq2[string, error]) Producer {
	next, stop := iter.Pull2(seq)
	return &pullProducer{next: next, stop: stop}
}

func (p *pullProducer) Next(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	fragment, err, ok := p.next()
	if !ok {
		return "", io.EOF
	}
	return fragment, err
}

func (p *pullProducer) Close() error {
	p.stop()
	return nil
}

// Generators

// GenerateFunc produces fragments by passing each of them to yield, in order. Yield blocks until
// the consumer is ready for the fragment, and returns an error once the consumer has gone away;
// the GenerateFunc should then return promptly.
type GenerateFunc func(ctx context.Context, yield func(fragment string) error) error

type generator struct {
	fragments <-chan string
	eg        *errgroup.Group
	cancel    context.CancelFunc
}

// Generate runs the generator function in a goroutine and creates a [Producer] of the fragments it
// yields. The hand-off is unbuffered, so the generator is never more than one fragment ahead of
// the consumer. Closing the producer cancels the generator's context and waits for it to return.
func Generate(ctx context.Context, f GenerateFunc) Producer {
	ctx, cancel := context.WithCancel(ctx)
	eg, egctx := errgroup.WithContext(ctx)
	fragments := make(chan string)
	eg.Go(func() error {
		defer close(fragments)
		return f(egctx, func(fragment string) error {
			select {
			case <-egctx.Done():
				return egctx.Err()
			case fragments <- fragment:
				return nil
			}
		})
	})
	return &generator{
		fragments: fragments,
		eg:        eg,
		cancel:    cancel,
	}
}

func (g *generator) Next(ctx context.Context) (string, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case fragment, ok := <-g.fragments:
		if !ok {
			if err := g.eg.Wait(); err != nil {
				return "", err
			}
			return "", io.EOF
		}
		return fragment, nil
	}
}

func (g *generator) Close() error {
	g.cancel()
	// Cancellation is how Close stops the generator, so it isn't reported as a failure
	return handling.Except(g.eg.Wait(), context.Canceled)
}

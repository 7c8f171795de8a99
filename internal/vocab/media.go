package vocab

import "context"

// MediaGenerator produces supplementary study media for a word. Card
// rendering works without it, so implementations may fail or return
// empty results freely.
type MediaGenerator interface {
	IllustrationURL(ctx context.Context, word string) (string, error)
	PronunciationURL(ctx context.Context, word string) (string, error)
}

// NoopMediaGenerator returns no media at all.
type NoopMediaGenerator struct{}

func NewNoopMediaGenerator() *NoopMediaGenerator { return &NoopMediaGenerator{} }

func (g *NoopMediaGenerator) IllustrationURL(ctx context.Context, word string) (string, error) {
	return "", nil
}

func (g *NoopMediaGenerator) PronunciationURL(ctx context.Context, word string) (string, error) {
	return "", nil
}

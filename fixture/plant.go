package fixture

import (
	"fmt"

	"github.com/katalvlaran/lvpattern/combinatorics"
	"github.com/katalvlaran/lvpattern/embed"
	"github.com/katalvlaran/lvpattern/matrix"
)

// Plant embeds pattern into emb at random assignments until count plantings
// were accepted, and returns those assignments in acceptance order.
// Conflicting draws and assignments already planted in emb are discarded
// and retried, so the result holds distinct assignments.
//
// Errors:
//   - ErrInvalidSpec when count < 0 or maxAttempts < count.
//   - errors from embed.EmbedPattern (nil pattern, pattern larger than target).
//   - ErrPlantExhausted when maxAttempts draws produced fewer than count
//     plantings; the accepted ones are returned alongside the error and stay
//     in emb.
func Plant(g *Generator, emb *embed.Embedder, pattern *matrix.Dense, count, maxAttempts int) ([]combinatorics.Sequence, error) {
	if count < 0 || maxAttempts < count {
		return nil, fmt.Errorf("Plant(count=%d, maxAttempts=%d): %w", count, maxAttempts, ErrInvalidSpec)
	}
	if err := matrix.ValidateNotNil(pattern); err != nil {
		return nil, fmt.Errorf("Plant: %w", err)
	}
	if pattern.Size() > emb.Size() {
		return nil, fmt.Errorf("Plant: pattern size %d > target size %d: %w",
			pattern.Size(), emb.Size(), embed.ErrInvalidArgument)
	}

	out := make([]combinatorics.Sequence, 0, count)
	seen := combinatorics.NewSet(emb.Planted()...)
	var attempt int
	for attempt = 0; attempt < maxAttempts && len(out) < count; attempt++ {
		a, err := g.Combination(emb.Size(), pattern.Size())
		if err != nil {
			return out, fmt.Errorf("Plant: %w", err)
		}
		if seen.Has(a) {
			continue
		}
		ok, err := emb.Embed(pattern, a)
		if err != nil {
			return out, fmt.Errorf("Plant: %w", err)
		}
		if ok {
			seen.Add(a)
			out = append(out, a)
		}
	}
	if len(out) < count {
		return out, fmt.Errorf("Plant: %d of %d after %d attempts: %w", len(out), count, maxAttempts, ErrPlantExhausted)
	}

	return out, nil
}

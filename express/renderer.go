// SPDX-License-Identifier: EPL-2.0

// Package express turns an individual into a signal.
package express

import (
	"fmt"
	"sync"

	"github.com/ik5/gensound/fitness"
	"github.com/ik5/gensound/genetics"
)

// Express merges the genes of ind onto canvas in gene order. Each sample
// becomes the mean of what is already on the canvas and the gene sample,
// so later genes average against the accumulated result.
func Express(canvas []int16, ind *genetics.Individual) error {
	for gi, g := range ind.Genes {
		r := g.Range()
		if r.End >= len(canvas) {
			return fmt.Errorf("%w: gene %d %s on %d frames", ErrGeneOutOfBounds, gi, r, len(canvas))
		}

		dst := canvas[r.Start : r.End+1]
		for i, s := range g.Samples() {
			dst[i] = int16((int32(dst[i]) + int32(s)) / 2)
		}
	}

	return nil
}

// Renderer renders individuals onto canvases the length of the target.
// Canvases are pooled; it is safe for concurrent use and every call works
// on its own canvas.
type Renderer struct {
	target []int16
	pool   sync.Pool
}

// NewRenderer returns a renderer for target. The target is shared, not
// copied, and must not be modified while the renderer is in use.
func NewRenderer(target []int16) (*Renderer, error) {
	if len(target) == 0 {
		return nil, ErrEmptyTarget
	}

	r := &Renderer{target: target}
	r.pool.New = func() any {
		buf := make([]int16, len(target))
		return &buf
	}

	return r, nil
}

func (r *Renderer) Target() []int16 { return r.target }

// Render returns the composite of ind on a fresh silent canvas.
func (r *Renderer) Render(ind *genetics.Individual) ([]int16, error) {
	canvas := make([]int16, len(r.target))
	if err := Express(canvas, ind); err != nil {
		return nil, err
	}

	return canvas, nil
}

// Evaluate renders ind on a pooled canvas and scores it against the target
// with fn. The canvas is returned to the pool before Evaluate returns.
func (r *Renderer) Evaluate(ind *genetics.Individual, fn fitness.Function) (int64, error) {
	bufp := r.pool.Get().(*[]int16)
	defer r.pool.Put(bufp)

	canvas := *bufp
	clear(canvas)

	if err := Express(canvas, ind); err != nil {
		return 0, err
	}

	score, err := fn.Compare(r.target, canvas)
	if err != nil {
		return 0, fmt.Errorf("scoring: %w", err)
	}

	return score, nil
}

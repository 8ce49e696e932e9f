package engine

import "github.com/tatianab/road-of-life/internal/models"

// factPool hands out history facts without replacement, refilling once every
// fact has been shown.
type factPool struct {
	facts     []models.HistoryFact
	remaining []int
	src       Source
}

func newFactPool(facts []models.HistoryFact, src Source) *factPool {
	p := &factPool{facts: facts, src: src}
	p.reset()
	return p
}

func (p *factPool) reset() {
	p.remaining = make([]int, len(p.facts))
	for i := range p.remaining {
		p.remaining[i] = i
	}
}

// draw returns the next fact. ok is false only when the pool has no facts at all.
func (p *factPool) draw() (fact models.HistoryFact, ok bool) {
	if len(p.facts) == 0 {
		return models.HistoryFact{}, false
	}
	if len(p.remaining) == 0 {
		p.reset()
	}
	i := min(int(p.src.Float64()*float64(len(p.remaining))), len(p.remaining)-1)
	idx := p.remaining[i]
	p.remaining = append(p.remaining[:i], p.remaining[i+1:]...)
	return p.facts[idx], true
}

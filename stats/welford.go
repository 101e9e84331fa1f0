package stats

import "math"

// Welford accumulates mean and variance in one pass. Results that are
// undefined for the number of observations seen so far come back as NaN,
// never zero: the mean of nothing is a 0/0, and that identity is load
// bearing for aggregation over empty groups.
type Welford struct {
	count uint64
	mean  float64
	m2    float64
}

func NewWelford() *Welford {
	return &Welford{
		count: 0,
		mean:  0,
		m2:    0,
	}
}

func (welford *Welford) Update(value float64) {
	welford.count++
	delta := value - welford.mean
	welford.mean += delta / float64(welford.count)
	delta2 := value - welford.mean
	welford.m2 += delta * delta2
}

func (welford *Welford) GetCount() uint64 {
	return welford.count
}

func (welford *Welford) GetMean() float64 {
	if welford.count == 0 {
		return math.NaN()
	}
	return welford.mean
}

// GetVariance is the population variance: defined from one observation on.
func (welford *Welford) GetVariance() float64 {
	if welford.count == 0 {
		return math.NaN()
	}
	return welford.m2 / float64(welford.count)
}

// GetSampleVariance needs at least two observations.
func (welford *Welford) GetSampleVariance() float64 {
	if welford.count < 2 {
		return math.NaN()
	}
	return welford.m2 / float64(welford.count-1)
}

func (welford *Welford) GetSD() float64 {
	return math.Sqrt(welford.GetSampleVariance())
}

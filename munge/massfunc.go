package munge

import (
	"fmt"
	"math"
	"sort"

	"github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/stat"
)

// BinRule selects how MassFunction chooses its histogram bins.
type BinRule int

const (
	// BinFixed uses the fixed bin count set with WithBins.
	BinFixed BinRule = iota
	// BinScott derives the bin width from Scott's rule.
	BinScott
	// BinFreedman derives the bin width from the Freedman-Diaconis rule.
	BinFreedman
	// BinKnuth picks the bin count that maximizes Knuth's posterior.
	BinKnuth
)

// Histogram holds a volume-normalized mass function.
type Histogram struct {
	Centers []float64
	Values  []float64 // counts / (volume * bin width)
	Uncert  []float64 // Poisson uncertainties, when requested
	Edges   []float64
	Width   float64
}

// MassFunction bins masses into a differential number density: counts per
// unit volume per unit bin width. Bin selection defaults to a fixed count
// (WithBins) and can use Scott's, Freedman-Diaconis, or Knuth's rule via
// WithBinRule. WithRange restricts the sample before binning and
// WithPoissonUncert adds sqrt(N) uncertainties.
func MassFunction(masses []float64, volume float64, opts ...Option) (*Histogram, error) {
	if len(masses) == 0 {
		return nil, ErrEmptySample
	}

	if volume <= 0 {
		return nil, fmt.Errorf("munge: volume must be > 0: %g", volume)
	}

	cfg := defaultConfig().applied(opts)

	x := append([]float64(nil), masses...)
	sort.Float64s(x)

	if cfg.ranged {
		lo := sort.SearchFloat64s(x, cfg.histMin)
		hi := sort.Search(len(x), func(i int) bool { return x[i] > cfg.histMax })

		x = x[lo:hi]
		if len(x) == 0 {
			return nil, fmt.Errorf("%w: no masses in range [%g, %g]", ErrEmptySample, cfg.histMin, cfg.histMax)
		}
	}

	edges := binEdges(x, cfg)

	counts := make([]float64, len(edges)-1)
	stat.Histogram(counts, edges, x, nil)

	centers, width, err := EdgesToCenters(edges)
	if err != nil {
		return nil, err
	}

	norm := 1 / (volume * width)

	values := make([]float64, len(counts))
	vecmath.ScaleBlock(values, counts, norm)

	h := &Histogram{
		Centers: centers,
		Values:  values,
		Edges:   edges,
		Width:   width,
	}

	if cfg.poisson {
		h.Uncert = make([]float64, len(counts))
		for i, c := range counts {
			h.Uncert[i] = math.Sqrt(c) * norm
		}
	}

	return h, nil
}

// binEdges builds uniform histogram edges over sorted samples according to
// the configured rule. The final edge is nudged past the maximum sample so
// that it falls inside the half-open last bin.
func binEdges(sorted []float64, cfg config) []float64 {
	lo, hi := sorted[0], sorted[len(sorted)-1]
	if cfg.ranged {
		lo, hi = cfg.histMin, cfg.histMax
	}

	if hi <= lo {
		hi = lo + 1
	}

	var nb int

	switch cfg.rule {
	case BinScott:
		nb = binCount(lo, hi, scottBinWidth(sorted))
	case BinFreedman:
		nb = binCount(lo, hi, freedmanBinWidth(sorted))
	case BinKnuth:
		nb = knuthBinCount(sorted, lo, hi)
	default:
		nb = cfg.bins
	}

	if nb < 1 {
		nb = 1
	}

	return uniformEdges(lo, hi, nb, sorted[len(sorted)-1])
}

func uniformEdges(lo, hi float64, nb int, xmax float64) []float64 {
	edges := make([]float64, nb+1)
	span := hi - lo

	for i := range edges {
		edges[i] = lo + span*float64(i)/float64(nb)
	}

	if edges[nb] <= xmax {
		edges[nb] = math.Nextafter(xmax, math.Inf(1))
	}

	return edges
}

func binCount(lo, hi, width float64) int {
	if width <= 0 || math.IsInf(width, 0) || math.IsNaN(width) {
		return 1
	}

	return int(math.Ceil((hi - lo) / width))
}

// scottBinWidth is Scott's rule: 3.5*sigma/n^(1/3).
func scottBinWidth(sorted []float64) float64 {
	return 3.5 * stat.StdDev(sorted, nil) / math.Cbrt(float64(len(sorted)))
}

// freedmanBinWidth is the Freedman-Diaconis rule: 2*IQR/n^(1/3).
func freedmanBinWidth(sorted []float64) float64 {
	iqr := stat.Quantile(0.75, stat.Empirical, sorted, nil) -
		stat.Quantile(0.25, stat.Empirical, sorted, nil)

	return 2 * iqr / math.Cbrt(float64(len(sorted)))
}

// maxKnuthBins caps the bin-count scan in knuthBinCount.
const maxKnuthBins = 256

// knuthBinCount scans bin counts and returns the one maximizing Knuth's
// Bayesian posterior for a uniform-width histogram.
func knuthBinCount(sorted []float64, lo, hi float64) int {
	n := float64(len(sorted))

	maxM := min(len(sorted), maxKnuthBins)

	lgHalf, _ := math.Lgamma(0.5)

	bestM := 1
	bestF := math.Inf(-1)

	for m := 1; m <= maxM; m++ {
		edges := uniformEdges(lo, hi, m, sorted[len(sorted)-1])
		counts := make([]float64, m)
		stat.Histogram(counts, edges, sorted, nil)

		lgM, _ := math.Lgamma(float64(m) / 2)
		lgNM, _ := math.Lgamma(n + float64(m)/2)

		f := n*math.Log(float64(m)) + lgM - float64(m)*lgHalf - lgNM
		for _, c := range counts {
			lgC, _ := math.Lgamma(c + 0.5)
			f += lgC
		}

		if f > bestF {
			bestF, bestM = f, m
		}
	}

	return bestM
}

package code

import (
	"cmp"
	"slices"
	"sync"
)

// parallelMinChunk is the smallest chunk worth counting in its own goroutine.
const parallelMinChunk = 64 * 1024

// FrequencyTable maps every symbol that occurs in an input to its count.
type FrequencyTable map[Symbol]uint64

// Weighted is a symbol paired with its weight.
type Weighted struct {
	Symbol Symbol
	Weight uint64
}

// CountFrequencies counts the occurrences of each symbol. An empty input
// yields an empty table.
func CountFrequencies(symbols []Symbol) FrequencyTable {
	freq := make(FrequencyTable)
	for _, sym := range symbols {
		freq[sym]++
	}

	return freq
}

// CountFrequenciesParallel counts like CountFrequencies, splitting the input
// into up to workers chunks that are counted concurrently and then merged.
// The result is identical to the sequential count.
func CountFrequenciesParallel(symbols []Symbol, workers int) FrequencyTable {
	if workers > len(symbols)/parallelMinChunk {
		workers = len(symbols) / parallelMinChunk
	}
	if workers <= 1 {
		return CountFrequencies(symbols)
	}

	chunk := (len(symbols) + workers - 1) / workers
	partials := make([]FrequencyTable, workers)

	var wg sync.WaitGroup
	for i := range workers {
		lo := i * chunk
		hi := min(lo+chunk, len(symbols))
		wg.Add(1)
		go func() {
			defer wg.Done()
			partials[i] = CountFrequencies(symbols[lo:hi])
		}()
	}
	wg.Wait()

	freq := partials[0]
	for _, part := range partials[1:] {
		freq.Merge(part)
	}

	return freq
}

// Merge adds every count in other to f.
func (f FrequencyTable) Merge(other FrequencyTable) {
	for sym, n := range other {
		f[sym] += n
	}
}

// Total returns the sum of all counts.
func (f FrequencyTable) Total() uint64 {
	var total uint64
	for _, n := range f {
		total += n
	}

	return total
}

// Sorted returns the entries ordered by descending weight, with ties broken
// by ascending symbol so that the order never depends on map iteration.
func (f FrequencyTable) Sorted() []Weighted {
	pairs := make([]Weighted, 0, len(f))
	for sym, n := range f {
		pairs = append(pairs, Weighted{Symbol: sym, Weight: n})
	}
	slices.SortFunc(pairs, func(a, b Weighted) int {
		if c := cmp.Compare(b.Weight, a.Weight); c != 0 {
			return c
		}

		return cmp.Compare(a.Symbol, b.Symbol)
	})

	return pairs
}

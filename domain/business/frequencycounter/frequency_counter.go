package frequencycounter

import "cmp"

// FrequencyCounter struct that counts how many times each key was observed
// + counters: map with the following structure: {key: occurrences}
// + total: amount of keys observed
type FrequencyCounter[K comparable] struct {
	counters map[K]int
	total    int
}

func NewFrequencyCounter[K comparable]() *FrequencyCounter[K] {
	return &FrequencyCounter[K]{
		counters: make(map[K]int),
	}
}

// Ascending is the natural order of ordered keys. It's the usual tie-break for Mode
func Ascending[K cmp.Ordered](a K, b K) bool {
	return a < b
}

func (fc *FrequencyCounter[K]) UpdateCounter(key K) {
	fc.counters[key] += 1
	fc.total += 1
}

func (fc *FrequencyCounter[K]) GetCount(key K) int {
	return fc.counters[key]
}

func (fc *FrequencyCounter[K]) GetTotal() int {
	return fc.total
}

func (fc *FrequencyCounter[K]) IsEmpty() bool {
	return fc.total == 0
}

// GetCounts returns a copy of the occurrences of each key
func (fc *FrequencyCounter[K]) GetCounts() map[K]int {
	counts := make(map[K]int, len(fc.counters))
	for key, counter := range fc.counters {
		counts[key] = counter
	}
	return counts
}

// Merge returns a new FrequencyCounter with the occurrences of both counters
func (fc *FrequencyCounter[K]) Merge(frequencyCounter2 *FrequencyCounter[K]) *FrequencyCounter[K] {
	merged := NewFrequencyCounter[K]()
	for key, counter := range fc.counters {
		merged.counters[key] += counter
	}
	for key, counter := range frequencyCounter2.counters {
		merged.counters[key] += counter
	}
	merged.total = fc.total + frequencyCounter2.total
	return merged
}

// Mode returns the key with more occurrences. If many keys have the same amount of
// occurrences, the smallest one according to less is returned, so the result does not
// depend on the order in which keys were observed.
// The second value is false if the counter is empty.
func (fc *FrequencyCounter[K]) Mode(less func(a K, b K) bool) (K, bool) {
	var mode K
	maxCounter := 0
	for key, counter := range fc.counters {
		if counter > maxCounter || (counter == maxCounter && less(key, mode)) {
			mode = key
			maxCounter = counter
		}
	}
	return mode, maxCounter > 0
}

package profile

import "sort"

const maxErrorPatterns = 5

// ComputeErrorPatterns tallies the struggled-with tags across completions
// and keeps the most frequent ones. Ties break alphabetically so repeated
// computations over the same history agree.
func ComputeErrorPatterns(completions []CompletionSignal) []ErrorPattern {
	counts := make(map[string]int)
	for _, c := range completions {
		for _, tag := range c.StruggledWith {
			if tag == "" {
				continue
			}
			counts[tag]++
		}
	}
	if len(counts) == 0 {
		return nil
	}

	patterns := make([]ErrorPattern, 0, len(counts))
	for tag, n := range counts {
		patterns = append(patterns, ErrorPattern{Tag: tag, Count: n})
	}
	sort.Slice(patterns, func(i, j int) bool {
		if patterns[i].Count != patterns[j].Count {
			return patterns[i].Count > patterns[j].Count
		}
		return patterns[i].Tag < patterns[j].Tag
	})
	if len(patterns) > maxErrorPatterns {
		patterns = patterns[:maxErrorPatterns]
	}
	return patterns
}

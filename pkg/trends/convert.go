package trends

import "github.com/trendscope/trendscope/ent/contentroadmap"

func contentroadmapTier(tier string) contentroadmap.PriorityTier {
	switch tier {
	case "high":
		return contentroadmap.PriorityTierHigh
	case "low":
		return contentroadmap.PriorityTierLow
	default:
		return contentroadmap.PriorityTierMedium
	}
}

func contentroadmapEffort(effort string) contentroadmap.EstimatedEffort {
	switch effort {
	case "easy":
		return contentroadmap.EstimatedEffortEasy
	case "complex":
		return contentroadmap.EstimatedEffortComplex
	default:
		return contentroadmap.EstimatedEffortMedium
	}
}

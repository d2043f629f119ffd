// Package browse is the ranking-and-filtering engine: it scores catalog
// records against a hardware profile, applies user filters, orders the
// results and tracks how much of the ranked list has been revealed.
// Everything here is synchronous, pure computation over in-memory
// snapshots; one render pass is fully described by (records, profile,
// criteria, revealed count).
package browse

import (
	"strings"

	"github.com/antoniocali/wollama/pkg/catalog"
	"github.com/antoniocali/wollama/pkg/hardware"
)

// Scoring weights. The asymmetries are deliberate, observed behavior:
// an Apple Silicon architecture match outweighs an x86_64 one, and
// insufficient RAM is penalized while insufficient cores merely earn
// nothing. Do not rebalance without product input.
const (
	scoreArchAppleSilicon = 3
	scoreArchX8664        = 2
	scoreRAMSufficient    = 3
	penaltyRAMShort       = 2
	scoreCoresSufficient  = 1
	scoreGPUAffinity      = 2
)

// Score computes the additive affinity of one record to a hardware
// profile. Pure and deterministic; a nil profile scores 0, and every
// factor contributes only when both sides of its comparison are known.
// The total may be negative.
func Score(r catalog.ModelRecord, hw *hardware.Profile) int {
	if hw == nil {
		return 0
	}

	score := 0

	if hint := r.HardwareHint; hint != nil {
		if hw.IsAppleSilicon && hint.Arch == catalog.ArchARM64 {
			score += scoreArchAppleSilicon
		} else if !hw.IsAppleSilicon && hint.Arch == catalog.ArchX8664 {
			score += scoreArchX8664
		}

		if hw.HasMemory() && hint.MinRAMGB > 0 {
			if hw.ApproxMemoryGB >= hint.MinRAMGB {
				score += scoreRAMSufficient
			} else {
				score -= penaltyRAMShort
			}
		}

		if hw.HasCores() && hint.MinCores > 0 && hw.CPUCores >= hint.MinCores {
			score += scoreCoresSufficient
		}
	}

	if hw.HasGPU() && gpuAffinity(hw.GPUDescriptor, r.RecommendedFor) {
		score += scoreGPUAffinity
	}

	return score
}

// gpuAffinity reproduces the catalog's historical GPU heuristic: take
// the second whitespace token of each recommended-hardware string (the
// model number in entries like "RTX 3060 12GB") and test it as a
// case-insensitive substring of the GPU descriptor. Single-word entries
// yield an empty token, which matches any descriptor; that quirk is
// part of the observed behavior and is kept as-is.
func gpuAffinity(descriptor string, recommended []string) bool {
	if len(recommended) == 0 {
		return false
	}

	haystack := strings.ToLower(descriptor)
	for _, entry := range recommended {
		token := ""
		if fields := strings.Fields(entry); len(fields) >= 2 {
			token = strings.ToLower(fields[1])
		}
		if strings.Contains(haystack, token) {
			return true
		}
	}
	return false
}

package domain

import (
	"fmt"
	"strings"
)

// FailurePolicy decides what a failed one-shot step does to the run.
type FailurePolicy string

const (
	FailurePolicyFatal FailurePolicy = "fatal"
	FailurePolicySkip  FailurePolicy = "skip"
)

func ParseFailurePolicy(raw string) (FailurePolicy, error) {
	switch policy := FailurePolicy(strings.ToLower(strings.TrimSpace(raw))); policy {
	case "":
		return FailurePolicyFatal, nil
	case FailurePolicyFatal, FailurePolicySkip:
		return policy, nil
	default:
		return "", fmt.Errorf("unsupported failure policy %q (want %q or %q)", raw, FailurePolicyFatal, FailurePolicySkip)
	}
}

// Package quantity converts Kubernetes cpu and memory quantity strings into
// millicores and bytes. Arithmetic is done on exact rationals so that node
// headroom comparisons never drift.
package quantity

import (
	"math/big"
	"regexp"
	"strings"

	"github.com/litmuschaos/litmus-scenario-gen/pkg/cerrors"
)

var (
	decimalRegex = regexp.MustCompile(`^[0-9]+(\.[0-9]+)?$`)
	memoryRegex  = regexp.MustCompile(`^([0-9]+(?:\.[0-9]+)?)\s*([a-zA-Z]+)$`)

	binaryUnits = map[string]int64{
		"Ki": 1 << 10,
		"Mi": 1 << 20,
		"Gi": 1 << 30,
		"Ti": 1 << 40,
		"Pi": 1 << 50,
		"Ei": 1 << 60,
	}
	decimalUnits = map[string]int64{
		"K": 1e3,
		"M": 1e6,
		"G": 1e9,
		"T": 1e12,
		"P": 1e15,
		"E": 1e18,
	}
)

// ParseCPU parses a cpu quantity into millicores.
// Supported forms: 363874038n (nanocores), 500u (microcores), 250m (millicores)
// and plain cores such as 1 or 0.5.
func ParseCPU(text string) (float64, error) {
	s := strings.TrimSpace(text)

	var divisor, multiplier int64 = 1, 1
	switch {
	case strings.HasSuffix(s, "n"):
		s, divisor = s[:len(s)-1], 1e6
	case strings.HasSuffix(s, "u"):
		s, divisor = s[:len(s)-1], 1e3
	case strings.HasSuffix(s, "m"):
		s = s[:len(s)-1]
	default:
		multiplier = 1e3
	}

	value, err := parseDecimal("cpu", text, s)
	if err != nil {
		return 0, err
	}
	value.Mul(value, big.NewRat(multiplier, divisor))
	millicores, _ := value.Float64()
	return millicores, nil
}

// ParseMemory parses a memory quantity into bytes.
// Binary suffixes (Ki, Mi, ...) are tried first, then SI suffixes (K, M, ...),
// then a case normalized binary suffix (ki, MI, ...). A bare number is bytes.
// Fractional results are truncated to whole bytes.
func ParseMemory(text string) (int64, error) {
	s := strings.TrimSpace(text)

	if decimalRegex.MatchString(s) {
		value, err := parseDecimal("memory", text, s)
		if err != nil {
			return 0, err
		}
		return truncate(text, value)
	}

	match := memoryRegex.FindStringSubmatch(s)
	if match == nil {
		return 0, &cerrors.ParseError{Resource: "memory", Input: text, Reason: "expected <number><unit>"}
	}
	value, err := parseDecimal("memory", text, match[1])
	if err != nil {
		return 0, err
	}

	factor, ok := unitFactor(match[2])
	if !ok {
		return 0, &cerrors.ParseError{Resource: "memory", Input: text, Reason: "unknown unit " + match[2]}
	}
	return truncate(text, value.Mul(value, new(big.Rat).SetInt64(factor)))
}

func unitFactor(unit string) (int64, bool) {
	if f, ok := binaryUnits[unit]; ok {
		return f, true
	}
	if f, ok := decimalUnits[unit]; ok {
		return f, true
	}
	normalized := strings.ToUpper(unit[:1]) + strings.ToLower(unit[1:])
	if f, ok := binaryUnits[normalized]; ok {
		return f, true
	}
	// lowercase k is the canonical kubernetes spelling of the SI kilo
	if unit == "k" {
		return decimalUnits["K"], true
	}
	return 0, false
}

func parseDecimal(resource, input, number string) (*big.Rat, error) {
	if !decimalRegex.MatchString(number) {
		return nil, &cerrors.ParseError{Resource: resource, Input: input, Reason: "invalid number"}
	}
	value, ok := new(big.Rat).SetString(number)
	if !ok {
		return nil, &cerrors.ParseError{Resource: resource, Input: input, Reason: "invalid number"}
	}
	return value, nil
}

func truncate(input string, value *big.Rat) (int64, error) {
	bytes := new(big.Int).Quo(value.Num(), value.Denom())
	if !bytes.IsInt64() {
		return 0, &cerrors.ParseError{Resource: "memory", Input: input, Reason: "value out of range"}
	}
	return bytes.Int64(), nil
}

package main

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// piExprRegex matches expressions like: pi, 2pi, 2*pi, pi/2, 3pi/4, 3*pi/4, -pi, -pi/2
var piExprRegex = regexp.MustCompile(`^(-?)(\d*\.?\d*)\s*\*?\s*pi(?:\s*/\s*(\d+\.?\d*))?$`)

// parseParamExpr parses a single angle expression, supporting plain numbers
// and pi expressions. Returns the parsed value and true on success.
//
// Supported formats:
//   - Plain numbers: "1.5707", "3.14", "-0.5"
//   - Pi constant: "pi"
//   - Pi fractions: "pi/2", "pi/4", "pi/3"
//   - Coefficients: "2pi", "2*pi", "3pi/4", "3*pi/4"
//   - Negative: "-pi", "-pi/2", "-3*pi/4"
func parseParamExpr(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}

	// Try plain number first
	if val, err := strconv.ParseFloat(s, 64); err == nil {
		return val, true
	}

	// Try pi expression
	s = strings.ToLower(s)
	matches := piExprRegex.FindStringSubmatch(s)
	if matches == nil {
		return 0, false
	}

	coeff := 1.0
	if matches[2] != "" {
		var err error
		coeff, err = strconv.ParseFloat(matches[2], 64)
		if err != nil {
			return 0, false
		}
	}

	result := coeff * math.Pi

	if matches[3] != "" {
		denom, err := strconv.ParseFloat(matches[3], 64)
		if err != nil || denom == 0 {
			return 0, false
		}
		result /= denom
	}

	if matches[1] == "-" {
		result = -result
	}
	return result, true
}

// piFractions lists the fractions of pi that formatParam displays
// symbolically.
var piFractions = []struct{ num, den int }{
	{2, 1}, {1, 1}, {1, 2}, {1, 3}, {1, 4}, {1, 6}, {1, 8},
	{3, 4}, {3, 2}, {2, 3},
}

// formatParam formats an angle value, using pi notation when possible.
func formatParam(val float64) string {
	for _, f := range piFractions {
		ref := float64(f.num) * math.Pi / float64(f.den)

		var display string
		switch {
		case f.num == 1 && f.den == 1:
			display = "pi"
		case f.den == 1:
			display = fmt.Sprintf("%d*pi", f.num)
		case f.num == 1:
			display = fmt.Sprintf("pi/%d", f.den)
		default:
			display = fmt.Sprintf("%d*pi/%d", f.num, f.den)
		}

		if math.Abs(val-ref) < 1e-10 {
			return display
		}
		if math.Abs(val+ref) < 1e-10 {
			return "-" + display
		}
	}

	return fmt.Sprintf("%g", val)
}

// parseParams parses a comma-separated angle list into float values.
// Returns nil if any part fails to parse.
func parseParams(input string) []float64 {
	var params []float64
	for _, part := range strings.Split(input, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		val, ok := parseParamExpr(part)
		if !ok {
			return nil
		}
		params = append(params, val)
	}
	return params
}

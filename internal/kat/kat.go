// Package kat parses NIST/ACVP-style Known-Answer-Test fixtures for the
// level-5 Dilithium parameter set: blank-line-separated records of ordered
// key = value lines.
package kat

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
)

// Fixture is a single KAT record.
type Fixture struct {
	Count int
	M     []byte
	PK    []byte
	SK    []byte
	Sig   []byte
	Seed  []byte
	A     [][][]int32
	S     [][]int32
	Y     [][]int32
	W1    [][]int32
	W0    [][]int32
	T1    [][]int32
	T0    [][]int32
	C     []int8
}

// ParseFixtures parses the whole contents of a fixtures file.
func ParseFixtures(text string) ([]Fixture, error) {
	text = strings.TrimRight(text, "\n")
	if text == "" {
		return nil, nil
	}

	var fixtures []Fixture
	for i, block := range strings.Split(text, "\n\n") {
		f, err := parseFixture(block)
		if err != nil {
			return nil, fmt.Errorf("kat: record %d: %w", i, err)
		}
		fixtures = append(fixtures, f)
	}
	return fixtures, nil
}

func cut(s, prefix string) (string, error) {
	if !strings.HasPrefix(s, prefix) {
		return "", fmt.Errorf("expected prefix %q", prefix)
	}
	return s[len(prefix):], nil
}

func until(s, delim string) (value, rest string, err error) {
	idx := strings.Index(s, delim)
	if idx < 0 {
		return "", "", fmt.Errorf("delimiter %q not found", delim)
	}
	// Drop exactly the one separating byte, leaving the delimiter's tail
	// (if any) for the next field's own tag to consume.
	return s[:idx], s[idx+1:], nil
}

func readField(s, tag, delim string) (value, rest string, err error) {
	s, err = cut(s, tag)
	if err != nil {
		return "", "", err
	}
	return until(s, delim)
}

func parseFixture(block string) (Fixture, error) {
	var f Fixture
	var value string
	var err error
	s := block

	if value, s, err = readField(s, "count = ", "\n"); err != nil {
		return f, err
	}
	if f.Count, err = strconv.Atoi(strings.TrimSpace(value)); err != nil {
		return f, err
	}

	if value, s, err = readField(s, "m = ", "\n"); err != nil {
		return f, err
	}
	if f.M, err = hex.DecodeString(value); err != nil {
		return f, err
	}

	if value, s, err = readField(s, "pk = ", "\n"); err != nil {
		return f, err
	}
	if f.PK, err = hex.DecodeString(value); err != nil {
		return f, err
	}

	if value, s, err = readField(s, "sk = ", "\n"); err != nil {
		return f, err
	}
	if f.SK, err = hex.DecodeString(value); err != nil {
		return f, err
	}

	if value, s, err = readField(s, "sig = ", "\n"); err != nil {
		return f, err
	}
	if f.Sig, err = hex.DecodeString(value); err != nil {
		return f, err
	}

	if value, s, err = readField(s, "seed = ", "\n"); err != nil {
		return f, err
	}
	if f.Seed, err = hex.DecodeString(value); err != nil {
		return f, err
	}

	if value, s, err = readField(s, "A = ", "\ns ="); err != nil {
		return f, err
	}
	if f.A, err = parseMatrix(value); err != nil {
		return f, err
	}

	if value, s, err = readField(s, "s = ", "\ny ="); err != nil {
		return f, err
	}
	if f.S, err = parsePolyList(value); err != nil {
		return f, err
	}

	if value, s, err = readField(s, "y = ", "\nw1 ="); err != nil {
		return f, err
	}
	if f.Y, err = parsePolyList(value); err != nil {
		return f, err
	}

	if value, s, err = readField(s, "w1 = ", "\nw0 ="); err != nil {
		return f, err
	}
	if f.W1, err = parsePolyList(value); err != nil {
		return f, err
	}

	if value, s, err = readField(s, "w0 = ", "\nt1 ="); err != nil {
		return f, err
	}
	if f.W0, err = parsePolyList(value); err != nil {
		return f, err
	}

	if value, s, err = readField(s, "t1 = ", "\nt0 ="); err != nil {
		return f, err
	}
	if f.T1, err = parsePolyList(value); err != nil {
		return f, err
	}

	if value, s, err = readField(s, "t0 = ", "\nc ="); err != nil {
		return f, err
	}
	if f.T0, err = parsePolyList(value); err != nil {
		return f, err
	}

	if s, err = cut(s, "c = "); err != nil {
		return f, err
	}
	if f.C, err = parseOnesVector(s); err != nil {
		return f, err
	}

	return f, nil
}

// parseBracketList splits "[a,b,c]" into its trimmed element strings.
func parseBracketList(s string) ([]string, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "[") || !strings.HasSuffix(s, "]") {
		return nil, fmt.Errorf("malformed bracket list %q", s)
	}
	inner := strings.TrimSpace(s[1 : len(s)-1])
	if inner == "" {
		return nil, nil
	}
	parts := strings.Split(inner, ",")
	out := make([]string, len(parts))
	for i, p := range parts {
		out[i] = strings.TrimSpace(p)
	}
	return out, nil
}

// parsePolyList parses "( [c,c,...],\n     [c,c,...], ... )" into rows of
// coefficients.
func parsePolyList(s string) ([][]int32, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "(")
	s = strings.TrimSuffix(s, ")")

	var out [][]int32
	for _, chunk := range strings.Split(s, ",\n") {
		chunk = strings.TrimSpace(chunk)
		if chunk == "" {
			continue
		}
		strs, err := parseBracketList(chunk)
		if err != nil {
			return nil, err
		}
		row, err := parseInt32Row(strs)
		if err != nil {
			return nil, err
		}
		out = append(out, row)
	}
	return out, nil
}

// parseMatrix parses "( [c,c,...], ...;\n     [c,c,...], ... )" into
// K rows of L polynomials each.
func parseMatrix(s string) ([][][]int32, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "(")
	s = strings.TrimSuffix(s, ")")

	var out [][][]int32
	for _, rowStr := range strings.Split(s, ";\n     ") {
		var row [][]int32
		for _, chunk := range strings.Split(rowStr, ", ") {
			strs, err := parseBracketList(chunk)
			if err != nil {
				return nil, err
			}
			poly, err := parseInt32Row(strs)
			if err != nil {
				return nil, err
			}
			row = append(row, poly)
		}
		out = append(out, row)
	}
	return out, nil
}

// parseOnesVector parses a single "[1,-1,0,...]" bracket list of signed
// ones/zeros (the challenge polynomial).
func parseOnesVector(s string) ([]int8, error) {
	strs, err := parseBracketList(s)
	if err != nil {
		return nil, err
	}
	out := make([]int8, len(strs))
	for i, v := range strs {
		n, err := strconv.ParseInt(v, 10, 8)
		if err != nil {
			return nil, err
		}
		out[i] = int8(n)
	}
	return out, nil
}

func parseInt32Row(strs []string) ([]int32, error) {
	row := make([]int32, len(strs))
	for i, v := range strs {
		n, err := strconv.ParseInt(v, 10, 32)
		if err != nil {
			return nil, err
		}
		row[i] = int32(n)
	}
	return row, nil
}

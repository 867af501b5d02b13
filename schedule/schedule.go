// Package schedule renders a solved tournament as the round-by-round match
// listing used by the surrounding tooling, and parses that listing back.
//
// Wire format, one line per round:
//
//	第1轮 A1-B1 A2-B2 B3-A3 B4-A4
//
// The first field is a 1-based round label; every following field is one
// match. "A3-B7" means player A3 moves first against B7; "B7-A3" means B7
// moves first. Player numbers are 1-based in the listing and 0-based in the
// (L, F) matrices.
//
// Format and Parse are exact inverses for any well-formed (L, F): parsing a
// formatted schedule returns matrices equal to the originals. Parse accepts
// any non-match first token as the round label, so hand-edited labels
// round-trip too.
package schedule

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrShape indicates non-square or mismatched (L, F) matrices.
	ErrShape = errors.New("schedule: pairing and coloring must be square matrices of equal order")

	// ErrBadListing indicates a listing that does not parse back into
	// square (L, F) matrices: malformed match tokens, ragged rounds, or
	// player numbers out of range.
	ErrBadListing = errors.New("schedule: malformed match listing")
)

// Format renders (L, F) as one line per round.
func Format(l, f [][]int) (string, error) {
	n := len(l)
	if n == 0 || len(f) != n {
		return "", ErrShape
	}

	var (
		b    strings.Builder
		r, i int
	)
	for r = 0; r < n; r++ {
		if len(l[r]) != n || len(f[r]) != n {
			return "", ErrShape
		}
		fmt.Fprintf(&b, "第%d轮", r+1)
		for i = 0; i < n; i++ {
			if f[r][i] == 1 {
				fmt.Fprintf(&b, " A%d-B%d", i+1, l[r][i]+1)
			} else {
				fmt.Fprintf(&b, " B%d-A%d", l[r][i]+1, i+1)
			}
		}
		if r < n-1 {
			b.WriteByte('\n')
		}
	}

	return b.String(), nil
}

// Parse reads a match listing back into (L, F). The number of matches per
// round fixes n; every round must carry exactly n matches and every A-player
// must appear exactly once per round.
func Parse(text string) (l, f [][]int, err error) {
	var lines []string
	for _, raw := range strings.Split(text, "\n") {
		if s := strings.TrimSpace(raw); s != "" {
			lines = append(lines, s)
		}
	}
	if len(lines) == 0 {
		return nil, nil, ErrBadListing
	}

	var (
		r, i int
		n    = -1
	)
	for r = 0; r < len(lines); r++ {
		fields := strings.Fields(lines[r])
		if len(fields) < 2 {
			return nil, nil, ErrBadListing
		}
		matches := fields[1:] // fields[0] is the round label
		if n < 0 {
			n = len(matches)
			l = make([][]int, 0, n)
			f = make([][]int, 0, n)
		}
		if len(matches) != n {
			return nil, nil, ErrBadListing
		}

		lRow := make([]int, n)
		fRow := make([]int, n)
		seen := make([]bool, n)
		for i = 0; i < n; i++ {
			a, b, aFirst, perr := parseMatch(matches[i], n)
			if perr != nil {
				return nil, nil, perr
			}
			if seen[a] {
				return nil, nil, ErrBadListing
			}
			seen[a] = true
			lRow[a] = b
			if aFirst {
				fRow[a] = 1
			}
		}
		l = append(l, lRow)
		f = append(f, fRow)
	}
	if len(l) != n {
		return nil, nil, ErrBadListing
	}

	return l, f, nil
}

// parseMatch decodes "A3-B7" or "B7-A3" into 0-based indices.
func parseMatch(tok string, n int) (a, b int, aFirst bool, err error) {
	parts := strings.SplitN(tok, "-", 2)
	if len(parts) != 2 {
		return 0, 0, false, ErrBadListing
	}

	left, lErr := parseSide(parts[0], n)
	right, rErr := parseSide(parts[1], n)
	if lErr != nil || rErr != nil {
		return 0, 0, false, ErrBadListing
	}

	switch {
	case left.isA && !right.isA:
		return left.idx, right.idx, true, nil
	case !left.isA && right.isA:
		return right.idx, left.idx, false, nil
	default:
		return 0, 0, false, ErrBadListing // A-A or B-B is never a valid match
	}
}

// side is one parsed half of a match token.
type side struct {
	isA bool
	idx int
}

// parseSide decodes "A12" / "B3" with 1-based numbering into a side.
func parseSide(s string, n int) (side, error) {
	if len(s) < 2 || (s[0] != 'A' && s[0] != 'B') {
		return side{}, ErrBadListing
	}

	num, err := strconv.Atoi(s[1:])
	if err != nil || num < 1 || num > n {
		return side{}, ErrBadListing
	}

	return side{isA: s[0] == 'A', idx: num - 1}, nil
}

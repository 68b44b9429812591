// SPDX-License-Identifier: MIT

package rules

import "github.com/Daniel-G-W-Hug/ga-sub006/basis"

// SignedBlade is a blade index with a sign. Sign 0 means the entry vanishes;
// Blade is then meaningless and conventionally 0.
type SignedBlade struct {
	Blade int
	Sign  int
}

// zero is the vanishing entry.
var zero = SignedBlade{}

// IsZero reports whether the entry vanishes.
func (s SignedBlade) IsZero() bool { return s.Sign == 0 }

// Neg flips the sign.
func (s SignedBlade) Neg() SignedBlade { return SignedBlade{Blade: s.Blade, Sign: -s.Sign} }

// Scale multiplies the sign by k (k in {-1, 0, 1}); a zero result is
// normalized to the zero entry.
func (s SignedBlade) Scale(k int) SignedBlade {
	if s.Sign*k == 0 {
		return zero
	}

	return SignedBlade{Blade: s.Blade, Sign: s.Sign * k}
}

// Label renders the entry as "e12", "-e12" or "0" using b's display names.
func (s SignedBlade) Label(b *basis.Basis) string {
	switch s.Sign {
	case 0:
		return "0"
	case 1:
		return b.Name(s.Blade)
	default:
		return "-" + b.Name(s.Blade)
	}
}

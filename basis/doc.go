// Package basis models the generators and basis blades of a geometric
// algebra with signature (P, N, Z).
//
// A Basis owns every blade of one algebra. Blades are created once, in the
// configured display order, and referenced everywhere else by index:
//
//	b, _ := basis.New(basis.Signature{P: 2, Z: 1},
//		basis.WithNames("1", "e1", "e2", "e3", "e23", "e31", "e12", "e321"))
//	i, _ := b.Index("e31") // 5
//
// Key facts:
//
//   - Generators are numbered e1..en; the P generators come first, then the N
//     generators, then the Z (null) generators. e_i^2 is +1, -1 or 0 accordingly.
//   - A blade name fixes the blade's orientation. "e31" is the blade e3^e1,
//     which equals -e1^e3; Blade.Orientation records that -1.
//   - Grade is the popcount of the blade's generator mask.
//   - Only the validated signatures are accepted: 2 <= P+N+Z <= 4, N = 0 and
//     Z in {0, 1}. Anything else fails with ErrInvalidSignature.
package basis

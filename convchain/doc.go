// Package convchain synthesizes binary textures that resemble a small
// exemplar, using a Markov chain over local neighborhoods (ConvChain).
//
// 🚀 What is convchain?
//
//	Two stages, both in memory and without I/O:
//		• Weight table: every n×n window of the exemplar (wrapping at the
//		  borders) and its 8 rotations/reflections is counted; patterns never
//		  seen get a small positive floor (DefaultFloor = 0.1).
//		• Sampling: an outputSize×outputSize toroidal field starts random.
//		  Each trial picks a random cell r and computes
//
//		    q = Π weight[window with r flipped] / weight[window]
//
//		  over the n² windows covering r. The flip is accepted when q ≥ 1,
//		  otherwise with probability q^(1/T).
//
// Incremental evaluation:
//
//	A trial never materializes windows. The engine reads the (2n-1)² cells
//	around r once, encodes each covering window into its index, and gets the
//	post-flip index by toggling the single bit of r. Rejected trials leave
//	the field untouched.
//
// Determinism:
//
//	Each Engine owns a *rand.Rand. WithSeed(s) makes runs reproducible;
//	without options the fixed default seed is used. Use DeriveRNG to give
//	parallel engines independent streams.
//
// Constraints:
//
//	1 ≤ n ≤ min(MaxReceptorSize, outputSize, exemplar width, exemplar height)
//	temperature finite and > 0
//
// Complexity:
//
//	BuildWeightTable: O(W·H·n²) time, O(2^(n²)) memory.
//	Process(k):       O(k·outputSize²·n⁴) time, O(n²) extra memory.
//
// Example:
//
//	ex, _ := grid.Parse("####", "#...", "#.#.", "#...")
//	e, err := convchain.New(ex, 32, 2, 1.0, convchain.WithSeed(7))
//	if err != nil {
//		// errors.Is(err, convchain.ErrInvalidConfig)
//	}
//	field := e.Process(10)
//	fmt.Print(field)
package convchain

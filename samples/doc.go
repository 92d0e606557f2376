// Package samples loads the sample-set document that drives batch synthesis.
//
// Format:
//
//	<samples>
//	  <sample name="Cave" receptorSize="3" temperature="1" iterations="2"
//	          screenshots="2" outputSize="64"/>
//	  <sample name="Maze"/>
//	</samples>
//
// Omitted attributes take the defaults receptorSize=2, temperature=1,
// iterations=2, screenshots=1, outputSize=32. Names must be non-empty and
// unique; they name the exemplar image (<name>.png) in the resources directory.
//
// Numeric ranges are not checked here: convchain.New validates them when a
// sample is synthesized.
package samples

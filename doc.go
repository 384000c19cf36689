// Package pipeloop is a small toolkit for tracing the closed pipe loop in a
// character grid and measuring it.
//
// What is in here?
//
//	grid/  immutable, bounds-checked rectangular Grid[T] and Coord
//	pipe/  Direction and the closed Connector set (| - L J 7 F . S)
//	loop/  mutual-connection steps, BFS distances, start-shape inference,
//	       scanline enclosure count, and a concurrent Analyze
//
// Binaries live under cmd/ and their wiring under internal/.
//
// Quick ASCII example:
//
//	.....        .....
//	.S-7.        .╔═╗.
//	.|.|.   →    .║I║.     farthest 4, enclosed 1
//	.L-J.        .╚═╝.
//	.....        .....
//
//	go install github.com/katalvlaran/pipeloop/cmd/pipeloop@latest
package pipeloop

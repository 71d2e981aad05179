/*
Package mediapipe hosts streaming dataflow calculator nodes: small units
that transform per-frame packets under a fixed port contract, scheduled by
an enclosing engine.

This module ships the node-side boundary (contracts, typed packets,
timestamps), a single-node host, and the MatrixSubtract calculator, which
subtracts a fixed side-input matrix from a per-frame streamed matrix or vice
versa, selected by the MINUEND/SUBTRAHEND tag wiring.

# Lifecycle

A node moves through three externally driven phases: contract validation at
construction, a single Open that freezes configuration, and one Process call
per frame. Configuration errors halt assembly; invalid-argument errors fail
one frame and emit nothing.

# Usage

	package main

	import (
		"context"
		"log"

		"github.com/robstonner/mediapipe"
		"github.com/robstonner/mediapipe/pkg/calculators"
		"github.com/robstonner/mediapipe/pkg/domain"
		"github.com/robstonner/mediapipe/pkg/matrix"
	)

	func main() {
		node, err := mediapipe.NewNode("subtract", calculators.NewMatrixSubtract(),
			[]domain.Tag{domain.TagMinuend}, []domain.Tag{domain.TagSubtrahend})
		if err != nil {
			log.Fatal(err)
		}

		ctx := context.Background()
		side, _ := matrix.FromRows([][]float64{{2, 1}})
		if err := node.Open(ctx, map[domain.Tag]domain.Packet{
			domain.TagSubtrahend: domain.NewPacket(side, 0),
		}); err != nil {
			log.Fatal(err)
		}

		in, _ := matrix.FromRows([][]float64{{5, 3}})
		out, err := node.Process(ctx, domain.NewPacket(in, 0))
		if err != nil {
			log.Fatal(err)
		}
		log.Println(out.Value()) // [3 2]
	}
*/
package mediapipe

// Package web streams synthesis progress to browsers.
//
// Hub fans out binary frames over websockets and serves the latest field as
// PNG. A frame is a protobuf-wire message:
//
//	1 job id   (bytes)
//	2 sample   (bytes)
//	3 sweep    (varint)
//	4 width    (varint)
//	5 height   (varint)
//	6 cells    (bytes, row-major, 8 cells per byte, least significant bit first)
//	7 trials   (varint)
//	8 flips    (varint)
//
// Unknown fields are skipped on decode.
package web

import (
	"errors"
	"fmt"

	"google.golang.org/protobuf/encoding/protowire"

	"github.com/katalvlaran/convchain/batch"
	"github.com/katalvlaran/convchain/grid"
)

const (
	fieldJobID protowire.Number = iota + 1
	fieldSample
	fieldSweep
	fieldWidth
	fieldHeight
	fieldCells
	fieldTrials
	fieldFlips
)

// ErrBadFrame indicates a frame whose size is out of range or whose cell
// payload does not match its size.
var ErrBadFrame = errors.New("web: malformed frame")

// maxFrameSide bounds the width and height accepted from the wire.
const maxFrameSide = 1 << 15

// Frame is the wire form of batch.Frame.
type Frame struct {
	JobID         string
	Sample        string
	Sweep         int
	Width, Height int
	Cells         []bool
	Trials, Flips int64
}

// FrameFrom copies a batch frame, detaching it from the engine's field.
func FrameFrom(f batch.Frame) Frame {
	cells := make([]bool, f.Field.Len())
	copy(cells, f.Field.Cells())

	return Frame{
		JobID:  f.Job.ID.String(),
		Sample: f.Job.Sample.Name,
		Sweep:  f.Sweep,
		Width:  f.Field.Width,
		Height: f.Field.Height,
		Cells:  cells,
		Trials: f.Stats.Trials,
		Flips:  f.Stats.Flips,
	}
}

// Grid rebuilds the field carried by f.
func (f Frame) Grid() (*grid.Grid, error) {
	return grid.FromCells(f.Cells, f.Width, f.Height)
}

// EncodeFrame serializes f.
func EncodeFrame(f Frame) []byte {
	packed := make([]byte, (len(f.Cells)+7)/8)
	for i, c := range f.Cells {
		if c {
			packed[i/8] |= 1 << (i % 8)
		}
	}

	var b []byte
	b = protowire.AppendTag(b, fieldJobID, protowire.BytesType)
	b = protowire.AppendString(b, f.JobID)
	b = protowire.AppendTag(b, fieldSample, protowire.BytesType)
	b = protowire.AppendString(b, f.Sample)
	b = protowire.AppendTag(b, fieldSweep, protowire.VarintType)
	b = protowire.AppendVarint(b, uint64(f.Sweep))
	b = protowire.AppendTag(b, fieldWidth, protowire.VarintType)
	b = protowire.AppendVarint(b, uint64(f.Width))
	b = protowire.AppendTag(b, fieldHeight, protowire.VarintType)
	b = protowire.AppendVarint(b, uint64(f.Height))
	b = protowire.AppendTag(b, fieldCells, protowire.BytesType)
	b = protowire.AppendBytes(b, packed)
	b = protowire.AppendTag(b, fieldTrials, protowire.VarintType)
	b = protowire.AppendVarint(b, uint64(f.Trials))
	b = protowire.AppendTag(b, fieldFlips, protowire.VarintType)
	b = protowire.AppendVarint(b, uint64(f.Flips))

	return b
}

// DecodeFrame parses a frame produced by EncodeFrame.
func DecodeFrame(b []byte) (Frame, error) {
	var (
		f      Frame
		packed []byte
	)
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return Frame{}, fmt.Errorf("web: frame tag: %w", protowire.ParseError(n))
		}
		b = b[n:]

		switch {
		case typ == protowire.BytesType && (num == fieldJobID || num == fieldSample || num == fieldCells):
			v, m := protowire.ConsumeBytes(b)
			if m < 0 {
				return Frame{}, fmt.Errorf("web: frame field %d: %w", num, protowire.ParseError(m))
			}
			switch num {
			case fieldJobID:
				f.JobID = string(v)
			case fieldSample:
				f.Sample = string(v)
			default:
				packed = append([]byte(nil), v...)
			}
			n = m
		case typ == protowire.VarintType && num >= fieldSweep && num <= fieldFlips && num != fieldCells:
			v, m := protowire.ConsumeVarint(b)
			if m < 0 {
				return Frame{}, fmt.Errorf("web: frame field %d: %w", num, protowire.ParseError(m))
			}
			switch num {
			case fieldSweep:
				f.Sweep = int(v)
			case fieldWidth:
				f.Width = int(v)
			case fieldHeight:
				f.Height = int(v)
			case fieldTrials:
				f.Trials = int64(v)
			case fieldFlips:
				f.Flips = int64(v)
			}
			n = m
		default:
			n = protowire.ConsumeFieldValue(num, typ, b)
			if n < 0 {
				return Frame{}, fmt.Errorf("web: frame field %d: %w", num, protowire.ParseError(n))
			}
		}
		b = b[n:]
	}

	if f.Width < 0 || f.Height < 0 || f.Width > maxFrameSide || f.Height > maxFrameSide {
		return Frame{}, ErrBadFrame
	}
	total := f.Width * f.Height
	if len(packed) != (total+7)/8 {
		return Frame{}, ErrBadFrame
	}
	f.Cells = make([]bool, total)
	for i := range f.Cells {
		f.Cells[i] = packed[i/8]&(1<<(i%8)) != 0
	}

	return f, nil
}

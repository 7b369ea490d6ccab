package fileio

import (
	"encoding/binary"
	"io"
	"math"

	"github.com/rxdock/rxdock-sub002/dockerr"
	"github.com/rxdock/rxdock-sub002/geom"
	"github.com/rxdock/rxdock-sub002/grid"
)

// WriteGridBinary writes g in the wire format spec.md section 6 describes
// for "grid binary sink": a length-prefixed class name, the base grid
// parameters (min, max, step, pad corners, NX/NY/NZ, N, strides SX/SY/SZ,
// NPad, integer index bounds), then RealGrid's own tolerance and N
// float64 values. This is a distinct, file-oriented encoding from the
// gob-based grid.WriteBinary/ReadBinary pair (grid/realgrid.go), which
// exists for in-process persistence of a single grid; WriteGridBinary
// exists for the cross-tool/portable dump spec.md section 6 names
// explicitly, using fixed-width big-endian fields the way the teacher's
// fem/fileio.go writes its own binary result records.
func WriteGridBinary(w io.Writer, g *grid.RealGrid) error {
	if err := writeString(w, "RealGrid"); err != nil {
		return dockerr.New(dockerr.ParseFailure, "WriteGridBinary: class name: %v", err)
	}
	if err := writeBaseParams(w, g.Base); err != nil {
		return dockerr.New(dockerr.ParseFailure, "WriteGridBinary: base params: %v", err)
	}
	if err := writeFloat64(w, g.Tol); err != nil {
		return dockerr.New(dockerr.ParseFailure, "WriteGridBinary: tolerance: %v", err)
	}
	for _, v := range g.Values {
		if err := writeFloat64(w, v); err != nil {
			return dockerr.New(dockerr.ParseFailure, "WriteGridBinary: values: %v", err)
		}
	}
	return nil
}

// ReadGridBinary is the inverse of WriteGridBinary. Returns a ParseFailure
// dockerr if the class name isn't "RealGrid".
func ReadGridBinary(r io.Reader) (*grid.RealGrid, error) {
	name, err := readString(r)
	if err != nil {
		return nil, dockerr.New(dockerr.ParseFailure, "ReadGridBinary: class name: %v", err)
	}
	if name != "RealGrid" {
		return nil, dockerr.New(dockerr.ParseFailure, "ReadGridBinary: unsupported class %q", name)
	}
	base, n, err := readBaseParams(r)
	if err != nil {
		return nil, dockerr.New(dockerr.ParseFailure, "ReadGridBinary: base params: %v", err)
	}
	tol, err := readFloat64(r)
	if err != nil {
		return nil, dockerr.New(dockerr.ParseFailure, "ReadGridBinary: tolerance: %v", err)
	}
	values := make([]float64, n)
	for i := range values {
		v, err := readFloat64(r)
		if err != nil {
			return nil, dockerr.New(dockerr.ParseFailure, "ReadGridBinary: values: %v", err)
		}
		values[i] = v
	}
	g := grid.NewRealGrid(base, tol)
	copy(g.Values, values)
	return g, nil
}

func writeBaseParams(w io.Writer, b grid.Base) error {
	sx := b.NY * b.NZ
	sy := b.NZ
	sz := 1
	max := b.Center(b.NX, b.NY, b.NZ)
	fields := []float64{
		b.Min.X, b.Min.Y, b.Min.Z,
		max.X, max.Y, max.Z,
		b.Step.X, b.Step.Y, b.Step.Z,
		b.PadMin.X, b.PadMin.Y, b.PadMin.Z,
		b.PadMax.X, b.PadMax.Y, b.PadMax.Z,
	}
	for _, f := range fields {
		if err := writeFloat64(w, f); err != nil {
			return err
		}
	}
	ints := []int{b.NX, b.NY, b.NZ, b.N(), sx, sy, sz, b.NPad, 1, b.NX, 1, b.NY, 1, b.NZ}
	for _, i := range ints {
		if err := writeInt64(w, int64(i)); err != nil {
			return err
		}
	}
	return nil
}

func readBaseParams(r io.Reader) (grid.Base, int, error) {
	floats := make([]float64, 15)
	for i := range floats {
		v, err := readFloat64(r)
		if err != nil {
			return grid.Base{}, 0, err
		}
		floats[i] = v
	}
	ints := make([]int64, 14)
	for i := range ints {
		v, err := readInt64(r)
		if err != nil {
			return grid.Base{}, 0, err
		}
		ints[i] = v
	}
	min := geom.New(floats[0], floats[1], floats[2])
	step := geom.New(floats[6], floats[7], floats[8])
	nx, ny, nz, npad := int(ints[0]), int(ints[1]), int(ints[2]), int(ints[7])
	base := grid.NewBase(min, step, nx, ny, nz, npad)
	return base, int(ints[3]), nil
}

func writeString(w io.Writer, s string) error {
	if err := writeInt64(w, int64(len(s))); err != nil {
		return err
	}
	_, err := io.WriteString(w, s)
	return err
}

func readString(r io.Reader) (string, error) {
	n, err := readInt64(r)
	if err != nil {
		return "", err
	}
	buf := make([]byte, n)
	if _, err := io.ReadFull(r, buf); err != nil {
		return "", err
	}
	return string(buf), nil
}

func writeInt64(w io.Writer, v int64) error {
	return binary.Write(w, binary.BigEndian, v)
}

func readInt64(r io.Reader) (int64, error) {
	var v int64
	err := binary.Read(r, binary.BigEndian, &v)
	return v, err
}

func writeFloat64(w io.Writer, v float64) error {
	return binary.Write(w, binary.BigEndian, math.Float64bits(v))
}

func readFloat64(r io.Reader) (float64, error) {
	var bits uint64
	if err := binary.Read(r, binary.BigEndian, &bits); err != nil {
		return 0, err
	}
	return math.Float64frombits(bits), nil
}

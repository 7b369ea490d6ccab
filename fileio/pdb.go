package fileio

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/rxdock/rxdock-sub002/dockerr"
	"github.com/rxdock/rxdock-sub002/geom"
	"github.com/rxdock/rxdock-sub002/model"
)

// PDBReader reads columnar ATOM/HETATM records (spec.md section 6,
// "PDB"): id at columns 7-11, name at 13-16, subunitName at 18-20, chain
// at 22, subunitId at 23-26, coords at 31-54, occupancy at 55-60,
// B-factor at 61-66 (1-based, inclusive).
type PDBReader struct {
	r io.Reader
}

// NewPDBReader wraps r.
func NewPDBReader(r io.Reader) *PDBReader { return &PDBReader{r: r} }

// pdbField slices a 1-based inclusive column range out of line, tolerant
// of short/ragged lines.
func pdbField(line string, from, to int) string {
	if from < 1 {
		from = 1
	}
	if from-1 >= len(line) {
		return ""
	}
	if to > len(line) {
		to = len(line)
	}
	return strings.TrimSpace(line[from-1 : to])
}

func (src *PDBReader) ReadModels() ([]*model.Model, error) {
	sc := bufio.NewScanner(src.r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	m := model.NewModel()
	for sc.Scan() {
		line := sc.Text()
		if !strings.HasPrefix(line, "ATOM") && !strings.HasPrefix(line, "HETATM") {
			continue
		}
		if err := parsePDBAtomLine(m, line); err != nil {
			return nil, err
		}
	}
	if err := sc.Err(); err != nil {
		return nil, dockerr.New(dockerr.ParseFailure, "pdb: read failure: %v", err)
	}
	return []*model.Model{m}, nil
}

func parsePDBAtomLine(m *model.Model, line string) error {
	xs := pdbField(line, 31, 38)
	ys := pdbField(line, 39, 46)
	zs := pdbField(line, 47, 54)
	x, e1 := strconv.ParseFloat(xs, 64)
	y, e2 := strconv.ParseFloat(ys, 64)
	z, e3 := strconv.ParseFloat(zs, 64)
	if e1 != nil || e2 != nil || e3 != nil {
		return dockerr.New(dockerr.ParseFailure, "pdb atom coords: %q", line)
	}

	a := m.AddAtom()
	a.Name = pdbField(line, 13, 16)
	a.SubunitName = pdbField(line, 18, 20)
	a.SegmentName = pdbField(line, 22, 22)
	a.SubunitID = pdbField(line, 23, 26)
	a.Coord = geom.New(x, y, z)

	// Atom has no dedicated occupancy/B-factor fields; PDB has no other
	// obvious home for them, so they land in the generic User1Double/
	// User2Double scratch fields.
	if occ := pdbField(line, 55, 60); occ != "" {
		if v, err := strconv.ParseFloat(occ, 64); err == nil {
			a.User1Double = v
		}
	}
	if bfac := pdbField(line, 61, 66); bfac != "" {
		if v, err := strconv.ParseFloat(bfac, 64); err == nil {
			a.User2Double = v
		}
	}
	return nil
}

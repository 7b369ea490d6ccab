package fileio

import (
	"strings"
	"testing"

	"github.com/cpmech/gosl/chk"
)

const pdbFixture = `ATOM      1  C1  LIG A   1       0.000   0.000   0.000  1.00 20.00           C
HETATM    2  N1  LIG A   1       1.500   0.000   0.000  0.50 15.00           N
END
`

func TestPDBReaderParsesAtomAndHetatmRecords(tst *testing.T) {
	ms, err := NewPDBReader(strings.NewReader(pdbFixture)).ReadModels()
	if err != nil {
		tst.Fatalf("ReadModels: %v", err)
	}
	m := ms[0]
	atoms := m.Atoms()
	if len(atoms) != 2 {
		tst.Fatalf("expected 2 atoms (ATOM + HETATM), got %d", len(atoms))
	}
	if atoms[0].Name != "C1" || atoms[0].SubunitName != "LIG" || atoms[0].SubunitID != "1" {
		tst.Fatalf("unexpected atom[0]: %+v", atoms[0])
	}
	chk.Float64(tst, "atom1 x", 1e-9, atoms[1].Coord.X, 1.5)
	chk.Float64(tst, "atom0 occupancy", 1e-9, atoms[0].User1Double, 1.0)
	chk.Float64(tst, "atom1 bfactor", 1e-9, atoms[1].User2Double, 15.0)
}

func TestPDBField(tst *testing.T) {
	line := "ABCDEFGHIJ"
	if got := pdbField(line, 3, 5); got != "CDE" {
		tst.Fatalf("got %q", got)
	}
	if got := pdbField(line, 8, 20); got != "HIJ" {
		tst.Fatalf("got %q", got)
	}
}

package fileio

import (
	"strings"
	"testing"

	"github.com/cpmech/gosl/chk"
)

const crdFixture = `* test crd
* generated
    2
    1    1 LIG  C1     0.0000   0.0000   0.0000 LIG  1      0.0000
    2    1 LIG  N1     1.5000   0.0000   0.0000 LIG  1      0.0000
`

func TestCRDReaderParsesAtoms(tst *testing.T) {
	ms, err := NewCRDReader(strings.NewReader(crdFixture)).ReadModels()
	if err != nil {
		tst.Fatalf("ReadModels: %v", err)
	}
	m := ms[0]
	if len(m.Titles) != 2 {
		tst.Fatalf("expected 2 title lines, got %v", m.Titles)
	}
	atoms := m.Atoms()
	if len(atoms) != 2 {
		tst.Fatalf("expected 2 atoms, got %d", len(atoms))
	}
	if atoms[0].SubunitID != "1" || atoms[0].SubunitName != "LIG" || atoms[0].Name != "C1" {
		tst.Fatalf("unexpected atom[0]: %+v", atoms[0])
	}
	chk.Float64(tst, "atom1 x", 1e-9, atoms[1].Coord.X, 1.5)
	if atoms[0].SegmentName != "LIG" {
		tst.Fatalf("unexpected segment: %q", atoms[0].SegmentName)
	}
}

package fileio

import (
	"strings"
	"testing"

	"github.com/cpmech/gosl/chk"
)

const mol2Fixture = `@<TRIPOS>MOLECULE
test-ligand
3 2 0 0 0
SMALL
NO_CHARGES

@<TRIPOS>ATOM
      1 C1         0.0000    0.0000    0.0000 C.3      1 LIG1       0.100
      2 N1         1.5000    0.0000    0.0000 N.3      1 LIG1      -0.200
      3 O1         0.0000    1.5000    0.0000 O.2      1 LIG1      -0.300
@<TRIPOS>BOND
     1    1    2 1
     2    2    3 2
`

func TestMOL2ReaderParsesAtomsAndBonds(tst *testing.T) {
	ms, err := NewMOL2Reader(strings.NewReader(mol2Fixture)).ReadModels()
	if err != nil {
		tst.Fatalf("ReadModels: %v", err)
	}
	if len(ms) != 1 {
		tst.Fatalf("expected 1 model, got %d", len(ms))
	}
	m := ms[0]
	if len(m.Titles) == 0 || m.Titles[0] != "test-ligand" {
		tst.Fatalf("unexpected title: %v", m.Titles)
	}
	atoms := m.Atoms()
	if len(atoms) != 3 {
		tst.Fatalf("expected 3 atoms, got %d", len(atoms))
	}
	if atoms[0].Name != "C1" || atoms[0].SubunitName != "LIG" || atoms[0].SubunitID != "1" {
		tst.Fatalf("unexpected atom[0]: %+v", atoms[0])
	}
	chk.Float64(tst, "atom1 x", 1e-9, atoms[1].Coord.X, 1.5)
	chk.Float64(tst, "atom0 charge", 1e-9, atoms[0].PartialCharge, 0.1)

	bonds := m.Bonds()
	if len(bonds) != 2 {
		tst.Fatalf("expected 2 bonds, got %d", len(bonds))
	}
	if bonds[1].FormalBondOrder != 2 {
		tst.Fatalf("expected bond[1] order 2, got %d", bonds[1].FormalBondOrder)
	}
}

func TestSplitSubstructureName(tst *testing.T) {
	name, id := splitSubstructureName("ALA123")
	if name != "ALA" || id != "123" {
		tst.Fatalf("got (%q,%q)", name, id)
	}
	name, id = splitSubstructureName("HOH")
	if name != "HOH" || id != "" {
		tst.Fatalf("got (%q,%q)", name, id)
	}
}

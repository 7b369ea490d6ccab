// Package sf implements the docking core's scoring functions: van der
// Waals, dihedral torsion, and HHS solvation, plus the ModelMutator
// flex-interaction matrix and the Partition helper (SPEC_FULL.md section
// 3.6). Grounded on original_source's
// RbtVdwSF.cxx, RbtDihedralSF.cxx and RbtSATypes.cxx formulas, expressed
// in the teacher's explicit-config-struct style (see config package).
package sf

import "github.com/rxdock/rxdock-sub002/model"

// Annotation is one non-zero pairwise contribution, emitted on the
// annotation channel when a BaseSF is run in annotation mode (section
// 4.7, "Annotation mode additionally emits (atom1, atom2, distance,
// partialScore) records").
type Annotation struct {
	Atom1, Atom2 *model.Atom
	Distance     float64
	Score        float64
}

// BaseSF is the common shape of every scoring term: a score over an atom
// list (or a model's whole atom list), optionally emitting Annotations.
type BaseSF interface {
	// Score returns the total contribution of atoms against others.
	Score(atoms, others []*model.Atom) float64
	// ScoreAnnotated is Score, but also appends every non-zero pairwise
	// term to annotations (may be nil to suppress annotation entirely).
	ScoreAnnotated(atoms, others []*model.Atom, annotations *[]Annotation) float64
}

// enabledPair reports whether both atoms' owning models are enabled
// (section 4.7, "VdwScoreEnabledOnly skips either atom whose owning
// model is disabled").
func enabledPair(a, b *model.Atom) bool {
	ma, mb := a.Model(), b.Model()
	return (ma == nil || ma.Enabled()) && (mb == nil || mb.Enabled())
}

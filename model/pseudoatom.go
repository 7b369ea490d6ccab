package model

import "github.com/rxdock/rxdock-sub002/geom"

// PseudoAtom is a derived Atom whose coordinate tracks the mean position
// of a list of constituent atoms (e.g. an aromatic ring centroid used as
// a pi-interaction center). It embeds a regular Atom so it can appear
// anywhere a *Atom is accepted, but its Coord is recomputed rather than
// independently settable (section 3, "pseudo-atom list").
type PseudoAtom struct {
	*Atom
	Constituents []*Atom
}

// newPseudoAtom builds a pseudo-atom over constituents and sets its
// initial coordinate.
func newPseudoAtom(id int, constituents []*Atom) *PseudoAtom {
	p := &PseudoAtom{Atom: newAtom(id), Constituents: append([]*Atom(nil), constituents...)}
	p.UpdateCoords()
	return p
}

// UpdateCoords recomputes the pseudo-atom's coordinate as the mean of its
// constituents' current coordinates. A pseudo-atom with no constituents
// keeps its last coordinate.
func (p *PseudoAtom) UpdateCoords() {
	if len(p.Constituents) == 0 {
		return
	}
	sum := geom.Zero()
	for _, c := range p.Constituents {
		sum = sum.Add(c.Coord)
	}
	p.Coord = sum.Div(float64(len(p.Constituents)))
}

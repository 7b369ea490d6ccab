// Package site implements cavity detection and docking-site geometry:
// Cavity, DockingSite, SphereSiteMapper and LigandSiteMapper
// (SPEC_FULL.md section 3.5, spec.md section 4.5).
package site

import (
	"math"
	"sort"

	"github.com/rxdock/rxdock-sub002/geom"
	"github.com/rxdock/rxdock-sub002/grid"
)

// Cavity is an immutable set of grid points accessible to a probe of a
// given radius, plus the grid step they were sampled on (spec.md section
// 4.5, "FindPeaks... each returned peak records its... member set").
type Cavity struct {
	Coords []geom.Coord
	Step   geom.Vector
}

// NewCavity builds a Cavity from a peak's member cells.
func NewCavity(coords []geom.Coord, step geom.Vector) Cavity {
	return Cavity{Coords: coords, Step: step}
}

// Centroid returns the mean of every member coordinate.
func (c Cavity) Centroid() geom.Coord {
	var sum geom.Coord
	for _, p := range c.Coords {
		sum = sum.Add(p)
	}
	n := float64(len(c.Coords))
	return geom.New(sum.X/n, sum.Y/n, sum.Z/n)
}

// MinMax returns the axis-aligned bounding box of the member coordinates.
func (c Cavity) MinMax() (min, max geom.Coord) {
	min, max = c.Coords[0], c.Coords[0]
	for _, p := range c.Coords[1:] {
		min = geom.New(math.Min(min.X, p.X), math.Min(min.Y, p.Y), math.Min(min.Z, p.Z))
		max = geom.New(math.Max(max.X, p.X), math.Max(max.Y, p.Y), math.Max(max.Z, p.Z))
	}
	return
}

// Volume returns the cavity's volume as member-cell-count times the
// product of the grid step (section 4.5's cavities are reported "sorted
// by descending volume").
func (c Cavity) Volume() float64 {
	return float64(len(c.Coords)) * c.Step.X * c.Step.Y * c.Step.Z
}

// sortCavitiesByVolumeDesc sorts in place, descending.
func sortCavitiesByVolumeDesc(cavities []Cavity) {
	sort.Slice(cavities, func(i, j int) bool { return cavities[i].Volume() > cavities[j].Volume() })
}

func peaksToCavities(peaks []grid.Peak, step geom.Vector, base grid.Base) []Cavity {
	cavities := make([]Cavity, 0, len(peaks))
	for _, p := range peaks {
		coords := make([]geom.Coord, 0, len(p.Members))
		for _, m := range p.Members {
			coords = append(coords, base.Center(m[0], m[1], m[2]))
		}
		cavities = append(cavities, NewCavity(coords, step))
	}
	return cavities
}

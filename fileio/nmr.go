package fileio

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/rxdock/rxdock-sub002/dockerr"
)

// AtomListMode is the combination rule for one restraint's atom group
// (spec.md section 6, "MEAN... AND... OR").
type AtomListMode int

const (
	// AtomListOR: bare, comma-separated list; any member may satisfy the
	// restraint.
	AtomListOR AtomListMode = iota
	// AtomListAND: bracketed `[...]`; every member must satisfy it.
	AtomListAND
	// AtomListMean: parenthesized `(...)`; the restraint applies to the
	// centroid of the member atoms.
	AtomListMean
)

// AtomNameSpec is one `segment:subunitName_subunitId:atomName` reference,
// every component of which may be empty (section 6).
type AtomNameSpec struct {
	Segment     string
	SubunitName string
	SubunitID   string
	AtomName    string
}

// AtomList is a parsed, mode-tagged group of AtomNameSpecs.
type AtomList struct {
	Mode  AtomListMode
	Names []AtomNameSpec
}

// NOERestraint is a `<atoms1> <atoms2> <maxDist>` line.
type NOERestraint struct {
	Atoms1, Atoms2 AtomList
	MaxDist        float64
}

// STDRestraint is a `STD <atoms1> <maxDist>` ligand-to-surface line.
type STDRestraint struct {
	Atoms   AtomList
	MaxDist float64
}

// Restraints is the parsed content of an NMR restraint file.
type Restraints struct {
	NOE []NOERestraint
	STD []STDRestraint
}

// parseAtomNameSpec splits "segment:subunitName_subunitId:atomName" on
// ':' and the middle component on '_'; every component may be absent.
func parseAtomNameSpec(s string) AtomNameSpec {
	parts := strings.Split(s, ":")
	var spec AtomNameSpec
	if len(parts) >= 1 {
		spec.Segment = parts[0]
	}
	if len(parts) >= 2 {
		sub := strings.SplitN(parts[1], "_", 2)
		spec.SubunitName = sub[0]
		if len(sub) == 2 {
			spec.SubunitID = sub[1]
		}
	}
	if len(parts) >= 3 {
		spec.AtomName = parts[2]
	}
	return spec
}

// parseAtomList parses one whitespace-delimited token into an AtomList,
// determining its mode from the wrapping bracket style (section 6).
func parseAtomList(tok string) AtomList {
	mode := AtomListOR
	body := tok
	switch {
	case strings.HasPrefix(tok, "(") && strings.HasSuffix(tok, ")"):
		mode = AtomListMean
		body = tok[1 : len(tok)-1]
	case strings.HasPrefix(tok, "[") && strings.HasSuffix(tok, "]"):
		mode = AtomListAND
		body = tok[1 : len(tok)-1]
	}
	var names []AtomNameSpec
	for _, part := range strings.Split(body, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		names = append(names, parseAtomNameSpec(part))
	}
	return AtomList{Mode: mode, Names: names}
}

// ReadNMRRestraintFile parses NOE and ligand-surface (STD) distance
// restraint lines (spec.md section 6, "NMR restraint file").
func ReadNMRRestraintFile(r io.Reader) (*Restraints, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	out := &Restraints{}
	for sc.Scan() {
		trimmed := strings.TrimSpace(sc.Text())
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		f := strings.Fields(trimmed)
		if f[0] == "STD" {
			if len(f) != 3 {
				return nil, dockerr.New(dockerr.ParseFailure, "nmr restraint: STD record needs 3 fields: %q", trimmed)
			}
			d, err := strconv.ParseFloat(f[2], 64)
			if err != nil {
				return nil, dockerr.New(dockerr.ParseFailure, "nmr restraint: STD maxDist: %v", err)
			}
			out.STD = append(out.STD, STDRestraint{Atoms: parseAtomList(f[1]), MaxDist: d})
			continue
		}
		if len(f) != 3 {
			return nil, dockerr.New(dockerr.ParseFailure, "nmr restraint: NOE record needs 3 fields: %q", trimmed)
		}
		d, err := strconv.ParseFloat(f[2], 64)
		if err != nil {
			return nil, dockerr.New(dockerr.ParseFailure, "nmr restraint: NOE maxDist: %v", err)
		}
		out.NOE = append(out.NOE, NOERestraint{
			Atoms1: parseAtomList(f[0]), Atoms2: parseAtomList(f[1]), MaxDist: d,
		})
	}
	if err := sc.Err(); err != nil {
		return nil, dockerr.New(dockerr.ParseFailure, "nmr restraint: read failure: %v", err)
	}
	return out, nil
}

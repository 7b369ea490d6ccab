package model

import (
	"strconv"

	"github.com/rxdock/rxdock-sub002/dockerr"
)

// FlexClass identifies which closed key set a FlexData instance is
// validated against (section 3, "FlexData").
type FlexClass int

const (
	FlexReceptor FlexClass = iota
	FlexLigand
	FlexSolvent
)

// DihedralMode is the ligand/solvent DIHEDRAL_MODE (and, by convention,
// TRANS_MODE/ROT_MODE) enumeration.
type DihedralMode string

const (
	ModeFixed    DihedralMode = "FIXED"
	ModeTethered DihedralMode = "TETHERED"
	ModeFree     DihedralMode = "FREE"
)

var receptorKeys = map[string]bool{
	"FLEX_DISTANCE": true,
	"DIHEDRAL_STEP": true,
}

var ligandKeys = map[string]bool{
	"TRANS_MODE": true, "ROT_MODE": true, "DIHEDRAL_MODE": true,
	"TRANS_STEP": true, "ROT_STEP": true, "DIHEDRAL_STEP": true,
	"TRANS_TETHER": true, "ROT_TETHER": true, "DIHEDRAL_TETHER": true,
}

var solventKeys = map[string]bool{
	"OCCUPANCY": true, "OCCUPANCY_STEP": true,
}

func keysFor(class FlexClass) map[string]bool {
	switch class {
	case FlexReceptor:
		return receptorKeys
	case FlexSolvent:
		merged := make(map[string]bool, len(ligandKeys)+len(solventKeys))
		for k := range ligandKeys {
			merged[k] = true
		}
		for k := range solventKeys {
			merged[k] = true
		}
		return merged
	default:
		return ligandKeys
	}
}

// FlexData is the parameter map describing how much freedom a model (or
// part of one) has during docking: a closed set of string-keyed scalar
// values, validated against the recognized key set for its class.
type FlexData struct {
	Class  FlexClass
	values map[string]string
}

// NewFlexData builds an empty FlexData for the given class.
func NewFlexData(class FlexClass) *FlexData {
	return &FlexData{Class: class, values: make(map[string]string)}
}

// Set stores value under key, failing with BadArgument if key is not in
// the closed set recognized for this FlexData's class.
func (f *FlexData) Set(key, value string) error {
	if !keysFor(f.Class)[key] {
		return dockerr.New(dockerr.BadArgument, "flex data key %q not valid for this class", key)
	}
	f.values[key] = value
	return nil
}

// String returns the raw string value for key.
func (f *FlexData) String(key string) (string, error) {
	v, ok := f.values[key]
	if !ok {
		return "", dockerr.New(dockerr.MissingParameter, "flex data: no value for key %q", key)
	}
	return v, nil
}

// Float parses the value for key as a float64.
func (f *FlexData) Float(key string) (float64, error) {
	v, err := f.String(key)
	if err != nil {
		return 0, err
	}
	x, perr := strconv.ParseFloat(v, 64)
	if perr != nil {
		return 0, dockerr.New(dockerr.ParseFailure, "flex data key %q: %v", key, perr)
	}
	return x, nil
}

// Mode parses the value for key as a DihedralMode.
func (f *FlexData) Mode(key string) (DihedralMode, error) {
	v, err := f.String(key)
	if err != nil {
		return "", err
	}
	switch DihedralMode(v) {
	case ModeFixed, ModeTethered, ModeFree:
		return DihedralMode(v), nil
	default:
		return "", dockerr.New(dockerr.BadArgument, "flex data key %q: invalid mode %q", key, v)
	}
}

package elem

import (
	"strconv"

	"github.com/rxdock/rxdock-sub002/dockerr"
)

// Section is one `SECTION name ... END_SECTION` block from a parameter file
// (section 6): a flat string-keyed map of scalar values. Keys are stored
// as written, without a "name::" prefix; the owning Section is the
// namespace a key is looked up in.
type Section struct {
	Name   string
	Values map[string]string
}

// Float returns the named key parsed as float64.
func (s Section) Float(key string) (float64, error) {
	v, ok := s.Values[key]
	if !ok {
		return 0, dockerr.New(dockerr.MissingParameter, "section %q: missing key %q", s.Name, key)
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, dockerr.New(dockerr.ParseFailure, "section %q key %q: %v", s.Name, key, err)
	}
	return f, nil
}

// Has reports whether key is present in this section.
func (s Section) Has(key string) bool {
	_, ok := s.Values[key]
	return ok
}

// String returns the named key verbatim.
func (s Section) String(key string) (string, error) {
	v, ok := s.Values[key]
	if !ok {
		return "", dockerr.New(dockerr.MissingParameter, "section %q: missing key %q", s.Name, key)
	}
	return v, nil
}

// ParamFile is the parsed form of a `RBT_PARAMETER_FILE_V1.00` deck: a
// title, version, and a set of named sections (section 6). Read-once
// immutable once built, per section 5.
type ParamFile struct {
	Title    string
	Version  string
	sections map[string]Section
}

// NewParamFile builds an empty parameter file.
func NewParamFile() *ParamFile {
	return &ParamFile{sections: make(map[string]Section)}
}

// AddSection registers (or replaces) a named section.
func (p *ParamFile) AddSection(s Section) { p.sections[s.Name] = s }

// Section looks up a named section.
func (p *ParamFile) Section(name string) (Section, error) {
	s, ok := p.sections[name]
	if !ok {
		return Section{}, dockerr.New(dockerr.MissingParameter, "no section %q in parameter file %q", name, p.Title)
	}
	return s, nil
}

// SectionNames lists every section name present, for diagnostics.
func (p *ParamFile) SectionNames() []string {
	out := make([]string, 0, len(p.sections))
	for n := range p.sections {
		out = append(out, n)
	}
	return out
}

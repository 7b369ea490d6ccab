package elem

import "github.com/rxdock/rxdock-sub002/dockerr"

// Data is one element-file record: atomic number, name, valence bounds, and
// physical parameters used to seed new atoms before a force-field type is
// assigned. Mirrors the original ELEMENT record of the element file format
// (element file: TITLE, VERSION, HBOND_RADIUS_INCREMENT,
// IMPLICIT_RADIUS_INCREMENT, then ELEMENT records).
type Data struct {
	AtomicNo  int
	Name      string
	MinVal    int
	MaxVal    int
	CommonVal int
	Mass      float64
	VdwRadius float64
}

// Catalog is the read-once, immutable element table shared by every model
// constructed within a run (section 5: "element and parameter catalogs are
// read-once immutable singletons shared by all models created within the
// run").
type Catalog struct {
	Title                    string
	Version                  string
	HBondRadiusIncrement     float64
	ImplicitRadiusIncrement  float64
	byAtomicNo               map[int]Data
	byName                   map[string]Data
}

// NewCatalog builds an (initially empty) catalog; populate it with Add or
// via the fileio element-file reader.
func NewCatalog() *Catalog {
	return &Catalog{
		byAtomicNo: make(map[int]Data),
		byName:     make(map[string]Data),
	}
}

// Add registers one element record, indexed both by atomic number and by
// name (element-file records are unique on both).
func (c *Catalog) Add(d Data) {
	c.byAtomicNo[d.AtomicNo] = d
	c.byName[d.Name] = d
}

// ByAtomicNo looks up an element by atomic number.
func (c *Catalog) ByAtomicNo(n int) (Data, error) {
	d, ok := c.byAtomicNo[n]
	if !ok {
		return Data{}, dockerr.New(dockerr.MissingParameter, "no element data for atomic number %d", n)
	}
	return d, nil
}

// ByName looks up an element by symbol.
func (c *Catalog) ByName(name string) (Data, error) {
	d, ok := c.byName[name]
	if !ok {
		return Data{}, dockerr.New(dockerr.MissingParameter, "no element data for symbol %q", name)
	}
	return d, nil
}

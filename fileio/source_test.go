package fileio

var (
	_ Source = (*MOL2Reader)(nil)
	_ Source = (*SDFReader)(nil)
	_ Source = (*PSFReader)(nil)
	_ Source = (*CRDReader)(nil)
	_ Source = (*PDBReader)(nil)
)

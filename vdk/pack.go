package vdk

import "github.com/JordanRO2/RO2-Table-Converter/errs"

// Pack would archive a directory into a VDK file. It is unimplemented:
// the source this reader mirrors never implemented packing either
// ("Packing is not implemented yet."), so there is no reference
// behavior to reproduce.
func Pack(_ string) error {
	return errs.ErrVDKPackUnsupported
}

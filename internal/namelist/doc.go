// Package namelist reads the Fortran namelist files written by Pencil Code
// (param.nml, param2.nml).
//
// Only the subset of namelist syntax the simulation emits is understood:
//
//   - [Reassemble]: joins physically wrapped lines back into records
//   - [Tokenize]: splits a right-hand side into values, expanding N*value
//     repeats and keeping (a,b,c) groups together as tuples
//   - [Format]: classifies a single token as bool, int, float or string
//   - [Result]: accumulates assignments from one or more files, per module
//     when nesting is requested, along with a ledger of [Conflict]s
//
// # Example
//
//	res := namelist.NewResult()
//	if err := res.ReadFile("data/param.nml", true); err != nil {
//	    return err
//	}
//	for _, c := range res.ConflictList() {
//	    fmt.Println(c)
//	}
//
// A single token is returned bare by [Tokenize]; two or more are wrapped in
// a sequence [Value]. Callers must handle both shapes.
package namelist

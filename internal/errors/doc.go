// Package errors provides coded, actionable diagnostics for the
// vango-controls CLI.
//
// Each code (e.g. "C102") maps to a category, a short message and a longer
// explanation. Errors can point at a position in controls.yaml and show the
// surrounding lines:
//
//	err := errors.New("C102").
//	    WithLocationFromYAML("controls.yaml", yamlErr).
//	    Wrap(yamlErr)
//
//	errors.PrintError(os.Stderr, err)
//	// ERROR C102: Config file could not be parsed
//	//
//	//   controls.yaml:4
//	//
//	//        2 │ server:
//	//        3 │   host: localhost
//	//     →  4 │   port: [1
//	//        5 │ log:
package errors

// Package catalog loads the OpenFX property catalog (ofx-props.yml).
//
// The catalog document has three top-level keys:
//
//	properties:    property name -> metadata (type, dimension, writable, ...)
//	propertySets:  set name -> {props: [...], default options}
//	Actions:       action name -> {inArgs: [...], outArgs: [...]}
//
// Property-set entries whose key ends in "_DEF" are definition lists. They are
// spliced into other sets wherever a member token ends in the matching "_REF"
// suffix and never appear as sets themselves.
//
// A loaded Catalog is read-only. It is built once and passed explicitly to the
// validation and emission stages.
package catalog

// Package assets loads CSS themes for the generated résumé form.
//
// Themes ship embedded in the binary; a custom asset directory can shadow
// them, with fallback to the embedded copy when a name is not found there.
package assets

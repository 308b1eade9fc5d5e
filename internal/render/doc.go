// Package render paints a solved layout plan and a parsed résumé into the
// two-page HTML form. Geometry comes exclusively from the plan; nothing is
// measured or recomputed here.
package render

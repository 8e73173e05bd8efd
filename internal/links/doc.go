// Package links holds the pure path helpers used to turn scanned documentation
// paths into site links: separator normalization, link derivation with
// optional index collapsing, include/exclude glob matching and sort prefix
// stripping for display text.
package links

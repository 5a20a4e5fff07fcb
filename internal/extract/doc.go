// Package extract recovers tabular rows and flowing text from binary
// document containers. The word-table parser and the enrichment lookup
// both go through this package, so header-label column matching behaves
// identically on both paths.
package extract

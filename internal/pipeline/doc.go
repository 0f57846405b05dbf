// Package pipeline feeds queries one at a time through a Searcher, skipping
// empty ones, and calls a visit callback per result.
//
// The only contract to implement is Searcher (Search).
// This keeps the pipeline swappable and testable.
package pipeline

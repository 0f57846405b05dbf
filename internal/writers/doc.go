// Package writers turns search results into serialized outputs.
//
// Design:
//   - Writers own all presentation knowledge (text report, TSV, JSON/JSONL).
//   - Engine stays domain-only; pipeline stays orchestration-only.
//   - JSON/JSONL go through pkg/api (v1) for a stable wire format.
package writers

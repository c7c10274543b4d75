// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
// These must be provided for the pipeline to function:
//
//   - Segmenter: Splits text into sentences and words
//   - Transformer: A single rewriting stage (structure, vocabulary, noise)
//   - Pipeline: Chains transformers in fixed order
//   - WordlistProvider: Read-only pools of connectors, hedges and transitions
//
// # Optional Interfaces
//
// These can be nil - the pipeline degrades gracefully:
//
//   - SynonymOracle: Context-aware synonym suggestions. Without it, the
//     vocabulary transformer uses its static mapping only.
//   - HistoryStore: Persistence of past runs. Without it, the history
//     command is disabled.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter, transformer, or nlp package
package driven

// Package descriptor builds co-occurrence descriptors from tokenized sentences.
//
// Two words co-occur when they appear in the same sentence. Each sentence is
// treated as a set, so a word repeated within one sentence counts once, and a
// word never co-occurs with itself.
package descriptor

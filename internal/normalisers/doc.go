// Package normalisers provides implementations of the Normaliser
// interface for the three capture provenances. Each normaliser knows how
// to build a candidate ContentRecord from one kind of raw event.
//
// Normalisers are registered with the Registry at startup.
package normalisers

// Package driven defines the interfaces the engine core requires from
// its infrastructure: the four owned stores, the per-source normalisers,
// and the snapshot sink.
//
// The engine exclusively owns all store state. Adapters implement these
// interfaces; nothing outside the core mutates engine state directly.
package driven

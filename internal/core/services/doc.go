// Package services implements the engine core: classification,
// enrichment, the atomic indexing pipeline, ranked search, insights,
// and the discovery scheduler.
//
// Services depend only on domain types and port interfaces; adapters
// supply the store implementations at startup.
package services

// Package deeds exposes module-level metadata for the deeds ledger.
package deeds

// Version is the current deeds release.
const Version = "0.1.0"

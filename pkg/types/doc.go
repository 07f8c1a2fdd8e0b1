// Package types defines the Registry interface, entity types, payloads,
// configuration, and the closed error taxonomy for the deeds ledger.
package types

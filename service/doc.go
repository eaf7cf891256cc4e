// Package service orchestrates the core components of the exchange
// engine: matching securities, the credit/position ledger, the audit
// journal, the trade outbox, and snapshots.
//
// It is the only write entry point: every order command is resolved,
// journaled, and executed here under a per-security lock, decoupled
// from network transports like gRPC.
package service

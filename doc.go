// Package tindahan implements the ledger and reporting engine of a small,
// single-shop bookkeeping application.
//
// The whole shop state lives in a single Book document: the inventory items
// with their price and quantity history, the append-only list of sales, and a
// cache of computed monthly snapshots. Every operation loads the Book from a
// Store, mutates it in memory, and saves it back as one blob. There is exactly
// one actor; no locking is attempted.
package tindahan

// Package bettrack implements a personal betting ledger: wager records with
// a small settlement lifecycle, an embedded store to keep them in, and pure
// aggregation reports (profit, yield, win rate, trend) computed from the
// ledger on demand. It is designed to be local-first: all data lives in a
// single database file owned by the user, there is no server and no network.
package bettrack

// Package cookies implements a persistent cookie jar on top of the client's
// SQLite database.
//
// Expiry timestamps are stored as ISO-8601 strings in UTC with millisecond
// precision ("2006-01-02T15:04:05.000Z"), so they sort lexicographically and
// expired rows can be pruned with a plain string comparison. Every Create
// prunes expired cookies in the same transaction as the upsert.
package cookies

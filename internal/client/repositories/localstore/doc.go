// Package localstore provides the client's local key/value storage, backed by
// the local_storage table of the SQLite database.
package localstore

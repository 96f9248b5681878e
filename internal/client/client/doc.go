// Package client contains the client-side building blocks that talk to the
// wallet session backend and bootstrap local persistence.
//
// # Overview
//
//  1. A transport-agnostic API contract (see the Client interface):
//     GetProfile and Authenticate.
//  2. A JSON-over-HTTP implementation (see HTTPClient) that attaches the
//     session token as a bearer credential, tags every call with an
//     X-Request-ID and maps HTTP statuses to sentinel errors.
//  3. Local persistence bootstrap (InitDatabase, RunMigrations): an SQLite
//     database with embedded goose migrations holding the cookie jar and
//     local storage.
//
// # Wire format
//
//	GET  /profile       -> {"data": Profile}
//	POST /profile/auth  {"wallet","msg","sign","refcode"} -> {"data": Profile & {"token"}}
//
// # Error Handling
//
// Callers match with errors.Is: ErrUnavailable (transport failure, 5xx),
// ErrUnauthorized (401/403), ErrUnexpectedResponse (other statuses or an
// undecodable body).
package client

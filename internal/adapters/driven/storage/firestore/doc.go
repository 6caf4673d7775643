// Package firestore implements driven.ProverbStore against the Firestore
// REST API (google.golang.org/api/firestore/v1).
//
// Records live as documents in a single collection under the project's
// default database. Authentication uses a service-account credential,
// supplied inline or via a local key file. Calls go through a client-side
// token-bucket rate limiter.
package firestore

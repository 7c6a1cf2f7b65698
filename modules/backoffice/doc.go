// Package backoffice wires the access-control core into the business
// application's protected surfaces: the permission matrix for clients, users
// and service types, the admin-only dashboard gate, and the throttled
// authentication endpoints. The page handlers themselves are external glue
// supplied by the application; this module only decides who gets through.
package backoffice

// Package client contains the transport layer of the netflex CLI.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic API contract (see the Client interface) for the
//     remote user-directory service: Login, ListUsers, CreateUser, DeleteUser.
//  2. A concrete REST implementation (see HTTPClient) that attaches the bearer
//     credential, tags each request with an X-Request-ID, counts requests in a
//     Prometheus registry, and maps HTTP outcomes to transport errors.
//  3. Local persistence bootstrap (InitDatabase, RunMigrations) wiring a
//     SQLite database and applying embedded goose migrations.
//
// # Error Handling
//
// Transport outcomes are reported as:
//   - ErrUnavailable: the request never produced an HTTP response.
//   - *APIError: the server answered with a non-2xx status.
//   - ErrMalformedResponse: a 2xx body did not have the expected shape.
//
// Classification into user-facing categories happens one layer up, in
// package services.
package client

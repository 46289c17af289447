// Package client talks to the HBnB REST API.
//
// # Overview
//
// Client is the transport contract used by the services layer: login,
// listings, listing detail, reviews of a listing and review submission.
// HTTPClient implements it over net/http against a fixed base URL such as
// http://127.0.0.1:5001/api/v1.
//
// Every call takes the request headers explicitly. The session gateway
// decides which headers (and therefore which credential) a call carries;
// this package never reads the stored token itself.
//
// # Error Handling
//
// Transport failures wrap ErrUnavailable. Non-2xx responses are returned as
// *APIError carrying the status and the server's {"error": "..."} message;
// 401 and 404 also match ErrUnauthorized and ErrNotFound with errors.Is.
//
// There are no retries, no client-side timeouts and no caching; callers
// bound requests with the context they pass in.
package client

// Package api handles incoming HTTP requests, request validation, and
// response formatting. It acts as an adapter between external clients and
// the internal computations and upstream API proxies, translating errors
// into HTTP status codes at the boundary.
package api

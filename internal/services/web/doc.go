// Package web owns the browser-facing employee directory.
//
// It composes the employees module over a users service client and serves
// it with the shared middleware, health, and metrics endpoints.
package web

// Package handler exposes the form rule engine over HTTP: one validation
// endpoint per form kind and the availability probe contract the registration
// checker consumes. The endpoints are stateless; every request carries a full
// form snapshot and receives the aggregator's verdict.
package handler

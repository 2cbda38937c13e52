// Package aggregates defines the shared error contract for aggregate writes.
//
// A project is the unit of consistency: every mutation loads the whole
// aggregate document, applies an in-memory transformation, and persists the
// document back in one save. Failures surface as *Error values carrying one of
// the ErrorCode kinds so the HTTP layer can map them to status codes without
// inspecting messages.
package aggregates

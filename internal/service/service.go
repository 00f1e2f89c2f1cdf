// Package service sits between handlers and repositories.
//
// The employees API has no business rules, so services mostly pass calls
// through; they own the "zero rows affected means not found" decision and
// the health probe semantics.
package service

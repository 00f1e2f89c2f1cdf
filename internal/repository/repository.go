// Package repository runs the SQL statements of the service.
//
// Each method opens its own connection through the database provider,
// executes exactly one parameterized statement and releases the connection
// before returning. Driver errors are translated by sqlerr.
package repository

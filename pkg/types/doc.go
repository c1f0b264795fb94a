// Package types defines the entity types, snapshot format, configuration and
// standard errors for the Daybook persistence core. Entities are plain data
// structs with no live connection to the record store; services hand out
// copies, never references into storage.
package types

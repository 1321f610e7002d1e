// Package types defines the entity types, configuration, and standard
// error values for the bookshop storage system.
package types

// Package bookshop holds module-level metadata.
package bookshop

// Version is the bookshop release version.
const Version = "0.1.0"

// Package render turns API records into view models and writes them as
// plain text.
//
// The view-model half (Stars, Summarize, NewPlaceCard, FilterByPrice, ...)
// is pure and has no I/O. The writer half prints those view models to an
// io.Writer and is what the CLI pages call.
package render

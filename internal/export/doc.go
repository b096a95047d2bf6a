// Package export serializes roster reports for download.
//
// This package is internal to Gradebook and produces the CSV report handed
// to presentation layers as a downloadable file. The report is UTF-8,
// comma-delimited, with a header row and the column order name, grade,
// status.
//
// Serialization is a pure read: the caller supplies a snapshot of rows and
// receives a byte slice; no roster state is touched.
package export

// Package export writes synthetic tagged records to a flat binary file and
// reads them back.
//
// A run generates a fixed sequence of Scalar, Vector and Message records (see
// package generate) and writes each one as a 64-byte block (see package
// record). The file has no header, so a reader needs the block size and
// layout documented in package record, plus the record count, which can be
// derived from the file size.
//
//	s, err := export.Run("data", 100)
//	if err != nil {
//		log.Fatal(err)
//	}
//	records, err := export.Load(s.Path)
//
// Runs can be registered in a catalog.Catalog, which keeps each file's digest
// so Verify can detect a file that changed after it was written.
package export

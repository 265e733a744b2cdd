// Package record defines the tagged records the exporter produces and the
// fixed 64-byte block each one occupies on disk.
//
// Every block starts with the record's Kind as an int32. The payload begins
// at offset 8 and repeats the Kind before the variant fields, matching the
// native struct the legacy exporter wrote on LP64 hosts:
//
//	offset  size  field
//	0       4     kind
//	8       4     kind (repeated)
//	scalar:
//	12      4     value (float32)
//	16      8     timestamp (int64 seconds)
//	vector:
//	12      40    values ([10]float32)
//	56      8     timestamp (int64 seconds)
//	message:
//	12      21    NUL-terminated text
//
// All numbers use the host byte order. Bytes not covered by a field are zero.
// A file is a bare sequence of blocks with no header or footer, so a reader
// needs nothing but this layout to decode it:
//
//	w := record.NewWriter(f)
//	n, err := w.WriteAll(records)
//
//	r := record.NewReader(f)
//	for rec, err := range r.Seq() {
//	    ...
//	}
package record

// Package csvfile handles reading header-addressed service-request CSV files row-by-row
//
// Design choices:
// - stdlib csv.Reader with variable field counts and lazy quotes; quoting
//   defects and short rows are per-record conditions and are skipped
// - BOM-tolerant decode (x/text BOMOverride) so exported files with a UTF-8
//   BOM still resolve the first column by name
// - Rows carry the header index; fields are addressed by column name and a
//   missing column reads as absent, which callers treat as a skip signal
package csvfile

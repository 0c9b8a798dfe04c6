package domain

// Row is one input row addressed by column name.
// The false return means the field is absent (unknown column or short row)
type Row interface {
	Get(col string) (string, bool)
}

// SourcePort streams rows; Next returns io.EOF when the source is exhausted
type SourcePort interface {
	Next() (Row, error)
}

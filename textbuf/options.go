package textbuf

// Option is a functional option for configuring a Buffer.
type Option func(*Buffer)

// WithIndentSize sets the alignment unit used by Indent and Deindent.
// Values less than 1 are ignored.
func WithIndentSize(n int) Option {
	return func(b *Buffer) {
		if n > 0 {
			b.indentSize = n
		}
	}
}

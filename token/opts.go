package token

type tokenOpts struct {
	filename string
	bufSize  int
}

type TokenOpt func(*tokenOpts)

// TokenFilename sets the file name reported in token positions.
func TokenFilename(name string) TokenOpt {
	return func(o *tokenOpts) { o.filename = name }
}

// TokenBufferSize sets the size of the read buffer placed in front of the
// input reader.
func TokenBufferSize(n int) TokenOpt {
	return func(o *tokenOpts) {
		if n > 0 {
			o.bufSize = n
		}
	}
}

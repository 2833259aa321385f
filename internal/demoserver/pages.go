package demoserver

// PageDefinition is one fixture document. Versions maps a version number to
// the body served for it; a missing version falls back to the closest lower
// one.
type PageDefinition struct {
	Path        string
	Description string

	// ContentType is sent as-is. When NoContentType is set the header is
	// omitted entirely and net/http's sniffing is suppressed.
	ContentType   string
	NoContentType bool

	Versions map[int][]byte
}

// GetAllPages returns all demo page definitions.
func GetAllPages() []PageDefinition {
	return []PageDefinition{
		{
			Path:        "/page.html",
			Description: "HTML page, printed to stdout",
			ContentType: "text/html",
			Versions: map[int][]byte{
				1: []byte("<html>ok</html>"),
				2: []byte("<html><head><title>Demo</title></head><body>ok, version two</body></html>"),
			},
		},
		{
			Path:        "/plain.txt",
			Description: "UTF-8 text",
			ContentType: "text/plain; charset=utf-8",
			Versions: map[int][]byte{
				1: []byte("hello, world\n"),
				2: []byte("hello, changed world\n"),
			},
		},
		{
			Path:        "/latin1.txt",
			Description: "ISO-8859-1 text, decoded before printing",
			ContentType: "text/plain; charset=iso-8859-1",
			Versions: map[int][]byte{
				1: []byte("caf\xe9"),
			},
		},
		{
			Path:        "/file.bin",
			Description: "binary payload, suppressed unless --out-file is given",
			ContentType: "application/octet-stream",
			Versions: map[int][]byte{
				1: {0x00, 0x01, 0x02},
			},
		},
		{
			Path:        "/data.json",
			Description: "JSON is not text/*, so it is suppressed too",
			ContentType: "application/json",
			Versions: map[int][]byte{
				1: []byte(`{"ok":true}`),
			},
		},
		{
			Path:          "/no-type",
			Description:   "no Content-Type header at all",
			NoContentType: true,
			Versions: map[int][]byte{
				1: []byte("mystery bytes"),
			},
		},
	}
}

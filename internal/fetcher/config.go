package fetcher

// Process exit codes returned by Run.
const (
	// ExitOK means a response was obtained and handled, including the
	// suppressed-output path and a failed print.
	ExitOK = 0
	// ExitFetchFailed means no response was obtained.
	ExitFetchFailed = 1
	// ExitWriteFailed means the output file could not be created or written.
	ExitWriteFailed = 2
)

// Options are the per-invocation inputs of Run.
type Options struct {
	// URL is fetched as given; it is not validated beforehand.
	URL string

	// OutFile, when set, receives the raw body whatever its content type.
	OutFile string
}

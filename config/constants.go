package config

import "time"

// Backend Constants
const (
	// DefaultBackendURL is the recognition service the client talks to
	DefaultBackendURL = "http://127.0.0.1:8001"

	// DefaultPredictTimeout of zero means a request may stay in flight forever
	DefaultPredictTimeout time.Duration = 0

	// DefaultSupersessionPolicy decides which response wins when submissions overlap
	DefaultSupersessionPolicy = "latest-request"
)

// Poster Constants
const (
	// DefaultPosterBaseURL resolves TMDb-relative poster paths
	DefaultPosterBaseURL = "https://image.tmdb.org/t/p"

	// DefaultPosterSize is the TMDb image size segment
	DefaultPosterSize = "w185"

	// DefaultPosterPlaceholder is shown for works without a poster
	DefaultPosterPlaceholder = "(no poster)"
)

// Client Constants
const (
	// DefaultPreviewWidth is the thumbnail width in terminal cells
	DefaultPreviewWidth = 24

	// DefaultLogFile receives the client's structured logs
	DefaultLogFile = "facerecog.log"
)

// Stub Server Constants
const (
	// DefaultStubAddr is where the stub recognition server listens
	DefaultStubAddr = ":8001"

	// MaxUploadBytes caps multipart bodies accepted by the stub server
	MaxUploadBytes = 32 << 20
)

package messages

// Artifact download messages.
const (
	FetchStartFmt   = "Downloading %s\n"
	FetchWithFmt    = "Using %s.\n"
	FetchFailedFmt  = "download of %s with %s failed (exit %d); fetch it manually and place it at %s"
	FetchToolErrFmt = "download of %s with %s failed (%v); fetch it manually and place it at %s"
	FetchDoneFmt    = "Saved %s.\n"
)

package engine

// Setup error codes carried by oops errors
const (
	CodeEntriesEmpty   = "ENTRIES_EMPTY"
	CodeEntryInvalid   = "ENTRY_INVALID"
	CodeWorldUnknown   = "WORLD_UNKNOWN"
	CodeProfileInvalid = "PROFILE_INVALID"
	CodeSetupFailed    = "SETUP_FAILED"
)

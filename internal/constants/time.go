package constants

import "time"

// DebounceDelay is the idle period the autosave coordinator waits for
// before committing a burst of edits as a single write.
const DebounceDelay = 500 * time.Millisecond

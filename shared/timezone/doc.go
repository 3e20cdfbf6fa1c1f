// Package timezone keeps every date the console compares in one location, APP_TIMEZONE
// (UTC when unset or unknown).
//
// Reservation dates travel as calendar days, so wizard rules such as "start is not before
// today" use Today and ParseDate rather than time.Now:
//
//	start, err := timezone.ParseDate("2025-01-01")
//	if start.Before(timezone.Today()) { ... }
//
// Export file names and screen load times use Now.
package timezone

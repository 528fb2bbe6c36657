// Package places wraps the Google Places nearby-search API.
//
// Search issues one radius search for museums; SearchPages follows
// next_page_token links. A fresh page token is rejected with
// INVALID_REQUEST for a short while after it is issued, so
// SearchWithTokenRetry (used by SearchPages and by callers paging one
// result set at a time) retries such requests on a constant backoff.
//
// Adapt converts raw results into models.Venue; PhotoURL only assembles a
// URL and never touches the network.
package places

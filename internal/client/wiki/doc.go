// Package wiki reads article summaries from Wikipedia and infers a street
// address from free text.
//
// # Overview
//
// Fetch takes a full article URL ("https://pt.wikipedia.org/wiki/Museu_...").
// The title is taken from the path and looked up through the REST summary
// endpoint; a 404 is retried once with spaces turned into underscores. If
// the REST endpoint is unusable the legacy api.php query endpoint is used
// instead. Requests go to the article's own host unless a base URL is
// configured.
//
// InferAddress never fails: when no pattern matches it returns the title.
package wiki

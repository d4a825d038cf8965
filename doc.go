// Package stockmon is a terminal dashboard for a personal stock portfolio.
//
// All heavy computation happens upstream: scheduled scripts publish JSON/CSV
// snapshots (portfolio valuation history, fear & greed index, macro
// indicators) to a repository, and this package is a presentation and editing
// layer over those finished data products.
//
// The root package implements the configuration round-trip engine: it parses
// the dashboard's ini-style configuration into an editable model and merges
// edits back into the original text, preserving comments, ordering and
// formatting of every untouched line. Subpackages fetch the data feeds
// (feed), talk to the repository hosting the configuration (gh), render
// markdown reports (renderer) and expose the command line (cmd).
package stockmon

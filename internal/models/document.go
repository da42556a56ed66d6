package models

// Document is deliberately untyped JSON. A few backend endpoints (account
// info, market overview, AI config) have no stable schema; naming the
// passthrough keeps the type-safety boundary visible at call sites.
type Document map[string]any

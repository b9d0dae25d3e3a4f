// Package linkvault provides a local bookmark manager that stores links
// together with a short extractive summary of the linked page. Summaries are
// built from the page text with fixed heuristics rather than a language model.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., sqlite/, rod/, trafilatura/).
package linkvault

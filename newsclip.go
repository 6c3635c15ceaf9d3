// Package newsclip provides template-free extraction of article records
// from arbitrary HTML listing pages. It scans parsed markup for plausible
// content blocks, builds structured records (title, URL, summary, publish
// date, hero image) from noisy and partial signals, ranks and deduplicates
// candidates, and orchestrates collection across a configured set of
// sources.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, sqlite/, gemini/).
package newsclip

// Package newsgrab extracts structured news articles from web pages.
// Given the URL of a list page it discovers links to article pages on the
// same site using per-hostname CSS selector profiles, fetches each article,
// and extracts title, author, publish date, lead image, and body text.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, http/, dateparse/).
package newsgrab

// Package helpcenter crawls a documentation site's help-center hierarchy
// (categories, then articles), scrapes each article's main content region
// and reorganizes it into text sections with an LLM, falling back to a
// selector-based extractor when the model is unavailable.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, openai/, rod/).
package helpcenter

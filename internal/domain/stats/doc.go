// Package stats turns a snapshot of feedback records into display-ready
// summaries: per-department/per-year chart series, order statistics over
// those series, and per-faculty averages by year.
//
// Every function is pure. Callers fetch a fresh snapshot of feedback and of
// the current catalog (surveys and department rosters) and recompute on each
// request; nothing here is cached or updated incrementally.
//
// Both aggregation paths share two policies:
//
//   - Orphans are dropped. A feedback record whose survey or department no
//     longer exists, or that rated a faculty id missing from the department's
//     current roster, contributes to nothing.
//   - Years outside 1..3 (including a missing year) fall into an explicit
//     "unknown" bucket that is reported on its own.
package stats

// Package crontab models the per-user cron table as an ordered list of lines
// and provides the pure functions that add or strip the analyzer's entry.
//
// The table is only ever read and written whole through a Store. Register and
// Remove never mutate their input; they return a new Table.
//
// An entry consists of two lines appended to the end of the table:
//
//	# Granola Meeting Analyzer
//	0 17 * * * cd /p && /usr/bin/uv run python analyze_meetings.py >> /p/logs/cron.log 2>&1
//
// A line belongs to the analyzer when it carries the granola_processor marker,
// the display name, or the invocation of the analysis script.
package crontab

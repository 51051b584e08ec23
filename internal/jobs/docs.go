// Package jobs contains scheduled background tasks.
// This package implements cron-based jobs using github.com/robfig/cron/v3,
// currently a single observational job reporting the pending-order backlog.
package jobs

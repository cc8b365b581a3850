// Package jobs provides scheduled background tasks for the shipping console.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic work the console needs while a session is active.
//
// # Available Jobs
//
// 1. BoardRefreshJob - Runs every 30 seconds to re-fetch the acting user's
// orders from the directory service and replace the order board's working
// set.
//
// # Error Handling
//
// - An unauthenticated session is an expected state and is not logged.
// - All other refresh failures are logged; the board keeps showing the last
// successfully fetched working set.
package jobs

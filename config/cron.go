package config

import "strings"

// Default schedules for the built-in jobs. Override with CRON_<NAME>.
var CronSchedules = map[string]string{
	"cachewarmjob":   "@every 5m",
	"snapshotjob":    "0 3 * * *",
	"designindexjob": "30 * * * *",
}

// CronSchedule returns the schedule for a job, honouring CRON_<NAME> overrides.
func CronSchedule(name string) string {
	def := CronSchedules[name]
	return GetEnv("CRON_"+strings.ToUpper(name), def)
}

package cron

import (
	"context"
	"sort"
	"strings"
	"sync"

	"glomnidesigns.GO/core/registry"
)

// Job is a named scheduled task. An empty Schedule or "-" keeps the job
// out of the scheduler while still allowing it to be run by name.
type Job struct {
	Name     string
	Schedule string
	Run      func(ctx context.Context) error
}

// Disabled reports whether the scheduler should skip the job.
func (j Job) Disabled() bool {
	s := strings.TrimSpace(j.Schedule)
	return s == "" || s == "-"
}

var mu sync.Mutex

// Register adds a job under its lower-cased name. Call from init().
// Panics on a duplicate name or once Jobs has been read.
func Register(name string, schedule string, run func(ctx context.Context) error) {
	mu.Lock()
	defer mu.Unlock()
	if registry.GlobalRegistry.IsLocked(registry.KeyRegistryCron) {
		panic("cron/registry: locked (register only during init before StartCron)")
	}
	name = strings.ToLower(name)
	jobs := getJobs()
	if _, ok := jobs[name]; ok {
		panic("cron/registry: duplicate job " + name)
	}
	jobs[name] = Job{Name: name, Schedule: schedule, Run: run}
	registry.GlobalRegistry.SetGlobal(registry.KeyRegistryCron, jobs)
}

// Unregister removes a job and unlocks the registry. Tests only.
func Unregister(name string) {
	mu.Lock()
	defer mu.Unlock()
	registry.GlobalRegistry.UnlockForTesting(registry.KeyRegistryCron)
	jobs := getJobs()
	delete(jobs, strings.ToLower(name))
	registry.GlobalRegistry.SetGlobal(registry.KeyRegistryCron, jobs)
}

func getJobs() map[string]Job {
	if v, ok := registry.GlobalRegistry.GetGlobal(registry.KeyRegistryCron); ok && v != nil {
		return v.(map[string]Job)
	}
	return make(map[string]Job)
}

// Jobs returns every registered job ordered by name and locks the registry.
func Jobs() []Job {
	mu.Lock()
	defer mu.Unlock()
	m := getJobs()
	out := make([]Job, 0, len(m))
	for _, j := range m {
		out = append(out, j)
	}
	sort.Slice(out, func(i, k int) bool { return out[i].Name < out[k].Name })
	registry.GlobalRegistry.Lock(registry.KeyRegistryCron)
	return out
}

// Lookup finds a job by case-insensitive name.
func Lookup(name string) (Job, bool) {
	name = strings.ToLower(name)
	for _, j := range Jobs() {
		if j.Name == name {
			return j, true
		}
	}
	return Job{}, false
}

// Names lists the registered job names in order.
func Names() []string {
	jobs := Jobs()
	names := make([]string, len(jobs))
	for i, j := range jobs {
		names[i] = j.Name
	}
	return names
}

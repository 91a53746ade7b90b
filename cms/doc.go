// Package cms is the client for the headless CMS REST API.
//
// Every call returns a Result envelope instead of an error: transport,
// status and decoding failures all collapse into success=false with a
// static message. Diagnostics go to an optional Observer.
package cms

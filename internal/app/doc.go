// Package app wires the joke fetcher to the panel presenter.
//
// One cycle is Announce → Fetch → Report:
//
//  1. an info panel reading "Fetching a random joke..."
//  2. a single call to the Fetcher
//  3. a success panel titled "Your Joke" holding the joke, or an error
//     panel reading "Error: <message>"
//
// The outcome is returned as a Result rather than an error so the caller
// decides what a failed fetch means for the process exit status.
package app

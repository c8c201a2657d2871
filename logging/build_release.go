//go:build release

package logging

const release = true

// Package ui provides shared UI constants and utilities.
package ui

// StatusHeight is the error/status line above the help line.
const StatusHeight = 1

// Package domain defines the contracts shared across the app.
// It contains interfaces only; concrete types live next to their
// implementations.
package domain

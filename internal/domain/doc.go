// Package domain defines the core data models, error taxonomy and service
// contracts shared across hyperlink. It contains plain types and interfaces only.
package domain

// Package queries holds every SQL statement the repositories run. Statements
// use ? placeholders; gorm rewrites them for the active dialect.
package queries

// Package models contains the GORM persistence models and their conversions
// to and from domain aggregates. Snapshot and response collections are kept
// as JSON columns so a survey or feedback row is read back exactly as written.
package models

// Package repository provides persistence for captured leads.
package repository

import (
	"context"
	"time"
)

// StoredLead is a captured lead with its prediction, system-assigned ID and
// creation timestamp. Stored leads are append-only and immutable after
// creation.
type StoredLead struct {
	ID           string
	Name         string
	City         string
	Budget       float64
	Urgency      int
	ServiceType  string
	Channel      string
	QualityLabel string
	QualityScore float64
	ScoringMode  string
	CreatedAt    time.Time
}

// Repository is the append-only lead store contract.
type Repository interface {
	// Insert appends a new stored lead.
	Insert(ctx context.Context, lead StoredLead) error
	// List returns all stored leads in insertion order.
	List(ctx context.Context) ([]StoredLead, error)
}

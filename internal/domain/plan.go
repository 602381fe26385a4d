// Package domain contains the core data types for the travel planner.
// This package has zero dependencies on the other internal packages and is
// imported by every one of them (repo, service, handler).
package domain

import (
	"maps"
	"time"

	"github.com/google/uuid"
)

// Plan represents a single trip plan: a named, date-bounded itinerary with a
// hotel and an activity assignable to each day.
//
// OwnerUsername is a denormalized copy of the owning user's username and must
// always agree with OwnerID. SetOwner is the only way to set either field, so
// the two cannot drift apart.
//
// Hotels and Activities are keyed by the canonical date string produced by
// DateKey. Use the Hotel/SetHotel and Activity/SetActivity accessors rather
// than touching the maps directly.
type Plan struct {
	ID            uuid.UUID         `json:"id"`
	Name          string            `json:"name"`
	StartDate     time.Time         `json:"start_date"`
	EndDate       time.Time         `json:"end_date"`
	OwnerID       uuid.UUID         `json:"owner_id"`
	OwnerUsername string            `json:"owner_username"`
	Published     bool              `json:"published"`
	Hotels        map[string]string `json:"hotels"`
	Activities    map[string]string `json:"activities"`
	CreatedAt     time.Time         `json:"created_at"`
	UpdatedAt     time.Time         `json:"updated_at"`
}

// SetOwner assigns the plan to u, updating the owner reference and the
// denormalized username together. Callers must never set OwnerID or
// OwnerUsername individually — username-based ownership checks elsewhere rely
// on the two fields agreeing.
func (p *Plan) SetOwner(u User) {
	p.OwnerID = u.ID
	p.OwnerUsername = u.Username
}

// TripLengthInDays returns the inclusive day count between StartDate and
// EndDate. Both dates must be set; a plan is never created without them.
func (p *Plan) TripLengthInDays() int {
	return DaysBetween(p.StartDate, p.EndDate)
}

// DateRange returns every date of the trip from StartDate through EndDate
// inclusive. Empty when the range is inverted.
func (p *Plan) DateRange() []time.Time {
	return DateRange(p.StartDate, p.EndDate)
}

// ContainsDate reports whether date falls within the trip's bounds.
func (p *Plan) ContainsDate(date time.Time) bool {
	d := NormalizeDate(date)
	return !d.Before(NormalizeDate(p.StartDate)) && !d.After(NormalizeDate(p.EndDate))
}

// Hotel returns the hotel booked for date. The second return is false when no
// hotel has been set for that day — an absent entry is not an error.
func (p *Plan) Hotel(date time.Time) (string, bool) {
	name, ok := p.Hotels[DateKey(date)]
	return name, ok
}

// SetHotel records the hotel for date, allocating the map on first use.
func (p *Plan) SetHotel(date time.Time, name string) {
	if p.Hotels == nil {
		p.Hotels = make(map[string]string)
	}
	p.Hotels[DateKey(date)] = name
}

// Activity returns the activity planned for date, if any.
func (p *Plan) Activity(date time.Time) (string, bool) {
	name, ok := p.Activities[DateKey(date)]
	return name, ok
}

// SetActivity records the activity for date, allocating the map on first use.
func (p *Plan) SetActivity(date time.Time, name string) {
	if p.Activities == nil {
		p.Activities = make(map[string]string)
	}
	p.Activities[DateKey(date)] = name
}

// CopyForOwner builds an unsaved clone of the plan for a new owner.
// The clone has no identity yet (assigned on insert), copies the name, dates,
// and deep copies of both detail maps, and is always unpublished. The
// receiver is not modified.
func (p *Plan) CopyForOwner(u User) Plan {
	clone := Plan{
		Name:       p.Name,
		StartDate:  p.StartDate,
		EndDate:    p.EndDate,
		Hotels:     maps.Clone(p.Hotels),
		Activities: maps.Clone(p.Activities),
	}
	clone.SetOwner(u)
	return clone
}

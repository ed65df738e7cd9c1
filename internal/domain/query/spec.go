package query

import (
	"time"

	"pnrquality-service/internal/domain/entity"
)

// Spec describes a PNR filter as data, decoupled from whatever query
// mechanism the storage layer uses. The aggregator interprets it directly
// via Matches.
type Spec interface {
	Matches(p *entity.PNR) bool
}

// Field names understood by FieldIn.
const (
	FieldOffice                 = "office_id"
	FieldDeliverySystemCompany  = "delivery_system_company"
	FieldDeliverySystemLocation = "delivery_system_location"
	FieldAgent                  = "agent"
)

// All matches every PNR. The zero filter.
type All struct{}

func (All) Matches(*entity.PNR) bool { return true }

// And matches when every child matches. Empty And matches everything.
type And []Spec

func (a And) Matches(p *entity.PNR) bool {
	for _, s := range a {
		if !s.Matches(p) {
			return false
		}
	}
	return true
}

// Or matches when any child matches. Empty Or matches nothing.
type Or []Spec

func (o Or) Matches(p *entity.PNR) bool {
	for _, s := range o {
		if s.Matches(p) {
			return true
		}
	}
	return false
}

// Not inverts its child.
type Not struct {
	Spec Spec
}

func (n Not) Matches(p *entity.PNR) bool { return !n.Spec.Matches(p) }

// FieldIn matches when the named dimension attribute equals any of the
// listed values. An empty value list matches nothing.
type FieldIn struct {
	Field  string
	Values []string
}

func (f FieldIn) Matches(p *entity.PNR) bool {
	var got string
	switch f.Field {
	case FieldOffice:
		got = p.OfficeID
	case FieldDeliverySystemCompany:
		got = p.DeliverySystemCompany
	case FieldDeliverySystemLocation:
		got = p.DeliverySystemLocation
	case FieldAgent:
		got = p.Agent
	default:
		return false
	}
	for _, v := range f.Values {
		if got == v {
			return true
		}
	}
	return false
}

// DateBetween matches PNRs whose creation date falls in [Start, End],
// both bounds inclusive and either optional. PNRs without a creation date
// never match a bounded range.
type DateBetween struct {
	Start *time.Time
	End   *time.Time
}

func (d DateBetween) Matches(p *entity.PNR) bool {
	if d.Start == nil && d.End == nil {
		return true
	}
	if p.CreationDate == nil {
		return false
	}
	if d.Start != nil && p.CreationDate.Before(*d.Start) {
		return false
	}
	if d.End != nil && p.CreationDate.After(*d.End) {
		return false
	}
	return true
}

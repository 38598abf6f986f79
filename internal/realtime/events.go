package realtime

import "github.com/shopspring/decimal"

// Event kinds pushed to wishlist viewers. Each carries the minimum the
// client needs to patch local state without a full refetch.
const (
	EventItemAdded         = "item_added"
	EventItemUpdated       = "item_updated"
	EventItemDeleted       = "item_deleted"
	EventItemReserved      = "item_reserved"
	EventItemUnreserved    = "item_unreserved"
	EventContributionAdded = "contribution_added"
)

// Event is the wire envelope: {type, ...payload}. Fields not relevant to
// a kind are omitted from JSON.
type Event struct {
	Type string `json:"type"`

	ItemID string      `json:"item_id,omitempty"`
	Item   interface{} `json:"item,omitempty"`

	// item_reserved only. The reserver chose to show this name to other
	// guests; it is never part of any owner-facing read path.
	ReserverName string `json:"reserver_name,omitempty"`

	// contribution_added only: changed aggregates.
	TotalContributed  *decimal.Decimal `json:"total_contributed,omitempty"`
	ContributorsCount int              `json:"contributors_count,omitempty"`
	ContributorName   string           `json:"contributor_name,omitempty"`
}

// Publisher is what mutation services see: fire-and-forget fan-out to all
// viewers of a slug. A publish must never fail the triggering mutation.
type Publisher interface {
	Publish(slug string, event Event)
}

// NopPublisher discards events. Used by the worker binary and in tests.
type NopPublisher struct{}

func (NopPublisher) Publish(string, Event) {}

func ItemAdded(item interface{}) Event {
	return Event{Type: EventItemAdded, Item: item}
}

func ItemUpdated(item interface{}) Event {
	return Event{Type: EventItemUpdated, Item: item}
}

func ItemDeleted(itemID string) Event {
	return Event{Type: EventItemDeleted, ItemID: itemID}
}

func ItemReserved(itemID, reserverName string) Event {
	return Event{Type: EventItemReserved, ItemID: itemID, ReserverName: reserverName}
}

func ItemUnreserved(itemID string) Event {
	return Event{Type: EventItemUnreserved, ItemID: itemID}
}

func ContributionAdded(itemID string, total decimal.Decimal, count int, contributorName string) Event {
	return Event{
		Type:              EventContributionAdded,
		ItemID:            itemID,
		TotalContributed:  &total,
		ContributorsCount: count,
		ContributorName:   contributorName,
	}
}

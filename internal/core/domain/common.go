package domain

import "time"

// AuditFields holds standard audit information for domain entities.
type AuditFields struct {
	CreatedAt     time.Time `json:"createdAt"`
	CreatedBy     string    `json:"createdBy"` // Staff user reference
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
	LastUpdatedBy string    `json:"lastUpdatedBy"` // Staff user reference
}

// TenantContext scopes an operation to one property on behalf of one staff actor.
// It is passed explicitly into every service call; there is no ambient tenant state.
type TenantContext struct {
	PropertyID string `json:"propertyID"`
	ActorID    string `json:"actorID"`
}

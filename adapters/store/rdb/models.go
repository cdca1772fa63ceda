package rdb

import "time"

// EndpointRecord is the RDB persistence model for domain Endpoint.
// Table name: endpoints
type EndpointRecord struct {
	ID            string    `gorm:"primaryKey;type:text;not null"`
	Name          string    `gorm:"type:text;not null"`
	URL           string    `gorm:"type:text"`
	Kubeconfig    string    `gorm:"type:text"`
	Configuration string    `gorm:"type:text"` // JSON encoded model.EndpointConfiguration
	CreatedAt     time.Time `gorm:"not null"`
	UpdatedAt     time.Time `gorm:"not null"`
}

func (EndpointRecord) TableName() string { return "endpoints" }

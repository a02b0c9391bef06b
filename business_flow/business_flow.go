// Package businessflow contains the core business logic for availability and
// engagement analytics workflows
package businessflow

import (
	"fmt"

	"github.com/vetrinahq/vetrina-backend/config"
)

const RequestIDKey = "X-Request-ID"

// ClientMetadata holds client-related information for event ingestion and tracing
type ClientMetadata struct {
	IPAddress string `json:"ip_address"`
	UserAgent string `json:"user_agent"`
	RequestID string `json:"request_id,omitempty"`
}

// NewClientMetadata creates a new ClientMetadata instance with basic information
func NewClientMetadata(ipAddress, userAgent string) *ClientMetadata {
	return &ClientMetadata{
		IPAddress: ipAddress,
		UserAgent: userAgent,
	}
}

// SetRequestID sets the request ID
func (cm *ClientMetadata) SetRequestID(requestID string) {
	cm.RequestID = requestID
}

func redisKey(cfg config.CacheConfig, key string) string {
	return fmt.Sprintf("%s%s", cfg.RedisPrefix, key)
}

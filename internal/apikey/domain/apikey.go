package domain

import "strings"

// ApiKey is one stored credential
type ApiKey struct {
	ID          string `json:"id"`
	ServiceName string `json:"serviceName"`
	KeyName     string `json:"keyName"`
	APIKey      string `json:"apiKey"`
	Description string `json:"description"`
	CreatedAt   string `json:"createdAt"`
	UpdatedAt   string `json:"updatedAt"`
}

// Patch carries the fields an update may change
type Patch struct {
	ServiceName *string `json:"serviceName,omitempty"`
	KeyName     *string `json:"keyName,omitempty"`
	APIKey      *string `json:"apiKey,omitempty"`
	Description *string `json:"description,omitempty"`
}

// Apply merges the set fields of p into k
func (p Patch) Apply(k ApiKey) ApiKey {
	if p.ServiceName != nil {
		k.ServiceName = *p.ServiceName
	}
	if p.KeyName != nil {
		k.KeyName = *p.KeyName
	}
	if p.APIKey != nil {
		k.APIKey = *p.APIKey
	}
	if p.Description != nil {
		k.Description = *p.Description
	}
	return k
}

const maskFill = "••••••••"

// Mask hides all but the first and last four characters of a secret
func Mask(secret string) string {
	r := []rune(secret)
	if len(r) <= 8 {
		return maskFill
	}
	return string(r[:4]) + maskFill + string(r[len(r)-4:])
}

// Masked returns a copy safe to list
func (k ApiKey) Masked() ApiKey {
	k.APIKey = Mask(k.APIKey)
	return k
}

// IsMasked reports whether s looks like a Mask result rather than a secret
func IsMasked(s string) bool {
	return strings.Contains(s, maskFill)
}

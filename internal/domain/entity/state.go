// Package entity contains the core business objects of the project.
package entity

import "time"

// CorrelationState ties an authorization redirect to its callback. It is
// keyed by a single-use random token carried through the provider's `state`
// parameter, and expires shortly after issuance whether or not the callback
// ever arrives.
type CorrelationState struct {
	Provider  ProviderType // The provider the authorization round-trip was started for.
	ReturnURL string       // Optional front-end location to resume after login.
	IssuedAt  time.Time    // When the token was minted; consumption past the TTL must fail.
}

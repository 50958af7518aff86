package model

// Stats are bridge-owned counters. They never affect correctness.
type Stats struct {
	HeadersSubmitted  uint64
	HeadersVerified   uint64
	ProofsSubmitted   uint64
	ProofsVerified    uint64
	ProofsMismatched  uint64
	ClaimsSubmitted   uint64
	ClaimsFinalized   uint64
	ClaimsRejected    uint64
	EffectsIndexed    uint64
	EffectsFailed     uint64
	DepositsCreated   uint64
	DepositsConfirmed uint64
}

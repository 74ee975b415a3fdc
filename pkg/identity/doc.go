// Package identity provides authenticated caller identity management
// for EczemaHub requests.
//
// An Identity is the login named by a signed caller token, together
// with the token timestamps. The middleware stores it in the request
// context; handlers that need a caller (verify, whoami) retrieve it
// with Get.
//
// # Basic Usage
//
//	// Mint a token for a caller
//	tok, err := identity.Mint(key, "alice", 8*time.Minute)
//
//	// Validate a presented token
//	id, err := identity.Parse(key, tok)
//
//	// Store in / retrieve from a request context
//	ctx = identity.Set(ctx, id)
//	id, ok := identity.Get(ctx)
//
// Tokens are HS256 JWTs with sub, iat and exp claims. The signing key
// is shared between the server and whatever mints tokens for callers
// (eczemactl token).
package identity

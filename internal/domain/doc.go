// Package domain contains the core business entities of the application:
// countries and the persons that reference them. Entities carry their own
// invariant checks (Validate) and stay independent of any storage or
// delivery mechanism.
package domain

// Package testutils provides fixture builders shared by tests. Fixtures are
// filled with random but plausible values from go-randomdata, so tests only
// spell out the fields they actually assert on.
package testutils

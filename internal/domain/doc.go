// Package domain contains shared domain types used across entity sub-packages.
// Entity-specific types live in sub-packages (domain/todo, domain/user).
// This root package holds the sentinel errors, the validation error type and
// the failure taxonomy (Kind) used for user-facing messaging.
package domain

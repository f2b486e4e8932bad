// Package cli implements the command behaviour behind cmd/confgen: choosing
// collaborators from flags, running a generation under a signal-aware
// context and validating schemas.
package cli

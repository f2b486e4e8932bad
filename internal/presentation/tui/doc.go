// Package tui holds the terminal presentation of confgen: the colored
// console used for notices and prompts, the banner and markdown rendering
// of option descriptions.
package tui

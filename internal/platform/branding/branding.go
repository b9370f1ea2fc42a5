// Package branding holds product naming shared by every surface.
package branding

// AppName is the public product name.
const AppName = "Cambridge Study Advisor"

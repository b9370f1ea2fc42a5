// Package modules defines web module registry helpers.
package modules

import (
	"github.com/louisbranch/studypicks/internal/content"
	module "github.com/louisbranch/studypicks/internal/services/web/module"
	"golang.org/x/text/language"
)

// Mount aliases the module mount contract.
type Mount = module.Mount

// Module aliases the module interface contract.
type Module = module.Module

// Dependencies carries the data the web module registry needs.
type Dependencies struct {
	Feed content.Source
	// Lang is used when a request names no supported language.
	Lang language.Tag
}

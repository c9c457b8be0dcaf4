package main

import (
	"github.com/reusee/dscope"
	"github.com/reusee/kythera/debugs"
	"github.com/reusee/kythera/frontends"
	"github.com/reusee/kythera/watches"
)

type Module struct {
	dscope.Module
	Frontends frontends.Module
	Debugs    debugs.Module
	Watches   watches.Module
}

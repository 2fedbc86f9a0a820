package modapp

import (
	appbase "github.com/warptools/modcreator/app/base"
	_ "github.com/warptools/modcreator/app/create"
)

var App = appbase.App
